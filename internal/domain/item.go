package domain

import "time"

// Item is a catalog entry. StackSize is the number of units one inventory
// slot can hold.
type Item struct {
	ID         int       `json:"item_id" db:"item_id"`
	Name       string    `json:"name" db:"name"`
	StackSize  int       `json:"stack_size" db:"stack_size"`
	CategoryID int       `json:"category_id" db:"category_id"`
	Category   string    `json:"category" db:"category"` // Populated from join
	Rarity     *Rarity   `json:"rarity,omitempty"`       // Nullable: not every item has a rarity
	ImagePath  *string   `json:"image_path,omitempty" db:"image_path"`
	Craftable  bool      `json:"is_craftable" db:"is_craftable"`
	CreatedAt  time.Time `json:"created_at,omitempty" db:"created_at"`
}

// RarityRank returns the sort rank of the item's rarity, 0 when unset
func (i Item) RarityRank() int {
	if i.Rarity == nil {
		return 0
	}
	return i.Rarity.Rank
}

// Category groups items for display
type Category struct {
	ID   int    `json:"category_id"`
	Name string `json:"name"`
}

// Category ids seeded by the initial migration
const (
	CategoryGun              = 1
	CategoryGunMod           = 2
	CategoryAugment          = 3
	CategoryQuickUse         = 4
	CategoryCraftingMaterial = 5
	CategoryAmmunition       = 6
	CategoryShield           = 7
	CategoryKey              = 8
)

// CategoryNames maps seeded category ids to their display names
var CategoryNames = map[int]string{
	CategoryGun:              "gun",
	CategoryGunMod:           "gun mod",
	CategoryAugment:          "augment",
	CategoryQuickUse:         "quick use",
	CategoryCraftingMaterial: "crafting material",
	CategoryAmmunition:       "ammunition",
	CategoryShield:           "shield",
	CategoryKey:              "key",
}

// Rarity is an item's rarity tier. Higher Rank is rarer.
type Rarity struct {
	ID   int    `json:"rarity_id"`
	Name string `json:"name"`
	Rank int    `json:"rank"`
}

// Rarity ranks seeded by the initial migration
const (
	RarityCommon    = 1
	RarityUncommon  = 2
	RarityRare      = 3
	RarityEpic      = 4
	RarityLegendary = 5
)

// RarityNames maps seeded rarity ranks to their display names
var RarityNames = map[int]string{
	RarityCommon:    "common",
	RarityUncommon:  "uncommon",
	RarityRare:      "rare",
	RarityEpic:      "epic",
	RarityLegendary: "legendary",
}

// ItemInput carries the editable fields of an item
type ItemInput struct {
	Name       string  `json:"name" validate:"required,max=100,nocontrol"`
	StackSize  int     `json:"stack_size" validate:"min=1,max=100000"`
	CategoryID int     `json:"category_id" validate:"required,min=1"`
	RarityID   *int    `json:"rarity_id,omitempty" validate:"omitempty,min=1"`
	ImagePath  *string `json:"image_path,omitempty" validate:"omitempty,max=255"`
}

// ItemUsage describes an item whose recipe consumes a given material
type ItemUsage struct {
	ItemID    int    `json:"item_id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	StackSize int    `json:"stack_size"`
	Quantity  int    `json:"quantity"`
}
