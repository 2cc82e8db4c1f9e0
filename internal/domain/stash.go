package domain

// StashEntry is one row of the persisted desired set: a whole-stack count
// for one item
type StashEntry struct {
	ItemID     int    `json:"item_id"`
	Stacks     int    `json:"stacks"`
	Name       string `json:"name,omitempty"`
	Category   string `json:"category,omitempty"`
	RarityRank int    `json:"rarity_rank,omitempty"`
}
