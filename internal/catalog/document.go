package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/osse101/ArcLab_Go/internal/domain"
)

// ErrInvalidDocument marks a catalog document that failed validation
var ErrInvalidDocument = errors.New("invalid catalog document")

// Document is the versioned JSON catalog an operator imports
type Document struct {
	Version     string    `json:"version"`
	Description string    `json:"description,omitempty"`
	Categories  []string  `json:"categories,omitempty"`
	Items       []ItemDef `json:"items"`
}

// ItemDef is one item of a catalog document. A nil Recipe leaves a saved
// recipe untouched on import; an empty one clears it.
type ItemDef struct {
	Name      string        `json:"name"`
	StackSize int           `json:"stack_size"`
	Category  string        `json:"category"`
	Rarity    string        `json:"rarity,omitempty"`
	ImagePath string        `json:"image_path,omitempty"`
	Recipe    []MaterialDef `json:"recipe,omitempty"`
}

// MaterialDef names a material by item name
type MaterialDef struct {
	Material string `json:"material"`
	Quantity int    `json:"quantity"`
}

// Reference is what a document may point at besides its own contents
type Reference struct {
	ItemNames  []string
	Categories []string
	Rarities   []string
}

// DefaultReference is the seeded categories and rarities with no items
func DefaultReference() Reference {
	return Reference{
		Categories: slices.Sorted(maps.Values(domain.CategoryNames)),
		Rarities:   slices.Sorted(maps.Values(domain.RarityNames)),
	}
}

// Validate checks a document for errors. Every failure wraps
// ErrInvalidDocument; unknown names carry a spelling suggestion when one
// is close.
func (d *Document) Validate(ref Reference) error {
	if d == nil || len(d.Items) == 0 {
		return fmt.Errorf(ErrFmtNoItems, ErrInvalidDocument)
	}

	categories := append(slices.Clone(ref.Categories), d.Categories...)
	categorySet := lowerSet(categories)
	raritySet := lowerSet(ref.Rarities)

	names := make(map[string]bool, len(d.Items)+len(ref.ItemNames))
	for _, n := range ref.ItemNames {
		names[n] = true
	}

	seen := make(map[string]bool, len(d.Items))
	for i, item := range d.Items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf(ErrFmtEmptyName, ErrInvalidDocument, i)
		}
		if seen[item.Name] {
			return fmt.Errorf(ErrFmtDuplicateName, ErrInvalidDocument, item.Name)
		}
		seen[item.Name] = true
		names[item.Name] = true

		if item.StackSize <= 0 {
			return fmt.Errorf(ErrFmtBadStackSize, ErrInvalidDocument, item.Name)
		}
		if !categorySet[strings.ToLower(item.Category)] {
			return fmt.Errorf(ErrFmtUnknownCategory, ErrInvalidDocument, item.Name, item.Category, hint(item.Category, categories))
		}
		if item.Rarity != "" && !raritySet[strings.ToLower(item.Rarity)] {
			return fmt.Errorf(ErrFmtUnknownRarity, ErrInvalidDocument, item.Name, item.Rarity, hint(item.Rarity, ref.Rarities))
		}
	}

	known := slices.Collect(maps.Keys(names))
	for _, item := range d.Items {
		used := make(map[string]bool, len(item.Recipe))
		for j, m := range item.Recipe {
			if m.Material == item.Name {
				return fmt.Errorf(ErrFmtSelfMaterial, ErrInvalidDocument, item.Name)
			}
			if !names[m.Material] {
				return fmt.Errorf(ErrFmtUnknownMaterial, ErrInvalidDocument, item.Name, j, m.Material, hint(m.Material, known))
			}
			if m.Quantity <= 0 {
				return fmt.Errorf(ErrFmtBadQuantity, ErrInvalidDocument, item.Name, j)
			}
			if m.Quantity > domain.MaxRecipeQuantity {
				return fmt.Errorf(ErrFmtLargeQuantity, ErrInvalidDocument, item.Name, j, domain.MaxRecipeQuantity)
			}
			if used[m.Material] {
				return fmt.Errorf(ErrFmtDuplicateMaterial, ErrInvalidDocument, item.Name, m.Material)
			}
			used[m.Material] = true
		}
	}

	return nil
}

// Snapshot builds a catalog snapshot from the document alone. Items are
// numbered from 1 in document order. The document should be validated
// first; materials that don't resolve are left out.
func (d *Document) Snapshot() *Snapshot {
	categoryIDs := reverseLower(domain.CategoryNames)
	rarityRanks := reverseLower(domain.RarityNames)

	items := make([]domain.Item, 0, len(d.Items))
	ids := make(map[string]int, len(d.Items))
	for i, def := range d.Items {
		item := domain.Item{
			ID:         i + 1,
			Name:       def.Name,
			StackSize:  def.StackSize,
			CategoryID: categoryIDs[strings.ToLower(def.Category)],
			Category:   def.Category,
		}
		if rank, ok := rarityRanks[strings.ToLower(def.Rarity)]; ok {
			item.Rarity = &domain.Rarity{ID: rank, Name: domain.RarityNames[rank], Rank: rank}
		}
		if def.ImagePath != "" {
			path := def.ImagePath
			item.ImagePath = &path
		}
		ids[def.Name] = item.ID
		items = append(items, item)
	}

	var recipes []domain.RecipeEntry
	for _, def := range d.Items {
		for _, m := range def.Recipe {
			materialID, ok := ids[m.Material]
			if !ok {
				continue
			}
			recipes = append(recipes, domain.RecipeEntry{
				ItemID:     ids[def.Name],
				MaterialID: materialID,
				Quantity:   m.Quantity,
			})
		}
	}

	return NewSnapshot(items, recipes)
}

func hint(name string, candidates []string) string {
	if s := Suggest(name, candidates); s != "" {
		return fmt.Sprintf(suggestionFmt, s)
	}
	return ""
}

func lowerSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = true
	}
	return set
}

func reverseLower(m map[int]string) map[string]int {
	out := make(map[string]int, len(m))
	for id, name := range m {
		out[strings.ToLower(name)] = id
	}
	return out
}
