package catalog

import (
	"time"

	"github.com/osse101/ArcLab_Go/internal/domain"
)

// Snapshot is an immutable in-memory view of every item and recipe. It
// satisfies planner.Catalog and is safe to share between goroutines.
type Snapshot struct {
	items   map[int]domain.Item
	recipes map[int][]domain.RecipeEntry
	order   []int
	takenAt time.Time
}

// NewSnapshot indexes items and recipe entries. Material fields missing from
// an entry are filled in from the item list, and every item with at least
// one entry is marked craftable.
func NewSnapshot(items []domain.Item, recipes []domain.RecipeEntry) *Snapshot {
	s := &Snapshot{
		items:   make(map[int]domain.Item, len(items)),
		recipes: make(map[int][]domain.RecipeEntry),
		order:   make([]int, 0, len(items)),
		takenAt: time.Now(),
	}

	for _, item := range items {
		if _, dup := s.items[item.ID]; !dup {
			s.order = append(s.order, item.ID)
		}
		s.items[item.ID] = item
	}

	for _, entry := range recipes {
		if material, ok := s.items[entry.MaterialID]; ok {
			if entry.MaterialName == "" {
				entry.MaterialName = material.Name
			}
			if entry.MaterialCategory == "" {
				entry.MaterialCategory = material.Category
			}
			if entry.MaterialStackSize == 0 {
				entry.MaterialStackSize = material.StackSize
			}
		}
		s.recipes[entry.ItemID] = append(s.recipes[entry.ItemID], entry)
	}

	for id := range s.recipes {
		if item, ok := s.items[id]; ok {
			item.Craftable = true
			s.items[id] = item
		}
	}

	return s
}

// Item returns the item with id
func (s *Snapshot) Item(id int) (domain.Item, bool) {
	item, ok := s.items[id]
	return item, ok
}

// Recipe returns the recipe entries of an item, nil for a base item. The
// returned slice must not be modified.
func (s *Snapshot) Recipe(itemID int) []domain.RecipeEntry {
	return s.recipes[itemID]
}

// Items returns every item in load order
func (s *Snapshot) Items() []domain.Item {
	out := make([]domain.Item, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// Len is the number of items in the snapshot
func (s *Snapshot) Len() int {
	return len(s.items)
}

// TakenAt is when the snapshot was built
func (s *Snapshot) TakenAt() time.Time {
	return s.takenAt
}
