package planner

import (
	"cmp"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/osse101/ArcLab_Go/internal/domain"
)

// Comparator orders plan lines. It returns a negative number when a sorts
// before b, zero when they tie and a positive number otherwise.
type Comparator func(a, b domain.PlanLine) int

// ByCategoryThenName orders lines by category name, then item name.
// The returned comparator holds a collator and is not safe for concurrent use.
func ByCategoryThenName() Comparator {
	col := newCollator()
	return func(a, b domain.PlanLine) int {
		if c := col.CompareString(a.Item.Category, b.Item.Category); c != 0 {
			return c
		}
		return col.CompareString(a.Item.Name, b.Item.Name)
	}
}

// ByRarityThenName orders lines rarest first, then by item name. Items
// without a rarity sort last.
// The returned comparator holds a collator and is not safe for concurrent use.
func ByRarityThenName() Comparator {
	col := newCollator()
	return func(a, b domain.PlanLine) int {
		if c := cmp.Compare(b.Item.RarityRank(), a.Item.RarityRank()); c != 0 {
			return c
		}
		return col.CompareString(a.Item.Name, b.Item.Name)
	}
}

func newCollator() *collate.Collator {
	return collate.New(language.English)
}
