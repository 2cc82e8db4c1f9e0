package planner

import (
	"slices"

	"github.com/osse101/ArcLab_Go/internal/domain"
)

// Catalog is the read-only view of items and recipes the aggregator plans
// against. Implementations must not change while a plan is computed.
type Catalog interface {
	Item(id int) (domain.Item, bool)
	Recipe(itemID int) []domain.RecipeEntry
}

// Options select the planning mode and the output order
type Options struct {
	Mode Mode
	// Sort orders the final lines. Nil keeps first-contribution order.
	Sort Comparator
}

// Result is a plan plus bookkeeping about what was left out of it
type Result struct {
	Plan domain.Plan
	// Dropped counts requests skipped for an unknown item or an amount
	// outside 1..the mode's maximum
	Dropped int
	// MissingMaterials counts recipe entries whose material is not in the
	// catalog or has no usable stack size
	MissingMaterials int
}

// Aggregate turns desired items into a carry plan. Each request is decided
// on its own, its unit demand is merged per item, and every item is rounded
// up to whole stacks.
func Aggregate(catalog Catalog, requests []domain.DesiredRequest, opts Options) domain.Plan {
	return AggregateDetailed(catalog, requests, opts).Plan
}

// AggregateDetailed is Aggregate with counts of skipped input
func AggregateDetailed(catalog Catalog, requests []domain.DesiredRequest, opts Options) Result {
	mode := opts.Mode
	if mode == 0 {
		mode = ModeUnits
	}

	var res Result
	l := newLedger()

	for _, req := range requests {
		item, ok := catalog.Item(req.ItemID)
		if !ok || req.Amount <= 0 || req.Amount > mode.maxAmount() || item.StackSize <= 0 {
			res.Dropped++
			continue
		}
		quantity := mode.units(item, req.Amount)

		recipe := catalog.Recipe(item.ID)
		if len(recipe) == 0 {
			l.add(item, quantity, mode.baseReason(req.Amount))
			continue
		}

		contributions, missing := expandRecipe(catalog, recipe, quantity)
		if missing > 0 {
			// materials that cannot be carried leave crafting ahead as the only option
			res.MissingMaterials += missing
			l.add(item, quantity, mode.craftReason(req.Amount))
			continue
		}

		decision := Decide(SlotsPerCraftedUnit(item), SlotsForMaterials(recipe), mode.TieBreak())
		if decision == DecisionCraft {
			l.add(item, quantity, mode.craftReason(req.Amount))
			continue
		}

		reason := mode.materialReason(req.Amount, item.Name)
		for _, c := range contributions {
			l.add(c.material, c.quantity, reason)
		}
	}

	lines := l.lines()
	if opts.Sort != nil {
		slices.SortStableFunc(lines, opts.Sort)
	}

	total := 0
	for _, line := range lines {
		total += line.Stacks
	}

	res.Plan = domain.Plan{Lines: lines, TotalSlots: total}
	return res
}

// contribution is one material's share of a materials decision
type contribution struct {
	material domain.Item
	quantity int
}

// expandRecipe resolves one level of recipe. Materials are leaves here even
// when they have recipes of their own. missing counts entries whose material
// is unknown or has no usable stack size.
func expandRecipe(catalog Catalog, recipe []domain.RecipeEntry, quantity int) (out []contribution, missing int) {
	out = make([]contribution, 0, len(recipe))
	for _, entry := range recipe {
		if entry.Quantity <= 0 {
			continue
		}
		material, ok := catalog.Item(entry.MaterialID)
		if !ok || material.StackSize <= 0 {
			missing++
			continue
		}
		out = append(out, contribution{material: material, quantity: entry.Quantity * quantity})
	}
	return out, missing
}
