package planner

import (
	"fmt"
	"math"

	"github.com/osse101/ArcLab_Go/internal/domain"
)

// SlotsPerCraftedUnit is the inventory slot cost of carrying one finished
// unit of item. Returns 0 for a non-positive stack size.
func SlotsPerCraftedUnit(item domain.Item) float64 {
	if item.StackSize <= 0 {
		return 0
	}
	return 1 / float64(item.StackSize)
}

// SlotsForMaterials is the slot cost of carrying the materials needed to
// craft one unit. A material with a non-positive stack size cannot be
// carried at all and makes the cost +Inf.
func SlotsForMaterials(recipe []domain.RecipeEntry) float64 {
	total := 0.0
	for _, entry := range recipe {
		if entry.Quantity <= 0 {
			continue
		}
		if entry.MaterialStackSize <= 0 {
			return math.Inf(1)
		}
		total += float64(entry.Quantity) / float64(entry.MaterialStackSize)
	}
	return total
}

// Evaluate decides whether carrying the finished item or its immediate
// materials takes fewer slots. Returns nil when the item has no recipe, an
// invalid stack size, or a material without a usable stack size.
func Evaluate(item domain.Item, recipe []domain.RecipeEntry) *domain.EfficiencyResult {
	if len(recipe) == 0 || item.StackSize <= 0 {
		return nil
	}

	perItem := SlotsPerCraftedUnit(item)
	forMaterials := SlotsForMaterials(recipe)
	if forMaterials <= 0 || math.IsInf(forMaterials, 1) {
		return nil
	}

	result := &domain.EfficiencyResult{
		SlotsPerItem:             perItem,
		SlotsForMaterials:        forMaterials,
		SlotsPerItemDisplay:      fmt.Sprintf(slotsDisplayFmt, perItem),
		SlotsForMaterialsDisplay: fmt.Sprintf(slotsDisplayFmt, forMaterials),
	}

	switch {
	case perItem < forMaterials:
		result.Recommendation = domain.RecommendCraft
		result.Ratio = forMaterials / perItem
		result.Message = fmt.Sprintf(MsgCraftAheadFmt, result.Ratio)
	case forMaterials < perItem:
		result.Recommendation = domain.RecommendMaterials
		result.Ratio = perItem / forMaterials
		result.Message = fmt.Sprintf(MsgHoldMaterialsFmt, result.Ratio)
	default:
		result.Recommendation = domain.RecommendEqual
		result.Ratio = 1
		result.Message = MsgNoDifference
	}
	result.RatioDisplay = fmt.Sprintf(ratioDisplayFmt, result.Ratio)

	return result
}
