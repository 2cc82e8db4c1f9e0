package planner

import (
	"fmt"

	"github.com/osse101/ArcLab_Go/internal/domain"
)

// TieBreak decides which way a request goes when the crafted item and its
// materials cost exactly the same number of slots.
type TieBreak int

const (
	// TieFavorsCraft carries the finished item on a tie
	TieFavorsCraft TieBreak = iota + 1
	// TieFavorsMaterials carries the raw materials on a tie
	TieFavorsMaterials
)

func (t TieBreak) String() string {
	switch t {
	case TieFavorsCraft:
		return "tie_favors_craft"
	case TieFavorsMaterials:
		return "tie_favors_materials"
	default:
		return "unknown"
	}
}

// Decision is the per-request outcome of the craft vs. materials rule
type Decision int

const (
	DecisionCraft Decision = iota + 1
	DecisionMaterials
)

// Decide compares the slot cost of one crafted unit against the slot cost of
// its materials. Ties resolve according to tb.
func Decide(slotsPerCraftedUnit, slotsForMaterials float64, tb TieBreak) Decision {
	switch tb {
	case TieFavorsCraft:
		if slotsPerCraftedUnit <= slotsForMaterials {
			return DecisionCraft
		}
	case TieFavorsMaterials:
		if slotsPerCraftedUnit < slotsForMaterials {
			return DecisionCraft
		}
	}
	return DecisionMaterials
}

// Mode selects how request amounts are read and how provenance is worded.
//
// The two modes resolve ties in opposite directions. Units planning has
// always carried the finished item on a tie while stack planning carries the
// materials; both are kept as-is until product decides which one is wanted.
type Mode int

const (
	// ModeUnits reads amounts as individual finished units
	ModeUnits Mode = iota + 1
	// ModeStacks reads amounts as whole stacks of the finished item
	ModeStacks
)

// TieBreak returns the tie policy the mode plans with
func (m Mode) TieBreak() TieBreak {
	if m == ModeStacks {
		return TieFavorsMaterials
	}
	return TieFavorsCraft
}

func (m Mode) String() string {
	if m == ModeStacks {
		return ModeNameStacks
	}
	return ModeNameUnits
}

// units converts a requested amount into finished units
func (m Mode) units(item domain.Item, amount int) int {
	if m == ModeStacks {
		return amount * item.StackSize
	}
	return amount
}

// maxAmount is the largest request amount the mode accepts
func (m Mode) maxAmount() int {
	if m == ModeStacks {
		return domain.MaxStackAmount
	}
	return domain.MaxUnitAmount
}

func (m Mode) baseReason(amount int) string {
	if m == ModeStacks {
		return fmt.Sprintf(ReasonStacksBaseItemFmt, amount, stackWord(amount))
	}
	return ReasonBaseItem
}

func (m Mode) craftReason(amount int) string {
	if m == ModeStacks {
		return fmt.Sprintf(ReasonStacksCraftAheadFmt, amount, stackWord(amount))
	}
	return ReasonCraftAhead
}

func (m Mode) materialReason(amount int, parentName string) string {
	if m == ModeStacks {
		return fmt.Sprintf(ReasonStacksForItemFmt, amount, stackWord(amount), parentName)
	}
	return fmt.Sprintf(ReasonForItemFmt, parentName)
}

func stackWord(n int) string {
	if n == 1 {
		return stackWordSingular
	}
	return stackWordPlural
}
