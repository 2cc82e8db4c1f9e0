package planner

// Provenance reasons attached to plan lines in unit mode
const (
	ReasonBaseItem   = "base item"
	ReasonCraftAhead = "craft ahead"
	ReasonForItemFmt = "for %s"
)

// Provenance reasons attached to plan lines in stack mode. The count and the
// stack/stacks word are prefixed.
const (
	ReasonStacksBaseItemFmt   = "%d %s base item"
	ReasonStacksCraftAheadFmt = "%d %s craft ahead"
	ReasonStacksForItemFmt    = "for %d %s %s"

	stackWordSingular = "stack"
	stackWordPlural   = "stacks"
)

// Efficiency messages shown next to an item's recipe
const (
	MsgCraftAheadFmt    = "Craft ahead of time. Holding crafted items is %.1fx more space-efficient than holding materials."
	MsgHoldMaterialsFmt = "Hold materials. Keeping materials is %.1fx more space-efficient than holding crafted items."
	MsgNoDifference     = "No difference. Crafted items and materials take the same inventory space."
)

// Display precision for efficiency figures
const (
	ratioDisplayFmt = "%.2f"
	slotsDisplayFmt = "%.3f"
)

// Mode names used as metric labels and in logs
const (
	ModeNameUnits  = "units"
	ModeNameStacks = "stacks"
)

// Log messages
const (
	LogMsgPlanComputed     = "Plan computed"
	LogMsgRequestDropped   = "Desired item dropped from plan"
	LogMsgMaterialMissing  = "Recipe material missing from catalog"
	LogMsgSnapshotFailed   = "Failed to load catalog snapshot"
	LogMsgEvaluateNotFound = "Efficiency requested for unknown item"
)
