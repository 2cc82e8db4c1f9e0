package domain

// Upper bounds on what a single request or recipe entry may ask for. They
// keep slot arithmetic well inside int range for any valid stack size.
const (
	MaxUnitAmount     = 1_000_000
	MaxStackAmount    = 10_000
	MaxRecipeQuantity = 10_000
)

// DesiredRequest asks for Amount of an item. Amount is units or whole stacks
// depending on the planning mode.
type DesiredRequest struct {
	ItemID int `json:"item_id"`
	Amount int `json:"amount"`
}

// PlanLine is one row of a carry plan
type PlanLine struct {
	Item            Item     `json:"item"`
	RawQuantity     int      `json:"raw_quantity"`
	Stacks          int      `json:"stacks"`
	RoundedQuantity int      `json:"rounded_quantity"`
	Reasons         []string `json:"reasons"`
}

// Plan is the ordered list of things to carry for a set of desired items
type Plan struct {
	Lines      []PlanLine `json:"lines"`
	TotalSlots int        `json:"total_slots"`
}

// Recommendation is the outcome of comparing crafted vs. raw slot cost
type Recommendation string

const (
	RecommendCraft     Recommendation = "craft"
	RecommendMaterials Recommendation = "materials"
	RecommendEqual     Recommendation = "equal"
)

// EfficiencyResult reports whether a crafted item or its materials take
// fewer inventory slots. The float fields keep full precision; the Display
// fields carry the rounded figures shown to users.
type EfficiencyResult struct {
	Recommendation    Recommendation `json:"recommendation"`
	Ratio             float64        `json:"ratio"`
	SlotsPerItem      float64        `json:"slots_per_item"`
	SlotsForMaterials float64        `json:"slots_for_materials"`

	RatioDisplay             string `json:"ratio_display"`
	SlotsPerItemDisplay      string `json:"slots_per_item_display"`
	SlotsForMaterialsDisplay string `json:"slots_for_materials_display"`
	Message                  string `json:"message"`
}
