package domain

// RecipeEntry is one material requirement of a recipe: Quantity units of
// MaterialID are consumed to craft one unit of ItemID.
type RecipeEntry struct {
	ItemID            int    `json:"item_id"`
	MaterialID        int    `json:"material_id"`
	Quantity          int    `json:"quantity"`
	MaterialName      string `json:"material_name,omitempty"`
	MaterialCategory  string `json:"material_category,omitempty"`
	MaterialStackSize int    `json:"material_stack_size"`
}

// RecipeMaterial is a material/quantity pair submitted when saving a recipe
type RecipeMaterial struct {
	MaterialID int `json:"material_id"`
	Quantity   int `json:"quantity" validate:"max=10000"`
}
