package planner

import (
	"github.com/osse101/ArcLab_Go/internal/catalog"
	"github.com/osse101/ArcLab_Go/internal/domain"
)

// Item ids used by the fixture catalog
const (
	idBolt = iota + 1
	idPlate
	idWidget
	idGear
	idBlade
	idIngot
	idEvenItem
	idShard
	idRelic
	idGhost
	idCoreless
)

func rarity(rank int) *domain.Rarity {
	return &domain.Rarity{ID: rank, Name: domain.RarityNames[rank], Rank: rank}
}

// fixtureCatalog builds a small catalog:
//
//	Widget (10/stack) = 2 Bolt (50/stack) + 1 Plate (20/stack)   -> materials win
//	Gear   (100/stack) = 1 Bolt + 1 Plate                        -> craft wins
//	Blade  (5/stack)   = 1 Ingot (20/stack) + 1 Plate            -> materials win, shares Plate
//	Even   (10/stack)  = 1 Shard (10/stack)                      -> exact tie
//	Relic  (1/stack)   = 3 Ghost (missing from catalog) + 2 Bolt  -> carried crafted
//	Coreless (4/stack) = 1 Ghost                                  -> carried crafted
func fixtureCatalog() *catalog.Snapshot {
	items := []domain.Item{
		{ID: idBolt, Name: "Bolt", StackSize: 50, Category: "crafting material", Rarity: rarity(domain.RarityCommon)},
		{ID: idPlate, Name: "Plate", StackSize: 20, Category: "crafting material", Rarity: rarity(domain.RarityUncommon)},
		{ID: idWidget, Name: "Widget", StackSize: 10, Category: "gun mod", Rarity: rarity(domain.RarityRare)},
		{ID: idGear, Name: "Gear", StackSize: 100, Category: "augment", Rarity: rarity(domain.RarityEpic)},
		{ID: idBlade, Name: "Blade", StackSize: 5, Category: "gun mod", Rarity: rarity(domain.RarityRare)},
		{ID: idIngot, Name: "Ingot", StackSize: 20, Category: "crafting material"},
		{ID: idEvenItem, Name: "Even", StackSize: 10, Category: "quick use", Rarity: rarity(domain.RarityLegendary)},
		{ID: idShard, Name: "Shard", StackSize: 10, Category: "crafting material"},
		{ID: idRelic, Name: "Relic", StackSize: 1, Category: "key"},
		{ID: idCoreless, Name: "Coreless", StackSize: 4, Category: "key"},
	}
	recipes := []domain.RecipeEntry{
		{ItemID: idWidget, MaterialID: idBolt, Quantity: 2},
		{ItemID: idWidget, MaterialID: idPlate, Quantity: 1},
		{ItemID: idGear, MaterialID: idBolt, Quantity: 1},
		{ItemID: idGear, MaterialID: idPlate, Quantity: 1},
		{ItemID: idBlade, MaterialID: idIngot, Quantity: 1},
		{ItemID: idBlade, MaterialID: idPlate, Quantity: 1},
		{ItemID: idEvenItem, MaterialID: idShard, Quantity: 1},
		{ItemID: idRelic, MaterialID: idGhost, Quantity: 3, MaterialStackSize: 10},
		{ItemID: idRelic, MaterialID: idBolt, Quantity: 2},
		{ItemID: idCoreless, MaterialID: idGhost, Quantity: 1, MaterialStackSize: 10},
	}
	return catalog.NewSnapshot(items, recipes)
}

func lineFor(plan domain.Plan, id int) (domain.PlanLine, bool) {
	for _, line := range plan.Lines {
		if line.Item.ID == id {
			return line, true
		}
	}
	return domain.PlanLine{}, false
}

func lineNames(plan domain.Plan) []string {
	names := make([]string, 0, len(plan.Lines))
	for _, line := range plan.Lines {
		names = append(names, line.Item.Name)
	}
	return names
}
