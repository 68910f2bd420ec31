package costing

import (
	"Cost-Calculator/domain"
	"Cost-Calculator/pkg/numeric"
)

// IngredientIndex resolves recipe lines to ingredients by exact name.
// When names collide the first ingredient in catalog order wins.
type IngredientIndex map[string]domain.Ingredient

func NewIngredientIndex(ingredients []domain.Ingredient) IngredientIndex {
	idx := make(IngredientIndex, len(ingredients))
	for _, it := range ingredients {
		if _, ok := idx[it.Name]; ok {
			continue
		}
		idx[it.Name] = it
	}
	return idx
}

// UnitCost is buy_price / total_qty, or 0 for unknown names and empty stock.
func (idx IngredientIndex) UnitCost(name string) float64 {
	it, ok := idx[name]
	if !ok {
		return 0
	}
	total := numeric.ToNumber(it.TotalQty, 0)
	buy := numeric.ToNumber(it.BuyPrice, 0)
	if total <= 0 {
		return 0
	}
	return buy / total
}

func UnitCost(name string, ingredients []domain.Ingredient) float64 {
	return NewIngredientIndex(ingredients).UnitCost(name)
}

// RecipeCost sums qty × unit cost over the recipe lines of (menu, size).
func RecipeCost(menu *domain.Menu, size domain.Size, recipes []domain.RecipeLine, ingredients []domain.Ingredient) float64 {
	return NewIngredientIndex(ingredients).RecipeCost(menu, size, recipes)
}

func (idx IngredientIndex) RecipeCost(menu *domain.Menu, size domain.Size, recipes []domain.RecipeLine) float64 {
	if menu == nil {
		return 0
	}
	total := 0.0
	for _, r := range recipes {
		if r.MenuID != menu.ID || r.Size != size {
			continue
		}
		total += numeric.ToNumber(r.Qty, 0) * idx.UnitCost(r.IngredientName)
	}
	return total
}
