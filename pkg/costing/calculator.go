package costing

import (
	"Cost-Calculator/domain"
	"Cost-Calculator/pkg/numeric"
	"math"
)

// Calculate derives the full margin breakdown for one order. It is pure:
// missing menus, platforms, options or ingredients contribute zero and no
// input is modified.
//
// Percentage fees are charged on net revenue (after coupon), not on gross.
func Calculate(
	menu *domain.Menu,
	state domain.CalcState,
	platforms []domain.Platform,
	options []domain.Option,
	recipes []domain.RecipeLine,
	ingredients []domain.Ingredient,
	groups []domain.OptionGroup,
) domain.MarginBreakdown {
	basePrice := 0.0
	if menu != nil {
		basePrice = numeric.ToNumber(menu.Price(state.Size), 0)
	}
	baseCost := NewIngredientIndex(ingredients).RecipeCost(menu, state.Size, recipes)

	lines := ResolveLines(state, options, groups)

	optPrice, optCost := 0.0, 0.0
	for _, l := range lines {
		optPrice += numeric.ToNumber(l.Option.PriceDelta, 0) * float64(l.Qty)
		optCost += numeric.ToNumber(l.Option.CostDelta, 0) * float64(l.Qty)
	}

	gross := basePrice + optPrice
	net := math.Max(0, gross-numeric.ToNumber(state.Coupon, 0))
	totalCost := baseCost + optCost

	var platform domain.Platform
	for _, p := range platforms {
		if p.ID == state.PlatformKey {
			platform = p
			break
		}
	}

	platformFee := net * numeric.ToNumber(platform.PlatformFeeRate, 0)
	cardFee := net * numeric.ToNumber(platform.CardFeeRate, 0)
	delivery := numeric.ToNumber(platform.DeliveryFee, 0) + numeric.ToNumber(state.StoreDeliveryExtra, 0)

	profit := net - platformFee - cardFee - delivery - totalCost
	marginRate := 0.0
	if net > 0 {
		marginRate = profit / net * 100
	}

	return domain.MarginBreakdown{
		BasePrice:   basePrice,
		BaseCost:    baseCost,
		OptPrice:    optPrice,
		OptCost:     optCost,
		Gross:       gross,
		Net:         net,
		TotalCost:   totalCost,
		PlatformFee: platformFee,
		CardFee:     cardFee,
		Delivery:    delivery,
		Profit:      profit,
		MarginRate:  marginRate,
		Lines:       lines,
	}
}
