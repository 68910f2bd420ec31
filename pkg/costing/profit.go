package costing

import (
	"Cost-Calculator/domain"
	"Cost-Calculator/pkg/numeric"
)

// OptionProfits breaks the selected lines down into standalone option profit.
func OptionProfits(lines []domain.OptionLine, groups []domain.OptionGroup) []domain.OptionProfit {
	titles := make(map[string]string, len(groups))
	for _, g := range groups {
		if _, ok := titles[g.ID]; !ok {
			titles[g.ID] = g.Title
		}
	}

	out := make([]domain.OptionProfit, 0, len(lines))
	for _, l := range lines {
		if l.Option.PriceDelta == 0 && l.Option.CostDelta == 0 && l.Qty <= 0 {
			continue
		}
		price := numeric.ToNumber(l.Option.PriceDelta, 0) * float64(l.Qty)
		cost := numeric.ToNumber(l.Option.CostDelta, 0) * float64(l.Qty)

		title, ok := titles[l.Option.GroupID]
		if !ok {
			title = l.Option.GroupID
		}

		out = append(out, domain.OptionProfit{
			OptionID:   l.Option.ID,
			Name:       l.Option.Name,
			GroupTitle: title,
			Qty:        l.Qty,
			Price:      price,
			Cost:       cost,
			Profit:     price - cost,
		})
	}
	return out
}
