package catalog

import (
	"Cost-Calculator/domain"
	"Cost-Calculator/pkg/costing"
	"strings"
	"unicode"
)

var (
	pieceSizes = []domain.Size{domain.SizeP}
	panSizes   = []domain.Size{domain.SizeS, domain.SizeM, domain.SizeL}
)

// FilterMenus builds the menu picker: per-category counts plus the menus that
// match category and search, each with per-size price and recipe cost.
func FilterMenus(catalog domain.Catalog, category, search string) domain.MenuListResponse {
	if category == "" {
		category = domain.CategoryAll
	}

	counts := make([]domain.CategoryCount, 0, len(domain.Categories))
	for _, cat := range domain.Categories {
		n := len(catalog.Menus)
		if cat != domain.CategoryAll {
			n = 0
			for _, m := range catalog.Menus {
				if m.Category == cat {
					n++
				}
			}
		}
		counts = append(counts, domain.CategoryCount{Category: cat, Count: n})
	}

	idx := costing.NewIngredientIndex(catalog.Ingredients)
	menus := make([]domain.MenuSummary, 0)
	for _, m := range catalog.Menus {
		if category != domain.CategoryAll && m.Category != category {
			continue
		}
		if !MatchesSearch(m.Name, search) {
			continue
		}

		sizes := panSizes
		if m.SoldByPiece() {
			sizes = pieceSizes
		}
		summary := domain.MenuSummary{Menu: m, Sizes: make([]domain.SizeCost, 0, len(sizes))}
		for _, size := range sizes {
			price := m.Price(size)
			cost := idx.RecipeCost(&m, size, catalog.Recipes)
			summary.Sizes = append(summary.Sizes, domain.SizeCost{
				Size:      size,
				Price:     price,
				Cost:      cost,
				PriceText: costing.Won(price),
				CostText:  costing.Won(cost),
			})
		}
		menus = append(menus, summary)
	}

	return domain.MenuListResponse{
		Categories: counts,
		Menus:      menus,
		Total:      len(catalog.Menus),
		Matched:    len(menus),
	}
}

// MatchesSearch is deliberately loose: a blank query matches everything and
// otherwise a single shared character is enough.
func MatchesSearch(name, search string) bool {
	q := strings.TrimSpace(search)
	if q == "" || strings.Contains(name, q) {
		return true
	}
	for _, r := range q {
		if unicode.IsSpace(r) {
			continue
		}
		if strings.ContainsRune(name, r) {
			return true
		}
	}
	return false
}
