package catalog

import (
	"Cost-Calculator/domain"
	"Cost-Calculator/entities"
	"fmt"
	"github.com/google/uuid"
	"strings"
)

// idOrNew parses a client supplied id, generating one when it is blank.
func idOrNew(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.New(), nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", domain.ErrParseUUID, raw)
	}
	return id, nil
}

type idSet map[uuid.UUID]bool

func (s idSet) claim(id uuid.UUID) error {
	if s[id] {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateID, id)
	}
	s[id] = true
	return nil
}

func ingredientEntities(rows []domain.IngredientRow) ([]*entities.Ingredient, error) {
	seen := idSet{}
	out := make([]*entities.Ingredient, 0, len(rows))
	for i, row := range rows {
		id, err := idOrNew(row.ID)
		if err != nil {
			return nil, err
		}
		if err := seen.claim(id); err != nil {
			return nil, err
		}
		out = append(out, &entities.Ingredient{
			ID:        id,
			Name:      strings.TrimSpace(row.Name),
			TotalQty:  row.TotalQty.Float(),
			BuyPrice:  row.BuyPrice.Float(),
			SortOrder: i,
		})
	}
	return out, nil
}

func menuEntities(rows []domain.MenuRow) ([]*entities.Menu, error) {
	seen := idSet{}
	out := make([]*entities.Menu, 0, len(rows))
	for i, row := range rows {
		id, err := idOrNew(row.ID)
		if err != nil {
			return nil, err
		}
		if err := seen.claim(id); err != nil {
			return nil, err
		}
		category := row.Category
		if category == "" {
			category = domain.CategoryPizza
		}
		out = append(out, &entities.Menu{
			ID:        id,
			Name:      strings.TrimSpace(row.Name),
			Category:  category,
			PriceS:    row.PriceS.Float(),
			PriceM:    row.PriceM.Float(),
			PriceL:    row.PriceL.Float(),
			PriceP:    row.PriceP.Float(),
			SortOrder: i,
		})
	}
	return out, nil
}

// recipeEntities requires every recipe to point at one of menus.
func recipeEntities(rows []domain.RecipeRow, menus []*entities.Menu) ([]*entities.Recipe, error) {
	known := idSet{}
	for _, m := range menus {
		known[m.ID] = true
	}

	seen := idSet{}
	out := make([]*entities.Recipe, 0, len(rows))
	for i, row := range rows {
		id, err := idOrNew(row.ID)
		if err != nil {
			return nil, err
		}
		if err := seen.claim(id); err != nil {
			return nil, err
		}
		menuID, err := uuid.Parse(row.MenuID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrParseUUID, row.MenuID)
		}
		if !known[menuID] {
			return nil, fmt.Errorf("%w: %s", domain.ErrRecipeMenuNotFound, row.MenuID)
		}
		out = append(out, &entities.Recipe{
			ID:             id,
			MenuID:         menuID,
			Size:           row.Size,
			IngredientName: strings.TrimSpace(row.IngredientName),
			Qty:            row.Qty.Float(),
			SortOrder:      i,
		})
	}
	return out, nil
}

func optionEntities(rows []domain.OptionRow) ([]*entities.Option, error) {
	seen := idSet{}
	out := make([]*entities.Option, 0, len(rows))
	for i, row := range rows {
		id, err := idOrNew(row.ID)
		if err != nil {
			return nil, err
		}
		if err := seen.claim(id); err != nil {
			return nil, err
		}
		typ := row.Type
		if typ == "" {
			typ = string(domain.OptionTypeCheck)
		}
		enabled := true
		if row.Enabled != nil {
			enabled = *row.Enabled
		}
		out = append(out, &entities.Option{
			ID:         id,
			Name:       strings.TrimSpace(row.Name),
			GroupID:    strings.TrimSpace(row.GroupID),
			Type:       typ,
			PriceDelta: row.PriceDelta.Float(),
			CostDelta:  row.CostDelta.Float(),
			MaxQty:     int(row.MaxQty.Float()),
			Enabled:    enabled,
			SortOrder:  i,
		})
	}
	return out, nil
}

// mappingEntities drops duplicate pairs and rejects ids missing from the catalog.
func mappingEntities(rows []domain.OptionMenuMapRow, options []*entities.Option, menus []*entities.Menu) ([]*entities.OptionMenuMap, error) {
	knownOptions := idSet{}
	for _, o := range options {
		knownOptions[o.ID] = true
	}
	knownMenus := idSet{}
	for _, m := range menus {
		knownMenus[m.ID] = true
	}

	type pair struct{ option, menu uuid.UUID }
	seen := make(map[pair]bool, len(rows))
	out := make([]*entities.OptionMenuMap, 0, len(rows))
	for _, row := range rows {
		optionID, err := uuid.Parse(row.OptionID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrParseUUID, row.OptionID)
		}
		menuID, err := uuid.Parse(row.MenuID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrParseUUID, row.MenuID)
		}
		if !knownOptions[optionID] {
			return nil, fmt.Errorf("%w: %s", domain.ErrMappingOptionNotFound, row.OptionID)
		}
		if !knownMenus[menuID] {
			return nil, fmt.Errorf("%w: %s", domain.ErrMappingMenuNotFound, row.MenuID)
		}
		key := pair{optionID, menuID}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, &entities.OptionMenuMap{ID: uuid.New(), OptionID: optionID, MenuID: menuID})
	}
	return out, nil
}

func platformEntities(rows []domain.PlatformRow) []*entities.Platform {
	out := make([]*entities.Platform, 0, len(rows))
	for _, row := range rows {
		out = append(out, &entities.Platform{
			ID:              row.ID,
			PlatformFeeRate: row.PlatformFeeRate.Float(),
			CardFeeRate:     row.CardFeeRate.Float(),
			DeliveryFee:     row.DeliveryFee.Float(),
		})
	}
	return out
}

func toIngredients(rows []*entities.Ingredient) []domain.Ingredient {
	out := make([]domain.Ingredient, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Ingredient{
			ID:       r.ID.String(),
			Name:     r.Name,
			TotalQty: r.TotalQty,
			BuyPrice: r.BuyPrice,
		})
	}
	return out
}

func toMenus(rows []*entities.Menu) []domain.Menu {
	out := make([]domain.Menu, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Menu{
			ID:       r.ID.String(),
			Name:     r.Name,
			Category: r.Category,
			PriceS:   r.PriceS,
			PriceM:   r.PriceM,
			PriceL:   r.PriceL,
			PriceP:   r.PriceP,
		})
	}
	return out
}

func toRecipes(rows []*entities.Recipe) []domain.RecipeLine {
	out := make([]domain.RecipeLine, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.RecipeLine{
			ID:             r.ID.String(),
			MenuID:         r.MenuID.String(),
			Size:           domain.Size(r.Size),
			IngredientName: r.IngredientName,
			Qty:            r.Qty,
		})
	}
	return out
}

func toOptions(rows []*entities.Option) []domain.Option {
	out := make([]domain.Option, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Option{
			ID:         r.ID.String(),
			Name:       r.Name,
			GroupID:    r.GroupID,
			Type:       domain.OptionType(r.Type),
			PriceDelta: r.PriceDelta,
			CostDelta:  r.CostDelta,
			MaxQty:     r.MaxQty,
			Enabled:    r.Enabled,
		})
	}
	return out
}

func toMappings(rows []*entities.OptionMenuMap) []domain.OptionMenuMap {
	out := make([]domain.OptionMenuMap, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.OptionMenuMap{
			OptionID: r.OptionID.String(),
			MenuID:   r.MenuID.String(),
		})
	}
	return out
}

func toPlatforms(rows []*entities.Platform) []domain.Platform {
	out := make([]domain.Platform, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.Platform{
			ID:              r.ID,
			Name:            r.Name,
			PlatformFeeRate: r.PlatformFeeRate,
			CardFeeRate:     r.CardFeeRate,
			DeliveryFee:     r.DeliveryFee,
		})
	}
	return out
}

// PlatformEntities converts seed platforms, keeping their order.
func PlatformEntities(platforms []domain.Platform) []*entities.Platform {
	out := make([]*entities.Platform, 0, len(platforms))
	for i, p := range platforms {
		out = append(out, &entities.Platform{
			ID:              p.ID,
			Name:            p.Name,
			PlatformFeeRate: p.PlatformFeeRate,
			CardFeeRate:     p.CardFeeRate,
			DeliveryFee:     p.DeliveryFee,
			SortOrder:       i,
		})
	}
	return out
}
