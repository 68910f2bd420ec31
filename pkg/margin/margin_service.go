package margin

import (
	"Cost-Calculator/domain"
	"Cost-Calculator/pkg/catalog"
	"Cost-Calculator/pkg/costing"
	"Cost-Calculator/pkg/numeric"
	"context"
	"math"
)

type (
	MarginService interface {
		Calculate(ctx context.Context, req domain.CalculateRequest) (domain.CalculateResponse, error)
		DefaultSelection(ctx context.Context, req domain.CalculateRequest) (domain.CalcState, error)
		Groups() []domain.OptionGroup
	}

	marginService struct {
		catalogService catalog.CatalogService
		groups         []domain.OptionGroup
	}
)

// NewMarginService falls back to the stock taxonomy when groups is empty.
func NewMarginService(catalogService catalog.CatalogService, groups []domain.OptionGroup) MarginService {
	if len(groups) == 0 {
		groups = domain.DefaultGroups()
	}
	return &marginService{
		catalogService: catalogService,
		groups:         groups,
	}
}

func (s *marginService) Groups() []domain.OptionGroup {
	out := make([]domain.OptionGroup, len(s.groups))
	copy(out, s.groups)
	return out
}

func (s *marginService) Calculate(ctx context.Context, req domain.CalculateRequest) (domain.CalculateResponse, error) {
	data, err := s.catalogService.GetCatalog(ctx)
	if err != nil {
		return domain.CalculateResponse{}, err
	}

	menu := pickMenu(data.Menus, req.MenuID)
	options := costing.VisibleOptions(menuID(menu), data.Options, data.OptionMenuMap)
	state := toState(req)

	breakdown := costing.Calculate(menu, state, data.Platforms, options, data.Recipes, data.Ingredients, s.groups)
	state.Checked = costing.EnforceLimits(state.Checked, options, s.groups)

	return domain.CalculateResponse{
		Menu:          menu,
		State:         state,
		Breakdown:     breakdown,
		OptionProfits: costing.OptionProfits(breakdown.Lines, s.groups),
		Text:          breakdownText(breakdown),
	}, nil
}

func (s *marginService) DefaultSelection(ctx context.Context, req domain.CalculateRequest) (domain.CalcState, error) {
	data, err := s.catalogService.GetCatalog(ctx)
	if err != nil {
		return domain.CalcState{}, err
	}

	menu := pickMenu(data.Menus, req.MenuID)
	options := costing.VisibleOptions(menuID(menu), data.Options, data.OptionMenuMap)

	state := toState(req)
	if menu != nil && menu.SoldByPiece() && req.Size == "" {
		state.Size = domain.SizeP
	}
	state.Radio = costing.DefaultRadio(state.Radio, options, s.groups)
	state.Checked = costing.EnforceLimits(state.Checked, options, s.groups)
	return state, nil
}

// pickMenu returns the first menu for a blank id and nil for an unknown one.
func pickMenu(menus []domain.Menu, id string) *domain.Menu {
	if id == "" {
		if len(menus) == 0 {
			return nil
		}
		m := menus[0]
		return &m
	}
	for _, m := range menus {
		if m.ID == id {
			return &m
		}
	}
	return nil
}

func menuID(menu *domain.Menu) string {
	if menu == nil {
		return ""
	}
	return menu.ID
}

func toState(req domain.CalculateRequest) domain.CalcState {
	state := domain.CalcState{
		PlatformKey:        req.PlatformKey,
		Size:               domain.Size(req.Size),
		Coupon:             req.Coupon.Float(),
		StoreDeliveryExtra: req.StoreDeliveryExtra.Float(),
		Radio:              make(map[string]string, len(req.Radio)),
		Checked:            make(map[string]bool, len(req.Checked)),
		Qty:                make(map[string]int, len(req.Qty)),
	}
	if state.PlatformKey == "" {
		state.PlatformKey = domain.DefaultPlatformKey
	}
	if state.Size == "" {
		state.Size = domain.DefaultSize
	}
	for gid, id := range req.Radio {
		state.Radio[gid] = id
	}
	for id, on := range req.Checked {
		state.Checked[id] = on
	}
	// clamped in float space; oversized values would overflow int
	for id, q := range req.Qty {
		state.Qty[id] = int(numeric.Clamp(q.Float(), 0, math.MaxInt32))
	}
	return state
}

func breakdownText(b domain.MarginBreakdown) domain.BreakdownText {
	return domain.BreakdownText{
		BasePrice:   costing.Won(b.BasePrice),
		BaseCost:    costing.Won(b.BaseCost),
		Gross:       costing.Won(b.Gross),
		Net:         costing.Won(b.Net),
		TotalCost:   costing.Won(b.TotalCost),
		PlatformFee: costing.Won(b.PlatformFee),
		CardFee:     costing.Won(b.CardFee),
		Delivery:    costing.Won(b.Delivery),
		Profit:      costing.Won(b.Profit),
		MarginRate:  costing.Pct(b.MarginRate),
	}
}
