package domain

import (
	"errors"
	"fmt"
)

var (
	MessageSuccessGetCatalog        = "catalog retrieved successfully"
	MessageSuccessGetMenus          = "menus retrieved successfully"
	MessageSuccessGetOptionGroups   = "option groups retrieved successfully"
	MessageSuccessSaveIngredients   = "ingredients saved successfully"
	MessageSuccessSaveMenus         = "menus and recipes saved successfully"
	MessageSuccessSaveOptions       = "options saved successfully"
	MessageSuccessSaveOptionMenuMap = "option menu mappings saved successfully"
	MessageSuccessSavePlatforms     = "platform fees updated successfully"
	MessageSuccessReplaceAll        = "catalog replaced successfully"

	MessageFailedGetCatalog        = "failed to retrieve catalog"
	MessageFailedGetMenus          = "failed to retrieve menus"
	MessageFailedSaveIngredients   = "failed to save ingredients"
	MessageFailedSaveMenus         = "failed to save menus and recipes"
	MessageFailedSaveOptions       = "failed to save options"
	MessageFailedSaveOptionMenuMap = "failed to save option menu mappings"
	MessageFailedSavePlatforms     = "failed to update platform fees"
	MessageFailedReplaceAll        = "failed to replace catalog"

	ErrPlatformNotFound      = errors.New("platform not found")
	ErrDuplicateID           = errors.New("duplicate id in payload")
	ErrRecipeMenuNotFound    = errors.New("recipe references a menu that is not in the payload")
	ErrMappingOptionNotFound = errors.New("mapping references an unknown option")
	ErrMappingMenuNotFound   = errors.New("mapping references an unknown menu")
)

type Size string

const (
	SizeS Size = "S"
	SizeM Size = "M"
	SizeL Size = "L"
	SizeP Size = "P"
)

type OptionType string

const (
	OptionTypeRadio    OptionType = "radio"
	OptionTypeCheck    OptionType = "check"
	OptionTypeCheckQty OptionType = "check_qty"
)

type GroupKind string

const (
	GroupKindRadio      GroupKind = "radio"
	GroupKindCheckLimit GroupKind = "check_limit"
	GroupKindCheckQty   GroupKind = "check_qty"
)

const (
	CategoryAll       = "전체"
	CategoryPizza     = "피자"
	CategorySoloPizza = "1인피자"
	CategorySet       = "세트메뉴"
	CategorySide      = "사이드"
	CategoryDrink     = "음료"
)

// Categories is the closed set used for grouping menus, "all" first.
var Categories = []string{
	CategoryAll,
	CategoryPizza,
	CategorySoloPizza,
	CategorySet,
	CategorySide,
	CategoryDrink,
}

type (
	Ingredient struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		TotalQty float64 `json:"total_qty"`
		BuyPrice float64 `json:"buy_price"`
	}

	Menu struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Category string  `json:"category"`
		PriceS   float64 `json:"price_s"`
		PriceM   float64 `json:"price_m"`
		PriceL   float64 `json:"price_l"`
		PriceP   float64 `json:"price_p"`
	}

	RecipeLine struct {
		ID             string  `json:"id"`
		MenuID         string  `json:"menu_id"`
		Size           Size    `json:"size"`
		IngredientName string  `json:"ingredient_name"`
		Qty            float64 `json:"qty"`
	}

	Option struct {
		ID         string     `json:"id"`
		Name       string     `json:"name"`
		GroupID    string     `json:"group_id"`
		Type       OptionType `json:"type"`
		PriceDelta float64    `json:"price_delta"`
		CostDelta  float64    `json:"cost_delta"`
		MaxQty     int        `json:"max_qty"`
		Enabled    bool       `json:"enabled"`
	}

	OptionGroup struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		Subtitle  string    `json:"subtitle"`
		Kind      GroupKind `json:"kind"`
		MaxSelect int       `json:"maxSelect,omitempty"`
	}

	OptionMenuMap struct {
		OptionID string `json:"option_id"`
		MenuID   string `json:"menu_id"`
	}

	Platform struct {
		ID              string  `json:"id"`
		Name            string  `json:"name"`
		PlatformFeeRate float64 `json:"platform_fee_rate"`
		CardFeeRate     float64 `json:"card_fee_rate"`
		DeliveryFee     float64 `json:"delivery_fee"`
	}

	Catalog struct {
		Ingredients   []Ingredient    `json:"ingredients"`
		Menus         []Menu          `json:"menus"`
		Recipes       []RecipeLine    `json:"recipes"`
		Options       []Option        `json:"options"`
		Platforms     []Platform      `json:"platforms"`
		OptionMenuMap []OptionMenuMap `json:"optionMenuMap"`
	}

	MenuListRequest struct {
		Category string `query:"category"`
		Search   string `query:"search"`
	}

	CategoryCount struct {
		Category string `json:"category"`
		Count    int    `json:"count"`
	}

	SizeCost struct {
		Size      Size    `json:"size"`
		Price     float64 `json:"price"`
		Cost      float64 `json:"cost"`
		PriceText string  `json:"price_text"`
		CostText  string  `json:"cost_text"`
	}

	MenuSummary struct {
		Menu
		Sizes []SizeCost `json:"sizes"`
	}

	MenuListResponse struct {
		Categories []CategoryCount `json:"categories"`
		Menus      []MenuSummary   `json:"menus"`
		Total      int             `json:"total"`
		Matched    int             `json:"matched"`
	}
)

// Price returns the sell price for size; unknown sizes price at 0.
func (m Menu) Price(size Size) float64 {
	switch size {
	case SizeS:
		return m.PriceS
	case SizeM:
		return m.PriceM
	case SizeL:
		return m.PriceL
	case SizeP:
		return m.PriceP
	default:
		return 0
	}
}

// SoldByPiece reports whether the menu is priced per piece rather than S/M/L.
func (m Menu) SoldByPiece() bool {
	return m.Category == CategorySide || m.Category == CategoryDrink
}

// DefaultGroups returns a fresh copy of the stock option group taxonomy.
func DefaultGroups() []OptionGroup {
	return []OptionGroup{
		{ID: "REVIEW1", Title: "리뷰이벤트1", Subtitle: "필수", Kind: GroupKindRadio},
		{ID: "REVIEW2", Title: "리뷰이벤트2", Subtitle: "필수", Kind: GroupKindRadio},
		{ID: "PICKLE", Title: "피클선택(기본미제공)", Subtitle: "필수", Kind: GroupKindRadio},
		{ID: "SAUCE_QTY", Title: "소스 추가선택(기본미제공)", Subtitle: "최대 4개", Kind: GroupKindCheckQty},
		{ID: "SAUCE_AMOUNT", Title: "피자 소스양 선택", Subtitle: "필수", Kind: GroupKindRadio},
		{ID: "DOUGH", Title: "도우 선택", Subtitle: "필수", Kind: GroupKindRadio},
		{ID: "EDGE", Title: "엣지 선택", Subtitle: "필수", Kind: GroupKindRadio},
		{ID: "TOPPING", Title: "토핑 추가선택", Subtitle: "최대 2개", Kind: GroupKindCheckLimit, MaxSelect: 2},
		{ID: "SIDE", Title: "사이드메뉴 추가선택", Subtitle: "최대 1개", Kind: GroupKindCheckLimit, MaxSelect: 1},
		{ID: "DRINK", Title: "음료 추가선택", Subtitle: "최대 1개", Kind: GroupKindCheckLimit, MaxSelect: 1},
	}
}

// ReplaceStepError names the collection step that failed during a bulk replace.
type ReplaceStepError struct {
	Step string
	Err  error
}

func (e *ReplaceStepError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

func (e *ReplaceStepError) Unwrap() error {
	return e.Err
}

// DefaultPlatforms are the sales channels seeded on first migration.
func DefaultPlatforms() []Platform {
	return []Platform{
		{ID: "STORE", Name: "매장", CardFeeRate: 0.015},
		{ID: "BAEMIN_DELIVERY", Name: "배민 배달", PlatformFeeRate: 0.068, CardFeeRate: 0.03, DeliveryFee: 3300},
		{ID: "BAEMIN_PICKUP", Name: "배민 포장", PlatformFeeRate: 0.068, CardFeeRate: 0.03},
		{ID: "COUPANG_EATS", Name: "쿠팡이츠", PlatformFeeRate: 0.098, CardFeeRate: 0.03, DeliveryFee: 2900},
		{ID: "YOGIYO", Name: "요기요", PlatformFeeRate: 0.125, CardFeeRate: 0.03, DeliveryFee: 2900},
	}
}
