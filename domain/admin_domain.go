package domain

import (
	"Cost-Calculator/pkg/numeric"
	"encoding/json"
)

const (
	ActionUpsertAll         = "upsert_all"
	ActionSaveIngredients   = "save_ingredients"
	ActionSaveMenus         = "save_menus"
	ActionSaveOptions       = "save_options"
	ActionSaveOptionMenuMap = "save_option_menu_map"
	ActionSavePlatforms     = "save_platforms"
)

type (
	ActionRequest struct {
		Action  string          `json:"action" validate:"required"`
		Payload json.RawMessage `json:"payload"`
	}

	IngredientRow struct {
		ID       string         `json:"id" validate:"omitempty,uuid"`
		Name     string         `json:"name" validate:"required"`
		TotalQty numeric.Number `json:"total_qty" validate:"gte=0"`
		BuyPrice numeric.Number `json:"buy_price" validate:"gte=0"`
	}

	MenuRow struct {
		ID       string         `json:"id" validate:"omitempty,uuid"`
		Name     string         `json:"name" validate:"required"`
		Category string         `json:"category" validate:"omitempty,oneof=피자 1인피자 세트메뉴 사이드 음료"`
		PriceS   numeric.Number `json:"price_s" validate:"gte=0"`
		PriceM   numeric.Number `json:"price_m" validate:"gte=0"`
		PriceL   numeric.Number `json:"price_l" validate:"gte=0"`
		PriceP   numeric.Number `json:"price_p" validate:"gte=0"`
	}

	RecipeRow struct {
		ID             string         `json:"id" validate:"omitempty,uuid"`
		MenuID         string         `json:"menu_id" validate:"required,uuid"`
		Size           string         `json:"size" validate:"required,oneof=S M L P"`
		IngredientName string         `json:"ingredient_name" validate:"required"`
		Qty            numeric.Number `json:"qty" validate:"gte=0"`
	}

	OptionRow struct {
		ID         string         `json:"id" validate:"omitempty,uuid"`
		Name       string         `json:"name" validate:"required"`
		GroupID    string         `json:"group_id" validate:"required"`
		Type       string         `json:"type" validate:"omitempty,oneof=radio check check_qty"`
		PriceDelta numeric.Number `json:"price_delta"`
		CostDelta  numeric.Number `json:"cost_delta"`
		MaxQty     numeric.Number `json:"max_qty" validate:"gte=0"`
		Enabled    *bool          `json:"enabled"`
	}

	OptionMenuMapRow struct {
		OptionID string `json:"option_id" validate:"required,uuid"`
		MenuID   string `json:"menu_id" validate:"required,uuid"`
	}

	PlatformRow struct {
		ID              string         `json:"id" validate:"required"`
		PlatformFeeRate numeric.Number `json:"platform_fee_rate" validate:"gte=0,lte=1"`
		CardFeeRate     numeric.Number `json:"card_fee_rate" validate:"gte=0,lte=1"`
		DeliveryFee     numeric.Number `json:"delivery_fee" validate:"gte=0"`
	}

	SaveIngredientsRequest struct {
		Ingredients []IngredientRow `json:"ingredients" validate:"dive"`
	}

	SaveMenusRequest struct {
		Menus   []MenuRow   `json:"menus" validate:"dive"`
		Recipes []RecipeRow `json:"recipes" validate:"dive"`
	}

	SaveOptionsRequest struct {
		Options []OptionRow `json:"options" validate:"dive"`
	}

	SaveOptionMenuMapRequest struct {
		Mappings []OptionMenuMapRow `json:"mappings" validate:"dive"`
	}

	SavePlatformsRequest struct {
		Platforms []PlatformRow `json:"platforms" validate:"required,dive"`
	}

	ReplaceAllRequest struct {
		Ingredients []IngredientRow `json:"ingredients" validate:"dive"`
		Menus       []MenuRow       `json:"menus" validate:"dive"`
		Recipes     []RecipeRow     `json:"recipes" validate:"dive"`
		Options     []OptionRow     `json:"options" validate:"dive"`
	}
)
