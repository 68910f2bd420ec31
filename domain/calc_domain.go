package domain

import (
	"Cost-Calculator/pkg/numeric"
)

var (
	MessageSuccessCalculate        = "margin calculated successfully"
	MessageSuccessDefaultSelection = "default selection resolved successfully"

	MessageFailedCalculate        = "failed to calculate margin"
	MessageFailedDefaultSelection = "failed to resolve default selection"
)

// Defaults applied to a calculation request that leaves them blank.
const (
	DefaultPlatformKey = "BAEMIN_DELIVERY"
	DefaultSize        = SizeM
)

type (
	// CalcState is the selection state the calculator reads. It is never mutated.
	CalcState struct {
		PlatformKey        string            `json:"platformKey"`
		Size               Size              `json:"size"`
		Coupon             float64           `json:"coupon"`
		StoreDeliveryExtra float64           `json:"storeDeliveryExtra"`
		Radio              map[string]string `json:"radio"`
		Checked            map[string]bool   `json:"checked"`
		Qty                map[string]int    `json:"qty"`
	}

	OptionLine struct {
		Option Option `json:"opt"`
		Qty    int    `json:"qty"`
	}

	MarginBreakdown struct {
		BasePrice   float64      `json:"basePrice"`
		BaseCost    float64      `json:"baseCost"`
		OptPrice    float64      `json:"optPrice"`
		OptCost     float64      `json:"optCost"`
		Gross       float64      `json:"gross"`
		Net         float64      `json:"net"`
		TotalCost   float64      `json:"totalCost"`
		PlatformFee float64      `json:"platformFee"`
		CardFee     float64      `json:"cardFee"`
		Delivery    float64      `json:"delivery"`
		Profit      float64      `json:"profit"`
		MarginRate  float64      `json:"marginRate"`
		Lines       []OptionLine `json:"lines"`
	}

	OptionProfit struct {
		OptionID   string  `json:"option_id"`
		Name       string  `json:"name"`
		GroupTitle string  `json:"group_title"`
		Qty        int     `json:"qty"`
		Price      float64 `json:"price"`
		Cost       float64 `json:"cost"`
		Profit     float64 `json:"profit"`
	}

	CalculateRequest struct {
		MenuID             string                    `json:"menu_id" validate:"omitempty"`
		PlatformKey        string                    `json:"platformKey"`
		Size               string                    `json:"size" validate:"omitempty,oneof=S M L P"`
		Coupon             numeric.Number            `json:"coupon" validate:"gte=0"`
		StoreDeliveryExtra numeric.Number            `json:"storeDeliveryExtra" validate:"gte=0"`
		Radio              map[string]string         `json:"radio"`
		Checked            map[string]bool           `json:"checked"`
		Qty                map[string]numeric.Number `json:"qty"`
	}

	BreakdownText struct {
		BasePrice   string `json:"basePrice"`
		BaseCost    string `json:"baseCost"`
		Gross       string `json:"gross"`
		Net         string `json:"net"`
		TotalCost   string `json:"totalCost"`
		PlatformFee string `json:"platformFee"`
		CardFee     string `json:"cardFee"`
		Delivery    string `json:"delivery"`
		Profit      string `json:"profit"`
		MarginRate  string `json:"marginRate"`
	}

	CalculateResponse struct {
		Menu          *Menu           `json:"menu"`
		State         CalcState       `json:"state"`
		Breakdown     MarginBreakdown `json:"breakdown"`
		OptionProfits []OptionProfit  `json:"option_profits"`
		Text          BreakdownText   `json:"text"`
	}
)
