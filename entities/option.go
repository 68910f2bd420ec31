package entities

import (
	"github.com/google/uuid"
)

type Option struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name       string    `json:"name"`
	GroupID    string    `gorm:"index" json:"group_id"`
	Type       string    `json:"type"` // radio, check, check_qty
	PriceDelta float64   `json:"price_delta"`
	CostDelta  float64   `json:"cost_delta"`
	MaxQty     int       `json:"max_qty"`
	Enabled    bool      `json:"enabled"`
	SortOrder  int       `gorm:"index" json:"sort_order"`

	Timestamp
}

type OptionMenuMap struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OptionID uuid.UUID `gorm:"type:uuid;index" json:"option_id"`
	MenuID   uuid.UUID `gorm:"type:uuid;index" json:"menu_id"`

	Timestamp
}
