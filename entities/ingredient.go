package entities

import (
	"github.com/google/uuid"
)

// Ingredient is referenced by name from Recipe rows, never by id.
type Ingredient struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"index" json:"name"`
	TotalQty  float64   `json:"total_qty"`
	BuyPrice  float64   `json:"buy_price"`
	SortOrder int       `gorm:"index" json:"sort_order"`

	Timestamp
}
