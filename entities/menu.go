package entities

import (
	"github.com/google/uuid"
)

type Menu struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	PriceS    float64   `json:"price_s"`
	PriceM    float64   `json:"price_m"`
	PriceL    float64   `json:"price_l"`
	PriceP    float64   `json:"price_p"`
	SortOrder int       `gorm:"index" json:"sort_order"`

	Recipes []*Recipe `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type Recipe struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	MenuID         uuid.UUID `gorm:"type:uuid;index" json:"menu_id"`
	Size           string    `gorm:"size:1" json:"size"` // S, M, L, P
	IngredientName string    `json:"ingredient_name"`
	Qty            float64   `json:"qty"`
	SortOrder      int       `gorm:"index" json:"sort_order"`

	Timestamp
}
