package entities

// Platform is keyed by a stable channel code such as "BAEMIN_DELIVERY".
type Platform struct {
	ID              string  `gorm:"primary_key" json:"id"`
	Name            string  `json:"name"`
	PlatformFeeRate float64 `json:"platform_fee_rate"`
	CardFeeRate     float64 `json:"card_fee_rate"`
	DeliveryFee     float64 `json:"delivery_fee"`
	SortOrder       int     `gorm:"index" json:"sort_order"`

	Timestamp
}
