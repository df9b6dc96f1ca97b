package models

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryTools      Category = "tools"
	CategorySafety     Category = "safety"
	CategoryEssentials Category = "essentials"
	// CategoryRental is a catalog tab, not a product category: it lists
	// every product with IsRental set.
	CategoryRental Category = "rental"
)

type Product struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Category    Category         `json:"category"`
	Price       decimal.Decimal  `json:"price"`
	RentPrice   *decimal.Decimal `json:"rent_price,omitempty"` // per day
	Image       string           `json:"image"`
	Description string           `json:"description"`
	InStock     bool             `json:"in_stock"`
	Rating      float64          `json:"rating"`
	Reviews     int              `json:"reviews"`
	IsRental    bool             `json:"is_rental"`
}

// Rentable reports whether the product can be added in rental mode.
func (p Product) Rentable() bool {
	return p.IsRental && p.RentPrice != nil
}

type CategoryTab struct {
	ID    Category `json:"id"`
	Label string   `json:"label"`
	Count int      `json:"count"`
}
