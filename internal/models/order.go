package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusInTransit OrderStatus = "in-transit"
	OrderStatusDelivered OrderStatus = "delivered"
)

type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Items     []OrderItem     `json:"items"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
	Status    OrderStatus     `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

type OrderItem struct {
	ProductID  string          `json:"product_id"`
	Name       string          `json:"name"`
	Mode       PurchaseMode    `json:"mode"`
	RentalDays int             `json:"rental_days,omitempty"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

type OrderStats struct {
	TotalOrders     int64           `json:"total_orders"`
	FailedCheckouts int64           `json:"failed_checkouts"`
	Revenue         decimal.Decimal `json:"revenue"`
}
