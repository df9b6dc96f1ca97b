package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type PurchaseMode string

const (
	ModePurchase PurchaseMode = "purchase"
	ModeRental   PurchaseMode = "rental"
)

// DefaultRentalDays applies when a rental line is added without a duration.
const DefaultRentalDays = 1

type Cart struct {
	SessionID string     `json:"session_id"`
	Lines     []CartLine `json:"lines"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartLine is one (product, mode) slot. RentalDays is only set for rental lines.
type CartLine struct {
	Product    Product      `json:"product"`
	Mode       PurchaseMode `json:"mode"`
	Quantity   int          `json:"quantity"`
	RentalDays int          `json:"rental_days,omitempty"`
}

func NewCart(sessionID string) *Cart {
	now := time.Now()
	return &Cart{
		SessionID: sessionID,
		Lines:     []CartLine{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UnitPrice is the purchase price, or rent price times rental days for rentals.
func (l CartLine) UnitPrice() decimal.Decimal {
	if l.Mode == ModeRental {
		rent := decimal.Zero
		if l.Product.RentPrice != nil {
			rent = *l.Product.RentPrice
		}
		days := l.RentalDays
		if days < 1 {
			days = DefaultRentalDays
		}
		return rent.Mul(decimal.NewFromInt(int64(days)))
	}
	return l.Product.Price
}

func (l CartLine) Total() decimal.Decimal {
	return l.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// AddItem merges into the existing (product, mode) line or appends a new one
// with quantity 1. It returns the resulting line.
func (c *Cart) AddItem(product Product, mode PurchaseMode, rentalDays int) CartLine {
	c.UpdatedAt = time.Now()

	if i := c.find(product.ID, mode); i >= 0 {
		c.Lines[i].Quantity++
		return c.Lines[i]
	}

	line := CartLine{
		Product:  product,
		Mode:     mode,
		Quantity: 1,
	}
	if mode == ModeRental {
		if rentalDays < 1 {
			rentalDays = DefaultRentalDays
		}
		line.RentalDays = rentalDays
	}
	c.Lines = append(c.Lines, line)
	return line
}

// ChangeQuantity adjusts a line by delta. Quantity is clamped at zero and a
// zero line is removed. It reports false when no line matches.
func (c *Cart) ChangeQuantity(productID string, mode PurchaseMode, delta int) bool {
	i := c.find(productID, mode)
	if i < 0 {
		return false
	}

	quantity := c.Lines[i].Quantity + delta
	if quantity <= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	} else {
		c.Lines[i].Quantity = quantity
	}
	c.UpdatedAt = time.Now()
	return true
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Total())
	}
	return total
}

// ItemCount is the sum of quantities over all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Clone returns a copy that shares no line storage with c.
func (c *Cart) Clone() *Cart {
	clone := *c
	clone.Lines = make([]CartLine, len(c.Lines))
	copy(clone.Lines, c.Lines)
	return &clone
}

func (c *Cart) find(productID string, mode PurchaseMode) int {
	for i, line := range c.Lines {
		if line.Product.ID == productID && line.Mode == mode {
			return i
		}
	}
	return -1
}

// CartSummary is the cart as the client renders it: lines with their totals
// plus the badge count and grand total.
type CartSummary struct {
	SessionID string          `json:"session_id"`
	Lines     []LineSummary   `json:"lines"`
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type LineSummary struct {
	ProductID  string          `json:"product_id"`
	Name       string          `json:"name"`
	Image      string          `json:"image"`
	Mode       PurchaseMode    `json:"mode"`
	Quantity   int             `json:"quantity"`
	RentalDays int             `json:"rental_days,omitempty"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	LineTotal  decimal.Decimal `json:"line_total"`
}

func (c *Cart) Summary() CartSummary {
	lines := make([]LineSummary, 0, len(c.Lines))
	for _, line := range c.Lines {
		lines = append(lines, LineSummary{
			ProductID:  line.Product.ID,
			Name:       line.Product.Name,
			Image:      line.Product.Image,
			Mode:       line.Mode,
			Quantity:   line.Quantity,
			RentalDays: line.RentalDays,
			UnitPrice:  line.UnitPrice(),
			LineTotal:  line.Total(),
		})
	}
	return CartSummary{
		SessionID: c.SessionID,
		Lines:     lines,
		ItemCount: c.ItemCount(),
		Total:     c.Total(),
		UpdatedAt: c.UpdatedAt,
	}
}

type AddToCartRequest struct {
	ProductID  string       `json:"product_id" binding:"required"`
	Mode       PurchaseMode `json:"mode" binding:"omitempty,oneof=purchase rental"`
	RentalDays int          `json:"rental_days" binding:"gte=0"`
}

type ChangeQuantityRequest struct {
	Mode  PurchaseMode `json:"mode" binding:"omitempty,oneof=purchase rental"`
	Delta int          `json:"delta" binding:"required"`
}
