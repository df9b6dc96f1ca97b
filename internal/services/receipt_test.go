package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worqely/internal/models"
)

func TestRenderReceipt(t *testing.T) {
	order := &models.Order{
		ID:     "order_1",
		UserID: "user-1",
		Items: []models.OrderItem{
			{ProductID: "drill-1", Name: "Heavy Duty Drill Machine", Mode: models.ModeRental, RentalDays: 3, Quantity: 2, UnitPrice: decimal.NewFromInt(600), LineTotal: decimal.NewFromInt(1200)},
			{ProductID: "hammer-1", Name: "Steel Claw Hammer", Mode: models.ModePurchase, Quantity: 1, UnitPrice: decimal.NewFromInt(450), LineTotal: decimal.NewFromInt(450)},
		},
		ItemCount: 3,
		Total:     decimal.NewFromInt(1650),
		Status:    models.OrderStatusPlaced,
		CreatedAt: time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC),
	}
	user := &models.User{FullName: "Asha", Mobile: "9000000002"}

	var buf bytes.Buffer
	err := RenderReceipt(order, user, &buf)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
