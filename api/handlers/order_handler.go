package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"worqely/internal/models"
	"worqely/internal/services"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// POST /api/orders/checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	session := currentSession(c)

	order, err := h.orderService.Checkout(session.Token, session.User.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed",
		"data":    order,
	})
}

// GET /api/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	history := h.orderService.History(currentSession(c).User.ID)

	c.JSON(http.StatusOK, gin.H{
		"data": history,
		"meta": gin.H{"total": len(history)},
	})
}

// GET /api/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Param("id"), currentSession(c).User.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": order,
	})
}

// GET /api/orders/:id/receipt
func (h *OrderHandler) Receipt(c *gin.Context) {
	session := currentSession(c)
	order, err := h.orderService.GetOrder(c.Param("id"), session.User.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := services.RenderReceipt(order, session.User, &buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render receipt"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=receipt_%s.pdf", order.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// PATCH /api/admin/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status models.OrderStatus `json:"status" binding:"required,oneof=placed in-transit delivered"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orderService.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order status updated",
		"data":    order,
	})
}

// GET /api/admin/orders/stats
func (h *OrderHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"stats": h.orderService.Stats(),
	})
}
