package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"worqely/internal/models"
	"worqely/internal/services"
)

type CartHandler struct {
	cartService    *services.CartService
	productService *services.ProductService
}

func NewCartHandler(cartService *services.CartService, productService *services.ProductService) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		productService: productService,
	}
}

// GET /api/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	cart := h.cartService.GetCart(sessionToken(c))

	c.JSON(http.StatusOK, gin.H{
		"data": cart.Summary(),
	})
}

// POST /api/cart/items
// The Add and Rent buttons are disabled for unavailable products; the same
// checks are enforced here before the cart is touched.
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req models.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Mode == "" {
		req.Mode = models.ModePurchase
	}

	product, exists := h.productService.GetProductByID(req.ProductID)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if !product.InStock {
		c.JSON(http.StatusConflict, gin.H{"error": "Product is out of stock"})
		return
	}

	if req.Mode == models.ModeRental && !product.Rentable() {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Product is not available for rental"})
		return
	}

	cart := h.cartService.AddItem(sessionToken(c), product, req.Mode, req.RentalDays)

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
		"data":    cart.Summary(),
	})
}

// PATCH /api/cart/items/:product_id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	var req models.ChangeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := h.cartService.ChangeQuantity(sessionToken(c), c.Param("product_id"), req.Mode, req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart updated",
		"data":    cart.Summary(),
	})
}

// DELETE /api/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cartService.Reset(sessionToken(c))

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
	})
}
