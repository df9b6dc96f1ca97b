package handlers

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"worqely/internal/i18n"
	"worqely/internal/models"
	"worqely/internal/services"
)

type ProductHandler struct {
	productService *services.ProductService
	translator     *i18n.Translator
}

func NewProductHandler(productService *services.ProductService, translator *i18n.Translator) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		translator:     translator,
	}
}

// GET /api/products?category=&page=&limit=
func (h *ProductHandler) GetAllProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(models.Category(c.Query("category")))
	if err != nil {
		respondError(c, err)
		return
	}

	page, limit := pagination(c)
	pageItems, meta := paginate(products, page, limit)
	meta["category"] = c.Query("category")

	c.JSON(http.StatusOK, gin.H{
		"data": pageItems,
		"meta": meta,
	})
}

// GET /api/products/:id
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	product, exists := h.productService.GetProductByID(c.Param("id"))
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": product,
	})
}

// GET /api/products/search?q=&category=
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	category := c.Query("category")

	products, err := h.productService.SearchProducts(query, models.Category(category))
	if err != nil {
		respondError(c, err)
		return
	}

	page, limit := pagination(c)
	pageItems, meta := paginate(products, page, limit)
	meta["query"] = query
	meta["category"] = category

	c.JSON(http.StatusOK, gin.H{
		"data": pageItems,
		"meta": meta,
	})
}

// GET /api/categories
func (h *ProductHandler) Categories(c *gin.Context) {
	lang := currentLang(c, h.translator)
	tabs := h.productService.Categories(func(key string) string {
		return h.translator.T(lang, key)
	})

	c.JSON(http.StatusOK, gin.H{
		"data":               tabs,
		"rental_description": h.translator.T(lang, "rentalDescription"),
	})
}

// Health check endpoint
func (h *ProductHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	})
}

// Metrics endpoint
func (h *ProductHandler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"goroutines": runtime.NumGoroutine(),
		"timestamp":  time.Now().Unix(),
	})
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func paginate(products []models.Product, page, limit int) ([]models.Product, gin.H) {
	total := len(products)
	totalPages := (total + limit - 1) / limit

	// Past the last page; also keeps (page-1)*limit from overflowing.
	if page > totalPages {
		return []models.Product{}, paginationMeta(page, limit, total, totalPages)
	}

	start := (page - 1) * limit
	end := start + limit
	if end > total {
		end = total
	}

	return products[start:end], paginationMeta(page, limit, total, totalPages)
}

func paginationMeta(page, limit, total, totalPages int) gin.H {
	return gin.H{
		"page":        page,
		"limit":       limit,
		"total":       total,
		"total_pages": totalPages,
		"has_next":    page < totalPages,
		"has_prev":    page > 1,
	}
}
