package api

import (
	"github.com/gin-gonic/gin"

	"worqely/api/handlers"
	"worqely/internal/i18n"
	"worqely/internal/models"
	"worqely/internal/services"
)

type Services struct {
	Products   *services.ProductService
	Carts      *services.CartService
	Orders     *services.OrderService
	Sessions   *services.SessionService
	Content    *services.ContentService
	Translator *i18n.Translator
}

// NewServices wires the in-memory services around a seeded catalog.
func NewServices(translator *i18n.Translator) Services {
	products := services.NewProductService()
	products.InitSampleData()

	carts := services.NewCartService()
	return Services{
		Products:   products,
		Carts:      carts,
		Orders:     services.NewOrderService(carts),
		Sessions:   services.NewSessionService(carts),
		Content:    services.NewContentService(translator),
		Translator: translator,
	}
}

func NewRouter(svc Services) *gin.Engine {
	productHandler := handlers.NewProductHandler(svc.Products, svc.Translator)
	cartHandler := handlers.NewCartHandler(svc.Carts, svc.Products)
	orderHandler := handlers.NewOrderHandler(svc.Orders)
	sessionHandler := handlers.NewSessionHandler(svc.Sessions, svc.Carts)
	localeHandler := handlers.NewLocaleHandler(svc.Translator, svc.Content)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	api := router.Group("/api")
	api.Use(handlers.Locale(svc.Translator))
	{
		api.GET("/health", productHandler.HealthCheck)

		// Localization and static content
		api.GET("/locales", localeHandler.Languages)
		api.GET("/locales/:lang", localeHandler.Dictionary)
		api.GET("/translate/:key", localeHandler.Translate)
		api.GET("/content/home", localeHandler.Home)

		// Catalog
		api.GET("/categories", productHandler.Categories)
		products := api.Group("/products")
		{
			products.GET("", productHandler.GetAllProducts)
			products.GET("/search", productHandler.SearchProducts)
			products.GET("/:id", productHandler.GetProductByID)
		}

		session := api.Group("/session")
		{
			session.POST("/login", sessionHandler.Login)
			session.POST("/signup", sessionHandler.Signup)
		}

		authed := api.Group("")
		authed.Use(handlers.RequireSession(svc.Sessions))
		{
			authed.GET("/session", sessionHandler.Me)
			authed.DELETE("/session", sessionHandler.Logout)

			cart := authed.Group("/cart")
			{
				cart.GET("", cartHandler.GetCart)
				cart.DELETE("", cartHandler.ClearCart)
				cart.POST("/items", cartHandler.AddToCart)
				cart.PATCH("/items/:product_id", cartHandler.UpdateCartItem)
			}

			orders := authed.Group("/orders")
			{
				orders.POST("/checkout", orderHandler.Checkout)
				orders.GET("", orderHandler.ListOrders)
				orders.GET("/:id", orderHandler.GetOrder)
				orders.GET("/:id/receipt", orderHandler.Receipt)
			}

			admin := authed.Group("/admin")
			admin.Use(handlers.RequireUserType(models.UserTypeAdmin))
			{
				admin.GET("/orders/stats", orderHandler.GetStats)
				admin.PATCH("/orders/:id/status", orderHandler.UpdateStatus)
			}
		}
	}

	// Debug endpoints in development
	if gin.Mode() != gin.ReleaseMode {
		router.GET("/debug/metrics", productHandler.Metrics)
	}

	return router
}
