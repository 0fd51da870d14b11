package http

import (
	"github.com/coffeehouse/backend/internal/infrastructure/auth"
	"github.com/coffeehouse/backend/internal/infrastructure/config"
	"github.com/coffeehouse/backend/internal/infrastructure/logger"
	"github.com/coffeehouse/backend/internal/interfaces/http/handler"
	"github.com/coffeehouse/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers bundles all HTTP handlers for route registration
type Handlers struct {
	Auth     *handler.AuthHandler
	Menu     *handler.MenuHandler
	Cart     *handler.CartHandler
	Order    *handler.OrderHandler
	Loyalty  *handler.LoyaltyHandler
	Feedback *handler.FeedbackHandler
	Admin    *handler.AdminHandler
	System   *handler.SystemHandler
}

// NewRouter builds the gin engine with all middleware and routes
func NewRouter(cfg *config.Config, jwtService *auth.JWTService, handlers Handlers, log *zap.Logger) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		_ = engine.SetTrustedProxies(cfg.HTTP.TrustedProxies)
	}

	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithConfig(cfg.HTTP),
	)

	engine.GET("/health", handlers.System.Health)
	engine.GET("/ready", handlers.System.Ready)

	api := engine.Group("/api/v1")

	// Public storefront routes
	api.POST("/auth/register", handlers.Auth.Register)
	api.POST("/auth/login", handlers.Auth.Login)
	api.POST("/auth/refresh", handlers.Auth.Refresh)

	api.GET("/menu", handlers.Menu.List)
	api.GET("/menu/categories", handlers.Menu.Categories)
	api.GET("/menu/featured", handlers.Menu.Featured)
	api.GET("/menu/:id", handlers.Menu.Get)

	api.POST("/feedback", handlers.Feedback.Submit)
	api.GET("/feedback", handlers.Feedback.List)
	api.POST("/contact", handlers.Feedback.Contact)

	// Authenticated customer routes
	authed := api.Group("")
	authed.Use(middleware.RequireAuth(jwtService))
	{
		authed.GET("/auth/me", handlers.Auth.Me)
		authed.POST("/auth/change-password", handlers.Auth.ChangePassword)

		authed.GET("/cart", handlers.Cart.Get)
		authed.DELETE("/cart", handlers.Cart.Clear)
		authed.POST("/cart/items", handlers.Cart.AddItem)
		authed.PUT("/cart/items/:product_id", handlers.Cart.SetQuantity)
		authed.DELETE("/cart/items/:product_id", handlers.Cart.RemoveItem)
		authed.GET("/cart/totals", handlers.Cart.Totals)

		authed.POST("/orders/checkout", handlers.Order.Checkout)
		authed.GET("/orders", handlers.Order.List)
		authed.GET("/orders/:id", handlers.Order.Get)
		authed.POST("/orders/:id/cancel", handlers.Order.Cancel)

		authed.GET("/loyalty/account", handlers.Loyalty.Account)
		authed.GET("/loyalty/rewards", handlers.Loyalty.Rewards)
		authed.POST("/loyalty/redeem", handlers.Loyalty.Redeem)
		authed.GET("/loyalty/history", handlers.Loyalty.History)
	}

	// Back office routes
	admin := api.Group("/admin")
	admin.Use(middleware.RequireAuth(jwtService), middleware.AdminOnly())
	{
		admin.POST("/products", handlers.Admin.CreateProduct)
		admin.PUT("/products/:id", handlers.Admin.UpdateProduct)
		admin.PUT("/products/:id/active", handlers.Admin.SetProductActive)
		admin.DELETE("/products/:id", handlers.Admin.DeleteProduct)

		admin.GET("/orders", handlers.Admin.ListOrders)
		admin.PUT("/orders/:id/status", handlers.Admin.UpdateOrderStatus)

		admin.POST("/rewards", handlers.Admin.CreateReward)

		admin.GET("/stats/dashboard", handlers.Admin.Dashboard)
		admin.GET("/stats/daily-revenue", handlers.Admin.DailyRevenue)
	}

	return engine
}
