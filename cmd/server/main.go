package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	cartapp "github.com/coffeehouse/backend/internal/application/cart"
	catalogapp "github.com/coffeehouse/backend/internal/application/catalog"
	feedbackapp "github.com/coffeehouse/backend/internal/application/feedback"
	identityapp "github.com/coffeehouse/backend/internal/application/identity"
	loyaltyapp "github.com/coffeehouse/backend/internal/application/loyalty"
	"github.com/coffeehouse/backend/internal/application/notification"
	orderapp "github.com/coffeehouse/backend/internal/application/order"
	reportapp "github.com/coffeehouse/backend/internal/application/report"
	"github.com/coffeehouse/backend/internal/domain/cart"
	"github.com/coffeehouse/backend/internal/infrastructure/auth"
	"github.com/coffeehouse/backend/internal/infrastructure/cache"
	"github.com/coffeehouse/backend/internal/infrastructure/config"
	"github.com/coffeehouse/backend/internal/infrastructure/event"
	"github.com/coffeehouse/backend/internal/infrastructure/logger"
	"github.com/coffeehouse/backend/internal/infrastructure/persistence"
	httpiface "github.com/coffeehouse/backend/internal/interfaces/http"
	"github.com/coffeehouse/backend/internal/interfaces/http/handler"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting coffeehouse backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// The cart lives in Redis; fall back to process memory when Redis is
	// not reachable so development setups work without it.
	var cartStore cart.SnapshotStore
	redisStore, err := cache.NewRedisCartStore(cache.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, 0)
	if err != nil {
		if cfg.App.Env == "production" {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		log.Warn("Redis unavailable, carts are kept in memory", zap.Error(err))
		cartStore = cache.NewInMemoryCartStore()
	} else {
		defer func() {
			if err := redisStore.Close(); err != nil {
				log.Error("Error closing Redis client", zap.Error(err))
			}
		}()
		cartStore = redisStore
		log.Info("Redis connected")
	}

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	accountRepo := persistence.NewGormLoyaltyAccountRepository(db.DB)
	rewardRepo := persistence.NewGormRewardRepository(db.DB)
	redemptionRepo := persistence.NewGormRedemptionRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	feedbackRepo := persistence.NewGormFeedbackRepository(db.DB)
	statsRepo := persistence.NewGormStatsRepository(db.DB)

	eventBus := event.NewInMemoryEventBus(log)

	policy := cart.PricingPolicy{
		TaxRate:          cfg.Pricing.TaxRate,
		DeliveryFee:      cfg.Pricing.DeliveryFee,
		FreeDeliveryOver: cfg.Pricing.FreeDeliveryOver,
	}

	sender := notification.NewLogSender(log)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, eventBus, log)
	productService := catalogapp.NewProductService(productRepo)
	cartService := cartapp.NewCartService(cartStore, eventBus, policy, log)
	checkoutService := orderapp.NewCheckoutService(orderRepo, cartStore, policy, eventBus, sender, log)
	orderService := orderapp.NewOrderService(orderRepo, eventBus, log)
	loyaltyService := loyaltyapp.NewLoyaltyService(accountRepo, rewardRepo, redemptionRepo, eventBus, log)
	feedbackService := feedbackapp.NewFeedbackService(feedbackRepo)
	contactService := notification.NewContactService(sender, log)
	statsService := reportapp.NewStatsService(statsRepo)

	// Placed orders earn loyalty points
	orderPlacedHandler := loyaltyapp.NewOrderPlacedHandler(loyaltyService, log)
	eventBus.Subscribe(orderPlacedHandler)
	log.Info("Event handlers registered",
		zap.Strings("order_placed_events", orderPlacedHandler.EventTypes()),
	)

	handlers := httpiface.Handlers{
		Auth:     handler.NewAuthHandler(authService, log),
		Menu:     handler.NewMenuHandler(productService, log),
		Cart:     handler.NewCartHandler(cartService, log),
		Order:    handler.NewOrderHandler(checkoutService, orderService, log),
		Loyalty:  handler.NewLoyaltyHandler(loyaltyService, log),
		Feedback: handler.NewFeedbackHandler(feedbackService, contactService, log),
		Admin:    handler.NewAdminHandler(productService, orderService, loyaltyService, statsService, log),
		System:   handler.NewSystemHandler(db, log),
	}

	engine := httpiface.NewRouter(cfg, jwtService, handlers, log)

	server := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("HTTP server listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
	log.Info("Server stopped")
}
