package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/warungpos/backend/internal/application/catalog"
	financeapp "github.com/warungpos/backend/internal/application/finance"
	identityapp "github.com/warungpos/backend/internal/application/identity"
	inventoryapp "github.com/warungpos/backend/internal/application/inventory"
	ledgerapp "github.com/warungpos/backend/internal/application/ledger"
	orderapp "github.com/warungpos/backend/internal/application/order"
	payrollapp "github.com/warungpos/backend/internal/application/payroll"
	"github.com/warungpos/backend/internal/domain/inventory"
	"github.com/warungpos/backend/internal/infrastructure/config"
	"github.com/warungpos/backend/internal/infrastructure/logger"
	"github.com/warungpos/backend/internal/infrastructure/persistence"
	"github.com/warungpos/backend/internal/interfaces/http/handler"
	"github.com/warungpos/backend/internal/interfaces/http/middleware"
	"github.com/warungpos/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting WarungPOS Backend",
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
	log.Info("Database connected successfully")

	// Repositories
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	cashEntryRepo := persistence.NewGormCashEntryRepository(db.DB)
	inventoryItemRepo := persistence.NewGormInventoryItemRepository(db.DB)
	recipeRepo := persistence.NewGormRecipeRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	payrollEntryRepo := persistence.NewGormPayrollEntryRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Application services
	deductionService, err := inventoryapp.NewDeductionService(
		inventory.ShortagePolicy(cfg.Inventory.ShortagePolicy),
	)
	if err != nil {
		log.Fatal("Invalid shortage policy", zap.Error(err))
	}
	postingService := ledgerapp.NewPostingService()
	txScope := persistence.NewGormTransactionScope(db.DB)

	orderService := orderapp.NewService(orderRepo, txScope, deductionService, postingService)
	ledgerService := ledgerapp.NewService(cashEntryRepo)
	inventoryService := inventoryapp.NewService(inventoryItemRepo,
		persistence.NewGormInventoryTransactionScope(db.DB))
	productService := catalogapp.NewProductService(productRepo)
	recipeService := catalogapp.NewRecipeService(recipeRepo, productRepo, inventoryItemRepo)
	expenseService := financeapp.NewExpenseService(expenseRepo, cashEntryRepo, postingService)
	payrollService := payrollapp.NewService(employeeRepo, payrollEntryRepo,
		persistence.NewGormPayrollTransactionScope(db.DB), postingService)
	userService := identityapp.NewUserService(userRepo)

	// HTTP engine and middleware
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
		MaxAge:       12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	engine.Use(middleware.ActingUser())

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewOrderHandler(orderService))
	r.Register(handler.NewCashLedgerHandler(ledgerService))
	r.Register(handler.NewInventoryHandler(inventoryService))
	r.Register(handler.NewProductHandler(productService))
	r.Register(handler.NewRecipeHandler(recipeService))
	r.Register(handler.NewExpenseHandler(expenseService))
	r.Register(handler.NewPayrollHandler(payrollService))
	r.Register(handler.NewUserHandler(userService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}
	log.Info("Server stopped")
}

// healthHandler reports process and database health
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unreachable",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": "connected",
		})
	}
}
