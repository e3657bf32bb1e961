package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-storepos/internal/handler"
	"go-storepos/internal/middleware"
	"go-storepos/internal/model"
	"go-storepos/internal/repository"
	"go-storepos/internal/service"
	"go-storepos/internal/storage"
	"go-storepos/internal/ws"
	"go-storepos/pkg/config"
	"go-storepos/pkg/database"
	pkgjwt "go-storepos/pkg/jwt"
	"go-storepos/pkg/logger"
	"go-storepos/pkg/metrics"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	// 1. Config & Logger
	cfg := config.Load()
	if err := logger.InitLogger(&logger.LogConfig{
		Level:       cfg.LogLevel,
		Environment: cfg.Environment,
		ServiceName: "storepos-api",
	}); err != nil {
		log.Fatal("Failed to init logger: ", err)
	}
	defer zap.L().Sync()

	// 2. Setup Database
	db := database.ConnectDB()
	if err := db.AutoMigrate(
		&model.User{},
		&model.Shopkeeper{},
		&model.Category{},
		&model.Product{},
		&model.StockTransaction{},
		&model.Report{},
		&model.StoreSettings{},
	); err != nil {
		zap.L().Fatal("auto-migration failed", zap.Error(err))
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Image store (local disk, served under /uploads)
	images, err := storage.NewImageStore(cfg.UploadDir, cfg.PublicURL)
	if err != nil {
		zap.L().Fatal("image store init failed", zap.Error(err))
	}

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	ledgerRepo := repository.NewLedgerRepo(db)
	reportRepo := repository.NewReportRepo(db)
	shopkeeperRepo := repository.NewShopkeeperRepo(db)
	userRepo := repository.NewUserRepo(db)
	settingsRepo := repository.NewSettingsRepo(db)

	stockService := service.NewStockService(productRepo, ledgerRepo, db, wsHub)
	productService := service.NewProductService(productRepo, categoryRepo, wsHub)
	categoryService := service.NewCategoryService(categoryRepo, productRepo)
	aggregateService := service.NewAggregateService(productRepo, categoryRepo, ledgerRepo)
	salesService := service.NewSalesService(ledgerRepo, shopkeeperRepo)
	reportService := service.NewReportService(productRepo, categoryRepo, reportRepo, salesService)
	authService := service.NewAuthService(userRepo, shopkeeperRepo, settingsRepo)
	shopkeeperService := service.NewShopkeeperService(shopkeeperRepo)
	settingsService := service.NewSettingsService(settingsRepo)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService, images)
	categoryHandler := handler.NewCategoryHandler(categoryService, productService)
	stockHandler := handler.NewStockHandler(stockService)
	dashHandler := handler.NewDashboardHandler(aggregateService)
	salesHandler := handler.NewSalesHandler(salesService)
	reportHandler := handler.NewReportHandler(reportService)
	shopkeeperHandler := handler.NewShopkeeperHandler(shopkeeperService)
	settingsHandler := handler.NewSettingsHandler(settingsService, images)
	storefrontHandler := handler.NewStorefrontHandler(productService, categoryService, settingsService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "StorePOS v1.0",
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(logger.Middleware())
	app.Use(metrics.Middleware())

	app.Get("/metrics", metrics.Handler())
	app.Static("/uploads", cfg.UploadDir)

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/shopkeeper-login", authHandler.LoginShopkeeper)
	auth.Post("/heartbeat", middleware.RequireOwner(userRepo), authHandler.Heartbeat)

	// Public storefront via share token (read-only)
	store := api.Group("/store/:token", middleware.ResolveShareToken(settingsRepo))
	store.Get("/", storefrontHandler.GetStore)
	store.Get("/products", storefrontHandler.GetProducts)
	store.Get("/categories", storefrontHandler.GetCategories)

	// ============ STAFF ROUTES (owner or shopkeeper) ============
	staff := api.Group("", middleware.RequireStaff(userRepo, shopkeeperRepo))

	staff.Get("/products", productHandler.GetAll)
	staff.Get("/products/:id", productHandler.GetByID)
	staff.Get("/categories", categoryHandler.GetAll)
	staff.Get("/categories/:id/products", categoryHandler.GetProducts)
	staff.Post("/pos/checkout", stockHandler.Checkout)

	// ============ OWNER ROUTES ============
	owner := api.Group("", middleware.RequireOwner(userRepo))

	owner.Get("/dashboard/stats", dashHandler.GetStats)
	owner.Get("/dashboard/low-stock", dashHandler.GetLowStock)
	owner.Get("/dashboard/category-breakdown", dashHandler.GetCategoryBreakdown)
	owner.Get("/dashboard/stock-movement", dashHandler.GetStockMovement)

	owner.Post("/products", productHandler.Create)
	owner.Put("/products/:id", productHandler.Update)
	owner.Delete("/products/:id", productHandler.Delete)
	owner.Post("/products/:id/image", productHandler.UploadImage)

	owner.Post("/products/:id/stock/adjust", stockHandler.Adjust)
	owner.Post("/products/:id/stock/add", stockHandler.Add)
	owner.Post("/products/:id/stock/remove", stockHandler.Remove)
	owner.Get("/products/:id/transactions", stockHandler.GetProductLedger)

	owner.Get("/transactions", stockHandler.GetLedger)
	owner.Get("/transactions/:id", stockHandler.GetLedgerEntry)

	owner.Post("/categories", categoryHandler.Create)
	owner.Put("/categories/:id", categoryHandler.Update)
	owner.Delete("/categories/:id", categoryHandler.Delete)

	owner.Get("/sales", salesHandler.GetAttributed)
	owner.Get("/sales/summary", salesHandler.GetSummary)

	owner.Post("/reports", reportHandler.Generate)
	owner.Get("/reports", reportHandler.GetAll)
	owner.Get("/reports/:id", reportHandler.GetByID)
	owner.Put("/reports/:id", reportHandler.UpdateMeta)
	owner.Delete("/reports/:id", reportHandler.Delete)

	owner.Get("/shopkeepers", shopkeeperHandler.GetAll)
	owner.Post("/shopkeepers", shopkeeperHandler.Create)
	owner.Put("/shopkeepers/:id", shopkeeperHandler.Update)
	owner.Put("/shopkeepers/:id/active", shopkeeperHandler.SetActive)

	owner.Get("/settings", settingsHandler.Get)
	owner.Put("/settings", settingsHandler.Update)
	owner.Post("/settings/logo", settingsHandler.UploadLogo)
	owner.Post("/settings/rotate-share-token", settingsHandler.RotateShareToken)

	// WebSocket Route (token via query param, scoped to the owning store)
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			claims, err := pkgjwt.ValidateToken(c.Query("token"))
			if err != nil {
				return c.SendStatus(fiber.StatusUnauthorized)
			}
			c.Locals("ws_owner_id", claims.OwnerID.String())
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		ownerID, _ := c.Locals("ws_owner_id").(string)
		wsHub.Register <- &ws.Subscription{Conn: c, OwnerID: ownerID}
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			zap.L().Panic("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Server exited")
}
