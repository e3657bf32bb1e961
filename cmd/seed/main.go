package main

import (
	"log"

	"go-storepos/internal/model"
	"go-storepos/internal/repository"
	"go-storepos/internal/service"
	"go-storepos/pkg/database"

	"github.com/joho/godotenv"
)

// Seeds a demo store with an owner, a shopkeeper, and a small catalog.
func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

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
		log.Fatalf("Auto-migration failed: %v", err)
	}

	userRepo := repository.NewUserRepo(db)
	shopkeeperRepo := repository.NewShopkeeperRepo(db)
	settingsRepo := repository.NewSettingsRepo(db)
	authService := service.NewAuthService(userRepo, shopkeeperRepo, settingsRepo)

	email := "owner@example.com"
	if _, err := userRepo.FindByEmail(email); err == nil {
		log.Printf("Demo store already seeded (%s)", email)
		return
	}

	// 3. Owner account + store settings (share token minted at registration)
	owner := &model.User{
		Email:     email,
		FullName:  "Demo Owner",
		StoreName: "Demo Store",
	}
	if _, err := authService.RegisterOwner(owner, "owner-secret-123"); err != nil {
		log.Fatalf("Failed to create demo owner: %v", err)
	}

	// 4. Shopkeeper
	keeper := &model.Shopkeeper{
		OwnerID: owner.ID,
		Name:    "Demo Keeper",
		Email:   "keeper@example.com",
	}
	if err := keeper.SetPassword("keeper-secret-123"); err != nil {
		log.Fatalf("Failed to hash shopkeeper password: %v", err)
	}
	keeper.IsActive = true
	if err := shopkeeperRepo.Create(keeper); err != nil {
		log.Fatalf("Failed to create demo shopkeeper: %v", err)
	}

	// 5. Catalog
	grocery := &model.Category{OwnerID: owner.ID, Name: "Grocery"}
	drinks := &model.Category{OwnerID: owner.ID, Name: "Drinks"}
	if err := db.Create(grocery).Error; err != nil {
		log.Fatalf("Failed to create category: %v", err)
	}
	if err := db.Create(drinks).Error; err != nil {
		log.Fatalf("Failed to create category: %v", err)
	}

	products := []model.Product{
		{OwnerID: owner.ID, SKU: "GRC-001", Name: "Rice 5kg", CategoryID: &grocery.ID, UnitPrice: 8.50, Unit: model.UnitPacket, QuantityInStock: 40, MinStockLevel: 10},
		{OwnerID: owner.ID, SKU: "GRC-002", Name: "Sugar 1kg", CategoryID: &grocery.ID, UnitPrice: 1.20, Unit: model.UnitKg, QuantityInStock: 25, MinStockLevel: 8},
		{OwnerID: owner.ID, SKU: "DRK-001", Name: "Mineral Water 1L", CategoryID: &drinks.ID, UnitPrice: 0.60, Unit: model.UnitLiter, QuantityInStock: 120, MinStockLevel: 24},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			log.Fatalf("Failed to create product: %v", err)
		}
	}

	settings, _ := settingsRepo.FindByOwner(owner.ID)
	log.Printf("Demo store seeded: %s / owner-secret-123", email)
	log.Printf("Shopkeeper: keeper@example.com / keeper-secret-123")
	if settings != nil {
		log.Printf("Storefront share token: %s", settings.ShareToken)
	}
}
