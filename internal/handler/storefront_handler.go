package handler

import (
	"go-storepos/internal/middleware"
	"go-storepos/internal/service"

	"github.com/gofiber/fiber/v2"
)

// StorefrontHandler serves the public share-token surface. Everything here
// is read-only; the resolved tenant comes from the share token, never from
// a session.
type StorefrontHandler struct {
	productService  service.ProductService
	categoryService service.CategoryService
	settingsService service.SettingsService
}

func NewStorefrontHandler(ps service.ProductService, cs service.CategoryService, ss service.SettingsService) *StorefrontHandler {
	return &StorefrontHandler{
		productService:  ps,
		categoryService: cs,
		settingsService: ss,
	}
}

func (h *StorefrontHandler) GetStore(c *fiber.Ctx) error {
	settings, err := h.settingsService.Get(middleware.OwnerID(c))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Store not found"})
	}
	// The share token itself is not echoed back to visitors.
	return c.JSON(fiber.Map{
		"store_name": settings.StoreName,
		"logo_url":   settings.LogoURL,
		"currency":   settings.Currency,
	})
}

func (h *StorefrontHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.productService.GetAll(middleware.OwnerID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

func (h *StorefrontHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.categoryService.GetAll(middleware.OwnerID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(categories)
}
