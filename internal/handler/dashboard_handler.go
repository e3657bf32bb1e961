package handler

import (
	"strconv"

	"go-storepos/internal/middleware"
	"go-storepos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.AggregateService
}

func NewDashboardHandler(s service.AggregateService) *DashboardHandler {
	return &DashboardHandler{service: s}
}

func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.service.GetDashboardStats(middleware.OwnerID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(stats)
}

func (h *DashboardHandler) GetLowStock(c *fiber.Ctx) error {
	products, err := h.service.GetLowStock(middleware.OwnerID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(products)
}

func (h *DashboardHandler) GetCategoryBreakdown(c *fiber.Ctx) error {
	breakdown, err := h.service.GetCategoryBreakdown(middleware.OwnerID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(breakdown)
}

func (h *DashboardHandler) GetStockMovement(c *fiber.Ctx) error {
	days, err := strconv.Atoi(c.Query("days", "7"))
	if err != nil || days <= 0 {
		days = 7
	}

	movement, err := h.service.GetStockMovement(middleware.OwnerID(c), days)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(movement)
}
