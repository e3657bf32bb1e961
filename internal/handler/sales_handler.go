package handler

import (
	"go-storepos/internal/middleware"
	"go-storepos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SalesHandler struct {
	service service.SalesService
}

func NewSalesHandler(s service.SalesService) *SalesHandler {
	return &SalesHandler{service: s}
}

func (h *SalesHandler) GetAttributed(c *fiber.Ctx) error {
	sales, err := h.service.GetAttributedSales(middleware.OwnerID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(sales)
}

func (h *SalesHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.service.GetSalesSummary(middleware.OwnerID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(summary)
}
