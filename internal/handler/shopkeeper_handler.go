package handler

import (
	"go-storepos/internal/middleware"
	"go-storepos/internal/model"
	"go-storepos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ShopkeeperHandler struct {
	service service.ShopkeeperService
}

func NewShopkeeperHandler(s service.ShopkeeperService) *ShopkeeperHandler {
	return &ShopkeeperHandler{service: s}
}

type createShopkeeperRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type setActiveRequest struct {
	IsActive bool `json:"is_active"`
}

func (h *ShopkeeperHandler) Create(c *fiber.Ctx) error {
	var req createShopkeeperRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	keeper := &model.Shopkeeper{Name: req.Name, Email: req.Email}
	if err := h.service.Create(middleware.OwnerID(c), keeper, req.Password, actorFromCtx(c)); err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Shopkeeper created", "data": keeper})
}

func (h *ShopkeeperHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid shopkeeper ID"})
	}

	var keeper model.Shopkeeper
	if err := c.BodyParser(&keeper); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.Update(middleware.OwnerID(c), id, &keeper, actorFromCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Shopkeeper updated", "data": updated})
}

func (h *ShopkeeperHandler) SetActive(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid shopkeeper ID"})
	}

	var req setActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.SetActive(middleware.OwnerID(c), id, req.IsActive, actorFromCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Shopkeeper updated", "data": updated})
}

func (h *ShopkeeperHandler) GetAll(c *fiber.Ctx) error {
	keepers, err := h.service.GetAll(middleware.OwnerID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(keepers)
}
