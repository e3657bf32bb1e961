package handler

import (
	"go-storepos/internal/middleware"
	"go-storepos/internal/model"
	"go-storepos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FullName  string `json:"full_name"`
	StoreName string `json:"store_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	user := &model.User{
		Email:     req.Email,
		FullName:  req.FullName,
		StoreName: req.StoreName,
	}
	result, err := h.service.RegisterOwner(user, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(result)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	result, err := h.service.LoginOwner(req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(result)
}

func (h *AuthHandler) LoginShopkeeper(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	result, err := h.service.LoginShopkeeper(req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(result)
}

func (h *AuthHandler) Heartbeat(c *fiber.Ctx) error {
	ownerID := middleware.OwnerID(c)
	if err := h.service.Heartbeat(ownerID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "ok"})
}
