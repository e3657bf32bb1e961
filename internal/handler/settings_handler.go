package handler

import (
	"io"

	"go-storepos/internal/middleware"
	"go-storepos/internal/service"
	"go-storepos/internal/storage"

	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	service service.SettingsService
	images  *storage.ImageStore
}

func NewSettingsHandler(s service.SettingsService, images *storage.ImageStore) *SettingsHandler {
	return &SettingsHandler{service: s, images: images}
}

type updateSettingsRequest struct {
	StoreName string `json:"store_name"`
	Currency  string `json:"currency"`
}

func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.service.Get(middleware.OwnerID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(settings)
}

func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var req updateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	settings, err := h.service.Update(middleware.OwnerID(c), req.StoreName, req.Currency, actorFromCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Settings updated", "data": settings})
}

// UploadLogo stores a store logo (2MB cap) and saves its URL.
func (h *SettingsHandler) UploadLogo(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Missing logo file"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Unreadable logo file"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Unreadable logo file"})
	}

	url, err := h.images.SaveLogo(data)
	if err != nil {
		return fail(c, err)
	}

	settings, err := h.service.SetLogoURL(middleware.OwnerID(c), url, actorFromCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Logo uploaded", "data": settings})
}

func (h *SettingsHandler) RotateShareToken(c *fiber.Ctx) error {
	settings, err := h.service.RotateShareToken(middleware.OwnerID(c), actorFromCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Share token rotated", "data": settings})
}
