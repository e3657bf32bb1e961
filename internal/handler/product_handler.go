package handler

import (
	"io"

	"go-storepos/internal/middleware"
	"go-storepos/internal/model"
	"go-storepos/internal/service"
	"go-storepos/internal/storage"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.ProductService
	images  *storage.ImageStore
}

func NewProductHandler(s service.ProductService, images *storage.ImageStore) *ProductHandler {
	return &ProductHandler{service: s, images: images}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	ownerID := middleware.OwnerID(c)
	if err := h.service.Create(ownerID, &product, actorFromCtx(c)); err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.Update(middleware.OwnerID(c), id, &product, actorFromCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product updated", "data": updated})
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.service.Delete(middleware.OwnerID(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}

func (h *ProductHandler) GetAll(c *fiber.Ctx) error {
	products, err := h.service.GetAll(middleware.OwnerID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.service.GetByID(middleware.OwnerID(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(product)
}

// UploadImage accepts a multipart image, validates type and size, stores it
// and saves the resulting URL on the product.
func (h *ProductHandler) UploadImage(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Missing image file"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Unreadable image file"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Unreadable image file"})
	}

	url, err := h.images.SaveProductImage(data)
	if err != nil {
		return fail(c, err)
	}

	product, err := h.service.SetImageURL(middleware.OwnerID(c), id, url, actorFromCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Image uploaded", "data": product})
}
