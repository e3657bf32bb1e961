package handler

import (
	"go-storepos/internal/middleware"
	"go-storepos/internal/model"
	"go-storepos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	service        service.CategoryService
	productService service.ProductService
}

func NewCategoryHandler(s service.CategoryService, ps service.ProductService) *CategoryHandler {
	return &CategoryHandler{service: s, productService: ps}
}

func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.Create(middleware.OwnerID(c), &category, actorFromCtx(c)); err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Category created", "data": category})
}

func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	var category model.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.Update(middleware.OwnerID(c), id, &category, actorFromCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category updated", "data": updated})
}

// Delete rejects with 409 and the blocking product count while any product
// still references the category.
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	if err := h.service.Delete(middleware.OwnerID(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}

func (h *CategoryHandler) GetAll(c *fiber.Ctx) error {
	categories, err := h.service.GetAll(middleware.OwnerID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) GetProducts(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid category ID"})
	}

	products, err := h.productService.GetByCategory(middleware.OwnerID(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}
