package handler

import (
	"go-storepos/internal/middleware"
	"go-storepos/internal/model"
	"go-storepos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

type generateReportRequest struct {
	Title       string           `json:"title"`
	ReportType  model.ReportType `json:"report_type"`
	Description string           `json:"description"`
}

type reportMetaRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var req generateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	report, err := h.service.Generate(middleware.OwnerID(c), req.Title, req.ReportType, req.Description, actorFromCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Report generated", "data": report})
}

func (h *ReportHandler) GetAll(c *fiber.Ctx) error {
	reports, err := h.service.GetAll(middleware.OwnerID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(reports)
}

func (h *ReportHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid report ID"})
	}

	report, err := h.service.GetByID(middleware.OwnerID(c), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(report)
}

// UpdateMeta edits title and description; the snapshot payload is frozen.
func (h *ReportHandler) UpdateMeta(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid report ID"})
	}

	var req reportMetaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	report, err := h.service.UpdateMeta(middleware.OwnerID(c), id, req.Title, req.Description, actorFromCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Report updated", "data": report})
}

func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid report ID"})
	}

	if err := h.service.Delete(middleware.OwnerID(c), id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Report deleted"})
}
