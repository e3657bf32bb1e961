package handler

import (
	"go-storepos/internal/middleware"
	"go-storepos/internal/model"
	"go-storepos/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StockHandler struct {
	service service.StockService
}

func NewStockHandler(s service.StockService) *StockHandler {
	return &StockHandler{service: s}
}

type adjustRequest struct {
	NewQuantity int    `json:"new_quantity"`
	Notes       string `json:"notes"`
}

type amountRequest struct {
	Amount          int                   `json:"amount"`
	TransactionType model.TransactionType `json:"transaction_type"`
	Notes           string                `json:"notes"`
}

type checkoutRequest struct {
	Lines []service.CheckoutLine `json:"lines"`
}

// Adjust sets the exact quantity; the transaction type is always recorded
// as an adjustment.
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req adjustRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	mutation, err := h.service.SetQuantity(middleware.OwnerID(c), id, req.NewQuantity, model.TxAdjustment, req.Notes, actorFromCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Stock adjusted", "data": mutation})
}

// Add increases stock; the type defaults to purchase and may be overridden
// to return.
func (h *StockHandler) Add(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req amountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	mutation, err := h.service.AddStock(middleware.OwnerID(c), id, req.Amount, req.TransactionType, req.Notes, actorFromCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Stock added", "data": mutation})
}

// Remove decreases stock, clamping at zero; the type defaults to sale and
// may be overridden to adjustment.
func (h *StockHandler) Remove(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var req amountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	mutation, err := h.service.RemoveStock(middleware.OwnerID(c), id, req.Amount, req.TransactionType, req.Notes, actorFromCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "Stock removed", "data": mutation})
}

// Checkout runs a POS sale: every line commits or none does.
func (h *StockHandler) Checkout(c *fiber.Ctx) error {
	if middleware.ReadOnly(c) {
		return c.Status(403).JSON(fiber.Map{"error": "Share links are read-only"})
	}

	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	result, err := h.service.Checkout(middleware.OwnerID(c), req.Lines, actorFromCtx(c))
	if err != nil {
		return fail(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Checkout complete", "data": result})
}

func (h *StockHandler) GetLedger(c *fiber.Ctx) error {
	entries, err := h.service.GetLedger(middleware.OwnerID(c))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(entries)
}

func (h *StockHandler) GetLedgerEntry(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	entry, err := h.service.GetLedgerEntry(middleware.OwnerID(c), id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Transaction not found"})
	}
	return c.JSON(entry)
}

func (h *StockHandler) GetProductLedger(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	entries, err := h.service.GetProductLedger(middleware.OwnerID(c), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(entries)
}
