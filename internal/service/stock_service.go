package service

import (
	"encoding/json"
	"fmt"
	"time"

	"go-storepos/internal/model"
	"go-storepos/internal/repository"
	"go-storepos/internal/ws"
	"go-storepos/pkg/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Actor identifies who triggered a stock mutation: the audit id/name plus,
// when the acting principal is a shopkeeper, the structured shopkeeper
// reference stamped on every ledger entry it creates.
type Actor struct {
	ID           string
	Name         string
	ShopkeeperID *uuid.UUID
}

// StockMutation is the outcome of one projector call: the updated product,
// the ledger entry appended for it (nil when the mutation was a no-op), the
// delta actually applied, and whether a removal was clamped at zero.
type StockMutation struct {
	Product      *model.Product          `json:"product"`
	Entry        *model.StockTransaction `json:"entry,omitempty"`
	AppliedDelta int                     `json:"applied_delta"`
	Clamped      bool                    `json:"clamped"`
}

// CheckoutLine is one product line in a POS sale.
type CheckoutLine struct {
	ProductID uuid.UUID `json:"product_id" validate:"uuid_required"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
}

// CheckoutResult summarizes a completed POS sale.
type CheckoutResult struct {
	ReceiptNumber string          `json:"receipt_number"`
	Total         float64         `json:"total"`
	Mutations     []StockMutation `json:"lines"`
}

// StockService is the ledger recorder and stock projector in one unit: every
// quantity change goes through a single DB transaction that writes the new
// running quantity and appends the matching signed-delta ledger entry, so
// the two can never disagree on a successful commit.
type StockService interface {
	SetQuantity(ownerID, productID uuid.UUID, newQuantity int, txType model.TransactionType, notes string, actor Actor) (*StockMutation, error)
	AddStock(ownerID, productID uuid.UUID, amount int, txType model.TransactionType, notes string, actor Actor) (*StockMutation, error)
	RemoveStock(ownerID, productID uuid.UUID, amount int, txType model.TransactionType, notes string, actor Actor) (*StockMutation, error)
	Checkout(ownerID uuid.UUID, lines []CheckoutLine, actor Actor) (*CheckoutResult, error)

	GetLedger(ownerID uuid.UUID) ([]model.StockTransaction, error)
	GetLedgerEntry(ownerID, id uuid.UUID) (*model.StockTransaction, error)
	GetProductLedger(ownerID, productID uuid.UUID) ([]model.StockTransaction, error)
}

type stockService struct {
	productRepo repository.ProductRepository
	ledgerRepo  repository.LedgerRepository
	txm         repository.TxManager
	wsHub       *ws.Hub
}

func NewStockService(pRepo repository.ProductRepository, lRepo repository.LedgerRepository, txm repository.TxManager, hub *ws.Hub) StockService {
	return &stockService{
		productRepo: pRepo,
		ledgerRepo:  lRepo,
		txm:         txm,
		wsHub:       hub,
	}
}

func (s *stockService) SetQuantity(ownerID, productID uuid.UUID, newQuantity int, txType model.TransactionType, notes string, actor Actor) (*StockMutation, error) {
	if newQuantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if txType == "" {
		txType = model.TxAdjustment
	}
	return s.mutate(ownerID, productID, txType, notes, actor, func(current int) (int, bool) {
		return newQuantity, false
	})
}

func (s *stockService) AddStock(ownerID, productID uuid.UUID, amount int, txType model.TransactionType, notes string, actor Actor) (*StockMutation, error) {
	if amount <= 0 {
		return nil, ErrInvalidQuantity
	}
	if txType == "" {
		txType = model.TxPurchase
	}
	if txType != model.TxPurchase && txType != model.TxReturn {
		return nil, ErrInvalidTransactionType
	}
	return s.mutate(ownerID, productID, txType, notes, actor, func(current int) (int, bool) {
		return current + amount, false
	})
}

func (s *stockService) RemoveStock(ownerID, productID uuid.UUID, amount int, txType model.TransactionType, notes string, actor Actor) (*StockMutation, error) {
	if amount <= 0 {
		return nil, ErrInvalidQuantity
	}
	if txType == "" {
		txType = model.TxSale
	}
	if txType != model.TxSale && txType != model.TxAdjustment {
		return nil, ErrInvalidTransactionType
	}
	// Over-removal clamps at zero; the ledger records the clamped delta,
	// not the requested amount.
	return s.mutate(ownerID, productID, txType, notes, actor, func(current int) (int, bool) {
		newQuantity := current - amount
		if newQuantity < 0 {
			return 0, true
		}
		return newQuantity, false
	})
}

// mutate locks the product row, computes the new quantity, and commits the
// projection write together with the ledger append. A zero delta is a no-op
// and appends nothing.
func (s *stockService) mutate(ownerID, productID uuid.UUID, txType model.TransactionType, notes string, actor Actor, compute func(current int) (int, bool)) (*StockMutation, error) {
	if ownerID == uuid.Nil {
		return nil, ErrTenantUnresolved
	}
	if !txType.IsValid() {
		return nil, ErrInvalidTransactionType
	}

	var result StockMutation

	err := s.txm.Transaction(func(tx *gorm.DB) error {
		product, err := s.productRepo.FindByIDForUpdate(tx, ownerID, productID)
		if err != nil {
			return ErrProductNotFound
		}

		current := product.QuantityInStock
		newQuantity, clamped := compute(current)
		delta := newQuantity - current
		result.Clamped = clamped

		if delta == 0 {
			result.Product = product
			result.AppliedDelta = 0
			result.Clamped = false
			return nil
		}

		if err := s.productRepo.UpdateQuantity(tx, product.ID, newQuantity, actor.ID); err != nil {
			return err
		}

		entry := &model.StockTransaction{
			OwnerID:         ownerID,
			ProductID:       product.ID,
			Quantity:        delta,
			TransactionType: txType,
			Notes:           notes,
			ShopkeeperID:    actor.ShopkeeperID,
			TransactionDate: time.Now(),
		}
		entry.CreatedBy = actor.ID
		entry.UpdatedBy = actor.ID

		if err := s.ledgerRepo.Create(tx, entry); err != nil {
			return err
		}

		product.QuantityInStock = newQuantity
		result.Product = product
		result.Entry = entry
		result.AppliedDelta = delta
		return nil
	})

	if err != nil {
		return nil, err
	}

	if result.Entry != nil {
		metrics.LedgerEntriesCounter.WithLabelValues(string(txType)).Inc()
		if result.Clamped {
			metrics.ClampedRemovalsCounter.Inc()
		}
		s.broadcast(ownerID, &result, actor)
	}

	return &result, nil
}

func (s *stockService) Checkout(ownerID uuid.UUID, lines []CheckoutLine, actor Actor) (*CheckoutResult, error) {
	if ownerID == uuid.Nil {
		return nil, ErrTenantUnresolved
	}
	if len(lines) == 0 {
		return nil, ErrInvalidQuantity
	}
	for _, line := range lines {
		if line.Quantity <= 0 || line.ProductID == uuid.Nil {
			return nil, ErrInvalidQuantity
		}
	}

	receipt := fmt.Sprintf("RCP-%d", time.Now().UnixNano())
	result := &CheckoutResult{ReceiptNumber: receipt}

	// All lines commit or fail together.
	err := s.txm.Transaction(func(tx *gorm.DB) error {
		for _, line := range lines {
			product, err := s.productRepo.FindByIDForUpdate(tx, ownerID, line.ProductID)
			if err != nil {
				return ErrProductNotFound
			}

			newQuantity := product.QuantityInStock - line.Quantity
			clamped := false
			if newQuantity < 0 {
				newQuantity = 0
				clamped = true
			}
			delta := newQuantity - product.QuantityInStock
			if delta == 0 {
				continue
			}

			if err := s.productRepo.UpdateQuantity(tx, product.ID, newQuantity, actor.ID); err != nil {
				return err
			}

			entry := &model.StockTransaction{
				OwnerID:         ownerID,
				ProductID:       product.ID,
				Quantity:        delta,
				TransactionType: model.TxSale,
				Notes:           fmt.Sprintf("receipt:%s", receipt),
				ShopkeeperID:    actor.ShopkeeperID,
				TransactionDate: time.Now(),
			}
			entry.CreatedBy = actor.ID
			entry.UpdatedBy = actor.ID

			if err := s.ledgerRepo.Create(tx, entry); err != nil {
				return err
			}

			product.QuantityInStock = newQuantity
			result.Total += product.UnitPrice * float64(-delta)
			result.Mutations = append(result.Mutations, StockMutation{
				Product:      product,
				Entry:        entry,
				AppliedDelta: delta,
				Clamped:      clamped,
			})
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	for i := range result.Mutations {
		metrics.LedgerEntriesCounter.WithLabelValues(string(model.TxSale)).Inc()
		if result.Mutations[i].Clamped {
			metrics.ClampedRemovalsCounter.Inc()
		}
		s.broadcast(ownerID, &result.Mutations[i], actor)
	}

	return result, nil
}

func (s *stockService) GetLedger(ownerID uuid.UUID) ([]model.StockTransaction, error) {
	return s.ledgerRepo.FindAll(ownerID)
}

func (s *stockService) GetLedgerEntry(ownerID, id uuid.UUID) (*model.StockTransaction, error) {
	return s.ledgerRepo.FindByID(ownerID, id)
}

func (s *stockService) GetProductLedger(ownerID, productID uuid.UUID) ([]model.StockTransaction, error) {
	return s.ledgerRepo.FindByProduct(ownerID, productID)
}

func (s *stockService) broadcast(ownerID uuid.UUID, m *StockMutation, actor Actor) {
	if s.wsHub == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type":   "stock_update",
			"action": "ledger_appended",
			"product": map[string]interface{}{
				"id":        m.Product.ID,
				"sku":       m.Product.SKU,
				"name":      m.Product.Name,
				"new_stock": m.Product.QuantityInStock,
			},
			"entry": map[string]interface{}{
				"id":               m.Entry.ID,
				"quantity":         m.Entry.Quantity,
				"transaction_type": m.Entry.TransactionType,
				"clamped":          m.Clamped,
			},
			"actor":   map[string]interface{}{"id": actor.ID, "name": actor.Name},
			"message": fmt.Sprintf("%s changed stock of '%s' by %+d", actor.Name, m.Product.Name, m.Entry.Quantity),
		}
		msg, err := json.Marshal(payload)
		if err != nil {
			zap.L().Warn("failed to marshal stock broadcast", zap.Error(err))
			return
		}
		s.wsHub.Broadcast <- ws.Message{OwnerID: ownerID.String(), Payload: msg}
	}()
}
