package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"go-storepos/internal/model"
	"go-storepos/internal/repository"
	"go-storepos/internal/ws"
	"go-storepos/pkg/validator"

	"github.com/google/uuid"
)

type ProductService interface {
	Create(ownerID uuid.UUID, req *model.Product, actor Actor) error
	Update(ownerID, id uuid.UUID, req *model.Product, actor Actor) (*model.Product, error)
	Delete(ownerID, id uuid.UUID) error
	GetAll(ownerID uuid.UUID) ([]model.Product, error)
	GetByID(ownerID, id uuid.UUID) (*model.Product, error)
	GetByCategory(ownerID, categoryID uuid.UUID) ([]model.Product, error)
	SetImageURL(ownerID, id uuid.UUID, url string, actor Actor) (*model.Product, error)
}

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	wsHub        *ws.Hub
}

func NewProductService(pRepo repository.ProductRepository, cRepo repository.CategoryRepository, hub *ws.Hub) ProductService {
	return &productService{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		wsHub:        hub,
	}
}

func (s *productService) Create(ownerID uuid.UUID, req *model.Product, actor Actor) error {
	if ownerID == uuid.Nil {
		return ErrTenantUnresolved
	}
	req.OwnerID = ownerID

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// Duplicate SKU check, per owner
	existing, _ := s.productRepo.FindBySKU(ownerID, req.SKU)
	if existing != nil && existing.ID != uuid.Nil {
		return ErrSKUExists
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ownerID, *req.CategoryID); err != nil {
			return ErrCategoryNotFound
		}
	}
	if req.Unit == "" {
		req.Unit = model.UnitPiece
	}

	req.CreatedBy = actor.ID
	req.UpdatedBy = actor.ID

	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	s.broadcast(ownerID, "product_created", req, actor)
	return nil
}

func (s *productService) Update(ownerID, id uuid.UUID, req *model.Product, actor Actor) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(ownerID, id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	if req.SKU != existing.SKU {
		dup, _ := s.productRepo.FindBySKU(ownerID, req.SKU)
		if dup != nil && dup.ID != uuid.Nil && dup.ID != id {
			return nil, ErrSKUExists
		}
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(ownerID, *req.CategoryID); err != nil {
			return nil, ErrCategoryNotFound
		}
	}

	// Direct field edits only. Quantity changes go through the stock
	// service so the ledger stays consistent.
	existing.SKU = req.SKU
	existing.Barcode = req.Barcode
	existing.Name = req.Name
	existing.Description = req.Description
	existing.CategoryID = req.CategoryID
	existing.UnitPrice = req.UnitPrice
	existing.Unit = req.Unit
	existing.MinStockLevel = req.MinStockLevel
	existing.UpdatedBy = actor.ID

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}

	s.broadcast(ownerID, "product_updated", existing, actor)
	return existing, nil
}

func (s *productService) Delete(ownerID, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ownerID, id); err != nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(ownerID, id)
}

func (s *productService) GetAll(ownerID uuid.UUID) ([]model.Product, error) {
	return s.productRepo.FindAll(ownerID)
}

func (s *productService) GetByID(ownerID, id uuid.UUID) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ownerID, id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (s *productService) GetByCategory(ownerID, categoryID uuid.UUID) ([]model.Product, error) {
	if _, err := s.categoryRepo.FindByID(ownerID, categoryID); err != nil {
		return nil, ErrCategoryNotFound
	}
	return s.productRepo.FindByCategory(ownerID, categoryID)
}

func (s *productService) SetImageURL(ownerID, id uuid.UUID, url string, actor Actor) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ownerID, id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	product.ImageURL = url
	product.UpdatedBy = actor.ID
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) broadcast(ownerID uuid.UUID, action string, product *model.Product, actor Actor) {
	if s.wsHub == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type":   "stock_update",
			"action": action,
			"product": map[string]interface{}{
				"id":    product.ID,
				"sku":   product.SKU,
				"name":  product.Name,
				"stock": product.QuantityInStock,
				"price": product.UnitPrice,
			},
			"actor":   map[string]interface{}{"id": actor.ID, "name": actor.Name},
			"message": fmt.Sprintf("%s saved product '%s'", actor.Name, product.Name),
		}
		msg, err := json.Marshal(payload)
		if err != nil {
			return
		}
		s.wsHub.Broadcast <- ws.Message{OwnerID: ownerID.String(), Payload: msg}
	}()
}

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrReportNotFound) ||
		errors.Is(err, ErrShopkeeperNotFound)
}
