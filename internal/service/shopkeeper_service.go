package service

import (
	"fmt"

	"go-storepos/internal/model"
	"go-storepos/internal/repository"
	"go-storepos/pkg/validator"

	"github.com/google/uuid"
)

type ShopkeeperService interface {
	Create(ownerID uuid.UUID, req *model.Shopkeeper, password string, actor Actor) error
	Update(ownerID, id uuid.UUID, req *model.Shopkeeper, actor Actor) (*model.Shopkeeper, error)
	SetActive(ownerID, id uuid.UUID, active bool, actor Actor) (*model.Shopkeeper, error)
	GetAll(ownerID uuid.UUID) ([]model.Shopkeeper, error)
	GetByID(ownerID, id uuid.UUID) (*model.Shopkeeper, error)
}

type shopkeeperService struct {
	shopkeeperRepo repository.ShopkeeperRepository
}

func NewShopkeeperService(repo repository.ShopkeeperRepository) ShopkeeperService {
	return &shopkeeperService{shopkeeperRepo: repo}
}

func (s *shopkeeperService) Create(ownerID uuid.UUID, req *model.Shopkeeper, password string, actor Actor) error {
	if ownerID == uuid.Nil {
		return ErrTenantUnresolved
	}
	req.OwnerID = ownerID

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	existing, _ := s.shopkeeperRepo.FindByEmail(req.Email)
	if existing != nil && existing.ID != uuid.Nil {
		return ErrEmailExists
	}

	if err := req.SetPassword(password); err != nil {
		return err
	}
	req.IsActive = true
	req.CreatedBy = actor.ID
	req.UpdatedBy = actor.ID

	return s.shopkeeperRepo.Create(req)
}

func (s *shopkeeperService) Update(ownerID, id uuid.UUID, req *model.Shopkeeper, actor Actor) (*model.Shopkeeper, error) {
	existing, err := s.shopkeeperRepo.FindByID(ownerID, id)
	if err != nil {
		return nil, ErrShopkeeperNotFound
	}

	existing.Name = req.Name
	existing.UpdatedBy = actor.ID

	if err := s.shopkeeperRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *shopkeeperService) SetActive(ownerID, id uuid.UUID, active bool, actor Actor) (*model.Shopkeeper, error) {
	existing, err := s.shopkeeperRepo.FindByID(ownerID, id)
	if err != nil {
		return nil, ErrShopkeeperNotFound
	}

	existing.IsActive = active
	existing.UpdatedBy = actor.ID

	if err := s.shopkeeperRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *shopkeeperService) GetAll(ownerID uuid.UUID) ([]model.Shopkeeper, error) {
	return s.shopkeeperRepo.FindAll(ownerID)
}

func (s *shopkeeperService) GetByID(ownerID, id uuid.UUID) (*model.Shopkeeper, error) {
	keeper, err := s.shopkeeperRepo.FindByID(ownerID, id)
	if err != nil {
		return nil, ErrShopkeeperNotFound
	}
	return keeper, nil
}
