package service

import (
	"fmt"

	"go-storepos/internal/model"
	"go-storepos/internal/repository"
	"go-storepos/pkg/validator"

	"github.com/google/uuid"
)

// CategoryInUseError carries the number of products still referencing the
// category; the delete is rejected, never cascaded.
type CategoryInUseError struct {
	ProductCount int64
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("category still has %d products assigned", e.ProductCount)
}

func (e *CategoryInUseError) Unwrap() error { return ErrCategoryInUse }

type CategoryService interface {
	Create(ownerID uuid.UUID, req *model.Category, actor Actor) error
	Update(ownerID, id uuid.UUID, req *model.Category, actor Actor) (*model.Category, error)
	Delete(ownerID, id uuid.UUID) error
	GetAll(ownerID uuid.UUID) ([]model.Category, error)
	GetByID(ownerID, id uuid.UUID) (*model.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

func NewCategoryService(cRepo repository.CategoryRepository, pRepo repository.ProductRepository) CategoryService {
	return &categoryService{categoryRepo: cRepo, productRepo: pRepo}
}

func (s *categoryService) Create(ownerID uuid.UUID, req *model.Category, actor Actor) error {
	if ownerID == uuid.Nil {
		return ErrTenantUnresolved
	}
	req.OwnerID = ownerID

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	req.CreatedBy = actor.ID
	req.UpdatedBy = actor.ID
	return s.categoryRepo.Create(req)
}

func (s *categoryService) Update(ownerID, id uuid.UUID, req *model.Category, actor Actor) (*model.Category, error) {
	existing, err := s.categoryRepo.FindByID(ownerID, id)
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.UpdatedBy = actor.ID

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	if err := s.categoryRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete rejects when any product still references the category. The error
// carries the blocking product count for the client.
func (s *categoryService) Delete(ownerID, id uuid.UUID) error {
	if _, err := s.categoryRepo.FindByID(ownerID, id); err != nil {
		return ErrCategoryNotFound
	}

	count, err := s.productRepo.CountByCategory(ownerID, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return &CategoryInUseError{ProductCount: count}
	}

	return s.categoryRepo.Delete(ownerID, id)
}

func (s *categoryService) GetAll(ownerID uuid.UUID) ([]model.Category, error) {
	return s.categoryRepo.FindAll(ownerID)
}

func (s *categoryService) GetByID(ownerID, id uuid.UUID) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(ownerID, id)
	if err != nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}
