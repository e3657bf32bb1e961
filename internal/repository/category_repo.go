package repository

import (
	"go-storepos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindAll(ownerID uuid.UUID) ([]model.Category, error)
	FindByID(ownerID, id uuid.UUID) (*model.Category, error)
	Update(category *model.Category) error
	Delete(ownerID, id uuid.UUID) error
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepo) FindAll(ownerID uuid.UUID) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.Where("owner_id = ?", ownerID).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) FindByID(ownerID, id uuid.UUID) (*model.Category, error) {
	var category model.Category
	err := r.db.First(&category, "owner_id = ? AND id = ?", ownerID, id).Error
	return &category, err
}

func (r *categoryRepo) Update(category *model.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepo) Delete(ownerID, id uuid.UUID) error {
	return r.db.Where("owner_id = ?", ownerID).Delete(&model.Category{}, "id = ?", id).Error
}
