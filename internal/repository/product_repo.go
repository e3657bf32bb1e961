package repository

import (
	"go-storepos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(ownerID uuid.UUID) ([]model.Product, error)
	FindByID(ownerID, id uuid.UUID) (*model.Product, error)
	FindBySKU(ownerID uuid.UUID, sku string) (*model.Product, error)
	FindByCategory(ownerID, categoryID uuid.UUID) ([]model.Product, error)
	CountByCategory(ownerID, categoryID uuid.UUID) (int64, error)
	Update(product *model.Product) error
	Delete(ownerID, id uuid.UUID) error

	// FindByIDForUpdate loads a product inside tx with a row lock so the
	// read-compute-write of a stock mutation cannot race another session.
	FindByIDForUpdate(tx *gorm.DB, ownerID, id uuid.UUID) (*model.Product, error)
	// UpdateQuantity runs inside tx so the projection write and the ledger
	// append commit or fail together.
	UpdateQuantity(tx *gorm.DB, id uuid.UUID, newQuantity int, updatedBy string) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll(ownerID uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Category").Where("owner_id = ?", ownerID).Order("name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(ownerID, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Category").First(&product, "owner_id = ? AND id = ?", ownerID, id).Error
	return &product, err
}

func (r *productRepo) FindBySKU(ownerID uuid.UUID, sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.First(&product, "owner_id = ? AND sku = ?", ownerID, sku).Error
	return &product, err
}

func (r *productRepo) FindByCategory(ownerID, categoryID uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("owner_id = ? AND category_id = ?", ownerID, categoryID).Find(&products).Error
	return products, err
}

func (r *productRepo) CountByCategory(ownerID, categoryID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).
		Where("owner_id = ? AND category_id = ?", ownerID, categoryID).
		Count(&count).Error
	return count, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(ownerID, id uuid.UUID) error {
	return r.db.Where("owner_id = ?", ownerID).Delete(&model.Product{}, "id = ?", id).Error
}

func (r *productRepo) FindByIDForUpdate(tx *gorm.DB, ownerID, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&product, "owner_id = ? AND id = ?", ownerID, id).Error
	return &product, err
}

func (r *productRepo) UpdateQuantity(tx *gorm.DB, id uuid.UUID, newQuantity int, updatedBy string) error {
	return tx.Model(&model.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"quantity_in_stock": newQuantity,
			"updated_by":        updatedBy,
		}).Error
}
