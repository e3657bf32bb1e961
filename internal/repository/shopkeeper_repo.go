package repository

import (
	"go-storepos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShopkeeperRepository interface {
	Create(shopkeeper *model.Shopkeeper) error
	FindAll(ownerID uuid.UUID) ([]model.Shopkeeper, error)
	FindByID(ownerID, id uuid.UUID) (*model.Shopkeeper, error)
	FindByEmail(email string) (*model.Shopkeeper, error)
	Update(shopkeeper *model.Shopkeeper) error
}

type shopkeeperRepo struct {
	db *gorm.DB
}

func NewShopkeeperRepo(db *gorm.DB) ShopkeeperRepository {
	return &shopkeeperRepo{db}
}

func (r *shopkeeperRepo) Create(shopkeeper *model.Shopkeeper) error {
	return r.db.Create(shopkeeper).Error
}

func (r *shopkeeperRepo) FindAll(ownerID uuid.UUID) ([]model.Shopkeeper, error) {
	var shopkeepers []model.Shopkeeper
	err := r.db.Where("owner_id = ?", ownerID).Order("name ASC").Find(&shopkeepers).Error
	return shopkeepers, err
}

func (r *shopkeeperRepo) FindByID(ownerID, id uuid.UUID) (*model.Shopkeeper, error) {
	var shopkeeper model.Shopkeeper
	err := r.db.First(&shopkeeper, "owner_id = ? AND id = ?", ownerID, id).Error
	return &shopkeeper, err
}

func (r *shopkeeperRepo) FindByEmail(email string) (*model.Shopkeeper, error) {
	var shopkeeper model.Shopkeeper
	err := r.db.First(&shopkeeper, "email = ?", email).Error
	return &shopkeeper, err
}

func (r *shopkeeperRepo) Update(shopkeeper *model.Shopkeeper) error {
	return r.db.Save(shopkeeper).Error
}
