package repository

import (
	"go-storepos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SettingsRepository interface {
	Create(settings *model.StoreSettings) error
	FindByOwner(ownerID uuid.UUID) (*model.StoreSettings, error)
	FindByShareToken(token string) (*model.StoreSettings, error)
	Update(settings *model.StoreSettings) error
}

type settingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) SettingsRepository {
	return &settingsRepo{db}
}

func (r *settingsRepo) Create(settings *model.StoreSettings) error {
	return r.db.Create(settings).Error
}

func (r *settingsRepo) FindByOwner(ownerID uuid.UUID) (*model.StoreSettings, error) {
	var settings model.StoreSettings
	err := r.db.First(&settings, "owner_id = ?", ownerID).Error
	return &settings, err
}

func (r *settingsRepo) FindByShareToken(token string) (*model.StoreSettings, error) {
	var settings model.StoreSettings
	err := r.db.First(&settings, "share_token = ?", token).Error
	return &settings, err
}

func (r *settingsRepo) Update(settings *model.StoreSettings) error {
	return r.db.Save(settings).Error
}
