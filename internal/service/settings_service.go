package service

import (
	"go-storepos/internal/model"
	"go-storepos/internal/repository"

	"github.com/google/uuid"
)

type SettingsService interface {
	Get(ownerID uuid.UUID) (*model.StoreSettings, error)
	Update(ownerID uuid.UUID, storeName, currency string, actor Actor) (*model.StoreSettings, error)
	SetLogoURL(ownerID uuid.UUID, url string, actor Actor) (*model.StoreSettings, error)
	RotateShareToken(ownerID uuid.UUID, actor Actor) (*model.StoreSettings, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: repo}
}

// Get returns the store settings, creating a default row with a fresh share
// token for stores registered before settings existed.
func (s *settingsService) Get(ownerID uuid.UUID) (*model.StoreSettings, error) {
	settings, err := s.settingsRepo.FindByOwner(ownerID)
	if err == nil {
		return settings, nil
	}

	settings = &model.StoreSettings{
		OwnerID:    ownerID,
		ShareToken: newShareToken(),
	}
	settings.CreatedBy = ownerID.String()
	settings.UpdatedBy = ownerID.String()
	if err := s.settingsRepo.Create(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) Update(ownerID uuid.UUID, storeName, currency string, actor Actor) (*model.StoreSettings, error) {
	settings, err := s.Get(ownerID)
	if err != nil {
		return nil, err
	}

	if storeName != "" {
		settings.StoreName = storeName
	}
	if currency != "" {
		settings.Currency = currency
	}
	settings.UpdatedBy = actor.ID

	if err := s.settingsRepo.Update(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) SetLogoURL(ownerID uuid.UUID, url string, actor Actor) (*model.StoreSettings, error) {
	settings, err := s.Get(ownerID)
	if err != nil {
		return nil, err
	}
	settings.LogoURL = url
	settings.UpdatedBy = actor.ID
	if err := s.settingsRepo.Update(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// RotateShareToken invalidates the public storefront link and mints a new
// one.
func (s *settingsService) RotateShareToken(ownerID uuid.UUID, actor Actor) (*model.StoreSettings, error) {
	settings, err := s.Get(ownerID)
	if err != nil {
		return nil, err
	}
	settings.ShareToken = newShareToken()
	settings.UpdatedBy = actor.ID
	if err := s.settingsRepo.Update(settings); err != nil {
		return nil, err
	}
	return settings, nil
}
