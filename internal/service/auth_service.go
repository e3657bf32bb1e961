package service

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"go-storepos/internal/model"
	"go-storepos/internal/repository"
	"go-storepos/pkg/jwt"
	"go-storepos/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LoginResult is returned for both owner and shopkeeper logins.
type LoginResult struct {
	Token   string              `json:"token"`
	Kind    string              `json:"kind"`
	User    *model.UserResponse `json:"user,omitempty"`
	Keeper  *model.Shopkeeper   `json:"shopkeeper,omitempty"`
	OwnerID uuid.UUID           `json:"owner_id"`
}

type AuthService interface {
	RegisterOwner(req *model.User, password string) (*LoginResult, error)
	LoginOwner(email, password string) (*LoginResult, error)
	LoginShopkeeper(email, password string) (*LoginResult, error)
	Heartbeat(ownerID uuid.UUID) error
}

type authService struct {
	userRepo       repository.UserRepository
	shopkeeperRepo repository.ShopkeeperRepository
	settingsRepo   repository.SettingsRepository
}

func NewAuthService(uRepo repository.UserRepository, sRepo repository.ShopkeeperRepository, stRepo repository.SettingsRepository) AuthService {
	return &authService{
		userRepo:       uRepo,
		shopkeeperRepo: sRepo,
		settingsRepo:   stRepo,
	}
}

func (s *authService) RegisterOwner(req *model.User, password string) (*LoginResult, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	existing, _ := s.userRepo.FindByEmail(req.Email)
	if existing != nil && existing.ID != uuid.Nil {
		return nil, ErrEmailExists
	}

	if err := req.SetPassword(password); err != nil {
		return nil, err
	}
	req.IsActive = true
	req.TokenVersion = newTokenVersion()

	if err := s.userRepo.Create(req); err != nil {
		return nil, err
	}

	// Every store gets settings with a share token at registration.
	settings := &model.StoreSettings{
		OwnerID:    req.ID,
		StoreName:  req.StoreName,
		ShareToken: newShareToken(),
	}
	settings.CreatedBy = req.ID.String()
	settings.UpdatedBy = req.ID.String()
	if err := s.settingsRepo.Create(settings); err != nil {
		zap.L().Warn("failed to create store settings at registration", zap.Error(err))
	}

	return s.issueOwnerToken(req)
}

func (s *authService) LoginOwner(email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil || !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	now := time.Now()
	user.LastSeenAt = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	// Rotate the token version with a targeted write: logging in
	// invalidates every other session for this owner.
	user.TokenVersion = newTokenVersion()
	if err := s.userRepo.UpdateTokenVersion(user.ID, user.TokenVersion); err != nil {
		return nil, err
	}

	return s.issueOwnerToken(user)
}

func (s *authService) LoginShopkeeper(email, password string) (*LoginResult, error) {
	keeper, err := s.shopkeeperRepo.FindByEmail(email)
	if err != nil || !keeper.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	if !keeper.IsActive {
		return nil, ErrAccountDisabled
	}

	token, err := jwt.GenerateShopkeeperToken(keeper.ID, keeper.OwnerID, keeper.Email, keeper.Name)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:   token,
		Kind:    jwt.KindShopkeeper,
		Keeper:  keeper,
		OwnerID: keeper.OwnerID,
	}, nil
}

func (s *authService) Heartbeat(ownerID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ownerID)
	if err != nil {
		return err
	}
	now := time.Now()
	user.LastSeenAt = &now
	return s.userRepo.Update(user)
}

func (s *authService) issueOwnerToken(user *model.User) (*LoginResult, error) {
	token, err := jwt.GenerateOwnerToken(user.ID, user.Email, user.FullName, user.TokenVersion)
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &LoginResult{
		Token:   token,
		Kind:    jwt.KindOwner,
		User:    &resp,
		OwnerID: user.ID,
	}, nil
}

func newTokenVersion() string {
	return uuid.NewString()
}

// newShareToken mints the public storefront token for a store.
func newShareToken() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return uuid.NewString()
	}
	return hex.EncodeToString(buf)
}
