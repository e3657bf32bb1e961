package model

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Shopkeeper is a delegated identity that operates the POS on behalf of a
// store owner. It can read and mutate the owner's inventory but never owns
// rows itself: everything it writes is scoped to OwnerID.
type Shopkeeper struct {
	BaseModel
	OwnerID  uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name     string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Email    string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"type:varchar(255);not null" json:"-"`
	IsActive bool      `gorm:"default:true" json:"is_active"`
}

// SetPassword hashes and sets the shopkeeper's password
func (s *Shopkeeper) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (s *Shopkeeper) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(s.Password), []byte(password))
	return err == nil
}
