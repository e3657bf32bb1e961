package model

import "github.com/google/uuid"

type Category struct {
	BaseModel
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
}
