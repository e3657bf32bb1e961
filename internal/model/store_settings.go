package model

import "github.com/google/uuid"

// StoreSettings holds per-store presentation settings and the public share
// token. The share token maps an unauthenticated storefront visitor to the
// owning tenant (read-only access).
type StoreSettings struct {
	BaseModel
	OwnerID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"owner_id"`
	StoreName  string    `gorm:"type:varchar(255)" json:"store_name"`
	LogoURL    string    `gorm:"type:varchar(512)" json:"logo_url,omitempty"`
	Currency   string    `gorm:"type:varchar(8);default:'USD'" json:"currency"`
	ShareToken string    `gorm:"type:varchar(64);uniqueIndex" json:"share_token"`
}
