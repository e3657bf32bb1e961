package model

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType tags what kind of stock movement a ledger entry records.
type TransactionType string

const (
	TxPurchase   TransactionType = "purchase"
	TxSale       TransactionType = "sale"
	TxAdjustment TransactionType = "adjustment"
	TxReturn     TransactionType = "return"
)

// IsValid reports whether t is one of the four known transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case TxPurchase, TxSale, TxAdjustment, TxReturn:
		return true
	}
	return false
}

// StockTransaction is one immutable ledger entry. Quantity is the signed
// delta applied to the product's stock (negative = stock leaving), never the
// resulting total. Entries are only ever created; the repository exposes no
// update or delete for them.
type StockTransaction struct {
	BaseModel
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product   *Product  `json:"product,omitempty" validate:"-"`

	Quantity        int             `gorm:"not null" json:"quantity"` // signed delta
	TransactionType TransactionType `gorm:"type:varchar(20);not null" json:"transaction_type" validate:"required,oneof=purchase sale adjustment return"`
	Notes           string          `json:"notes,omitempty"`

	// Structured actor reference. Stamped at write time when the acting
	// principal is a shopkeeper, so sale attribution never has to be
	// reverse-engineered from Notes.
	ShopkeeperID *uuid.UUID  `gorm:"type:uuid;index" json:"shopkeeper_id,omitempty"`
	Shopkeeper   *Shopkeeper `json:"shopkeeper,omitempty" validate:"-"`

	TransactionDate time.Time `gorm:"not null" json:"transaction_date"`
}
