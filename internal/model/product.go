package model

import "github.com/google/uuid"

// Unit of measure for a product.
type Unit string

const (
	UnitPiece  Unit = "piece"
	UnitPacket Unit = "packet"
	UnitKg     Unit = "kg"
	UnitLiter  Unit = "liter"
	UnitBox    Unit = "box"
	UnitDozen  Unit = "dozen"
)

type Product struct {
	BaseModel
	OwnerID     uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_owner_sku" json:"owner_id"`
	SKU         string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_owner_sku" json:"sku" validate:"required"`
	Barcode     string     `gorm:"type:varchar(64)" json:"barcode,omitempty"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Description string     `json:"description,omitempty"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Category    *Category  `json:"category,omitempty" validate:"-"`

	UnitPrice       float64 `gorm:"not null;default:0" json:"unit_price" validate:"gte=0"`
	Unit            Unit    `gorm:"type:varchar(20);default:'piece'" json:"unit" validate:"omitempty,oneof=piece packet kg liter box dozen"`
	QuantityInStock int     `gorm:"not null;default:0" json:"quantity_in_stock" validate:"gte=0"`
	MinStockLevel   int     `gorm:"not null;default:0" json:"min_stock_level" validate:"gte=0"`
	ImageURL        string  `gorm:"type:varchar(512)" json:"image_url,omitempty"`

	// Relasi
	Transactions []StockTransaction `json:"transactions,omitempty" validate:"-"`
}

// Value is the stock valuation this product contributes: unit price times
// quantity on hand.
func (p *Product) Value() float64 {
	return p.UnitPrice * float64(p.QuantityInStock)
}

// IsLowStock reports whether the product is at or below its configured
// minimum. A product exactly at the minimum counts as low stock.
func (p *Product) IsLowStock() bool {
	return p.QuantityInStock <= p.MinStockLevel
}

// StockStatus values used in stock_level reports.
const (
	StatusOutOfStock = "out_of_stock"
	StatusLowStock   = "low_stock"
	StatusInStock    = "in_stock"
)

// StockStatus derives the presentation status tag for this product.
// Out of stock is a strict subset of low stock and wins.
func (p *Product) StockStatus() string {
	switch {
	case p.QuantityInStock == 0:
		return StatusOutOfStock
	case p.QuantityInStock <= p.MinStockLevel:
		return StatusLowStock
	default:
		return StatusInStock
	}
}
