package model

import (
	"encoding/json"

	"github.com/google/uuid"
)

// ReportType selects the shape of a report's snapshot payload.
type ReportType string

const (
	ReportInventory  ReportType = "inventory"
	ReportStockLevel ReportType = "stock_level"
	ReportCategory   ReportType = "category"
	ReportSales      ReportType = "sales"
)

// Report is a persisted point-in-time snapshot of aggregation output.
// Data is frozen at creation; only Title and Description may be edited
// afterwards.
type Report struct {
	BaseModel
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title       string          `gorm:"type:varchar(255);not null" json:"title" validate:"required"`
	Description string          `json:"description,omitempty"`
	ReportType  ReportType      `gorm:"type:varchar(20);not null" json:"report_type" validate:"required"`
	Data        json.RawMessage `gorm:"type:jsonb" json:"data"`
}
