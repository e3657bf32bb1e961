package repository

import (
	"time"

	"go-storepos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LedgerRepository is append-only: entries can be created and read but the
// interface deliberately exposes no update or delete.
type LedgerRepository interface {
	// Create appends an entry inside tx so it shares the commit with the
	// product quantity write.
	Create(tx *gorm.DB, entry *model.StockTransaction) error
	FindAll(ownerID uuid.UUID) ([]model.StockTransaction, error)
	FindByID(ownerID, id uuid.UUID) (*model.StockTransaction, error)
	FindByProduct(ownerID, productID uuid.UUID) ([]model.StockTransaction, error)
	FindSales(ownerID uuid.UUID) ([]model.StockTransaction, error)
	SumDeltas(ownerID, productID uuid.UUID) (int64, error)
	GetStockMovement(ownerID uuid.UUID, startDate, endDate time.Time) ([]StockMovementData, error)
}

// StockMovementData is one day of aggregated inbound/outbound movement.
type StockMovementData struct {
	Date     string `json:"date"`
	Inbound  int    `json:"inbound"`
	Outbound int    `json:"outbound"`
}

type ledgerRepo struct {
	db *gorm.DB
}

func NewLedgerRepo(db *gorm.DB) LedgerRepository {
	return &ledgerRepo{db}
}

func (r *ledgerRepo) Create(tx *gorm.DB, entry *model.StockTransaction) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(entry).Error
}

func (r *ledgerRepo) FindAll(ownerID uuid.UUID) ([]model.StockTransaction, error) {
	var entries []model.StockTransaction
	err := r.db.Preload("Product").Preload("Shopkeeper").
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *ledgerRepo) FindByID(ownerID, id uuid.UUID) (*model.StockTransaction, error) {
	var entry model.StockTransaction
	err := r.db.Preload("Product").Preload("Shopkeeper").
		First(&entry, "owner_id = ? AND id = ?", ownerID, id).Error
	return &entry, err
}

func (r *ledgerRepo) FindByProduct(ownerID, productID uuid.UUID) ([]model.StockTransaction, error) {
	var entries []model.StockTransaction
	err := r.db.Where("owner_id = ? AND product_id = ?", ownerID, productID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *ledgerRepo) FindSales(ownerID uuid.UUID) ([]model.StockTransaction, error) {
	var entries []model.StockTransaction
	err := r.db.Preload("Product").Preload("Shopkeeper").
		Where("owner_id = ? AND transaction_type = ?", ownerID, model.TxSale).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *ledgerRepo) SumDeltas(ownerID, productID uuid.UUID) (int64, error) {
	var sum int64
	err := r.db.Model(&model.StockTransaction{}).
		Where("owner_id = ? AND product_id = ?", ownerID, productID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&sum).Error
	return sum, err
}

func (r *ledgerRepo) GetStockMovement(ownerID uuid.UUID, startDate, endDate time.Time) ([]StockMovementData, error) {
	var results []StockMovementData

	// Aggregate signed deltas per day: positive quantities are inbound,
	// negative are outbound.
	rows, err := r.db.Model(&model.StockTransaction{}).
		Select(`
			DATE(created_at) as date,
			COALESCE(SUM(CASE WHEN quantity > 0 THEN quantity ELSE 0 END), 0) as inbound,
			COALESCE(SUM(CASE WHEN quantity < 0 THEN -quantity ELSE 0 END), 0) as outbound
		`).
		Where("owner_id = ? AND created_at BETWEEN ? AND ?", ownerID, startDate, endDate).
		Group("DATE(created_at)").
		Order("date ASC").
		Rows()

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var data StockMovementData
		if err := rows.Scan(&data.Date, &data.Inbound, &data.Outbound); err != nil {
			return nil, err
		}
		results = append(results, data)
	}

	return results, nil
}
