package service

import (
	"time"

	"go-storepos/internal/model"
	"go-storepos/internal/repository"

	"github.com/google/uuid"
)

// DashboardStats is the owner dashboard overview.
type DashboardStats struct {
	TotalProducts  int64   `json:"total_products"`
	LowStockCount  int     `json:"low_stock_count"`
	OutOfStock     int     `json:"out_of_stock_count"`
	TotalValuation float64 `json:"total_valuation"`
}

// CategoryBreakdown is one category's share of the inventory.
type CategoryBreakdown struct {
	CategoryID   uuid.UUID `json:"category_id"`
	CategoryName string    `json:"category_name"`
	ProductCount int       `json:"product_count"`
	Value        float64   `json:"value"`
}

// AggregateService derives read-only metrics on demand from the current
// product collection. Nothing is cached or incrementally maintained.
type AggregateService interface {
	GetDashboardStats(ownerID uuid.UUID) (*DashboardStats, error)
	GetLowStock(ownerID uuid.UUID) ([]model.Product, error)
	GetCategoryBreakdown(ownerID uuid.UUID) ([]CategoryBreakdown, error)
	GetStockMovement(ownerID uuid.UUID, days int) ([]repository.StockMovementData, error)
}

type aggregateService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	ledgerRepo   repository.LedgerRepository
}

func NewAggregateService(pRepo repository.ProductRepository, cRepo repository.CategoryRepository, lRepo repository.LedgerRepository) AggregateService {
	return &aggregateService{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		ledgerRepo:   lRepo,
	}
}

func (s *aggregateService) GetDashboardStats(ownerID uuid.UUID) (*DashboardStats, error) {
	products, err := s.productRepo.FindAll(ownerID)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalProducts:  int64(len(products)),
		LowStockCount:  len(LowStock(products)),
		OutOfStock:     len(OutOfStock(products)),
		TotalValuation: TotalValue(products),
	}, nil
}

func (s *aggregateService) GetLowStock(ownerID uuid.UUID) ([]model.Product, error) {
	products, err := s.productRepo.FindAll(ownerID)
	if err != nil {
		return nil, err
	}
	return LowStock(products), nil
}

func (s *aggregateService) GetCategoryBreakdown(ownerID uuid.UUID) ([]CategoryBreakdown, error) {
	products, err := s.productRepo.FindAll(ownerID)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.FindAll(ownerID)
	if err != nil {
		return nil, err
	}

	breakdown := make([]CategoryBreakdown, 0, len(categories))
	for _, c := range categories {
		members := ProductsByCategory(products, c.ID)
		breakdown = append(breakdown, CategoryBreakdown{
			CategoryID:   c.ID,
			CategoryName: c.Name,
			ProductCount: len(members),
			Value:        CategoryValue(products, c.ID),
		})
	}
	return breakdown, nil
}

func (s *aggregateService) GetStockMovement(ownerID uuid.UUID, days int) ([]repository.StockMovementData, error) {
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	return s.ledgerRepo.GetStockMovement(ownerID, startDate, endDate)
}
