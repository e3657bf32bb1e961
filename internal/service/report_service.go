package service

import (
	"encoding/json"
	"time"

	"go-storepos/internal/model"
	"go-storepos/internal/repository"

	"github.com/google/uuid"
)

// Snapshot payload shapes. Each is marshaled exactly once, when the report
// is generated; later changes to products or categories never touch a
// stored report.

type inventorySnapshot struct {
	GeneratedAt   time.Time           `json:"generated_at"`
	TotalProducts int                 `json:"total_products"`
	TotalValue    float64             `json:"total_value"`
	LowStockCount int                 `json:"low_stock_count"`
	Categories    []CategoryBreakdown `json:"categories"`
	Uncategorized struct {
		ProductCount int     `json:"product_count"`
		Value        float64 `json:"value"`
	} `json:"uncategorized"`
}

type stockLevelRow struct {
	ProductID       uuid.UUID `json:"product_id"`
	Name            string    `json:"name"`
	SKU             string    `json:"sku"`
	QuantityInStock int       `json:"quantity_in_stock"`
	MinStockLevel   int       `json:"min_stock_level"`
	Status          string    `json:"status"`
}

type stockLevelSnapshot struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Products    []stockLevelRow `json:"products"`
}

type categoryMemberRow struct {
	ProductID       uuid.UUID `json:"product_id"`
	Name            string    `json:"name"`
	SKU             string    `json:"sku"`
	QuantityInStock int       `json:"quantity_in_stock"`
	UnitPrice       float64   `json:"unit_price"`
	Value           float64   `json:"value"`
}

type categorySnapshotEntry struct {
	CategoryID   uuid.UUID           `json:"category_id"`
	Name         string              `json:"name"`
	ProductCount int                 `json:"product_count"`
	Value        float64             `json:"value"`
	Products     []categoryMemberRow `json:"products"`
}

type categorySnapshot struct {
	GeneratedAt time.Time               `json:"generated_at"`
	Categories  []categorySnapshotEntry `json:"categories"`
}

type salesSnapshot struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Sellers     []SalesSummary `json:"sellers"`
}

type rawSnapshot struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Products    []model.Product  `json:"products"`
	Categories  []model.Category `json:"categories"`
}

// ReportService freezes aggregation output into persisted report rows.
type ReportService interface {
	Generate(ownerID uuid.UUID, title string, reportType model.ReportType, description string, actor Actor) (*model.Report, error)
	GetAll(ownerID uuid.UUID) ([]model.Report, error)
	GetByID(ownerID, id uuid.UUID) (*model.Report, error)
	UpdateMeta(ownerID, id uuid.UUID, title, description string, actor Actor) (*model.Report, error)
	Delete(ownerID, id uuid.UUID) error
}

type reportService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	reportRepo   repository.ReportRepository
	salesService SalesService
}

func NewReportService(pRepo repository.ProductRepository, cRepo repository.CategoryRepository, rRepo repository.ReportRepository, sales SalesService) ReportService {
	return &reportService{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		reportRepo:   rRepo,
		salesService: sales,
	}
}

func (s *reportService) Generate(ownerID uuid.UUID, title string, reportType model.ReportType, description string, actor Actor) (*model.Report, error) {
	if ownerID == uuid.Nil {
		return nil, ErrTenantUnresolved
	}
	if title == "" {
		title = string(reportType) + " report"
	}

	products, err := s.productRepo.FindAll(ownerID)
	if err != nil {
		return nil, err
	}
	categories, err := s.categoryRepo.FindAll(ownerID)
	if err != nil {
		return nil, err
	}

	payload, err := s.buildPayload(ownerID, reportType, products, categories)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	report := &model.Report{
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		ReportType:  reportType,
		Data:        data,
	}
	report.CreatedBy = actor.ID
	report.UpdatedBy = actor.ID

	if err := s.reportRepo.Create(report); err != nil {
		return nil, err
	}
	return report, nil
}

// buildPayload shapes the snapshot for the given report type. An unknown
// type falls back to a raw dump of products and categories.
func (s *reportService) buildPayload(ownerID uuid.UUID, reportType model.ReportType, products []model.Product, categories []model.Category) (interface{}, error) {
	now := time.Now()

	switch reportType {
	case model.ReportInventory:
		snap := inventorySnapshot{
			GeneratedAt:   now,
			TotalProducts: len(products),
			TotalValue:    TotalValue(products),
			LowStockCount: len(LowStock(products)),
			Categories:    make([]CategoryBreakdown, 0, len(categories)),
		}
		for _, c := range categories {
			snap.Categories = append(snap.Categories, CategoryBreakdown{
				CategoryID:   c.ID,
				CategoryName: c.Name,
				ProductCount: len(ProductsByCategory(products, c.ID)),
				Value:        CategoryValue(products, c.ID),
			})
		}
		for _, p := range products {
			if p.CategoryID == nil {
				snap.Uncategorized.ProductCount++
			}
		}
		snap.Uncategorized.Value = UncategorizedValue(products)
		return snap, nil

	case model.ReportStockLevel:
		snap := stockLevelSnapshot{GeneratedAt: now, Products: make([]stockLevelRow, 0, len(products))}
		for _, p := range products {
			snap.Products = append(snap.Products, stockLevelRow{
				ProductID:       p.ID,
				Name:            p.Name,
				SKU:             p.SKU,
				QuantityInStock: p.QuantityInStock,
				MinStockLevel:   p.MinStockLevel,
				Status:          p.StockStatus(),
			})
		}
		return snap, nil

	case model.ReportCategory:
		snap := categorySnapshot{GeneratedAt: now, Categories: make([]categorySnapshotEntry, 0, len(categories))}
		for _, c := range categories {
			members := ProductsByCategory(products, c.ID)
			entry := categorySnapshotEntry{
				CategoryID:   c.ID,
				Name:         c.Name,
				ProductCount: len(members),
				Value:        CategoryValue(products, c.ID),
				Products:     make([]categoryMemberRow, 0, len(members)),
			}
			for _, p := range members {
				entry.Products = append(entry.Products, categoryMemberRow{
					ProductID:       p.ID,
					Name:            p.Name,
					SKU:             p.SKU,
					QuantityInStock: p.QuantityInStock,
					UnitPrice:       p.UnitPrice,
					Value:           p.Value(),
				})
			}
			snap.Categories = append(snap.Categories, entry)
		}
		return snap, nil

	case model.ReportSales:
		sellers, err := s.salesService.GetSalesSummary(ownerID)
		if err != nil {
			return nil, err
		}
		return salesSnapshot{GeneratedAt: now, Sellers: sellers}, nil

	default:
		return rawSnapshot{GeneratedAt: now, Products: products, Categories: categories}, nil
	}
}

func (s *reportService) GetAll(ownerID uuid.UUID) ([]model.Report, error) {
	return s.reportRepo.FindAll(ownerID)
}

func (s *reportService) GetByID(ownerID, id uuid.UUID) (*model.Report, error) {
	report, err := s.reportRepo.FindByID(ownerID, id)
	if err != nil {
		return nil, ErrReportNotFound
	}
	return report, nil
}

func (s *reportService) UpdateMeta(ownerID, id uuid.UUID, title, description string, actor Actor) (*model.Report, error) {
	if _, err := s.reportRepo.FindByID(ownerID, id); err != nil {
		return nil, ErrReportNotFound
	}
	if err := s.reportRepo.UpdateMeta(ownerID, id, title, description, actor.ID); err != nil {
		return nil, err
	}
	return s.reportRepo.FindByID(ownerID, id)
}

func (s *reportService) Delete(ownerID, id uuid.UUID) error {
	if _, err := s.reportRepo.FindByID(ownerID, id); err != nil {
		return ErrReportNotFound
	}
	return s.reportRepo.Delete(ownerID, id)
}
