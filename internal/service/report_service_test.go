package service

import (
	"encoding/json"
	"testing"

	"go-storepos/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportFixture(t *testing.T) (ReportService, *fakeProductRepo, *fakeReportRepo, uuid.UUID, *model.Category, *model.Category) {
	t.Helper()

	ownerID := uuid.New()
	grocery := &model.Category{OwnerID: ownerID, Name: "Grocery"}
	drinks := &model.Category{OwnerID: ownerID, Name: "Drinks"}
	categoryRepo := newFakeCategoryRepo(grocery, drinks)
	productRepo := newFakeProductRepo(
		&model.Product{OwnerID: ownerID, SKU: "GRC-001", Name: "Rice", UnitPrice: 100, QuantityInStock: 5, MinStockLevel: 2, CategoryID: &grocery.ID},
		&model.Product{OwnerID: ownerID, SKU: "DRK-001", Name: "Water", UnitPrice: 70, QuantityInStock: 10, MinStockLevel: 20, CategoryID: &drinks.ID},
		&model.Product{OwnerID: ownerID, SKU: "MSC-001", Name: "Misc", UnitPrice: 25, QuantityInStock: 4, MinStockLevel: 1},
	)
	reportRepo := newFakeReportRepo()
	sales := NewSalesService(&fakeLedgerRepo{}, newFakeShopkeeperRepo())
	svc := NewReportService(productRepo, categoryRepo, reportRepo, sales)

	return svc, productRepo, reportRepo, ownerID, grocery, drinks
}

func TestGenerateInventoryReport(t *testing.T) {
	svc, _, _, ownerID, _, _ := newReportFixture(t)

	report, err := svc.Generate(ownerID, "Month end", model.ReportInventory, "", Actor{ID: "owner"})
	require.NoError(t, err)
	assert.Equal(t, model.ReportInventory, report.ReportType)

	var snap struct {
		TotalProducts int     `json:"total_products"`
		TotalValue    float64 `json:"total_value"`
		LowStockCount int     `json:"low_stock_count"`
		Categories    []struct {
			CategoryName string  `json:"category_name"`
			Value        float64 `json:"value"`
		} `json:"categories"`
		Uncategorized struct {
			ProductCount int     `json:"product_count"`
			Value        float64 `json:"value"`
		} `json:"uncategorized"`
	}
	require.NoError(t, json.Unmarshal(report.Data, &snap))

	assert.Equal(t, 3, snap.TotalProducts)
	assert.InDelta(t, 1300.0, snap.TotalValue, 1e-9)
	assert.Equal(t, 1, snap.LowStockCount)
	require.Len(t, snap.Categories, 2)

	var categorized float64
	for _, c := range snap.Categories {
		categorized += c.Value
	}
	assert.Equal(t, 1, snap.Uncategorized.ProductCount)
	assert.InDelta(t, snap.TotalValue, categorized+snap.Uncategorized.Value, 1e-9)
}

func TestGeneratedReportIsFrozen(t *testing.T) {
	svc, productRepo, reportRepo, ownerID, _, _ := newReportFixture(t)

	report, err := svc.Generate(ownerID, "Before restock", model.ReportInventory, "", Actor{ID: "owner"})
	require.NoError(t, err)
	frozen := append([]byte(nil), report.Data...)

	// Restock heavily after the snapshot was taken.
	products, err := productRepo.FindAll(ownerID)
	require.NoError(t, err)
	for i := range products {
		products[i].QuantityInStock += 1000
		require.NoError(t, productRepo.Update(&products[i]))
	}

	stored, err := reportRepo.FindByID(ownerID, report.ID)
	require.NoError(t, err)
	assert.JSONEq(t, string(frozen), string(stored.Data), "stored report reflects the moment of generation")
}

func TestStockLevelReportStatuses(t *testing.T) {
	ownerID := uuid.New()
	productRepo := newFakeProductRepo(
		&model.Product{OwnerID: ownerID, SKU: "A", Name: "Empty", QuantityInStock: 0, MinStockLevel: 5},
		&model.Product{OwnerID: ownerID, SKU: "B", Name: "Low", QuantityInStock: 5, MinStockLevel: 5},
		&model.Product{OwnerID: ownerID, SKU: "C", Name: "Healthy", QuantityInStock: 50, MinStockLevel: 5},
	)
	sales := NewSalesService(&fakeLedgerRepo{}, newFakeShopkeeperRepo())
	svc := NewReportService(productRepo, newFakeCategoryRepo(), newFakeReportRepo(), sales)

	report, err := svc.Generate(ownerID, "", model.ReportStockLevel, "", Actor{ID: "owner"})
	require.NoError(t, err)

	var snap struct {
		Products []struct {
			SKU    string `json:"sku"`
			Status string `json:"status"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(report.Data, &snap))
	require.Len(t, snap.Products, 3)

	statusBySKU := make(map[string]string)
	for _, row := range snap.Products {
		statusBySKU[row.SKU] = row.Status
	}
	assert.Equal(t, model.StatusOutOfStock, statusBySKU["A"])
	assert.Equal(t, model.StatusLowStock, statusBySKU["B"])
	assert.Equal(t, model.StatusInStock, statusBySKU["C"])
}

func TestUnknownReportTypeFallsBackToRawDump(t *testing.T) {
	svc, _, _, ownerID, _, _ := newReportFixture(t)

	report, err := svc.Generate(ownerID, "", model.ReportType("quarterly"), "", Actor{ID: "owner"})
	require.NoError(t, err)

	var snap struct {
		Products   []json.RawMessage `json:"products"`
		Categories []json.RawMessage `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(report.Data, &snap))
	assert.Len(t, snap.Products, 3)
	assert.Len(t, snap.Categories, 2)
}

func TestUpdateMetaLeavesDataUntouched(t *testing.T) {
	svc, _, reportRepo, ownerID, _, _ := newReportFixture(t)

	report, err := svc.Generate(ownerID, "Draft", model.ReportInventory, "", Actor{ID: "owner"})
	require.NoError(t, err)
	frozen := append([]byte(nil), report.Data...)

	updated, err := svc.UpdateMeta(ownerID, report.ID, "Final", "reviewed", Actor{ID: "owner"})
	require.NoError(t, err)

	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, "reviewed", updated.Description)
	assert.JSONEq(t, string(frozen), string(updated.Data))

	stored, err := reportRepo.FindByID(ownerID, report.ID)
	require.NoError(t, err)
	assert.JSONEq(t, string(frozen), string(stored.Data))
}

func TestReportLookupsAreTenantScoped(t *testing.T) {
	svc, _, _, ownerID, _, _ := newReportFixture(t)

	report, err := svc.Generate(ownerID, "", model.ReportInventory, "", Actor{ID: "owner"})
	require.NoError(t, err)

	_, err = svc.GetByID(uuid.New(), report.ID)
	assert.ErrorIs(t, err, ErrReportNotFound)

	err = svc.Delete(uuid.New(), report.ID)
	assert.ErrorIs(t, err, ErrReportNotFound)

	got, err := svc.GetByID(ownerID, report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.ID, got.ID)
}
