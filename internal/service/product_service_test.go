package service

import (
	"testing"

	"go-storepos/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductRejectsDuplicateSKU(t *testing.T) {
	ownerID := uuid.New()
	productRepo := newFakeProductRepo(
		&model.Product{OwnerID: ownerID, SKU: "GRC-001", Name: "Rice"},
	)
	svc := NewProductService(productRepo, newFakeCategoryRepo(), nil)

	err := svc.Create(ownerID, &model.Product{SKU: "GRC-001", Name: "Rice Again"}, Actor{ID: "owner"})
	assert.ErrorIs(t, err, ErrSKUExists)

	products, _ := productRepo.FindAll(ownerID)
	assert.Len(t, products, 1, "rejected create persists nothing")
}

func TestCreateProductAllowsSameSKUAcrossTenants(t *testing.T) {
	ownerA := uuid.New()
	ownerB := uuid.New()
	productRepo := newFakeProductRepo(
		&model.Product{OwnerID: ownerA, SKU: "GRC-001", Name: "Rice"},
	)
	svc := NewProductService(productRepo, newFakeCategoryRepo(), nil)

	err := svc.Create(ownerB, &model.Product{SKU: "GRC-001", Name: "Rice"}, Actor{ID: "other-owner"})
	assert.NoError(t, err, "SKU uniqueness is scoped per owner")
}

func TestCreateProductValidatesBeforePersisting(t *testing.T) {
	productRepo := newFakeProductRepo()
	svc := NewProductService(productRepo, newFakeCategoryRepo(), nil)
	ownerID := uuid.New()

	tests := []struct {
		name string
		req  model.Product
	}{
		{"missing sku", model.Product{Name: "Rice"}},
		{"missing name", model.Product{SKU: "GRC-001"}},
		{"negative price", model.Product{SKU: "GRC-001", Name: "Rice", UnitPrice: -1}},
		{"unknown unit", model.Product{SKU: "GRC-001", Name: "Rice", Unit: "barrel"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Create(ownerID, &tt.req, Actor{ID: "owner"})
			assert.Error(t, err)

			products, _ := productRepo.FindAll(ownerID)
			assert.Empty(t, products)
		})
	}
}

func TestCreateProductDefaultsUnitToPiece(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), newFakeCategoryRepo(), nil)

	req := &model.Product{SKU: "GRC-001", Name: "Rice"}
	require.NoError(t, svc.Create(uuid.New(), req, Actor{ID: "owner"}))
	assert.Equal(t, model.UnitPiece, req.Unit)
}

func TestCreateProductRejectsUnknownCategory(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), newFakeCategoryRepo(), nil)

	unknown := uuid.New()
	err := svc.Create(uuid.New(), &model.Product{SKU: "GRC-001", Name: "Rice", CategoryID: &unknown}, Actor{ID: "owner"})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestUpdateProductRejectsSKUTakenByAnother(t *testing.T) {
	ownerID := uuid.New()
	rice := &model.Product{OwnerID: ownerID, SKU: "GRC-001", Name: "Rice"}
	sugar := &model.Product{OwnerID: ownerID, SKU: "GRC-002", Name: "Sugar"}
	productRepo := newFakeProductRepo(rice, sugar)
	svc := NewProductService(productRepo, newFakeCategoryRepo(), nil)

	_, err := svc.Update(ownerID, sugar.ID, &model.Product{SKU: "GRC-001", Name: "Sugar"}, Actor{ID: "owner"})
	assert.ErrorIs(t, err, ErrSKUExists)

	// Keeping its own SKU is fine.
	updated, err := svc.Update(ownerID, sugar.ID, &model.Product{SKU: "GRC-002", Name: "Brown Sugar"}, Actor{ID: "owner"})
	require.NoError(t, err)
	assert.Equal(t, "Brown Sugar", updated.Name)
}

func TestUpdateProductDoesNotTouchQuantity(t *testing.T) {
	ownerID := uuid.New()
	rice := &model.Product{OwnerID: ownerID, SKU: "GRC-001", Name: "Rice", QuantityInStock: 40}
	productRepo := newFakeProductRepo(rice)
	svc := NewProductService(productRepo, newFakeCategoryRepo(), nil)

	updated, err := svc.Update(ownerID, rice.ID, &model.Product{SKU: "GRC-001", Name: "Rice 5kg", QuantityInStock: 9999}, Actor{ID: "owner"})
	require.NoError(t, err)
	assert.Equal(t, 40, updated.QuantityInStock, "quantity only moves through stock mutations")
}

func TestGetByIDIsTenantScoped(t *testing.T) {
	ownerID := uuid.New()
	rice := &model.Product{OwnerID: ownerID, SKU: "GRC-001", Name: "Rice"}
	svc := NewProductService(newFakeProductRepo(rice), newFakeCategoryRepo(), nil)

	_, err := svc.GetByID(uuid.New(), rice.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.True(t, IsNotFound(err))

	got, err := svc.GetByID(ownerID, rice.ID)
	require.NoError(t, err)
	assert.Equal(t, rice.ID, got.ID)
}
