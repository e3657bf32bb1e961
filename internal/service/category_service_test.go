package service

import (
	"errors"
	"testing"

	"go-storepos/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCategoryRejectsWhileReferenced(t *testing.T) {
	ownerID := uuid.New()
	grocery := &model.Category{OwnerID: ownerID, Name: "Grocery"}
	categoryRepo := newFakeCategoryRepo(grocery)
	productRepo := newFakeProductRepo(
		&model.Product{OwnerID: ownerID, SKU: "A", Name: "Rice", CategoryID: &grocery.ID},
		&model.Product{OwnerID: ownerID, SKU: "B", Name: "Sugar", CategoryID: &grocery.ID},
	)
	svc := NewCategoryService(categoryRepo, productRepo)

	err := svc.Delete(ownerID, grocery.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCategoryInUse)

	var inUse *CategoryInUseError
	require.True(t, errors.As(err, &inUse))
	assert.Equal(t, int64(2), inUse.ProductCount)

	// Neither the category nor its products were touched.
	category, err := svc.GetByID(ownerID, grocery.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grocery", category.Name)

	products, err := productRepo.FindByCategory(ownerID, grocery.ID)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestDeleteCategorySucceedsWhenUnreferenced(t *testing.T) {
	ownerID := uuid.New()
	grocery := &model.Category{OwnerID: ownerID, Name: "Grocery"}
	categoryRepo := newFakeCategoryRepo(grocery)
	svc := NewCategoryService(categoryRepo, newFakeProductRepo())

	require.NoError(t, svc.Delete(ownerID, grocery.ID))

	_, err := svc.GetByID(ownerID, grocery.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDeleteCategoryIgnoresOtherTenantsProducts(t *testing.T) {
	ownerID := uuid.New()
	grocery := &model.Category{OwnerID: ownerID, Name: "Grocery"}
	categoryRepo := newFakeCategoryRepo(grocery)
	// A product in another store happens to reference the same category ID.
	productRepo := newFakeProductRepo(
		&model.Product{OwnerID: uuid.New(), SKU: "X", Name: "Foreign", CategoryID: &grocery.ID},
	)
	svc := NewCategoryService(categoryRepo, productRepo)

	assert.NoError(t, svc.Delete(ownerID, grocery.ID))
}

func TestCreateCategoryRequiresName(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), newFakeProductRepo())

	err := svc.Create(uuid.New(), &model.Category{}, Actor{ID: "owner"})
	assert.Error(t, err)
}

func TestCreateCategoryRequiresTenant(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo(), newFakeProductRepo())

	err := svc.Create(uuid.Nil, &model.Category{Name: "Grocery"}, Actor{ID: "owner"})
	assert.ErrorIs(t, err, ErrTenantUnresolved)
}
