package service

import (
	"go-storepos/internal/model"

	"github.com/google/uuid"
)

// Pure aggregation over product/category slices. Nothing here touches the
// database or caches a result; every call recomputes from the slice it is
// given.

// LowStock returns every product at or below its minimum stock level.
// The comparison is inclusive: a product exactly at its minimum is low.
func LowStock(products []model.Product) []model.Product {
	var low []model.Product
	for _, p := range products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	return low
}

// OutOfStock returns the strict subset of low-stock products with zero
// quantity on hand.
func OutOfStock(products []model.Product) []model.Product {
	var out []model.Product
	for _, p := range products {
		if p.QuantityInStock == 0 {
			out = append(out, p)
		}
	}
	return out
}

// TotalValue sums unit price times quantity over all products, categorized
// or not.
func TotalValue(products []model.Product) float64 {
	var total float64
	for _, p := range products {
		total += p.Value()
	}
	return total
}

// CategoryValue sums unit price times quantity over products assigned to
// the given category. Products without a category contribute to no
// category's value.
func CategoryValue(products []model.Product, categoryID uuid.UUID) float64 {
	var total float64
	for _, p := range products {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			total += p.Value()
		}
	}
	return total
}

// UncategorizedValue sums the value of products with no assigned category.
func UncategorizedValue(products []model.Product) float64 {
	var total float64
	for _, p := range products {
		if p.CategoryID == nil {
			total += p.Value()
		}
	}
	return total
}

// ProductsByCategory filters products assigned to the given category.
func ProductsByCategory(products []model.Product, categoryID uuid.UUID) []model.Product {
	var matched []model.Product
	for _, p := range products {
		if p.CategoryID != nil && *p.CategoryID == categoryID {
			matched = append(matched, p)
		}
	}
	return matched
}
