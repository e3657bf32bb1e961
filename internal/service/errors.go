package service

import "errors"

// Sentinel errors shared across services. Handlers map these onto HTTP
// status codes.
var (
	ErrTenantUnresolved = errors.New("no effective owner could be resolved for this request")

	ErrProductNotFound        = errors.New("product not found")
	ErrSKUExists              = errors.New("SKU already exists for this store")
	ErrCategoryNotFound       = errors.New("category not found")
	ErrCategoryInUse          = errors.New("category still has products assigned")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidQuantity        = errors.New("quantity must be a positive integer")

	ErrReportNotFound = errors.New("report not found")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrEmailExists        = errors.New("email is already registered")
	ErrShopkeeperNotFound = errors.New("shopkeeper not found")
)
