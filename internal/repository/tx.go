package repository

import (
	"database/sql"

	"gorm.io/gorm"
)

// TxManager abstracts gorm's Transaction so services can run the
// projection write and the ledger append as one commit. *gorm.DB satisfies
// it directly; tests substitute an in-memory runner.
type TxManager interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}
