// Package queries contains read-only operations over the order store.
// Query handlers read through the store guard and return plain response structs.
package queries

import (
	"context"

	"gorm.io/gorm"
)

// StoreReader runs read-only work against the order database while holding
// the store guard.
type StoreReader interface {
	Do(ctx context.Context, fn func(db *gorm.DB) error) error
}
