package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations report missing rows with errs.ErrObjectNotFound and tracking
// code collisions with errs.ErrObjectAlreadyExists.
type OrderRepository interface {
	// Add persists a new order aggregate.
	// Returns errs.ErrObjectAlreadyExists if the tracking code is taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status of an existing order.
	// Returns errs.ErrObjectNotFound if the order no longer exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its tracking code.
	Get(ctx context.Context, code order.TrackingCode) (*order.Order, error)

	// GetAll retrieves every order in insertion order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Delete permanently removes an order.
	// Returns errs.ErrObjectNotFound if there is nothing to delete.
	Delete(ctx context.Context, code order.TrackingCode) error
}
