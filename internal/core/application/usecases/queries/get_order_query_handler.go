package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryResponse is the public view of an order. It deliberately
// leaves out the customer's email and reference.
type GetOrderQueryResponse struct {
	Code     string
	Name     string
	Quantity uint32
	Status   order.Status
}

// GetOrderQueryHandler reads a single order. Lookups never modify the order.
type GetOrderQueryHandler struct {
	store StoreReader
}

// NewGetOrderQueryHandler creates a handler for tracking lookups.
func NewGetOrderQueryHandler(store StoreReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{store: store}
}

// Handle returns the order or errs.ErrObjectNotFound. Malformed codes are
// reported as not found since no such order can exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	code, err := order.NewTrackingCode(query.Code())
	if err != nil {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundErrorWithCause("order", query.Code(), err)
	}

	var row struct {
		ID        string
		Name      string
		Beans     uint32
		BeanStats int
	}

	var found bool
	err = h.store.Do(ctx, func(db *gorm.DB) error {
		result := db.Raw(`
			SELECT id, name, beans, bean_stats
			FROM bean_buyer
			WHERE id = ?
		`, code.String()).Scan(&row)
		found = result.RowsAffected > 0
		return result.Error
	})
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if !found {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", code.String())
	}

	status := order.Status(row.BeanStats)
	if err = status.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		Code:     row.ID,
		Name:     row.Name,
		Quantity: row.Beans,
		Status:   status,
	}, nil
}
