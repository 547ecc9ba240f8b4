package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListOrdersQueryResponse is one full row of the admin order table.
type ListOrdersQueryResponse struct {
	Code      string
	Name      string
	Quantity  uint32
	Email     string
	Reference string
	Status    order.Status
}

// ListOrdersQueryHandler lists all orders in insertion order.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(store)
//	orders, err := handler.Handle(ctx, NewListOrdersQuery())
//	if err != nil {
//	    return err
//	}
//	for _, o := range orders {
//	    fmt.Printf("%s %s %d %s\n", o.Code, o.Name, o.Quantity, o.Status)
//	}
type ListOrdersQueryHandler struct {
	store StoreReader
}

// NewListOrdersQueryHandler creates a handler for the admin listing.
func NewListOrdersQueryHandler(store StoreReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{store: store}
}

// Handle returns every order, oldest first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]ListOrdersQueryResponse, 0)

	err := h.store.Do(ctx, func(db *gorm.DB) error {
		rows, err := db.Raw(`
			SELECT id, name, beans, email, ssn, bean_stats
			FROM bean_buyer
			ORDER BY rowid
		`).Rows()
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var resp ListOrdersQueryResponse
			var status int

			if err = rows.Scan(
				&resp.Code,
				&resp.Name,
				&resp.Quantity,
				&resp.Email,
				&resp.Reference,
				&status,
			); err != nil {
				return err
			}

			resp.Status = order.Status(status)
			if err = resp.Status.Validate(); err != nil {
				return err
			}

			orders = append(orders, resp)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}
