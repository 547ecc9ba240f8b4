package queries

import (
	"errors"

	"storefront/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery looks up one order by its tracking code for the public
// tracking page.
//
// Example:
//
//	query := NewGetOrderQuery("aZ09xQ")
//	handler := NewGetOrderQueryHandler(store)
//
//	resp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return echo.ErrNotFound
//	}
//	fmt.Printf("%d beans for %s: %s\n", resp.Quantity, resp.Name, resp.Status)
type GetOrderQuery struct {
	code string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given code. The code is not
// validated here: a malformed code simply matches no order.
func NewGetOrderQuery(code string) GetOrderQuery {
	return GetOrderQuery{code: code, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Code returns the requested tracking code.
func (q GetOrderQuery) Code() string {
	return q.code
}
