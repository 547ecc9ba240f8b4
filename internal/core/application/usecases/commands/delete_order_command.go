package commands

import (
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

// DeleteOrderCommand permanently removes an order.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	code order.TrackingCode

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand validates the tracking code.
func NewDeleteOrderCommand(code string) (DeleteOrderCommand, error) {
	tc, err := order.NewTrackingCode(code)
	if err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{code: tc, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// Code returns the order's tracking code.
func (c DeleteOrderCommand) Code() order.TrackingCode {
	return c.code
}
