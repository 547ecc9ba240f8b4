package commands

import (
	"errors"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand moves an order one stage forward or back.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand("aZ09xQ", order.Advance)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	code       order.TrackingCode
	transition order.Transition

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand validates the tracking code and transition.
func NewChangeOrderStatusCommand(code string, transition order.Transition) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCode(code),
		cmd.setTransition(transition),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// Code returns the order's tracking code.
func (c ChangeOrderStatusCommand) Code() order.TrackingCode {
	return c.code
}

// Transition returns the requested transition.
func (c ChangeOrderStatusCommand) Transition() order.Transition {
	return c.transition
}

func (c *ChangeOrderStatusCommand) setCode(code string) error {
	tc, err := order.NewTrackingCode(code)
	if err != nil {
		return err
	}

	c.code = tc
	return nil
}

func (c *ChangeOrderStatusCommand) setTransition(transition order.Transition) error {
	if err := transition.Validate(); err != nil {
		return err
	}

	c.transition = transition
	return nil
}
