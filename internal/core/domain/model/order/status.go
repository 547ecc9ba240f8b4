package order

import (
	"errors"

	"storefront/internal/pkg/errs"
)

// ErrTransitionIsInvalid is returned when a Transition value is neither Advance nor Revert.
var ErrTransitionIsInvalid = errors.New("transition must be Advance or Revert")

// Status represents the shipment stage of an order.
// It is a closed enumeration stored as a small integer.
//
// State transitions:
//
//	Shipped <──> InTransit <──> Delivered
//
// Advance moves one stage forward and Revert one stage back. Both clamp at the
// ends: advancing a Delivered order or reverting a Shipped order returns the same
// status without an error.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Shipped is the initial status of every order.
	Shipped

	// InTransit indicates the order is on its way to the customer.
	InTransit

	// Delivered indicates the order reached the customer.
	// Operators can still revert it.
	Delivered
)

const (
	// MinStatus is the first stage of the lifecycle.
	MinStatus = Shipped

	// MaxStatus is the last stage of the lifecycle.
	MaxStatus = Delivered
)

// Transition is one operator step through the lifecycle.
type Transition int

const (
	// Advance moves an order one stage forward.
	Advance Transition = iota + 1

	// Revert moves an order one stage back.
	Revert
)

// String returns the transition name used in logs and metrics.
func (t Transition) String() string {
	switch t {
	case Advance:
		return "advance"
	case Revert:
		return "revert"
	default:
		return "unknown"
	}
}

// Validate checks that the transition is Advance or Revert.
func (t Transition) Validate() error {
	if t != Advance && t != Revert {
		return ErrTransitionIsInvalid
	}
	return nil
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Shipped, InTransit, Delivered}
}

// Validate checks if the Status value is one of Shipped, InTransit or Delivered.
//
// Returns:
//   - nil if the status is valid
//   - errs.ValueIsOutOfRangeError otherwise
//
// This method is used to ensure Status values read back from the database are
// valid before they are used.
func (s Status) Validate() error {
	if s < MinStatus || s > MaxStatus {
		return errs.NewValueIsOutOfRangeError("status", int(s), int(MinStatus), int(MaxStatus))
	}
	return nil
}

// String returns the human-readable name of the status as shown to customers.
//
// Returns:
//   - "Shipped", "In Transit" or "Delivered" for valid statuses
//   - "Unknown" for anything else
//
// Example:
//
//	fmt.Println(order.Status()) // Output: "In Transit"
func (s Status) String() string {
	switch s {
	case Shipped:
		return "Shipped"
	case InTransit:
		return "In Transit"
	case Delivered:
		return "Delivered"
	default:
		return "Unknown"
	}
}

// Reached reports whether an order in status s has gone through stage.
// Unknown stages are never reached.
//
// Example:
//
//	InTransit.Reached(Shipped)   // true
//	InTransit.Reached(Delivered) // false
func (s Status) Reached(stage Status) bool {
	if s.Validate() != nil || stage.Validate() != nil {
		return false
	}
	return stage <= s
}

// Advance returns the next stage, or Delivered if the status is already Delivered.
//
// Returns:
//   - (next status, nil) for any valid status
//   - (Unknown, error) if s is not a valid status
func (s Status) Advance() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s == MaxStatus {
		return s, nil
	}
	return s + 1, nil
}

// Revert returns the previous stage, or Shipped if the status is already Shipped.
//
// Returns:
//   - (previous status, nil) for any valid status
//   - (Unknown, error) if s is not a valid status
func (s Status) Revert() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s == MinStatus {
		return s, nil
	}
	return s - 1, nil
}

// Apply performs the given transition.
func (s Status) Apply(t Transition) (Status, error) {
	switch t {
	case Advance:
		return s.Advance()
	case Revert:
		return s.Revert()
	default:
		return Unknown, ErrTransitionIsInvalid
	}
}
