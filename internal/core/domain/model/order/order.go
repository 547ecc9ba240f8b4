package order

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer's bean order. It is the aggregate root that owns
// the order's identity, the customer's details and the shipment status.
//
// Order follows these invariants:
//   - The tracking code is valid and never changes
//   - Customer name, email and reference are non-empty and never change
//   - Quantity is positive
//   - The sender email is whatever the store was configured with at checkout
//   - Status is always a valid stage and only moves through Advance/Revert
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// code is the public tracking code and primary key
	code TrackingCode

	// customerName is the name the customer entered at checkout
	customerName string

	// quantity is the number of beans ordered
	quantity uint32

	// customerEmail receives the confirmation email
	customerEmail string

	// senderEmail is the store address the confirmation was sent from
	senderEmail string

	// reference is an opaque sensitive value stored exactly as provided
	reference string

	// status is the current shipment stage
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Shipped status. This is the only way to
// create a new valid Order, ensuring all business invariants are maintained.
//
// Parameters:
//   - code: Tracking code assigned at checkout
//   - customerName: Customer's name (required)
//   - quantity: Number of beans (must be positive)
//   - customerEmail: Where the confirmation goes (required)
//   - senderEmail: Store address used as sender (required)
//   - reference: Opaque customer reference (required)
//
// Example:
//
//	code, _ := NewTrackingCode("aZ09xQ")
//	o, err := NewOrder(code, "Ada", 3, "ada@example.com", "shop@coolbeans.biz", "ssn-123")
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	code TrackingCode,
	customerName string,
	quantity uint32,
	customerEmail string,
	senderEmail string,
	reference string,
) (*Order, error) {
	return RestoreOrder(code, customerName, quantity, customerEmail, senderEmail, reference, Shipped)
}

// RestoreOrder rebuilds an Order from persisted state. It applies the same
// validation as NewOrder and additionally checks the stored status.
//
// This is used by repositories when loading orders; application code creating
// new orders must use NewOrder.
func RestoreOrder(
	code TrackingCode,
	customerName string,
	quantity uint32,
	customerEmail string,
	senderEmail string,
	reference string,
	status Status,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setCode(code),
		o.setCustomerName(customerName),
		o.setQuantity(quantity),
		o.setCustomerEmail(customerEmail),
		o.setSenderEmail(senderEmail),
		o.setReference(reference),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their tracking codes.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.code.IsEqual(other.code)
}

// Code returns the order's tracking code.
func (o *Order) Code() TrackingCode {
	return o.code
}

// CustomerName returns the customer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Quantity returns the number of beans ordered.
func (o *Order) Quantity() uint32 {
	return o.quantity
}

// CustomerEmail returns the customer's email address.
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// SenderEmail returns the store address the confirmation was sent from.
func (o *Order) SenderEmail() string {
	return o.senderEmail
}

// Reference returns the opaque reference the customer provided.
func (o *Order) Reference() string {
	return o.reference
}

// Status returns the current shipment stage.
func (o *Order) Status() Status {
	return o.status
}

// Advance moves the order one stage forward. A Delivered order stays Delivered.
func (o *Order) Advance() error {
	return o.Apply(Advance)
}

// Revert moves the order one stage back. A Shipped order stays Shipped.
func (o *Order) Revert() error {
	return o.Apply(Revert)
}

// Apply performs an operator transition on the order.
//
// Returns:
//   - nil on success, including the clamped no-op at either end
//   - error if the transition is not Advance or Revert
//
// Example:
//
//	if err := o.Apply(order.Advance); err != nil {
//	    return err
//	}
//	fmt.Println(o.Status()) // "In Transit" for a freshly shipped order
func (o *Order) Apply(t Transition) error {
	next, err := o.status.Apply(t)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

func (o *Order) setCode(code TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.code = code
	return nil
}

func (o *Order) setCustomerName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = name
	return nil
}

// setQuantity validates and sets the number of beans.
// Quantity must be positive (greater than 0).
func (o *Order) setQuantity(quantity uint32) error {
	if quantity == 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setCustomerEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("customer email")
	}
	o.customerEmail = email
	return nil
}

func (o *Order) setSenderEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("sender email")
	}
	o.senderEmail = email
	return nil
}

func (o *Order) setReference(reference string) error {
	if strings.TrimSpace(reference) == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	o.reference = reference
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
