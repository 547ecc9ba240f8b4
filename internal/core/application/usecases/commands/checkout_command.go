package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/go-playground/validator/v10"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CheckoutCommand represents a customer's purchase submitted from the storefront.
// Carries the raw form values after they have been checked and normalized.
//
// Example:
//
//	cmd, err := NewCheckoutCommand("Ada", "3", "ada@example.com", "123-45-6789")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	fmt.Printf("Track your beans at /tracking/%s", result.Code)
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	name      string
	quantity  uint32
	email     string
	reference string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand validates the checkout form. Name, email and reference
// must be non-blank, quantity must be a positive base-10 integer that fits
// uint32 and email must be a well-formed address. All problems are reported
// together.
func NewCheckoutCommand(name, quantity, email, reference string) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setQuantity(quantity),
		cmd.setEmail(email),
		cmd.setReference(reference),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// Name returns the customer's name.
func (c CheckoutCommand) Name() string {
	return c.name
}

// Quantity returns the number of beans ordered.
func (c CheckoutCommand) Quantity() uint32 {
	return c.quantity
}

// Email returns the customer's email address.
func (c CheckoutCommand) Email() string {
	return c.email
}

// Reference returns the opaque customer reference.
func (c CheckoutCommand) Reference() string {
	return c.reference
}

func (c *CheckoutCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CheckoutCommand) setQuantity(quantity string) error {
	quantity = strings.TrimSpace(quantity)
	if quantity == "" {
		return errs.NewValueIsRequiredError("beans")
	}

	n, err := strconv.ParseUint(quantity, 10, 32)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("beans", err)
	}
	if n == 0 {
		return errs.NewValueIsInvalidErrorWithCause("beans", fmt.Errorf("%d is not greater than 0", n))
	}

	c.quantity = uint32(n)
	return nil
}

func (c *CheckoutCommand) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if err := validate.Var(email, "email"); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}

	c.email = email
	return nil
}

func (c *CheckoutCommand) setReference(reference string) error {
	if strings.TrimSpace(reference) == "" {
		return errs.NewValueIsRequiredError("ssn")
	}

	c.reference = reference
	return nil
}
