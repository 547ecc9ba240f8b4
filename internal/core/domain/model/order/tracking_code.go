package order

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

const (
	// TrackingCodeLength is the number of characters in every tracking code.
	TrackingCodeLength = 6

	// TrackingCodeAlphabet lists the characters a tracking code may contain.
	TrackingCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// ErrTrackingCodeIsNotConstructed is returned when a zero-value TrackingCode is validated.
var ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingCode must be created via NewTrackingCode",
)

// TrackingCode is the public identifier of an order and its primary key.
// Anyone holding the code can read the order's shipment status, so codes are
// random rather than sequential.
//
// The zero value is invalid; use NewTrackingCode.
type TrackingCode struct {
	value string
	guard guard.ConstructorGuard
}

// NewTrackingCode validates s and wraps it in a TrackingCode.
// The value must be exactly TrackingCodeLength characters from TrackingCodeAlphabet.
//
// Example:
//
//	code, err := order.NewTrackingCode("aZ09xQ")
//	if err != nil {
//	    return err // malformed codes can never match an order
//	}
func NewTrackingCode(s string) (TrackingCode, error) {
	if s == "" {
		return TrackingCode{}, errs.NewValueIsRequiredError("tracking code")
	}
	if len(s) != TrackingCodeLength {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking code",
			fmt.Errorf("length %d is not %d", len(s), TrackingCodeLength),
		)
	}
	for _, r := range s {
		if !strings.ContainsRune(TrackingCodeAlphabet, r) {
			return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause(
				"tracking code",
				fmt.Errorf("%q is not alphanumeric", r),
			)
		}
	}

	return TrackingCode{value: s, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the code was created through NewTrackingCode.
func (c TrackingCode) Validate() error {
	return c.guard.Validate(ErrTrackingCodeIsNotConstructed)
}

// String returns the code as shown to customers.
func (c TrackingCode) String() string {
	return c.value
}

// IsEqual compares two codes. Codes are case sensitive.
func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.value == other.value
}
