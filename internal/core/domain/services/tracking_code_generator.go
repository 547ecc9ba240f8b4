package services

import (
	"fmt"

	"storefront/internal/core/domain/model/order"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// TrackingCodeGenerator produces new tracking codes.
type TrackingCodeGenerator interface {
	Generate() (order.TrackingCode, error)
}

// RandomTrackingCodeGenerator draws codes uniformly from order.TrackingCodeAlphabet
// using a cryptographically secure source. The tracking code is the only thing
// protecting the tracking page, so it must not be guessable from other codes.
//
// Example usage:
//
//	gen := NewRandomTrackingCodeGenerator()
//	code, err := gen.Generate()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(code) // e.g. "q3ZxT0"
type RandomTrackingCodeGenerator struct{}

// NewRandomTrackingCodeGenerator creates a RandomTrackingCodeGenerator.
func NewRandomTrackingCodeGenerator() RandomTrackingCodeGenerator {
	return RandomTrackingCodeGenerator{}
}

// Generate returns a new random tracking code.
func (RandomTrackingCodeGenerator) Generate() (order.TrackingCode, error) {
	raw, err := gonanoid.Generate(order.TrackingCodeAlphabet, order.TrackingCodeLength)
	if err != nil {
		return order.TrackingCode{}, fmt.Errorf("generate tracking code: %w", err)
	}

	return order.NewTrackingCode(raw)
}
