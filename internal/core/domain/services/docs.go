// Package services provides domain services for the storefront: behavior that
// belongs to the domain but not to a single aggregate.
//
// The package includes:
//   - TrackingCodeGenerator: produces random public tracking codes for new orders
//
// Generators do not check uniqueness. The order store rejects duplicates and the
// checkout use case retries with a fresh code.
package services
