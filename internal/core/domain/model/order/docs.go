// Package order provides domain entities and business logic for customer orders
// in the storefront. It implements the Order aggregate root with its shipment
// lifecycle and the public tracking code that identifies it.
//
// The package includes:
//   - Order: The aggregate root that owns the customer's details and shipment status
//   - Status: A closed enumeration of shipment stages with clamped transitions
//   - TrackingCode: The short public identifier customers use to look up an order
//
// Key business rules:
//   - Orders must have a valid tracking code, a customer name, email, reference and a positive quantity
//   - New orders always start as Shipped
//   - Status moves one stage at a time: Shipped <-> In Transit <-> Delivered
//   - Moving past either end is a no-op that still succeeds, so an operator can
//     press "forward" or "back" repeatedly without errors
//   - Delivered is not terminal; operators may revert it to correct mistakes
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
