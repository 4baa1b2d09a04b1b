// Package delivery provides the domain entity and business rules for parcel
// delivery tracking. It implements the Delivery aggregate root with its open
// status lifecycle.
//
// The package includes:
//   - Delivery: The aggregate root holding identity, route, contact and lifecycle state
//   - Status: The open-string lifecycle value with the system-assigned constants
//
// Key business rules:
//   - Deliveries must have an order id, pickup, drop and a contact of at least six characters
//   - Status starts at "created"; later values are externally driven and not validated
//   - Only "completed" and "failed" trigger customer notifications
//   - Timestamps and the surrogate key are owned by the store, never by callers
//
// The package follows Domain-Driven Design principles, providing validation
// and encapsulation so business rules are enforced at construction time.
package delivery
