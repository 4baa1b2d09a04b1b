package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/delivery"
)

// Notifier defines the outbound customer notification contract.
//
// Every method is best-effort and fire-and-forget: the triggering state
// change is already durably committed before a method is called, so
// implementations must never fail the caller. The boolean result reports
// confirmed acceptance by the provider and exists for logging and tests;
// failures are logged by the implementation and swallowed. Nothing is
// retried or reconciled (accepted at-most-once semantics).
type Notifier interface {
	// DeliveryCreated sends the registration message containing the order id
	// and the share-location link.
	DeliveryCreated(ctx context.Context, d *delivery.Delivery) bool

	// LocationReceived confirms that the customer's position was stored.
	LocationReceived(ctx context.Context, d *delivery.Delivery) bool

	// DeliveryCompleted sends the delivered confirmation.
	DeliveryCompleted(ctx context.Context, d *delivery.Delivery) bool

	// DeliveryFailed sends the failure/support message.
	DeliveryFailed(ctx context.Context, d *delivery.Delivery) bool
}
