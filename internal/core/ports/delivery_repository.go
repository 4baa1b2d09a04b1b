package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Every method is atomic: upserts rely on the store's native conflict
// resolution on the order_id uniqueness constraint, and the read-then-update
// methods run inside a single transaction. Timestamps are owned by the
// implementation and refreshed on every write.
type DeliveryRepository interface {
	// Upsert inserts the delivery, or, when a row with the same order id
	// already exists, overwrites its pickup, drop and contact fields while
	// leaving status, target position and created_at untouched.
	// Returns the full resulting row.
	Upsert(ctx context.Context, aggregate *delivery.Delivery) (*delivery.Delivery, error)

	// GetByOrderID retrieves a delivery by its natural key.
	// Returns errs.ObjectNotFoundError when absent.
	GetByOrderID(ctx context.Context, orderID string) (*delivery.Delivery, error)

	// List retrieves all deliveries ordered by descending surrogate id,
	// most recently inserted first.
	List(ctx context.Context) ([]*delivery.Delivery, error)

	// SetLocation stores the customer-shared position and moves the delivery
	// to "location_received". Returns errs.ObjectNotFoundError without
	// writing when the order id is unknown.
	SetLocation(ctx context.Context, orderID string, target kernel.GeoPoint) (*delivery.Delivery, error)

	// SetStatus persists the supplied status verbatim.
	// Returns errs.ObjectNotFoundError without writing when the order id is unknown.
	SetStatus(ctx context.Context, orderID string, status delivery.Status) (*delivery.Delivery, error)
}
