// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, persistence, and a
// best-effort customer notification once the change is durable.
package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"
)

// Persistence interfaces consumed by command handlers. Each handler names
// only the operation it needs; ports.DeliveryRepository satisfies all of them.
type (
	// DeliveryUpserter registers a delivery, merging into an existing row
	// when the order id is already known.
	DeliveryUpserter interface {
		Upsert(ctx context.Context, aggregate *delivery.Delivery) (*delivery.Delivery, error)
	}

	// LocationSetter stores the customer-shared position and advances the
	// delivery to the location_received status.
	LocationSetter interface {
		SetLocation(ctx context.Context, orderID string, target kernel.GeoPoint) (*delivery.Delivery, error)
	}

	// StatusSetter persists a caller-supplied status verbatim.
	StatusSetter interface {
		SetStatus(ctx context.Context, orderID string, status delivery.Status) (*delivery.Delivery, error)
	}
)
