package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/ports"
)

// CreateDeliveryCommandHandler handles the business logic for delivery
// registration. Persists the delivery through an upsert keyed on the order id
// and sends the share-location SMS once the row is durable.
//
// Example:
//
//	handler := NewCreateDeliveryCommandHandler(repo, notifier)
//	cmd, _ := NewCreateDeliveryCommand("ORD-1001", "Warehouse 4", "12 Main Street", "+15551234567")
//
//	stored, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("delivery registration failed: %w", err)
//	}
//	fmt.Printf("Delivery %s registered in status %s", stored.OrderID(), stored.Status())
type CreateDeliveryCommandHandler struct {
	repo     DeliveryUpserter
	notifier ports.Notifier
}

// NewCreateDeliveryCommandHandler creates a handler for delivery registration.
func NewCreateDeliveryCommandHandler(repo DeliveryUpserter, notifier ports.Notifier) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		repo:     repo,
		notifier: notifier,
	}
}

// Handle processes the delivery registration command.
// Builds the aggregate, upserts it on the order id, then notifies the
// customer. The notification is best-effort: a declined SMS never fails the
// registration, so the returned delivery always reflects the stored row.
func (h *CreateDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd CreateDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := delivery.NewDelivery(
		cmd.OrderID(),
		cmd.PickupLocation(),
		cmd.DropLocation(),
		cmd.CustomerContact(),
	)
	if err != nil {
		return nil, err
	}

	stored, err := h.repo.Upsert(ctx, aggregate)
	if err != nil {
		return nil, err
	}

	h.notifier.DeliveryCreated(ctx, stored)

	return stored, nil
}
