package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/ports"
)

// SubmitLocationCommandHandler stores a customer-shared position against an
// existing delivery and confirms the receipt by SMS.
type SubmitLocationCommandHandler struct {
	repo     LocationSetter
	notifier ports.Notifier
}

// NewSubmitLocationCommandHandler creates a handler for shared positions.
func NewSubmitLocationCommandHandler(repo LocationSetter, notifier ports.Notifier) SubmitLocationCommandHandler {
	return SubmitLocationCommandHandler{
		repo:     repo,
		notifier: notifier,
	}
}

// Handle processes the shared position.
// The repository stores the coordinates and moves the delivery to
// location_received in one transaction; the confirmation SMS is sent
// best-effort afterwards. Returns errs.ObjectNotFoundError when the order id
// is unknown, in which case nothing is written and no SMS is attempted.
func (h *SubmitLocationCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitLocationCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	stored, err := h.repo.SetLocation(ctx, cmd.OrderID(), cmd.Target())
	if err != nil {
		return nil, err
	}

	h.notifier.LocationReceived(ctx, stored)

	return stored, nil
}
