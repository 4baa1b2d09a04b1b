package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/ports"
)

// ChangeStatusCommandHandler persists operator-driven status transitions and
// notifies the customer about terminal outcomes.
type ChangeStatusCommandHandler struct {
	repo     StatusSetter
	notifier ports.Notifier
}

// NewChangeStatusCommandHandler creates a handler for status transitions.
func NewChangeStatusCommandHandler(repo StatusSetter, notifier ports.Notifier) ChangeStatusCommandHandler {
	return ChangeStatusCommandHandler{
		repo:     repo,
		notifier: notifier,
	}
}

// Handle persists the new status verbatim. A completed transition triggers
// the delivered SMS and a failed transition the support SMS; every other
// status value is stored silently. Notifications are best-effort and sent
// only after the write commits. Returns errs.ObjectNotFoundError when the
// order id is unknown.
func (h *ChangeStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeStatusCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	stored, err := h.repo.SetStatus(ctx, cmd.OrderID(), cmd.NewStatus())
	if err != nil {
		return nil, err
	}

	switch stored.Status() {
	case delivery.StatusCompleted:
		h.notifier.DeliveryCompleted(ctx, stored)
	case delivery.StatusFailed:
		h.notifier.DeliveryFailed(ctx, stored)
	}

	return stored, nil
}
