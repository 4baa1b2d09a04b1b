package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/pkg/guard"
)

var (
	ErrChangeStatusCommandIsNotConstructed = errors.New(
		"ChangeStatusCommand must be created via NewChangeStatusCommand constructor",
	)
	ErrNewStatusIsRequired = errors.New("new_status is required")
)

// ChangeStatusCommand represents an operator-driven status transition.
// The status value is an open string: any non-empty value is persisted
// verbatim, and only the completed and failed statuses trigger a customer SMS.
//
// Example:
//
//	cmd, err := NewChangeStatusCommand("ORD-1001", delivery.StatusCompleted)
//	if err != nil {
//	    return fmt.Errorf("invalid status change: %w", err)
//	}
//
//	handler := NewChangeStatusCommandHandler(repo, notifier)
//	stored, err := handler.Handle(ctx, cmd)
type ChangeStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   string
	newStatus delivery.Status

	guard guard.ConstructorGuard
}

// NewChangeStatusCommand creates a command to move a delivery to a new status.
// Requires a non-empty order id and status; the status value itself is not
// restricted to the known lifecycle constants.
func NewChangeStatusCommand(orderID string, newStatus delivery.Status) (ChangeStatusCommand, error) {
	cmd := ChangeStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return ChangeStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeStatusCommandIsNotConstructed if validation fails.
func (c ChangeStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeStatusCommandIsNotConstructed)
}

// OrderID returns the order identifier to transition.
func (c ChangeStatusCommand) OrderID() string {
	return c.orderID
}

// NewStatus returns the status to persist.
func (c ChangeStatusCommand) NewStatus() delivery.Status {
	return c.newStatus
}

func (c *ChangeStatusCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeStatusCommand) setNewStatus(newStatus delivery.Status) error {
	if newStatus == "" {
		return ErrNewStatusIsRequired
	}

	c.newStatus = newStatus
	return nil
}
