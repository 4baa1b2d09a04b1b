package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrSubmitLocationCommandIsNotConstructed = errors.New(
	"SubmitLocationCommand must be created via NewSubmitLocationCommand constructor",
)

// SubmitLocationCommand represents a customer sharing their GPS position for
// an existing delivery, typically from the browser share page.
//
// Example:
//
//	cmd, err := NewSubmitLocationCommand("ORD-1001", 48.8584, 2.2945)
//	if err != nil {
//	    return fmt.Errorf("invalid location data: %w", err)
//	}
//
//	handler := NewSubmitLocationCommandHandler(repo, notifier)
//	stored, err := handler.Handle(ctx, cmd)
type SubmitLocationCommand struct { //nolint:recvcheck //using for validation
	orderID string
	target  kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewSubmitLocationCommand creates a command carrying a shared position.
// The coordinates must be finite numbers; any finite pair is accepted,
// including negative and zero values.
func NewSubmitLocationCommand(orderID string, lat, lon float64) (SubmitLocationCommand, error) {
	cmd := SubmitLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(lat, lon),
	); err != nil {
		return SubmitLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitLocationCommandIsNotConstructed if validation fails.
func (c SubmitLocationCommand) Validate() error {
	return c.guard.Validate(ErrSubmitLocationCommandIsNotConstructed)
}

// OrderID returns the order identifier the position belongs to.
func (c SubmitLocationCommand) OrderID() string {
	return c.orderID
}

// Target returns the shared GPS position.
func (c SubmitLocationCommand) Target() kernel.GeoPoint {
	return c.target
}

func (c *SubmitLocationCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitLocationCommand) setTarget(lat, lon float64) error {
	target, err := kernel.NewGeoPoint(lat, lon)
	if err != nil {
		return err
	}

	c.target = target
	return nil
}
