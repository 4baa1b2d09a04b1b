package commands

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
	ErrOrderIDIsRequired         = errors.New("order_id is required")
	ErrPickupLocationIsRequired  = errors.New("pickup_location is required")
	ErrDropLocationIsRequired    = errors.New("drop_location is required")
	ErrCustomerContactIsRequired = errors.New("customer_contact is required")
)

// CreateDeliveryCommand represents a request to register a parcel delivery.
// The order id is a caller-supplied natural key: submitting the same id again
// updates the existing delivery instead of creating a duplicate.
//
// Example:
//
//	cmd, err := NewCreateDeliveryCommand("ORD-1001", "Warehouse 4", "12 Main Street", "+15551234567")
//	if err != nil {
//	    return fmt.Errorf("invalid delivery data: %w", err)
//	}
//
//	handler := NewCreateDeliveryCommandHandler(repo, notifier)
//	stored, err := handler.Handle(ctx, cmd)
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID         string
	pickupLocation  string
	dropLocation    string
	customerContact string

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a parcel delivery.
// Validates that all four fields are non-empty; the contact length rule is
// enforced by the delivery aggregate itself.
func NewCreateDeliveryCommand(
	orderID, pickupLocation, dropLocation, customerContact string,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPickupLocation(pickupLocation),
		cmd.setDropLocation(dropLocation),
		cmd.setCustomerContact(customerContact),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryCommandIsNotConstructed if validation fails.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// OrderID returns the caller-supplied order identifier.
func (c CreateDeliveryCommand) OrderID() string {
	return c.orderID
}

// PickupLocation returns the free-text pickup location.
func (c CreateDeliveryCommand) PickupLocation() string {
	return c.pickupLocation
}

// DropLocation returns the free-text drop location.
func (c CreateDeliveryCommand) DropLocation() string {
	return c.dropLocation
}

// CustomerContact returns the customer's phone number.
func (c CreateDeliveryCommand) CustomerContact() string {
	return c.customerContact
}

func (c *CreateDeliveryCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *CreateDeliveryCommand) setPickupLocation(pickupLocation string) error {
	if pickupLocation == "" {
		return ErrPickupLocationIsRequired
	}

	c.pickupLocation = pickupLocation
	return nil
}

func (c *CreateDeliveryCommand) setDropLocation(dropLocation string) error {
	if dropLocation == "" {
		return ErrDropLocationIsRequired
	}

	c.dropLocation = dropLocation
	return nil
}

func (c *CreateDeliveryCommand) setCustomerContact(customerContact string) error {
	if customerContact == "" {
		return ErrCustomerContactIsRequired
	}

	c.customerContact = customerContact
	return nil
}
