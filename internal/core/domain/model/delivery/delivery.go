package delivery

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
)

// MinContactLength is the minimum accepted length of a customer phone number.
const MinContactLength = 6

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through the NewDelivery factory method.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
)

// Delivery represents a single tracked parcel delivery, identified by a
// caller-supplied order id. It is the aggregate root for the tracker.
//
// Delivery follows these invariants:
//   - Order id, pickup location, drop location and customer contact are required
//   - Customer contact must be at least MinContactLength characters
//   - Status starts at StatusCreated and is otherwise externally driven
//   - Surrogate id and timestamps are assigned by the store, never by callers
//   - Can only be created through NewDelivery or RestoreDelivery
type Delivery struct {
	// id is the store-assigned surrogate key; zero until persisted
	id int64

	// orderID is the caller-supplied natural key, unique across all deliveries
	orderID string

	pickupLocation  string
	dropLocation    string
	customerContact string

	// status is the current lifecycle state; open string by contract
	status Status

	// target is the customer-shared GPS position (nil until shared)
	target *kernel.GeoPoint

	// createdAt/updatedAt are ISO-8601 UTC strings set by the store
	createdAt string
	updatedAt string

	isConstructed bool
}

// NewDelivery creates a new Delivery with validation. This is the only way to
// create a valid Delivery for persistence, ensuring all invariants hold.
// The delivery starts in StatusCreated with no target position and empty
// timestamps; the store fills id and timestamps on upsert.
func NewDelivery(orderID, pickupLocation, dropLocation, customerContact string) (*Delivery, error) {
	d := &Delivery{
		status:        StatusCreated,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setOrderID(orderID),
		d.setPickupLocation(pickupLocation),
		d.setDropLocation(dropLocation),
		d.setCustomerContact(customerContact),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence. The store is
// trusted for id, status and timestamps; the remaining fields go through the
// same validation as NewDelivery to catch corrupted rows.
func RestoreDelivery(
	id int64,
	orderID, pickupLocation, dropLocation, customerContact string,
	status Status,
	target *kernel.GeoPoint,
	createdAt, updatedAt string,
) (*Delivery, error) {
	d, err := NewDelivery(orderID, pickupLocation, dropLocation, customerContact)
	if err != nil {
		return nil, err
	}

	if target != nil {
		if err := target.Validate(); err != nil {
			return nil, err
		}
	}

	d.id = id
	d.status = status
	d.target = target
	d.createdAt = createdAt
	d.updatedAt = updatedAt
	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}

	return nil
}

// IsEqual compares two deliveries by their natural key.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.orderID == other.orderID
}

// ID returns the store-assigned surrogate key, zero until persisted.
func (d *Delivery) ID() int64 {
	return d.id
}

// OrderID returns the caller-supplied order identifier.
func (d *Delivery) OrderID() string {
	return d.orderID
}

// PickupLocation returns the free-text pickup location.
func (d *Delivery) PickupLocation() string {
	return d.pickupLocation
}

// DropLocation returns the free-text drop location.
func (d *Delivery) DropLocation() string {
	return d.dropLocation
}

// CustomerContact returns the customer phone number.
func (d *Delivery) CustomerContact() string {
	return d.customerContact
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// Target returns the customer-shared GPS position.
// Returns nil until the customer has shared a location.
func (d *Delivery) Target() *kernel.GeoPoint {
	return d.target
}

// CreatedAt returns the ISO-8601 UTC creation timestamp; set exactly once.
func (d *Delivery) CreatedAt() string {
	return d.createdAt
}

// UpdatedAt returns the ISO-8601 UTC timestamp of the last write.
func (d *Delivery) UpdatedAt() string {
	return d.updatedAt
}

func (d *Delivery) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("order_id")
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setPickupLocation(pickupLocation string) error {
	if pickupLocation == "" {
		return errs.NewValueIsRequiredError("pickup_location")
	}
	d.pickupLocation = pickupLocation
	return nil
}

func (d *Delivery) setDropLocation(dropLocation string) error {
	if dropLocation == "" {
		return errs.NewValueIsRequiredError("drop_location")
	}
	d.dropLocation = dropLocation
	return nil
}

func (d *Delivery) setCustomerContact(customerContact string) error {
	if customerContact == "" {
		return errs.NewValueIsRequiredError("customer_contact")
	}
	if len(customerContact) < MinContactLength {
		return errs.NewValueIsInvalidErrorWithCause("customer_contact",
			fmt.Errorf("must be at least %d characters", MinContactLength))
	}
	d.customerContact = customerContact
	return nil
}
