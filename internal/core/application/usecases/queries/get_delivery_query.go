// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var (
	ErrGetDeliveryQueryIsNotConstructed = errors.New(
		"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
	)
	ErrOrderIDIsRequired = errors.New("order_id is required")
)

// GetDeliveryQuery retrieves a single delivery by its order id.
//
// Example:
//
//	query, err := NewGetDeliveryQuery("ORD-1001")
//	if err != nil {
//	    return fmt.Errorf("invalid query: %w", err)
//	}
//
//	handler := NewGetDeliveryQueryHandler(db)
//	record, err := handler.Handle(ctx, query)
type GetDeliveryQuery struct { //nolint:recvcheck //using for validation
	orderID string

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuery creates a query for a single delivery lookup.
// Requires a non-empty order id.
func NewGetDeliveryQuery(orderID string) (GetDeliveryQuery, error) {
	query := GetDeliveryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetDeliveryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDeliveryQueryIsNotConstructed if validation fails.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// OrderID returns the order identifier to look up.
func (q GetDeliveryQuery) OrderID() string {
	return q.orderID
}

func (q *GetDeliveryQuery) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	q.orderID = orderID
	return nil
}

// DeliveryResponse represents a delivery row in the read model, mirroring the
// deliveries table column for column. Target coordinates stay null until the
// customer shares a position, so they serialize as JSON null rather than zero.
type DeliveryResponse struct {
	ID              int64    `json:"id"`
	OrderID         string   `json:"order_id"`
	PickupLocation  string   `json:"pickup_location"`
	DropLocation    string   `json:"drop_location"`
	CustomerContact string   `json:"customer_contact"`
	Status          string   `json:"status"`
	TargetLat       *float64 `json:"target_lat"`
	TargetLon       *float64 `json:"target_lon"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
}
