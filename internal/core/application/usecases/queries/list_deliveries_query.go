package queries

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var ErrListDeliveriesQueryIsNotConstructed = errors.New(
	"ListDeliveriesQuery must be created via NewListDeliveriesQuery constructor",
)

// ListDeliveriesQuery retrieves every delivery in the system, most recently
// registered first.
//
// Example:
//
//	query := NewListDeliveriesQuery()
//	handler := NewListDeliveriesQueryHandler(db)
//
//	records, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list deliveries: %w", err)
//	}
//	fmt.Printf("Found %d deliveries\n", len(records))
type ListDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewListDeliveriesQuery creates a query to retrieve all deliveries.
// This is a parameterless query that fetches the complete list.
func NewListDeliveriesQuery() ListDeliveriesQuery {
	return ListDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListDeliveriesQueryIsNotConstructed if validation fails.
func (q ListDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliveriesQueryIsNotConstructed)
}
