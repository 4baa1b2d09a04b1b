package queries

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var ErrStatusCountsQueryIsNotConstructed = errors.New(
	"StatusCountsQuery must be created via NewStatusCountsQuery constructor",
)

// StatusCountsQuery aggregates deliveries by status. Used by the periodic
// stats job to log the state of the fleet; carries no parameters.
type StatusCountsQuery struct {
	guard guard.ConstructorGuard
}

// NewStatusCountsQuery creates a query for per-status delivery counts.
func NewStatusCountsQuery() StatusCountsQuery {
	return StatusCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrStatusCountsQueryIsNotConstructed if validation fails.
func (q StatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrStatusCountsQueryIsNotConstructed)
}

// StatusCount is one row of the per-status aggregation.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}
