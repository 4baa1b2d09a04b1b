package queries

import (
	"context"

	"gorm.io/gorm"
)

// StatusCountsQueryHandler aggregates delivery counts per status value.
type StatusCountsQueryHandler struct {
	db *gorm.DB
}

// NewStatusCountsQueryHandler creates a handler for the status aggregation.
// Requires a GORM database connection for query execution.
func NewStatusCountsQueryHandler(db *gorm.DB) StatusCountsQueryHandler {
	return StatusCountsQueryHandler{db: db}
}

// Handle executes the aggregation.
// Returns one StatusCount per distinct status value, sorted by status for
// stable log output. Statuses are open strings, so the result is not limited
// to the lifecycle constants.
func (h StatusCountsQueryHandler) Handle(
	ctx context.Context,
	query StatusCountsQuery,
) ([]StatusCount, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make([]StatusCount, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM deliveries
		GROUP BY status
		ORDER BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var count StatusCount
		if err = rows.Scan(&count.Status, &count.Count); err != nil {
			return nil, err
		}
		counts = append(counts, count)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
