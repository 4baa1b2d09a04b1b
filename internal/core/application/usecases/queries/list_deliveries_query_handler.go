package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListDeliveriesQueryHandler retrieves all deliveries from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type ListDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewListDeliveriesQueryHandler creates a handler for delivery list queries.
// Requires a GORM database connection for query execution.
func NewListDeliveriesQueryHandler(db *gorm.DB) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all deliveries.
// Returns a slice of delivery read models ordered by descending surrogate id,
// so the most recently registered delivery comes first. The slice is empty,
// never nil, when the table has no rows.
func (h ListDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListDeliveriesQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records := make([]DeliveryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT ` + deliveryColumns + `
		FROM deliveries
		ORDER BY id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		record, scanErr := scanDelivery(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
