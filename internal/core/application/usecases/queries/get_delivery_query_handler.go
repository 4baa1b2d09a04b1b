package queries

import (
	"context"
	"database/sql"

	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

const deliveryColumns = `
	id,
	order_id,
	pickup_location,
	drop_location,
	customer_contact,
	status,
	target_lat,
	target_lon,
	created_at,
	updated_at
`

// GetDeliveryQueryHandler retrieves a single delivery from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for single delivery lookups.
// Requires a GORM database connection for query execution.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle executes the lookup by order id.
// Returns errs.ObjectNotFoundError when no delivery carries the order id.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+deliveryColumns+`
		FROM deliveries
		WHERE order_id = ?
	`, query.OrderID()).Rows()
	if err != nil {
		return DeliveryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DeliveryResponse{}, err
		}
		return DeliveryResponse{}, errs.NewObjectNotFoundError("order_id", query.OrderID())
	}

	record, err := scanDelivery(rows)
	if err != nil {
		return DeliveryResponse{}, err
	}

	return record, rows.Err()
}

// scanDelivery maps the current row onto the read model.
// Null target coordinates stay nil pointers.
func scanDelivery(rows *sql.Rows) (DeliveryResponse, error) {
	var record DeliveryResponse
	var targetLat, targetLon sql.NullFloat64

	err := rows.Scan(
		&record.ID,
		&record.OrderID,
		&record.PickupLocation,
		&record.DropLocation,
		&record.CustomerContact,
		&record.Status,
		&targetLat,
		&targetLon,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return DeliveryResponse{}, err
	}

	if targetLat.Valid {
		record.TargetLat = &targetLat.Float64
	}
	if targetLon.Valid {
		record.TargetLon = &targetLon.Float64
	}

	return record, nil
}
