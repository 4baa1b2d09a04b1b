package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
// Upsert atomicity is delegated to PostgreSQL's ON CONFLICT clause on the
// order_id uniqueness constraint; the read-then-update operations run inside
// a single transaction.
type GormDeliveryRepository struct {
	db *gorm.DB

	// now is swappable for tests; defaults to time.Now
	now func() time.Time
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:  db,
		now: time.Now,
	}
}

// timestamp returns the current time as an ISO-8601 UTC string, the
// persistence format for created_at and updated_at.
func (r *GormDeliveryRepository) timestamp() string {
	return r.now().UTC().Format(time.RFC3339Nano)
}

// Upsert inserts the delivery or, on an order_id conflict, overwrites its
// pickup, drop and contact fields and refreshes updated_at. Status,
// created_at and the target position of an existing row are left untouched.
// The resulting row is re-read so the caller always sees store-assigned
// fields regardless of which branch the conflict clause took.
func (r *GormDeliveryRepository) Upsert(ctx context.Context, aggregate *delivery.Delivery) (*delivery.Delivery, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	now := r.timestamp()
	dto := fromDomain(aggregate)
	dto.ID = 0
	dto.Status = delivery.StatusCreated.String()
	dto.CreatedAt = now
	dto.UpdatedAt = now

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "order_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"pickup_location",
			"drop_location",
			"customer_contact",
			"updated_at",
		}),
	}).Create(&dto).Error
	if err != nil {
		return nil, err
	}

	return r.GetByOrderID(ctx, aggregate.OrderID())
}

// GetByOrderID retrieves a delivery by its natural key.
func (r *GormDeliveryRepository) GetByOrderID(ctx context.Context, orderID string) (*delivery.Delivery, error) {
	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order_id", orderID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// List retrieves all deliveries, most recently inserted first.
func (r *GormDeliveryRepository) List(ctx context.Context) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).Order("id DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}

// SetLocation stores the customer-shared position and moves the delivery to
// "location_received". No write happens when the order id is unknown.
func (r *GormDeliveryRepository) SetLocation(
	ctx context.Context, orderID string, target kernel.GeoPoint,
) (*delivery.Delivery, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}

	lat, lon := target.Lat(), target.Lon()
	return r.updateExisting(ctx, orderID, map[string]any{
		"target_lat": lat,
		"target_lon": lon,
		"status":     delivery.StatusLocationReceived.String(),
	})
}

// SetStatus persists the supplied status verbatim.
// No write happens when the order id is unknown.
func (r *GormDeliveryRepository) SetStatus(
	ctx context.Context, orderID string, status delivery.Status,
) (*delivery.Delivery, error) {
	if status == "" {
		return nil, errs.NewValueIsRequiredError("status")
	}

	return r.updateExisting(ctx, orderID, map[string]any{
		"status": status.String(),
	})
}

// updateExisting applies the given column assignments plus a fresh updated_at
// to the row identified by orderID, inside one transaction. Returns
// ObjectNotFoundError before any write when the row does not exist.
func (r *GormDeliveryRepository) updateExisting(
	ctx context.Context, orderID string, assignments map[string]any,
) (*delivery.Delivery, error) {
	var dto DeliveryDTO

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&dto, "order_id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("order_id", orderID)
			}
			return err
		}

		assignments["updated_at"] = r.timestamp()
		if err := tx.Model(&DeliveryDTO{}).Where("order_id = ?", orderID).Updates(assignments).Error; err != nil {
			return err
		}

		return tx.First(&dto, "order_id = ?", orderID).Error
	})
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}
