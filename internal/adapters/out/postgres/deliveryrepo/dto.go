// Package deliveryrepo provides the data transfer object and mapping functions
// for delivery persistence. It implements the repository pattern for the
// delivery aggregate, handling the conversion between the domain entity and
// the single "deliveries" table.
package deliveryrepo

import (
	"parceltrack/internal/core/domain/model/delivery"
	"parceltrack/internal/core/domain/model/kernel"
)

// DeliveryDTO represents the database structure for persisting deliveries.
// The surrogate id is store-assigned and monotonically increasing; order_id
// carries the uniqueness constraint the upsert conflict clause targets.
// Timestamps are ISO-8601 UTC strings written by the repository itself, so
// GORM's automatic time tracking is disabled.
type DeliveryDTO struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	OrderID         string `gorm:"uniqueIndex;not null"`
	PickupLocation  string
	DropLocation    string
	CustomerContact string
	Status          string
	TargetLat       *float64
	TargetLon       *float64
	CreatedAt       string `gorm:"autoCreateTime:false"`
	UpdatedAt       string `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for delivery records.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// fromDomain converts a delivery aggregate to its database representation.
func fromDomain(d *delivery.Delivery) DeliveryDTO {
	dto := DeliveryDTO{
		ID:              d.ID(),
		OrderID:         d.OrderID(),
		PickupLocation:  d.PickupLocation(),
		DropLocation:    d.DropLocation(),
		CustomerContact: d.CustomerContact(),
		Status:          d.Status().String(),
		CreatedAt:       d.CreatedAt(),
		UpdatedAt:       d.UpdatedAt(),
	}

	if target := d.Target(); target != nil {
		lat, lon := target.Lat(), target.Lon()
		dto.TargetLat = &lat
		dto.TargetLon = &lon
	}

	return dto
}

// toDomain converts a database row to a delivery aggregate.
// A target position is only reconstructed when both coordinates are present.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	var target *kernel.GeoPoint
	if dto.TargetLat != nil && dto.TargetLon != nil {
		point, err := kernel.NewGeoPoint(*dto.TargetLat, *dto.TargetLon)
		if err != nil {
			return nil, err
		}
		target = &point
	}

	return delivery.RestoreDelivery(
		dto.ID,
		dto.OrderID,
		dto.PickupLocation,
		dto.DropLocation,
		dto.CustomerContact,
		delivery.Status(dto.Status),
		target,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
