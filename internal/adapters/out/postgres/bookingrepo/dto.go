// Package bookingrepo persists booking records with GORM.
package bookingrepo

import (
	"encoding/json"
	"time"

	"lockerbooking/internal/core/domain/model/booking"
	"lockerbooking/internal/core/domain/model/kernel"
	"lockerbooking/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

const emptyShipmentData = "null"

// BookingDTO is the row of the bookings table. customer_id is not a foreign key:
// bookings outlive the customers they were made for.
type BookingDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerName string    `gorm:"not null"`
	Size         string    `gorm:"type:varchar(8);not null"`
	Reference    string    `gorm:"type:varchar(128)"`
	Status       string    `gorm:"type:varchar(16);not null"`
	ShipmentData string    `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time `gorm:"not null;index"`
}

func (BookingDTO) TableName() string {
	return "bookings"
}

func fromDomain(b *booking.Booking) BookingDTO {
	data := emptyShipmentData
	if len(b.ShipmentData()) > 0 {
		data = string(b.ShipmentData())
	}

	return BookingDTO{
		ID:           b.ID().Bytes(),
		CustomerID:   b.CustomerID().Bytes(),
		CustomerName: b.CustomerName(),
		Size:         b.Size().String(),
		Reference:    b.Reference(),
		Status:       b.Status().String(),
		ShipmentData: data,
		CreatedAt:    b.CreatedAt(),
	}
}

// ToDomain restores a booking row. It is shared with the booking queries.
func ToDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var data json.RawMessage
	if dto.ShipmentData != "" && dto.ShipmentData != emptyShipmentData {
		data = json.RawMessage(dto.ShipmentData)
	}

	return booking.RestoreBooking(
		id,
		customerID,
		dto.CustomerName,
		shipment.PackageSize(dto.Size),
		dto.Reference,
		booking.Status(dto.Status),
		data,
		dto.CreatedAt,
	), nil
}
