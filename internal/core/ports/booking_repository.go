package ports

import (
	"context"

	"lockerbooking/internal/core/domain/model/booking"
	"lockerbooking/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract for booking aggregates.
// Bookings are append-only from the core's point of view.
type BookingRepository interface {
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Delete removes a booking record. The shipment itself is not cancelled.
	// Returns errs.ObjectNotFoundError if the booking does not exist.
	Delete(ctx context.Context, id kernel.UUID) error
}
