package booking

import (
	"encoding/json"
	"errors"
	"time"

	"lockerbooking/internal/core/domain/model/kernel"
	"lockerbooking/internal/core/domain/model/shipment"
	"lockerbooking/internal/pkg/errs"
)

var ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking or RestoreBooking")

// Booking is the aggregate root for an accepted shipment.
//
// Invariants enforced by NewBooking:
//   - id and customerID are valid
//   - customerName is a non-empty snapshot of the customer's name at booking time
//   - size is one of the known package sizes
//   - status is Created
type Booking struct {
	id           kernel.UUID
	customerID   kernel.UUID
	customerName string
	size         shipment.PackageSize
	reference    string
	status       Status
	shipmentData json.RawMessage
	createdAt    time.Time

	isConstructed bool
}

// NewBooking records a shipment the network accepted. The reference and raw
// response come from result as-is.
func NewBooking(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	size shipment.PackageSize,
	result shipment.Result,
	now time.Time,
) (*Booking, error) {
	b := &Booking{
		customerName:  customerName,
		reference:     result.Reference,
		status:        Created,
		shipmentData:  result.Raw,
		createdAt:     now,
		isConstructed: true,
	}

	var nameErr, timeErr error
	if customerName == "" {
		nameErr = errs.NewValueIsRequiredError("customer name")
	}
	if now.IsZero() {
		timeErr = errs.NewValueIsRequiredError("created at")
	}

	if err := errors.Join(
		b.setID(id),
		b.setCustomerID(customerID),
		b.setSize(size),
		nameErr,
		timeErr,
	); err != nil {
		return nil, err
	}

	return b, nil
}

func RestoreBooking(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	size shipment.PackageSize,
	reference string,
	status Status,
	shipmentData json.RawMessage,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		customerID:    customerID,
		customerName:  customerName,
		size:          size,
		reference:     reference,
		status:        status,
		shipmentData:  shipmentData,
		createdAt:     createdAt,
		isConstructed: true,
	}
}

func (b *Booking) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBookingIsNotConstructed
	}
	return nil
}

func (b *Booking) ID() kernel.UUID               { return b.id }
func (b *Booking) CustomerID() kernel.UUID       { return b.customerID }
func (b *Booking) CustomerName() string          { return b.customerName }
func (b *Booking) Size() shipment.PackageSize    { return b.size }
func (b *Booking) Reference() string             { return b.reference }
func (b *Booking) Status() Status                { return b.status }
func (b *Booking) ShipmentData() json.RawMessage { return b.shipmentData }
func (b *Booking) CreatedAt() time.Time          { return b.createdAt }

func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Booking) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	b.customerID = id
	return nil
}

func (b *Booking) setSize(size shipment.PackageSize) error {
	if err := size.Validate(); err != nil {
		return err
	}
	b.size = size
	return nil
}
