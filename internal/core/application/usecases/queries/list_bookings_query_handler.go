package queries

import (
	"context"
	"encoding/json"

	"lockerbooking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListBookingsQueryHandler struct {
	db *gorm.DB
}

func NewListBookingsQueryHandler(db *gorm.DB) ListBookingsQueryHandler {
	return ListBookingsQueryHandler{db: db}
}

func (h ListBookingsQueryHandler) Handle(ctx context.Context, query ListBookingsQuery) ([]BookingReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			id,
			customer_id,
			customer_name,
			size,
			COALESCE(reference, ''),
			status,
			shipment_data::text,
			created_at
		FROM bookings`
	var args []any
	if id := query.CustomerID(); id != nil {
		stmt += ` WHERE customer_id = ?`
		args = append(args, id.Bytes())
	}
	stmt += ` ORDER BY created_at DESC, id`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]BookingReadModel, 0)
	for rows.Next() {
		var b BookingReadModel
		var id, customerID uuid.UUID
		var data string

		err = rows.Scan(
			&id,
			&customerID,
			&b.CustomerName,
			&b.Size,
			&b.Reference,
			&b.Status,
			&data,
			&b.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if b.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if b.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if data != "" && data != "null" {
			b.ShipmentData = json.RawMessage(data)
		}

		bookings = append(bookings, b)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}
