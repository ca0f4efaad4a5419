package queries

import (
	"context"
	"database/sql"

	"lockerbooking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const selectCustomers = `SELECT id,` + partyColumns + `, created_at, updated_at FROM customers`

// ListCustomersQueryHandler reads customers with plain SQL.
//
// Example:
//
//	handler := NewListCustomersQueryHandler(db)
//	customers, err := handler.Handle(ctx, NewListCustomersQuery())
type ListCustomersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomersQueryHandler(db *gorm.DB) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{db: db}
}

// Handle returns all customers ordered by creation time, newest first.
func (h ListCustomersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomersQuery,
) ([]CustomerReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectCustomers + ` ORDER BY created_at DESC, id`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]CustomerReadModel, 0)
	for rows.Next() {
		c, scanErr := scanCustomer(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		customers = append(customers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

func scanCustomer(rows *sql.Rows) (CustomerReadModel, error) {
	var c CustomerReadModel
	var id uuid.UUID

	targets := append([]any{&id}, c.scanTargets()...)
	targets = append(targets, &c.CreatedAt, &c.UpdatedAt)
	if err := rows.Scan(targets...); err != nil {
		return CustomerReadModel{}, err
	}

	customerID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CustomerReadModel{}, err
	}
	c.ID = customerID

	return c, nil
}
