package queries

import (
	"context"

	"lockerbooking/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetCustomerQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when no customer has the id.
func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (CustomerReadModel, error) {
	if err := query.Validate(); err != nil {
		return CustomerReadModel{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectCustomers+` WHERE id = ?`, query.ID().Bytes()).Rows()
	if err != nil {
		return CustomerReadModel{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return CustomerReadModel{}, err
		}
		return CustomerReadModel{}, errs.NewObjectNotFoundError("customer", query.ID().String())
	}

	return scanCustomer(rows)
}
