// Package customerrepo persists customer aggregates with GORM.
package customerrepo

import (
	"time"

	"lockerbooking/internal/adapters/out/postgres/partydto"
	"lockerbooking/internal/core/domain/model/customer"
	"lockerbooking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO is the row of the customers table.
type CustomerDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	partydto.PartyDTO `gorm:"embedded"`
	CreatedAt         time.Time `gorm:"not null;index"`
	UpdatedAt         time.Time `gorm:"not null"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        c.ID().Bytes(),
		PartyDTO:  partydto.FromDomain(c.Details()),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, partydto.ToDomain(dto.PartyDTO), dto.CreatedAt, dto.UpdatedAt), nil
}
