package commands

import (
	"errors"
	"slices"

	"lockerbooking/internal/core/domain/model/kernel"
	"lockerbooking/internal/core/domain/model/shipment"
	"lockerbooking/internal/pkg/errs"
	"lockerbooking/internal/pkg/guard"
)

var ErrCreateBookingsCommandIsNotConstructed = errors.New(
	"CreateBookingsCommand must be created via NewCreateBookingsCommand constructor",
)

// CreateBookingsCommand selects the customers of one batch and the package size for each.
//
// Every selected customer gets defaultSize unless sizes holds an override for it.
// Repeated ids are booked once, at their first position.
//
// Example:
//
//	cmd, err := NewCreateBookingsCommand(
//	    []kernel.UUID{janeID, bobID},
//	    shipment.SizeXS,
//	    map[kernel.UUID]shipment.PackageSize{bobID: shipment.SizeL},
//	)
type CreateBookingsCommand struct { //nolint:recvcheck //using for validation
	customerIDs []kernel.UUID
	defaultSize shipment.PackageSize
	sizes       map[kernel.UUID]shipment.PackageSize

	guard guard.ConstructorGuard
}

// NewCreateBookingsCommand returns errs.PreconditionFailedError for an empty
// selection and validation errors for bad ids or sizes.
func NewCreateBookingsCommand(
	customerIDs []kernel.UUID,
	defaultSize shipment.PackageSize,
	sizes map[kernel.UUID]shipment.PackageSize,
) (CreateBookingsCommand, error) {
	if len(customerIDs) == 0 {
		return CreateBookingsCommand{}, errs.NewPreconditionFailedError("no customers selected")
	}

	cmd := CreateBookingsCommand{
		sizes: make(map[kernel.UUID]shipment.PackageSize, len(sizes)),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerIDs(customerIDs),
		cmd.setDefaultSize(defaultSize),
		cmd.setSizes(sizes),
	); err != nil {
		return CreateBookingsCommand{}, err
	}

	return cmd, nil
}

func (c CreateBookingsCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingsCommandIsNotConstructed)
}

func (c CreateBookingsCommand) CustomerIDs() []kernel.UUID {
	return slices.Clone(c.customerIDs)
}

func (c CreateBookingsCommand) DefaultSize() shipment.PackageSize {
	return c.defaultSize
}

// SizeOf returns the override for id, or the default size.
func (c CreateBookingsCommand) SizeOf(id kernel.UUID) shipment.PackageSize {
	if size, ok := c.sizes[id]; ok {
		return size
	}
	return c.defaultSize
}

func (c *CreateBookingsCommand) setCustomerIDs(ids []kernel.UUID) error {
	seen := make(map[kernel.UUID]struct{}, len(ids))
	unique := make([]kernel.UUID, 0, len(ids))

	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("customer id", err)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	c.customerIDs = unique
	return nil
}

func (c *CreateBookingsCommand) setDefaultSize(size shipment.PackageSize) error {
	if err := size.Validate(); err != nil {
		return err
	}
	c.defaultSize = size
	return nil
}

func (c *CreateBookingsCommand) setSizes(sizes map[kernel.UUID]shipment.PackageSize) error {
	var problems []error
	for id, size := range sizes {
		if err := size.Validate(); err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("size for customer "+id.String(), err))
			continue
		}
		c.sizes[id] = size
	}
	return errors.Join(problems...)
}
