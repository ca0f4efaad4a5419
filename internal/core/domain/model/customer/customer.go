package customer

import (
	"errors"
	"time"

	"lockerbooking/internal/core/domain/model/kernel"
	"lockerbooking/internal/core/domain/model/party"
	"lockerbooking/internal/pkg/errs"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer")

// Customer is the aggregate root for a booking recipient.
//
// The contact and endpoint live in the embedded party.Party; NewCustomer
// expects a party built by party.NewParty so the field policy already holds.
type Customer struct {
	id        kernel.UUID
	details   party.Party
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

func NewCustomer(id kernel.UUID, details party.Party, now time.Time) (*Customer, error) {
	c := &Customer{
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setDetails(details),
		requireTime("created at", now),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rebuilds a stored customer. No field policy is enforced.
func RestoreCustomer(id kernel.UUID, details party.Party, createdAt, updatedAt time.Time) *Customer {
	return &Customer{
		id:            id,
		details:       details,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Customer) ID() kernel.UUID      { return c.id }
func (c *Customer) Details() party.Party { return c.details }
func (c *Customer) Name() string         { return c.details.Name() }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

// Update replaces contact and endpoint details.
func (c *Customer) Update(details party.Party, now time.Time) error {
	if err := c.setDetails(details); err != nil {
		return err
	}
	c.updatedAt = now
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setDetails(details party.Party) error {
	if err := details.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer details", err)
	}
	c.details = details
	return nil
}

func requireTime(param string, t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
