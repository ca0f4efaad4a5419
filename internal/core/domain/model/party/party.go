package party

import (
	"errors"
	"strings"

	"lockerbooking/internal/pkg/errs"
	"lockerbooking/internal/pkg/guard"
)

// ErrPartyIsNotConstructed is returned when a zero-value Party is validated.
var ErrPartyIsNotConstructed = errors.New("Party must be created via NewParty or RestoreParty")

// Party is a contact together with its delivery endpoint.
//
// Invariants enforced by NewParty:
//   - name, email and mobile are non-empty
//   - a Locker party has a non-empty lockerID
//   - an Address party has street, city and province
//
// Fields of the non-selected endpoint are kept as given; they are ignored when
// the endpoint is resolved.
type Party struct { //nolint:recvcheck //using for validation
	name         string
	email        string
	mobile       string
	deliveryType DeliveryType
	lockerID     string
	address      StreetAddress
	guard        guard.ConstructorGuard
}

// NewParty validates every field and returns all problems joined together.
//
// Example:
//
//	sender, err := party.NewParty("Acme", "ops@acme.test", "0821234567",
//	    party.Locker, "PUDO123", party.StreetAddress{})
func NewParty(
	name, email, mobile string,
	deliveryType DeliveryType,
	lockerID string,
	address StreetAddress,
) (Party, error) {
	p := RestoreParty(name, email, mobile, deliveryType, lockerID, address)

	if err := errors.Join(
		requireText("name", p.name),
		requireText("email", p.email),
		requireText("mobile", p.mobile),
		p.ValidateEndpoint(),
	); err != nil {
		return Party{}, err
	}

	return p, nil
}

// RestoreParty rebuilds a party from storage without enforcing the field policy.
func RestoreParty(
	name, email, mobile string,
	deliveryType DeliveryType,
	lockerID string,
	address StreetAddress,
) Party {
	return Party{
		name:         strings.TrimSpace(name),
		email:        strings.TrimSpace(email),
		mobile:       strings.TrimSpace(mobile),
		deliveryType: deliveryType,
		lockerID:     strings.TrimSpace(lockerID),
		address:      address,
		guard:        guard.NewConstructorGuard(),
	}
}

func (p Party) Validate() error {
	return p.guard.Validate(ErrPartyIsNotConstructed)
}

// ValidateEndpoint checks the fields that the delivery type makes authoritative.
func (p Party) ValidateEndpoint() error {
	switch p.deliveryType {
	case Locker:
		return requireText("locker id", p.lockerID)
	case Address:
		return errors.Join(
			requireText("address street", p.address.street),
			requireText("address city", p.address.city),
			requireText("address province", p.address.province),
		)
	default:
		return p.deliveryType.Validate()
	}
}

func (p Party) Name() string               { return p.name }
func (p Party) Email() string              { return p.email }
func (p Party) Mobile() string             { return p.mobile }
func (p Party) DeliveryType() DeliveryType { return p.deliveryType }
func (p Party) LockerID() string           { return p.lockerID }
func (p Party) Address() StreetAddress     { return p.address }

func requireText(param, v string) error {
	if strings.TrimSpace(v) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
