package services

import (
	"lockerbooking/internal/core/domain/model/party"
	"lockerbooking/internal/core/domain/model/shipment"
)

// EndpointResolver maps a party to the endpoint the locker network understands.
//
// Business rules:
//   - Locker parties resolve to a TerminalEndpoint carrying the locker code as-is
//   - Address parties resolve to a StructuredEndpoint (street -> line1, suburb -> line2)
//   - The required-field policy of party.NewParty is enforced again, since stored
//     parties are restored without validation
//
// Whether a locker code exists is not checked here; the network rejects unknown
// codes when the shipment is submitted.
type EndpointResolver struct{}

func NewEndpointResolver() EndpointResolver {
	return EndpointResolver{}
}

// Resolve returns the endpoint for p, or a validation error wrapping
// errs.ErrValueIsRequired / errs.ErrValueIsInvalid.
func (EndpointResolver) Resolve(p party.Party) (shipment.Endpoint, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := p.ValidateEndpoint(); err != nil {
		return nil, err
	}

	if p.DeliveryType() == party.Locker {
		return shipment.TerminalEndpoint{Code: p.LockerID()}, nil
	}

	a := p.Address()
	return shipment.StructuredEndpoint{
		Line1:      a.Street(),
		Line2:      a.Suburb(),
		City:       a.City(),
		Province:   a.Province(),
		PostalCode: a.PostalCode(),
	}, nil
}
