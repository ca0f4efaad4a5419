package services

import (
	"errors"
	"fmt"

	"lockerbooking/internal/core/domain/model/party"
	"lockerbooking/internal/core/domain/model/shipment"
)

// ShipmentRequestBuilder builds the create-shipment payload for one customer.
//
// The result depends only on its inputs: no clock, no I/O, no randomness. Two calls
// with equal arguments produce equal payloads.
//
// Example usage:
//
//	builder := NewShipmentRequestBuilder(NewEndpointResolver())
//	payload, err := builder.Build(sender, customer.Details(), shipment.SizeXS)
//	if errs.IsValidation(err) {
//	    // the customer's endpoint data is incomplete; skip this customer
//	}
type ShipmentRequestBuilder struct {
	resolver EndpointResolver
}

func NewShipmentRequestBuilder(resolver EndpointResolver) ShipmentRequestBuilder {
	return ShipmentRequestBuilder{resolver: resolver}
}

// Build resolves the sender as the collection side and the customer as the
// delivery side. Errors name the side that failed and keep the validation
// error in the chain.
func (b ShipmentRequestBuilder) Build(
	sender party.Party,
	customer party.Party,
	size shipment.PackageSize,
) (shipment.Payload, error) {
	collection, senderErr := b.resolver.Resolve(sender)
	if senderErr != nil {
		senderErr = fmt.Errorf("sender: %w", senderErr)
	}
	delivery, customerErr := b.resolver.Resolve(customer)
	if customerErr != nil {
		customerErr = fmt.Errorf("customer: %w", customerErr)
	}

	if err := errors.Join(senderErr, customerErr, size.Validate()); err != nil {
		return shipment.Payload{}, err
	}

	return shipment.Payload{
		CollectionAddress: collection,
		CollectionContact: contactOf(sender),
		DeliveryAddress:   delivery,
		DeliveryContact:   contactOf(customer),
		ServiceLevelCode:  size.ServiceLevelCode(),
	}, nil
}

func contactOf(p party.Party) shipment.Contact {
	return shipment.Contact{
		Name:   p.Name(),
		Email:  p.Email(),
		Mobile: p.Mobile(),
	}
}
