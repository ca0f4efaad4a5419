// Package partydto maps party.Party to the columns shared by the customers and
// senders tables.
package partydto

import (
	"lockerbooking/internal/core/domain/model/party"
)

// PartyDTO is embedded by the customer and sender DTOs.
type PartyDTO struct {
	Name         string     `gorm:"not null"`
	Email        string     `gorm:"not null"`
	Mobile       string     `gorm:"not null"`
	DeliveryType string     `gorm:"type:varchar(16);not null"`
	LockerID     string     `gorm:"type:varchar(64)"`
	Address      AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
}

type AddressDTO struct {
	Street      string
	Suburb      string
	City        string
	Province    string
	PostalCode  string
	FullAddress string
}

func FromDomain(p party.Party) PartyDTO {
	a := p.Address()
	return PartyDTO{
		Name:         p.Name(),
		Email:        p.Email(),
		Mobile:       p.Mobile(),
		DeliveryType: p.DeliveryType().String(),
		LockerID:     p.LockerID(),
		Address: AddressDTO{
			Street:      a.Street(),
			Suburb:      a.Suburb(),
			City:        a.City(),
			Province:    a.Province(),
			PostalCode:  a.PostalCode(),
			FullAddress: a.FullAddress(),
		},
	}
}

// ToDomain restores the party without validation. An unrecognised delivery type
// is kept as party.UnknownDeliveryType and rejected later, when the party is booked.
func ToDomain(dto PartyDTO) party.Party {
	deliveryType, err := party.ParseDeliveryType(dto.DeliveryType)
	if err != nil {
		deliveryType = party.UnknownDeliveryType
	}

	return party.RestoreParty(
		dto.Name,
		dto.Email,
		dto.Mobile,
		deliveryType,
		dto.LockerID,
		party.NewStreetAddress(
			dto.Address.Street,
			dto.Address.Suburb,
			dto.Address.City,
			dto.Address.Province,
			dto.Address.PostalCode,
			dto.Address.FullAddress,
		),
	)
}
