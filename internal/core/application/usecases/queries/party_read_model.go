package queries

// PartyReadModel is the contact and delivery details shared by customers and the sender.
type PartyReadModel struct {
	Name         string
	Email        string
	Mobile       string
	DeliveryType string
	LockerID     string
	Address      AddressReadModel
}

type AddressReadModel struct {
	Street      string
	Suburb      string
	City        string
	Province    string
	PostalCode  string
	FullAddress string
}

const partyColumns = `
	name,
	email,
	mobile,
	delivery_type,
	COALESCE(locker_id, ''),
	COALESCE(address_street, ''),
	COALESCE(address_suburb, ''),
	COALESCE(address_city, ''),
	COALESCE(address_province, ''),
	COALESCE(address_postal_code, ''),
	COALESCE(address_full_address, '')`

// scanTargets returns pointers in the order of partyColumns.
func (p *PartyReadModel) scanTargets() []any {
	return []any{
		&p.Name,
		&p.Email,
		&p.Mobile,
		&p.DeliveryType,
		&p.LockerID,
		&p.Address.Street,
		&p.Address.Suburb,
		&p.Address.City,
		&p.Address.Province,
		&p.Address.PostalCode,
		&p.Address.FullAddress,
	}
}
