package shipment

// Contact is a contact block of the payload.
type Contact struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile_number"`
}

// Payload is the body of a create-shipment call. It is built fresh per attempt
// and never stored.
type Payload struct {
	CollectionAddress             Endpoint `json:"collection_address"`
	SpecialInstructionsCollection string   `json:"special_instructions_collection"`
	CollectionContact             Contact  `json:"collection_contact"`
	DeliveryAddress               Endpoint `json:"delivery_address"`
	SpecialInstructionsDelivery   string   `json:"special_instructions_delivery"`
	DeliveryContact               Contact  `json:"delivery_contact"`
	ServiceLevelCode              string   `json:"service_level_code"`
}
