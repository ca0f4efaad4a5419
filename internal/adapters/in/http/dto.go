package http

import (
	"time"

	"lockerbooking/internal/core/application/usecases/commands"
	"lockerbooking/internal/core/application/usecases/queries"
	"lockerbooking/internal/core/domain/model/party"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type AddressRequest struct {
	Street      string `json:"street"`
	Suburb      string `json:"suburb"`
	City        string `json:"city"`
	Province    string `json:"province"`
	PostalCode  string `json:"postalCode"`
	FullAddress string `json:"fullAddress"`
}

// PartyRequest carries customer or sender details. The conditional rules
// (locker id for lockers, street, city and province for addresses) are
// enforced by the domain and reported as 422.
type PartyRequest struct {
	Name         string          `json:"name" validate:"required,max=200"`
	Email        string          `json:"email" validate:"required,email"`
	Mobile       string          `json:"mobile" validate:"required,max=32"`
	DeliveryType string          `json:"deliveryType" validate:"required"`
	LockerID     string          `json:"lockerId" validate:"max=64"`
	Address      *AddressRequest `json:"address"`
}

func (r PartyRequest) toDomain() (party.Party, error) {
	deliveryType, err := party.ParseDeliveryType(r.DeliveryType)
	if err != nil {
		return party.Party{}, err
	}

	var address party.StreetAddress
	if r.Address != nil {
		address = party.NewStreetAddress(
			r.Address.Street,
			r.Address.Suburb,
			r.Address.City,
			r.Address.Province,
			r.Address.PostalCode,
			r.Address.FullAddress,
		)
	}

	return party.NewParty(r.Name, r.Email, r.Mobile, deliveryType, r.LockerID, address)
}

type AddressResponse struct {
	Street      string `json:"street"`
	Suburb      string `json:"suburb"`
	City        string `json:"city"`
	Province    string `json:"province"`
	PostalCode  string `json:"postalCode"`
	FullAddress string `json:"fullAddress"`
}

type PartyResponse struct {
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Mobile       string          `json:"mobile"`
	DeliveryType string          `json:"deliveryType"`
	LockerID     string          `json:"lockerId,omitempty"`
	Address      AddressResponse `json:"address"`
}

func toPartyResponse(p queries.PartyReadModel) PartyResponse {
	return PartyResponse{
		Name:         p.Name,
		Email:        p.Email,
		Mobile:       p.Mobile,
		DeliveryType: p.DeliveryType,
		LockerID:     p.LockerID,
		Address: AddressResponse{
			Street:      p.Address.Street,
			Suburb:      p.Address.Suburb,
			City:        p.Address.City,
			Province:    p.Address.Province,
			PostalCode:  p.Address.PostalCode,
			FullAddress: p.Address.FullAddress,
		},
	}
}

type CustomerResponse struct {
	ID string `json:"id"`
	PartyResponse
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toCustomerResponse(c queries.CustomerReadModel) CustomerResponse {
	return CustomerResponse{
		ID:            c.ID.String(),
		PartyResponse: toPartyResponse(c.PartyReadModel),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

type SenderResponse struct {
	PartyResponse
	UpdatedAt time.Time `json:"updatedAt"`
}

type BookingResponse struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customerId"`
	CustomerName string    `json:"customerName"`
	Size         string    `json:"size"`
	Reference    string    `json:"reference"`
	Status       string    `json:"status"`
	ShipmentData any       `json:"shipmentData,omitempty" swaggertype:"object"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toBookingResponse(b queries.BookingReadModel) BookingResponse {
	resp := BookingResponse{
		ID:           b.ID.String(),
		CustomerID:   b.CustomerID.String(),
		CustomerName: b.CustomerName,
		Size:         b.Size,
		Reference:    b.Reference,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
	}
	if len(b.ShipmentData) > 0 {
		resp.ShipmentData = b.ShipmentData
	}
	return resp
}

// CreateBookingsRequest selects the customers of one batch. DefaultSize falls
// back to the server's configured size; Sizes overrides it per customer id.
type CreateBookingsRequest struct {
	CustomerIDs []string          `json:"customerIds" validate:"dive,uuid"`
	DefaultSize string            `json:"defaultSize" validate:"omitempty,oneof=XS S M L xs s m l"`
	Sizes       map[string]string `json:"sizes" validate:"dive,keys,uuid,endkeys,oneof=XS S M L xs s m l"`
}

type BookingOutcomeResponse struct {
	CustomerID   string `json:"customerId"`
	CustomerName string `json:"customerName"`
	Size         string `json:"size"`
	Destination  string `json:"destination"`
	Succeeded    bool   `json:"succeeded"`
	BookingID    string `json:"bookingId,omitempty"`
	Reference    string `json:"reference,omitempty"`
	Status       string `json:"status,omitempty"`
	Error        string `json:"error,omitempty"`
}

type FailureResponse struct {
	CustomerName string `json:"customerName"`
	Reason       string `json:"reason"`
}

type BatchResponse struct {
	Outcome   string                   `json:"outcome"`
	Message   string                   `json:"message"`
	Succeeded int                      `json:"succeeded"`
	Failed    int                      `json:"failed"`
	Results   []BookingOutcomeResponse `json:"results"`
	Failures  []FailureResponse        `json:"failures"`
}

func toBatchResponse(r commands.BatchResult) BatchResponse {
	resp := BatchResponse{
		Outcome:   string(r.Outcome()),
		Message:   r.Message(),
		Succeeded: r.Succeeded(),
		Failed:    r.Failed(),
		Results:   make([]BookingOutcomeResponse, 0, len(r.Outcomes)),
		Failures:  make([]FailureResponse, 0),
	}

	for _, o := range r.Outcomes {
		item := BookingOutcomeResponse{
			CustomerID:   o.CustomerID.String(),
			CustomerName: o.CustomerName,
			Size:         o.Size.String(),
			Destination:  o.Destination,
			Succeeded:    o.Succeeded(),
			Error:        o.Reason(),
		}
		if o.Succeeded() {
			item.Reference = o.Shipment.Reference
			item.Status = o.Shipment.Status
			if o.Booking != nil {
				item.BookingID = o.Booking.ID().String()
			}
		}
		resp.Results = append(resp.Results, item)
	}

	for _, o := range r.Failures() {
		resp.Failures = append(resp.Failures, FailureResponse{CustomerName: o.CustomerName, Reason: o.Reason()})
	}

	return resp
}

type TerminalResponse struct {
	Code      string   `json:"code"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	Town      string   `json:"town"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

func toTerminalResponse(t queries.TerminalReadModel) TerminalResponse {
	resp := TerminalResponse{
		Code:    t.Code,
		Name:    t.Name,
		Address: t.Address,
		Town:    t.Town,
	}
	if t.HasLocation {
		lat, lng := t.Latitude, t.Longitude
		resp.Latitude = &lat
		resp.Longitude = &lng
	}
	return resp
}
