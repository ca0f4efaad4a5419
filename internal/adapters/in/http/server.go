// Package http exposes the locker booking use cases over a JSON API built on Echo.
//
//	@title			Locker Booking API
//	@version		1.0
//	@description	Batch locker-to-locker and door-to-locker shipment booking.
//	@BasePath		/api/v1
package http

import (
	"context"

	"lockerbooking/internal/core/application/usecases/commands"
	"lockerbooking/internal/core/application/usecases/queries"
	"lockerbooking/internal/core/domain/model/shipment"
	"lockerbooking/internal/pkg/errs"
)

type (
	CreateCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCustomerCommand) error
	}
	UpdateCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateCustomerCommand) error
	}
	DeleteCustomerHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteCustomerCommand) error
	}
	SaveSenderHandler interface {
		Handle(ctx context.Context, cmd commands.SaveSenderCommand) error
	}
	CreateBookingsHandler interface {
		Handle(ctx context.Context, cmd commands.CreateBookingsCommand) (commands.BatchResult, error)
	}
	DeleteBookingHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteBookingCommand) error
	}
	RefreshTerminalsHandler interface {
		Handle(ctx context.Context, cmd commands.RefreshTerminalsCommand) (int, error)
	}

	ListCustomersHandler interface {
		Handle(ctx context.Context, query queries.ListCustomersQuery) ([]queries.CustomerReadModel, error)
	}
	GetCustomerHandler interface {
		Handle(ctx context.Context, query queries.GetCustomerQuery) (queries.CustomerReadModel, error)
	}
	GetSenderHandler interface {
		Handle(ctx context.Context, query queries.GetSenderQuery) (queries.SenderReadModel, error)
	}
	ListBookingsHandler interface {
		Handle(ctx context.Context, query queries.ListBookingsQuery) ([]queries.BookingReadModel, error)
	}
	TerminalQueries interface {
		Search(ctx context.Context, query queries.SearchTerminalsQuery) ([]queries.TerminalReadModel, error)
		Get(ctx context.Context, query queries.GetTerminalQuery) (queries.TerminalReadModel, error)
	}
)

// Handlers groups the use cases the API serves.
type Handlers struct {
	CreateCustomer   CreateCustomerHandler
	UpdateCustomer   UpdateCustomerHandler
	DeleteCustomer   DeleteCustomerHandler
	SaveSender       SaveSenderHandler
	CreateBookings   CreateBookingsHandler
	DeleteBooking    DeleteBookingHandler
	RefreshTerminals RefreshTerminalsHandler

	ListCustomers ListCustomersHandler
	GetCustomer   GetCustomerHandler
	GetSender     GetSenderHandler
	ListBookings  ListBookingsHandler
	Terminals     TerminalQueries
}

func (h Handlers) validate() error {
	required := map[string]any{
		"create customer handler":   h.CreateCustomer,
		"update customer handler":   h.UpdateCustomer,
		"delete customer handler":   h.DeleteCustomer,
		"save sender handler":       h.SaveSender,
		"create bookings handler":   h.CreateBookings,
		"delete booking handler":    h.DeleteBooking,
		"refresh terminals handler": h.RefreshTerminals,
		"list customers handler":    h.ListCustomers,
		"get customer handler":      h.GetCustomer,
		"get sender handler":        h.GetSender,
		"list bookings handler":     h.ListBookings,
		"terminal queries":          h.Terminals,
	}
	for name, v := range required {
		if v == nil {
			return errs.NewValueIsRequiredError(name)
		}
	}
	return nil
}

// Server translates HTTP requests into commands and queries.
type Server struct {
	h           Handlers
	defaultSize shipment.PackageSize
}

func NewServer(h Handlers, defaultSize shipment.PackageSize) (*Server, error) {
	if err := h.validate(); err != nil {
		return nil, err
	}
	if err := defaultSize.Validate(); err != nil {
		return nil, err
	}
	return &Server{h: h, defaultSize: defaultSize}, nil
}
