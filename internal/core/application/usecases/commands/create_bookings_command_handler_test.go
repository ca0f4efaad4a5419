package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"lockerbooking/internal/core/application/usecases/commands"
	"lockerbooking/internal/core/domain/model/booking"
	"lockerbooking/internal/core/domain/model/customer"
	"lockerbooking/internal/core/domain/model/kernel"
	"lockerbooking/internal/core/domain/model/party"
	"lockerbooking/internal/core/domain/model/shipment"
	"lockerbooking/internal/core/domain/model/terminal"
	"lockerbooking/internal/pkg/errs"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type recorderMock struct{ mock.Mock }

func (m *recorderMock) RecordBooking(success bool)        { m.Called(success) }
func (m *recorderMock) RecordBatch(classification string) { m.Called(classification) }

type CreateBookingsSuite struct {
	suite.Suite

	customers *MockCustomerRepository
	sender    *MockSenderRepository
	bookings  *MockBookingRepository
	uow       *MockUoW
	factory   *MockUoWFactory
	gateway   *MockLockerGateway
	directory *MockTerminalDirectory
	clock     *clock.Mock

	senderParty party.Party
	lockerJane  *customer.Customer
	addressBob  *customer.Customer
}

func TestCreateBookingsSuite(t *testing.T) {
	suite.Run(t, new(CreateBookingsSuite))
}

func (s *CreateBookingsSuite) SetupTest() {
	s.customers = new(MockCustomerRepository)
	s.sender = new(MockSenderRepository)
	s.bookings = new(MockBookingRepository)
	s.uow = new(MockUoW)
	s.factory = new(MockUoWFactory)
	s.gateway = new(MockLockerGateway)
	s.directory = new(MockTerminalDirectory)
	s.clock = clock.NewMock()
	advanceTo(s.clock, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))

	s.factory.On("Create").Return(s.uow)
	s.uow.On("CustomerRepository").Return(s.customers)
	s.uow.On("SenderRepository").Return(s.sender)
	s.uow.On("BookingRepository").Return(s.bookings)
	s.uow.On("Begin", mock.Anything).Return(nil)
	s.uow.On("Commit", mock.Anything).Return(nil)
	s.uow.On("Rollback", mock.Anything).Return(nil)
	s.directory.On("GetAll", mock.Anything, false).Return([]terminal.Terminal{}, nil)

	var err error
	s.senderParty, err = party.NewParty("Acme", "ops@acme.test", "0821234567", party.Locker, "PUDO123", party.StreetAddress{})
	s.Require().NoError(err)

	now := s.clock.Now()
	s.lockerJane = customer.RestoreCustomer(kernel.NewUUID(),
		party.RestoreParty("Jane", "jane@example.test", "0831111111", party.Locker, "ABC001", party.StreetAddress{}),
		now, now)
	s.addressBob = customer.RestoreCustomer(kernel.NewUUID(),
		party.RestoreParty("Bob", "bob@example.test", "0842222222", party.Address, "",
			party.NewStreetAddress("1 Main Rd", "", "Cape Town", "Western Cape", "", "")),
		now, now)
}

func (s *CreateBookingsSuite) handler(opts ...commands.CreateBookingsOption) *commands.CreateBookingsCommandHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	opts = append([]commands.CreateBookingsOption{commands.WithBookingClock(s.clock)}, opts...)

	h, err := commands.NewCreateBookingsCommandHandler(s.factory, s.gateway, s.directory, logger, opts...)
	s.Require().NoError(err)
	return h
}

func (s *CreateBookingsSuite) command(ids ...kernel.UUID) commands.CreateBookingsCommand {
	cmd, err := commands.NewCreateBookingsCommand(ids, shipment.SizeXS, nil)
	s.Require().NoError(err)
	return cmd
}

func deliveryTo(name string) any {
	return mock.MatchedBy(func(p shipment.Payload) bool { return p.DeliveryContact.Name == name })
}

func created(ref string) shipment.Result {
	return shipment.Result{
		Reference: ref,
		Status:    "created",
		Raw:       json.RawMessage(fmt.Sprintf(`{"shipment_id":%q,"status":"created"}`, ref)),
	}
}

func (s *CreateBookingsSuite) TestAllSucceed() {
	ctx := s.T().Context()
	s.sender.On("Get", ctx).Return(s.senderParty, nil)
	s.customers.On("GetMany", ctx, mock.Anything).Return([]*customer.Customer{s.addressBob, s.lockerJane}, nil)
	s.directory.On("FindByCode", "ABC001").Return(terminal.Terminal{}, false)

	s.gateway.On("CreateShipment", mock.Anything, mock.MatchedBy(func(p shipment.Payload) bool {
		return p.DeliveryContact.Name == "Jane" &&
			p.CollectionAddress == shipment.TerminalEndpoint{Code: "PUDO123"} &&
			p.DeliveryAddress == shipment.TerminalEndpoint{Code: "ABC001"} &&
			p.ServiceLevelCode == "L2LXS - ECO"
	})).Return(created("SHP-1"), nil).Once()
	s.gateway.On("CreateShipment", mock.Anything, mock.MatchedBy(func(p shipment.Payload) bool {
		return p.DeliveryContact.Name == "Bob" &&
			p.DeliveryAddress == shipment.StructuredEndpoint{Line1: "1 Main Rd", City: "Cape Town", Province: "Western Cape"}
	})).Return(created("SHP-2"), nil).Once()

	var saved []*booking.Booking
	s.bookings.On("Add", mock.Anything, mock.AnythingOfType("*booking.Booking")).
		Run(func(args mock.Arguments) { saved = append(saved, args.Get(1).(*booking.Booking)) }).
		Return(nil).Twice()

	result, err := s.handler().Handle(ctx, s.command(s.lockerJane.ID(), s.addressBob.ID()))

	s.Require().NoError(err)
	s.Require().Len(result.Outcomes, 2)
	s.Equal("Jane", result.Outcomes[0].CustomerName)
	s.Equal("Bob", result.Outcomes[1].CustomerName)
	s.Equal(commands.AllSucceeded, result.Outcome())
	s.Equal("Successfully created 2 booking(s)", result.Message())
	s.Empty(result.Failures())

	s.Require().Len(saved, 2)
	for i, ref := range []string{"SHP-1", "SHP-2"} {
		s.Equal(ref, saved[i].Reference())
		s.Equal(booking.Created, saved[i].Status())
		s.Equal(shipment.SizeXS, saved[i].Size())
		s.Equal(s.clock.Now(), saved[i].CreatedAt())
		s.Same(saved[i], result.Outcomes[i].Booking)
	}
	s.True(saved[0].CustomerID().IsEqual(s.lockerJane.ID()))
	s.JSONEq(`{"shipment_id":"SHP-2","status":"created"}`, string(saved[1].ShipmentData()))
	s.gateway.AssertExpectations(s.T())
}

func (s *CreateBookingsSuite) TestValidationFailureIsolatedToOneCustomer() {
	ctx := s.T().Context()
	now := s.clock.Now()
	noCity := customer.RestoreCustomer(kernel.NewUUID(),
		party.RestoreParty("Bob", "bob@example.test", "0842222222", party.Address, "",
			party.NewStreetAddress("1 Main Rd", "", "", "Western Cape", "", "")),
		now, now)
	s.sender.On("Get", ctx).Return(s.senderParty, nil)
	s.customers.On("GetMany", ctx, mock.Anything).Return([]*customer.Customer{s.lockerJane, noCity}, nil)
	s.directory.On("FindByCode", "ABC001").Return(terminal.Terminal{}, false)
	s.gateway.On("CreateShipment", mock.Anything, deliveryTo("Jane")).Return(created("SHP-1"), nil).Once()
	s.bookings.On("Add", mock.Anything, mock.Anything).Return(nil).Once()

	result, err := s.handler().Handle(ctx, s.command(s.lockerJane.ID(), noCity.ID()))

	s.Require().NoError(err)
	s.Equal(commands.Partial, result.Outcome())
	s.Equal("Created 1 booking(s), 1 failed", result.Message())
	s.True(result.Outcomes[0].Succeeded())
	s.False(result.Outcomes[1].Succeeded())
	s.True(errs.IsValidation(result.Outcomes[1].Err))
	s.Contains(result.Outcomes[1].Reason(), "address city")
	s.Equal("Bob: "+result.Outcomes[1].Reason(), result.FailureReport())
	s.gateway.AssertNotCalled(s.T(), "CreateShipment", mock.Anything, deliveryTo("Bob"))
	s.bookings.AssertNumberOfCalls(s.T(), "Add", 1)
}

func (s *CreateBookingsSuite) TestEmptyLockerIDNeverPersisted() {
	ctx := s.T().Context()
	now := s.clock.Now()
	noLocker := customer.RestoreCustomer(kernel.NewUUID(),
		party.RestoreParty("Zoe", "zoe@example.test", "0851111111", party.Locker, "", party.StreetAddress{}),
		now, now)
	s.sender.On("Get", ctx).Return(s.senderParty, nil)
	s.customers.On("GetMany", ctx, mock.Anything).Return([]*customer.Customer{noLocker}, nil)
	s.directory.On("FindByCode", "").Return(terminal.Terminal{}, false)

	result, err := s.handler().Handle(ctx, s.command(noLocker.ID()))

	s.Require().NoError(err)
	s.Require().Len(result.Outcomes, 1)
	s.Require().ErrorIs(result.Outcomes[0].Err, errs.ErrValueIsRequired)
	s.Contains(result.Outcomes[0].Reason(), "locker id")
	s.Equal("All bookings failed to create", result.Message())
	s.gateway.AssertNotCalled(s.T(), "CreateShipment", mock.Anything, mock.Anything)
	s.bookings.AssertNotCalled(s.T(), "Add", mock.Anything, mock.Anything)
}

func (s *CreateBookingsSuite) TestAllSubmissionsFail() {
	ctx := s.T().Context()
	s.sender.On("Get", ctx).Return(s.senderParty, nil)
	s.customers.On("GetMany", ctx, mock.Anything).Return([]*customer.Customer{s.lockerJane, s.addressBob}, nil)
	s.directory.On("FindByCode", mock.Anything).Return(terminal.Terminal{}, false)
	s.gateway.On("CreateShipment", mock.Anything, mock.Anything).
		Return(shipment.Result{}, fmt.Errorf("%w: create shipment: unexpected status 503", errs.ErrTransport))

	result, err := s.handler().Handle(ctx, s.command(s.lockerJane.ID(), s.addressBob.ID()))

	s.Require().NoError(err)
	s.Equal(commands.AllFailed, result.Outcome())
	s.Equal("All bookings failed to create", result.Message())
	s.Len(result.Failures(), 2)
	for _, o := range result.Outcomes {
		s.Require().ErrorIs(o.Err, errs.ErrTransport)
		s.Contains(o.Reason(), "unexpected status 503")
		s.Nil(o.Booking)
	}
	s.bookings.AssertNotCalled(s.T(), "Add", mock.Anything, mock.Anything)
	s.gateway.AssertNumberOfCalls(s.T(), "CreateShipment", 2)
}

func (s *CreateBookingsSuite) TestMissingSenderIsPrecondition() {
	ctx := s.T().Context()
	s.sender.On("Get", ctx).Return(party.Party{}, errs.NewObjectNotFoundError("sender", "default"))

	result, err := s.handler().Handle(ctx, s.command(s.lockerJane.ID()))

	s.Require().ErrorIs(err, errs.ErrPreconditionFailed)
	s.Empty(result.Outcomes)
	s.customers.AssertNotCalled(s.T(), "GetMany", mock.Anything, mock.Anything)
	s.gateway.AssertNotCalled(s.T(), "CreateShipment", mock.Anything, mock.Anything)
}

func (s *CreateBookingsSuite) TestSenderLoadErrorIsReturned() {
	ctx := s.T().Context()
	s.sender.On("Get", ctx).Return(party.Party{}, errors.New("db down"))

	_, err := s.handler().Handle(ctx, s.command(s.lockerJane.ID()))

	s.Require().EqualError(err, "db down")
}

func (s *CreateBookingsSuite) TestCreateBookingsPreconditions() {
	ctx := s.T().Context()
	h := s.handler()
	sizeOf := func(kernel.UUID) shipment.PackageSize { return shipment.SizeS }

	_, err := h.CreateBookings(ctx, party.Party{}, []*customer.Customer{s.lockerJane}, sizeOf)
	s.Require().ErrorIs(err, errs.ErrPreconditionFailed)
	s.Contains(err.Error(), "sender is not configured")

	_, err = h.CreateBookings(ctx, s.senderParty, nil, sizeOf)
	s.Require().ErrorIs(err, errs.ErrPreconditionFailed)
	s.Contains(err.Error(), "no customers selected")

	s.directory.AssertNotCalled(s.T(), "GetAll", mock.Anything, mock.Anything)
	s.gateway.AssertNotCalled(s.T(), "CreateShipment", mock.Anything, mock.Anything)
}

func (s *CreateBookingsSuite) TestUnknownCustomerReportedInPlace() {
	ctx := s.T().Context()
	ghost := kernel.NewUUID()
	s.sender.On("Get", ctx).Return(s.senderParty, nil)
	s.customers.On("GetMany", ctx, []kernel.UUID{ghost, s.lockerJane.ID()}).
		Return([]*customer.Customer{s.lockerJane}, nil)
	s.directory.On("FindByCode", "ABC001").Return(terminal.Terminal{}, false)
	s.gateway.On("CreateShipment", mock.Anything, deliveryTo("Jane")).Return(created("SHP-1"), nil)
	s.bookings.On("Add", mock.Anything, mock.Anything).Return(nil)

	result, err := s.handler().Handle(ctx, s.command(ghost, s.lockerJane.ID()))

	s.Require().NoError(err)
	s.Require().Len(result.Outcomes, 2)
	s.Require().ErrorIs(result.Outcomes[0].Err, errs.ErrObjectNotFound)
	s.Equal(ghost.String(), result.Outcomes[0].CustomerName)
	s.True(result.Outcomes[1].Succeeded())
}

func (s *CreateBookingsSuite) TestPersistFailureMarksCustomerFailed() {
	ctx := s.T().Context()
	s.sender.On("Get", ctx).Return(s.senderParty, nil)
	s.customers.On("GetMany", ctx, mock.Anything).Return([]*customer.Customer{s.lockerJane}, nil)
	s.directory.On("FindByCode", "ABC001").Return(terminal.Terminal{}, false)
	s.gateway.On("CreateShipment", mock.Anything, mock.Anything).Return(created("SHP-9"), nil)
	s.bookings.On("Add", mock.Anything, mock.Anything).Return(errors.New("unique violation"))

	result, err := s.handler().Handle(ctx, s.command(s.lockerJane.ID()))

	s.Require().NoError(err)
	o := result.Outcomes[0]
	s.False(o.Succeeded())
	s.Contains(o.Reason(), "SHP-9")
	s.Contains(o.Reason(), "unique violation")
	s.Equal("SHP-9", o.Shipment.Reference)
	s.uow.AssertNotCalled(s.T(), "Commit", mock.Anything)
}

func (s *CreateBookingsSuite) TestDestinationUsesTerminalNames() {
	ctx := s.T().Context()
	named, err := terminal.NewTerminal("ABC001", "Sea Point Pick n Pay", "", "", kernel.GeoPoint{})
	s.Require().NoError(err)
	s.sender.On("Get", ctx).Return(s.senderParty, nil)
	s.customers.On("GetMany", ctx, mock.Anything).Return([]*customer.Customer{s.lockerJane, s.addressBob}, nil)
	s.directory.On("FindByCode", "ABC001").Return(named, true)
	s.gateway.On("CreateShipment", mock.Anything, mock.Anything).Return(created("SHP-1"), nil)
	s.bookings.On("Add", mock.Anything, mock.Anything).Return(nil)

	result, err := s.handler().Handle(ctx, s.command(s.lockerJane.ID(), s.addressBob.ID()))

	s.Require().NoError(err)
	s.Equal("Sea Point Pick n Pay", result.Outcomes[0].Destination)
	s.Equal("1 Main Rd, Cape Town, Western Cape", result.Outcomes[1].Destination)
}

func (s *CreateBookingsSuite) TestDirectoryFailureFallsBackToCodes() {
	ctx := s.T().Context()
	s.directory = new(MockTerminalDirectory)
	s.directory.On("GetAll", mock.Anything, false).Return(nil, fmt.Errorf("%w: timeout", errs.ErrCacheFetch))
	s.directory.On("FindByCode", "ABC001").Return(terminal.Terminal{}, false)
	s.sender.On("Get", ctx).Return(s.senderParty, nil)
	s.customers.On("GetMany", ctx, mock.Anything).Return([]*customer.Customer{s.lockerJane}, nil)
	s.gateway.On("CreateShipment", mock.Anything, mock.Anything).Return(created("SHP-1"), nil)
	s.bookings.On("Add", mock.Anything, mock.Anything).Return(nil)

	result, err := s.handler().Handle(ctx, s.command(s.lockerJane.ID()))

	s.Require().NoError(err)
	s.True(result.Outcomes[0].Succeeded())
	s.Equal("ABC001", result.Outcomes[0].Destination)
}

func (s *CreateBookingsSuite) TestCallerCancellationDoesNotOrphanShipments() {
	ctx, cancel := context.WithCancel(s.T().Context())
	defer cancel()
	s.sender.On("Get", ctx).Return(s.senderParty, nil)
	s.customers.On("GetMany", ctx, mock.Anything).Return([]*customer.Customer{s.lockerJane, s.addressBob}, nil)
	s.directory.On("FindByCode", mock.Anything).Return(terminal.Terminal{}, false)

	var submitErrs []error
	s.gateway.On("CreateShipment", mock.Anything, deliveryTo("Jane")).
		Run(func(args mock.Arguments) {
			submitErrs = append(submitErrs, args.Get(0).(context.Context).Err())
			cancel()
		}).
		Return(created("SHP-1"), nil).Once()
	s.gateway.On("CreateShipment", mock.Anything, deliveryTo("Bob")).
		Run(func(args mock.Arguments) {
			submitErrs = append(submitErrs, args.Get(0).(context.Context).Err())
		}).
		Return(created("SHP-2"), nil).Once()

	var saveErrs []error
	s.bookings.On("Add", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saveErrs = append(saveErrs, args.Get(0).(context.Context).Err())
		}).
		Return(nil).Twice()

	result, err := s.handler().Handle(ctx, s.command(s.lockerJane.ID(), s.addressBob.ID()))

	s.Require().NoError(err)
	s.Require().ErrorIs(ctx.Err(), context.Canceled)
	s.Equal(commands.AllSucceeded, result.Outcome())
	s.Equal([]error{nil, nil}, submitErrs)
	s.Equal([]error{nil, nil}, saveErrs)
	s.bookings.AssertExpectations(s.T())
}

func (s *CreateBookingsSuite) TestSizeOverrides() {
	ctx := s.T().Context()
	s.sender.On("Get", ctx).Return(s.senderParty, nil)
	s.customers.On("GetMany", ctx, mock.Anything).Return([]*customer.Customer{s.lockerJane, s.addressBob}, nil)
	s.directory.On("FindByCode", mock.Anything).Return(terminal.Terminal{}, false)
	s.gateway.On("CreateShipment", mock.Anything, mock.MatchedBy(func(p shipment.Payload) bool {
		return p.DeliveryContact.Name == "Jane" && p.ServiceLevelCode == "L2LM - ECO"
	})).Return(created("SHP-1"), nil).Once()
	s.gateway.On("CreateShipment", mock.Anything, mock.MatchedBy(func(p shipment.Payload) bool {
		return p.DeliveryContact.Name == "Bob" && p.ServiceLevelCode == "L2LL - ECO"
	})).Return(created("SHP-2"), nil).Once()
	s.bookings.On("Add", mock.Anything, mock.Anything).Return(nil)

	cmd, err := commands.NewCreateBookingsCommand(
		[]kernel.UUID{s.lockerJane.ID(), s.addressBob.ID()},
		shipment.SizeM,
		map[kernel.UUID]shipment.PackageSize{s.addressBob.ID(): shipment.SizeL},
	)
	s.Require().NoError(err)

	result, err := s.handler().Handle(ctx, cmd)

	s.Require().NoError(err)
	s.Equal(shipment.SizeM, result.Outcomes[0].Size)
	s.Equal(shipment.SizeL, result.Outcomes[1].Size)
	s.gateway.AssertExpectations(s.T())
}

func (s *CreateBookingsSuite) TestConcurrentRunKeepsInputOrder() {
	ctx := s.T().Context()
	now := s.clock.Now()
	var selected []*customer.Customer
	for i := range 12 {
		name := fmt.Sprintf("customer-%02d", i)
		c := customer.RestoreCustomer(kernel.NewUUID(),
			party.RestoreParty(name, name+"@example.test", "0800000000", party.Locker, "ABC001", party.StreetAddress{}),
			now, now)
		selected = append(selected, c)
		s.gateway.On("CreateShipment", mock.Anything, deliveryTo(name)).Return(created("REF-"+name), nil).Once()
	}
	s.directory.On("FindByCode", "ABC001").Return(terminal.Terminal{}, false)
	s.bookings.On("Add", mock.Anything, mock.Anything).Return(nil)
	recorder := new(recorderMock)
	recorder.On("RecordBooking", true).Times(len(selected))
	recorder.On("RecordBatch", "all_succeeded").Once()

	h := s.handler(commands.WithConcurrency(4), commands.WithBookingRecorder(recorder))
	result, err := h.CreateBookings(ctx, s.senderParty, selected, func(kernel.UUID) shipment.PackageSize {
		return shipment.SizeXS
	})

	s.Require().NoError(err)
	s.Require().Len(result.Outcomes, len(selected))
	for i, o := range result.Outcomes {
		s.Equal(selected[i].Name(), o.CustomerName)
		s.Equal("REF-"+selected[i].Name(), o.Shipment.Reference)
	}
	recorder.AssertExpectations(s.T())
}

func TestNewCreateBookingsCommandHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := commands.NewCreateBookingsCommandHandler(nil, new(MockLockerGateway), new(MockTerminalDirectory), logger)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateBookingsCommandHandler(new(MockUoWFactory), nil, new(MockTerminalDirectory), logger)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCreateBookingsCommandHandler(new(MockUoWFactory), new(MockLockerGateway), nil, logger)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	h, err := commands.NewCreateBookingsCommandHandler(new(MockUoWFactory), new(MockLockerGateway), new(MockTerminalDirectory), logger)
	require.NoError(t, err)
	assert.NotNil(t, h)
}
