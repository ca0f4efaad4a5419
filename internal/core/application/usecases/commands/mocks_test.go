package commands_test

import (
	"context"
	"time"

	"lockerbooking/internal/core/application/usecases/commands"
	"lockerbooking/internal/core/domain/model/booking"
	"lockerbooking/internal/core/domain/model/customer"
	"lockerbooking/internal/core/domain/model/kernel"
	"lockerbooking/internal/core/domain/model/party"
	"lockerbooking/internal/core/domain/model/shipment"
	"lockerbooking/internal/core/domain/model/terminal"
	"lockerbooking/internal/core/ports"

	"github.com/facebookgo/clock"
	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *MockCustomerRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*customer.Customer, error) {
	args := m.Called(ctx, ids)
	list, _ := args.Get(0).([]*customer.Customer)
	return list, args.Error(1)
}

type MockSenderRepository struct{ mock.Mock }

func (m *MockSenderRepository) Get(ctx context.Context) (party.Party, error) {
	args := m.Called(ctx)
	p, _ := args.Get(0).(party.Party)
	return p, args.Error(1)
}

func (m *MockSenderRepository) Save(ctx context.Context, sender party.Party, updatedAt time.Time) error {
	return m.Called(ctx, sender, updatedAt).Error(0)
}

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockUoW satisfies every unit-of-work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) SenderRepository() ports.SenderRepository {
	return m.Called().Get(0).(ports.SenderRepository)
}

func (m *MockUoW) BookingRepository() ports.BookingRepository {
	return m.Called().Get(0).(ports.BookingRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	return m.Called().Get(0).(commands.CustomerUoW)
}

type MockSenderUoWFactory struct{ mock.Mock }

func (m *MockSenderUoWFactory) Create() commands.SenderUoW {
	return m.Called().Get(0).(commands.SenderUoW)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	return m.Called().Get(0).(commands.BookingUoW)
}

type MockLockerGateway struct{ mock.Mock }

func (m *MockLockerGateway) ListTerminals(ctx context.Context) ([]terminal.Terminal, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]terminal.Terminal)
	return list, args.Error(1)
}

func (m *MockLockerGateway) CreateShipment(ctx context.Context, p shipment.Payload) (shipment.Result, error) {
	args := m.Called(ctx, p)
	res, _ := args.Get(0).(shipment.Result)
	return res, args.Error(1)
}

type MockTerminalDirectory struct{ mock.Mock }

func (m *MockTerminalDirectory) GetAll(ctx context.Context, forceRefresh bool) ([]terminal.Terminal, error) {
	args := m.Called(ctx, forceRefresh)
	list, _ := args.Get(0).([]terminal.Terminal)
	return list, args.Error(1)
}

func (m *MockTerminalDirectory) FindByCode(code string) (terminal.Terminal, bool) {
	args := m.Called(code)
	t, _ := args.Get(0).(terminal.Terminal)
	return t, args.Bool(1)
}

func (m *MockTerminalDirectory) Search(term string) []terminal.Terminal {
	list, _ := m.Called(term).Get(0).([]terminal.Terminal)
	return list
}

func (m *MockTerminalDirectory) Clear() {
	m.Called()
}

// advanceTo moves a mock clock forward to t.
func advanceTo(clk *clock.Mock, t time.Time) {
	clk.Add(t.Sub(clk.Now()))
}
