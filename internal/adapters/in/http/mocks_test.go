package http_test

import (
	"context"
	"sync"
	"time"

	"lockerbooking/internal/core/application/usecases/commands"
	"lockerbooking/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type MockCreateCustomer struct{ mock.Mock }

func (m *MockCreateCustomer) Handle(ctx context.Context, cmd commands.CreateCustomerCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockUpdateCustomer struct{ mock.Mock }

func (m *MockUpdateCustomer) Handle(ctx context.Context, cmd commands.UpdateCustomerCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDeleteCustomer struct{ mock.Mock }

func (m *MockDeleteCustomer) Handle(ctx context.Context, cmd commands.DeleteCustomerCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockSaveSender struct{ mock.Mock }

func (m *MockSaveSender) Handle(ctx context.Context, cmd commands.SaveSenderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateBookings struct{ mock.Mock }

func (m *MockCreateBookings) Handle(ctx context.Context, cmd commands.CreateBookingsCommand) (commands.BatchResult, error) {
	args := m.Called(ctx, cmd)
	r, _ := args.Get(0).(commands.BatchResult)
	return r, args.Error(1)
}

type MockDeleteBooking struct{ mock.Mock }

func (m *MockDeleteBooking) Handle(ctx context.Context, cmd commands.DeleteBookingCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockRefreshTerminals struct{ mock.Mock }

func (m *MockRefreshTerminals) Handle(ctx context.Context, cmd commands.RefreshTerminalsCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockListCustomers struct{ mock.Mock }

func (m *MockListCustomers) Handle(ctx context.Context, q queries.ListCustomersQuery) ([]queries.CustomerReadModel, error) {
	args := m.Called(ctx, q)
	list, _ := args.Get(0).([]queries.CustomerReadModel)
	return list, args.Error(1)
}

type MockGetCustomer struct{ mock.Mock }

func (m *MockGetCustomer) Handle(ctx context.Context, q queries.GetCustomerQuery) (queries.CustomerReadModel, error) {
	args := m.Called(ctx, q)
	c, _ := args.Get(0).(queries.CustomerReadModel)
	return c, args.Error(1)
}

type MockGetSender struct{ mock.Mock }

func (m *MockGetSender) Handle(ctx context.Context, q queries.GetSenderQuery) (queries.SenderReadModel, error) {
	args := m.Called(ctx, q)
	s, _ := args.Get(0).(queries.SenderReadModel)
	return s, args.Error(1)
}

type MockListBookings struct{ mock.Mock }

func (m *MockListBookings) Handle(ctx context.Context, q queries.ListBookingsQuery) ([]queries.BookingReadModel, error) {
	args := m.Called(ctx, q)
	list, _ := args.Get(0).([]queries.BookingReadModel)
	return list, args.Error(1)
}

type MockTerminalQueries struct{ mock.Mock }

func (m *MockTerminalQueries) Search(ctx context.Context, q queries.SearchTerminalsQuery) ([]queries.TerminalReadModel, error) {
	args := m.Called(ctx, q)
	list, _ := args.Get(0).([]queries.TerminalReadModel)
	return list, args.Error(1)
}

func (m *MockTerminalQueries) Get(ctx context.Context, q queries.GetTerminalQuery) (queries.TerminalReadModel, error) {
	args := m.Called(ctx, q)
	t, _ := args.Get(0).(queries.TerminalReadModel)
	return t, args.Error(1)
}

type recordedRequest struct {
	Method string
	Path   string
	Status int
}

type fakeRecorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (r *fakeRecorder) RecordHTTPRequest(method, path string, status int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, recordedRequest{Method: method, Path: path, Status: status})
}

func (r *fakeRecorder) last() recordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.requests[len(r.requests)-1]
}
