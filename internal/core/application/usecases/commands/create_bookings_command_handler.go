package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"lockerbooking/internal/core/domain/model/booking"
	"lockerbooking/internal/core/domain/model/customer"
	"lockerbooking/internal/core/domain/model/kernel"
	"lockerbooking/internal/core/domain/model/party"
	"lockerbooking/internal/core/domain/model/shipment"
	"lockerbooking/internal/core/domain/services"
	"lockerbooking/internal/core/ports"
	"lockerbooking/internal/pkg/errs"

	"github.com/facebookgo/clock"
	"golang.org/x/sync/errgroup"
)

// BookingRecorder observes booking attempts and finished batches.
type BookingRecorder interface {
	RecordBooking(success bool)
	RecordBatch(classification string)
}

type CreateBookingsOption func(*CreateBookingsCommandHandler)

func WithBookingClock(c clock.Clock) CreateBookingsOption {
	return func(h *CreateBookingsCommandHandler) { h.clock = c }
}

func WithBookingRecorder(r BookingRecorder) CreateBookingsOption {
	return func(h *CreateBookingsCommandHandler) { h.recorder = r }
}

// WithConcurrency bounds how many customers are submitted at once. Values below
// 1 are treated as 1, which books customers one after another.
func WithConcurrency(n int) CreateBookingsOption {
	return func(h *CreateBookingsCommandHandler) { h.concurrency = max(n, 1) }
}

// CreateBookingsCommandHandler runs a booking batch.
//
// Each customer goes through build, submit and record on its own. A failure
// for one customer is captured in its outcome and never stops, rolls back or
// retries another. Only a missing sender or an empty selection fails the whole
// call, and both are reported before any shipment is submitted.
//
// A started batch ignores cancellation of ctx so that no shipment created at
// the network is left without a booking.
//
// Every successful submission is saved as a booking in its own transaction.
// If that save fails the customer is reported as failed, with the shipment
// reference in the reason so the operator can reconcile it.
//
// Example:
//
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrPreconditionFailed) {
//	    // no sender configured or nothing selected
//	}
//	fmt.Println(result.Message())
type CreateBookingsCommandHandler struct {
	uowFactory  UoWFactory
	gateway     ports.LockerGateway
	directory   ports.TerminalDirectory
	builder     services.ShipmentRequestBuilder
	logger      *slog.Logger
	clock       clock.Clock
	recorder    BookingRecorder
	concurrency int
}

func NewCreateBookingsCommandHandler(
	uowFactory UoWFactory,
	gateway ports.LockerGateway,
	directory ports.TerminalDirectory,
	logger *slog.Logger,
	opts ...CreateBookingsOption,
) (*CreateBookingsCommandHandler, error) {
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("unit of work factory")
	}
	if gateway == nil {
		return nil, errs.NewValueIsRequiredError("locker gateway")
	}
	if directory == nil {
		return nil, errs.NewValueIsRequiredError("terminal directory")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	h := &CreateBookingsCommandHandler{
		uowFactory:  uowFactory,
		gateway:     gateway,
		directory:   directory,
		builder:     services.NewShipmentRequestBuilder(services.NewEndpointResolver()),
		logger:      logger.With("component", "create_bookings"),
		clock:       clock.New(),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// batchItem is one selected customer; customer is nil when the id is unknown.
type batchItem struct {
	id       kernel.UUID
	customer *customer.Customer
}

// Handle loads the sender and the selected customers and books them.
// Selected ids that no longer exist fail as "customer not found".
func (h *CreateBookingsCommandHandler) Handle(ctx context.Context, cmd CreateBookingsCommand) (BatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return BatchResult{}, err
	}

	uow := h.uowFactory.Create()

	sender, err := uow.SenderRepository().Get(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return BatchResult{}, errs.NewPreconditionFailedError("sender is not configured")
	}
	if err != nil {
		return BatchResult{}, err
	}

	ids := cmd.CustomerIDs()
	found, err := uow.CustomerRepository().GetMany(ctx, ids)
	if err != nil {
		return BatchResult{}, err
	}

	byID := make(map[kernel.UUID]*customer.Customer, len(found))
	for _, c := range found {
		byID[c.ID()] = c
	}

	items := make([]batchItem, len(ids))
	for i, id := range ids {
		items[i] = batchItem{id: id, customer: byID[id]}
	}

	return h.run(ctx, sender, items, cmd.SizeOf)
}

// CreateBookings books customers for sender, using sizeOf to pick each package size.
// The result has one outcome per element of customers, in the same order.
func (h *CreateBookingsCommandHandler) CreateBookings(
	ctx context.Context,
	sender party.Party,
	customers []*customer.Customer,
	sizeOf func(kernel.UUID) shipment.PackageSize,
) (BatchResult, error) {
	items := make([]batchItem, len(customers))
	for i, c := range customers {
		items[i] = batchItem{customer: c}
		if c != nil {
			items[i].id = c.ID()
		}
	}

	return h.run(ctx, sender, items, sizeOf)
}

func (h *CreateBookingsCommandHandler) run(
	ctx context.Context,
	sender party.Party,
	items []batchItem,
	sizeOf func(kernel.UUID) shipment.PackageSize,
) (BatchResult, error) {
	if sender.Validate() != nil {
		return BatchResult{}, errs.NewPreconditionFailedError("sender is not configured")
	}
	if len(items) == 0 {
		return BatchResult{}, errs.NewPreconditionFailedError("no customers selected")
	}

	// Once started, every customer is attempted and every created shipment is
	// saved, even if the caller goes away. Gateway calls stay bounded by the
	// transport timeout.
	ctx = context.WithoutCancel(ctx)

	// Warm the directory so destinations can be reported by terminal name.
	if _, err := h.directory.GetAll(ctx, false); err != nil {
		h.logger.Warn("terminal directory unavailable, reporting raw locker codes", "error", err)
	}

	outcomes := make([]BookingOutcome, len(items))

	var g errgroup.Group
	g.SetLimit(h.concurrency)
	for i, item := range items {
		g.Go(func() error {
			outcomes[i] = h.book(ctx, sender, item, sizeOf(item.id))
			h.record(outcomes[i])
			return nil
		})
	}
	_ = g.Wait()

	result := BatchResult{Outcomes: outcomes}
	if h.recorder != nil {
		h.recorder.RecordBatch(string(result.Outcome()))
	}
	h.logger.Info("booking batch finished",
		"outcome", result.Outcome(),
		"succeeded", result.Succeeded(),
		"failed", result.Failed(),
	)

	return result, nil
}

func (h *CreateBookingsCommandHandler) book(
	ctx context.Context,
	sender party.Party,
	item batchItem,
	size shipment.PackageSize,
) BookingOutcome {
	out := BookingOutcome{
		CustomerID:   item.id,
		CustomerName: item.id.String(),
		Size:         size,
	}

	if item.customer == nil {
		out.Err = errs.NewObjectNotFoundError("customer", item.id)
		return out
	}

	c := item.customer
	if err := c.Validate(); err != nil {
		out.Err = err
		return out
	}
	out.CustomerName = c.Name()
	out.Destination = h.destination(c.Details())

	payload, err := h.builder.Build(sender, c.Details(), size)
	if err != nil {
		out.Err = err
		return out
	}

	res, err := h.gateway.CreateShipment(ctx, payload)
	if err != nil {
		out.Err = err
		return out
	}
	out.Shipment = res

	b, err := h.persist(ctx, c, size, res)
	if err != nil {
		out.Err = fmt.Errorf("shipment %s was created but the booking was not saved: %w", res.Reference, err)
		return out
	}
	out.Booking = b

	return out
}

func (h *CreateBookingsCommandHandler) persist(
	ctx context.Context,
	c *customer.Customer,
	size shipment.PackageSize,
	res shipment.Result,
) (*booking.Booking, error) {
	b, err := booking.NewBooking(kernel.NewUUID(), c.ID(), c.Name(), size, res, h.clock.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.BookingRepository().Add(ctx, b); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return b, nil
}

func (h *CreateBookingsCommandHandler) destination(p party.Party) string {
	if p.DeliveryType() != party.Locker {
		return p.Address().Label()
	}
	if t, ok := h.directory.FindByCode(p.LockerID()); ok {
		return t.Label()
	}
	return p.LockerID()
}

func (h *CreateBookingsCommandHandler) record(o BookingOutcome) {
	if h.recorder != nil {
		h.recorder.RecordBooking(o.Succeeded())
	}
	if !o.Succeeded() {
		h.logger.Warn("booking failed", "customer", o.CustomerName, "reason", o.Reason())
	}
}
