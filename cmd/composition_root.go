package cmd

import (
	"log/slog"

	apihttp "lockerbooking/internal/adapters/in/http"
	"lockerbooking/internal/adapters/out/postgres"
	"lockerbooking/internal/adapters/out/pudo"
	"lockerbooking/internal/core/application/directory"
	"lockerbooking/internal/core/application/usecases/commands"
	"lockerbooking/internal/core/application/usecases/queries"
	"lockerbooking/internal/core/ports"
	"lockerbooking/internal/jobs"
	"lockerbooking/internal/pkg/errs"
	"lockerbooking/internal/pkg/metrics"

	"github.com/facebookgo/clock"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CompositionRoot is the only place that knows the concrete adapters.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	clock      clock.Clock
	metrics    *metrics.Metrics
	gateway    ports.LockerGateway
	directory  *directory.Directory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	if gormDB == nil {
		return nil, errs.NewValueIsRequiredError("database")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, logger),
		logger:     logger,
		clock:      clock.New(),
		metrics:    metrics.New(),
	}

	gateway, err := c.newGateway()
	if err != nil {
		return nil, err
	}
	c.gateway = gateway

	c.directory, err = directory.New(gateway, logger,
		directory.WithClock(c.clock),
		directory.WithTTL(config.TerminalCacheTTL),
		directory.WithRecorder(c.metrics),
	)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (c *CompositionRoot) newGateway() (ports.LockerGateway, error) {
	if c.config.PudoGateway == GatewaySandbox {
		c.logger.Warn("Using the offline sandbox gateway; no real shipments will be created")
		return pudo.NewSandbox(pudo.DefaultSandboxTerminals(), c.clock, c.logger)
	}
	return pudo.NewClient(c.config.PudoAPIBaseURL, c.config.PudoAPIKey, c.logger,
		pudo.WithTimeout(c.config.PudoHTTPTimeout),
		pudo.WithRecorder(c.metrics),
	)
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() *commands.CreateCustomerCommandHandler {
	h := commands.NewCreateCustomerCommandHandler(c.customerUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() *commands.UpdateCustomerCommandHandler {
	h := commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() *commands.DeleteCustomerCommandHandler {
	h := commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateSaveSenderCommandHandler() *commands.SaveSenderCommandHandler {
	var f commands.SenderUoWFactory = FuncSenderUoWFactory(func() commands.SenderUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewSaveSenderCommandHandler(f, c.clock)
	return &h
}

func (c *CompositionRoot) CreateDeleteBookingCommandHandler() *commands.DeleteBookingCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewDeleteBookingCommandHandler(f)
	return &h
}

func (c *CompositionRoot) CreateCreateBookingsCommandHandler() (*commands.CreateBookingsCommandHandler, error) {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateBookingsCommandHandler(f, c.gateway, c.directory, c.logger,
		commands.WithBookingClock(c.clock),
		commands.WithBookingRecorder(c.metrics),
		commands.WithConcurrency(c.config.BookingConcurrency),
	)
}

func (c *CompositionRoot) CreateRefreshTerminalsCommandHandler() commands.RefreshTerminalsCommandHandler {
	return commands.NewRefreshTerminalsCommandHandler(c.directory)
}

func (c *CompositionRoot) CreateListCustomersQueryHandler() queries.ListCustomersQueryHandler {
	return queries.NewListCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSenderQueryHandler() queries.GetSenderQueryHandler {
	return queries.NewGetSenderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListBookingsQueryHandler() queries.ListBookingsQueryHandler {
	return queries.NewListBookingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTerminalQueryHandler() (queries.TerminalQueryHandler, error) {
	return queries.NewTerminalQueryHandler(c.directory)
}

// CreateHTTPServer wires every use case into the Echo router.
func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	createBookings, err := c.CreateCreateBookingsCommandHandler()
	if err != nil {
		return nil, err
	}
	terminals, err := c.CreateTerminalQueryHandler()
	if err != nil {
		return nil, err
	}

	server, err := apihttp.NewServer(apihttp.Handlers{
		CreateCustomer:   c.CreateCreateCustomerCommandHandler(),
		UpdateCustomer:   c.CreateUpdateCustomerCommandHandler(),
		DeleteCustomer:   c.CreateDeleteCustomerCommandHandler(),
		SaveSender:       c.CreateSaveSenderCommandHandler(),
		CreateBookings:   createBookings,
		DeleteBooking:    c.CreateDeleteBookingCommandHandler(),
		RefreshTerminals: c.CreateRefreshTerminalsCommandHandler(),
		ListCustomers:    c.CreateListCustomersQueryHandler(),
		GetCustomer:      c.CreateGetCustomerQueryHandler(),
		GetSender:        c.CreateGetSenderQueryHandler(),
		ListBookings:     c.CreateListBookingsQueryHandler(),
		Terminals:        terminals,
	}, c.config.DefaultPackageSize)
	if err != nil {
		return nil, err
	}

	return apihttp.NewEcho(server, c.metrics, c.metrics.Handler(), c.logger), nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewTerminalRefreshJob(c.CreateRefreshTerminalsCommandHandler(), c.config.TerminalRefreshSchedule, c.logger),
	)
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncSenderUoWFactory func() commands.SenderUoW

func (f FuncSenderUoWFactory) Create() commands.SenderUoW {
	return f()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
