package http

import (
	"log/slog"
	"net/http"

	_ "lockerbooking/internal/generated/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewEcho builds the HTTP router. Metrics sit outermost so they see the status
// written by the error handler.
func NewEcho(server *Server, recorder RequestRecorder, metricsHandler http.Handler, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewRequestValidator()
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(MetricsMiddleware(recorder))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(RequestLogger(logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metricsHandler))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	api.GET("/customers", server.ListCustomers)
	api.POST("/customers", server.CreateCustomer)
	api.GET("/customers/:id", server.GetCustomer)
	api.PUT("/customers/:id", server.UpdateCustomer)
	api.DELETE("/customers/:id", server.DeleteCustomer)
	api.GET("/customers/:id/bookings", server.ListCustomerBookings)

	api.GET("/sender", server.GetSender)
	api.PUT("/sender", server.SaveSender)

	api.GET("/bookings", server.ListBookings)
	api.POST("/bookings", server.CreateBookings, SingleFlight("create bookings"))
	api.DELETE("/bookings/:id", server.DeleteBooking)

	api.GET("/terminals", server.SearchTerminals)
	api.DELETE("/terminals/cache", server.ClearTerminalCache)
	api.GET("/terminals/:code", server.GetTerminal)

	return e
}
