package http

import (
	"net/http"

	"lockerbooking/internal/core/application/usecases/commands"
	"lockerbooking/internal/core/application/usecases/queries"
	"lockerbooking/internal/core/domain/model/kernel"
	"lockerbooking/internal/core/domain/model/shipment"

	"github.com/labstack/echo/v4"
)

// ListBookings handles GET /api/v1/bookings.
//
//	@Summary	List bookings, newest first
//	@Tags		bookings
//	@Produce	json
//	@Success	200	{array}	BookingResponse
//	@Router		/bookings [get]
func (s *Server) ListBookings(c echo.Context) error {
	return s.respondWithBookings(c, queries.NewListBookingsQuery())
}

// CreateBookings handles POST /api/v1/bookings. The batch runs to completion;
// per-customer failures are reported in the body with status 200.
//
//	@Summary	Book shipments for the selected customers
//	@Tags		bookings
//	@Accept		json
//	@Produce	json
//	@Param		batch	body		CreateBookingsRequest	true	"Selection"
//	@Success	200		{object}	BatchResponse
//	@Failure	400		{object}	Error	"empty selection or no sender configured"
//	@Failure	409		{object}	Error	"another batch is running"
//	@Router		/bookings [post]
func (s *Server) CreateBookings(c echo.Context) error {
	var req CreateBookingsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	cmd, err := s.toCreateBookingsCommand(req)
	if err != nil {
		return err
	}

	result, err := s.h.CreateBookings.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBatchResponse(result))
}

// DeleteBooking handles DELETE /api/v1/bookings/:id. The shipment itself is not cancelled.
//
//	@Summary	Delete a booking record
//	@Tags		bookings
//	@Param		id	path	string	true	"Booking ID"
//	@Success	204
//	@Failure	404	{object}	Error
//	@Router		/bookings/{id} [delete]
func (s *Server) DeleteBooking(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteBookingCommand(id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteBooking.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) toCreateBookingsCommand(req CreateBookingsRequest) (commands.CreateBookingsCommand, error) {
	ids := make([]kernel.UUID, 0, len(req.CustomerIDs))
	for _, raw := range req.CustomerIDs {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return commands.CreateBookingsCommand{}, badRequest("invalid customer id " + raw)
		}
		ids = append(ids, id)
	}

	defaultSize := s.defaultSize
	if req.DefaultSize != "" {
		size, err := shipment.ParsePackageSize(req.DefaultSize)
		if err != nil {
			return commands.CreateBookingsCommand{}, err
		}
		defaultSize = size
	}

	sizes := make(map[kernel.UUID]shipment.PackageSize, len(req.Sizes))
	for rawID, rawSize := range req.Sizes {
		id, err := kernel.UUIDFromString(rawID)
		if err != nil {
			return commands.CreateBookingsCommand{}, badRequest("invalid customer id " + rawID)
		}
		size, err := shipment.ParsePackageSize(rawSize)
		if err != nil {
			return commands.CreateBookingsCommand{}, err
		}
		sizes[id] = size
	}

	return commands.NewCreateBookingsCommand(ids, defaultSize, sizes)
}

func (s *Server) respondWithBookings(c echo.Context, query queries.ListBookingsQuery) error {
	bookings, err := s.h.ListBookings.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		response[i] = toBookingResponse(b)
	}
	return c.JSON(http.StatusOK, response)
}
