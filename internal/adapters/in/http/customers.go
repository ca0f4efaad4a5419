package http

import (
	"net/http"

	"lockerbooking/internal/core/application/usecases/commands"
	"lockerbooking/internal/core/application/usecases/queries"
	"lockerbooking/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListCustomers handles GET /api/v1/customers.
//
//	@Summary	List customers, newest first
//	@Tags		customers
//	@Produce	json
//	@Success	200	{array}	CustomerResponse
//	@Router		/customers [get]
func (s *Server) ListCustomers(c echo.Context) error {
	customers, err := s.h.ListCustomers.Handle(c.Request().Context(), queries.NewListCustomersQuery())
	if err != nil {
		return err
	}

	response := make([]CustomerResponse, len(customers))
	for i, customer := range customers {
		response[i] = toCustomerResponse(customer)
	}
	return c.JSON(http.StatusOK, response)
}

// GetCustomer handles GET /api/v1/customers/:id.
//
//	@Summary	Get one customer
//	@Tags		customers
//	@Produce	json
//	@Param		id	path		string	true	"Customer ID"
//	@Success	200	{object}	CustomerResponse
//	@Failure	404	{object}	Error
//	@Router		/customers/{id} [get]
func (s *Server) GetCustomer(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	return s.respondWithCustomer(c, http.StatusOK, id)
}

// CreateCustomer handles POST /api/v1/customers.
//
//	@Summary	Create a customer
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		customer	body		PartyRequest	true	"Customer details"
//	@Success	201			{object}	CustomerResponse
//	@Failure	400			{object}	Error
//	@Failure	422			{object}	Error
//	@Router		/customers [post]
func (s *Server) CreateCustomer(c echo.Context) error {
	var req PartyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	details, err := req.toDomain()
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), details)
	if err != nil {
		return err
	}
	if err = s.h.CreateCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithCustomer(c, http.StatusCreated, cmd.CustomerID())
}

// UpdateCustomer handles PUT /api/v1/customers/:id.
//
//	@Summary	Replace a customer's details
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string			true	"Customer ID"
//	@Param		customer	body		PartyRequest	true	"Customer details"
//	@Success	200			{object}	CustomerResponse
//	@Failure	404			{object}	Error
//	@Failure	422			{object}	Error
//	@Router		/customers/{id} [put]
func (s *Server) UpdateCustomer(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req PartyRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	details, err := req.toDomain()
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, details)
	if err != nil {
		return err
	}
	if err = s.h.UpdateCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondWithCustomer(c, http.StatusOK, id)
}

// DeleteCustomer handles DELETE /api/v1/customers/:id. Past bookings are kept.
//
//	@Summary	Delete a customer
//	@Tags		customers
//	@Param		id	path	string	true	"Customer ID"
//	@Success	204
//	@Failure	404	{object}	Error
//	@Router		/customers/{id} [delete]
func (s *Server) DeleteCustomer(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteCustomerCommand(id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListCustomerBookings handles GET /api/v1/customers/:id/bookings.
//
//	@Summary	List one customer's bookings, newest first
//	@Tags		customers
//	@Produce	json
//	@Param		id	path	string	true	"Customer ID"
//	@Success	200	{array}	BookingResponse
//	@Router		/customers/{id}/bookings [get]
func (s *Server) ListCustomerBookings(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewListCustomerBookingsQuery(id)
	if err != nil {
		return err
	}
	return s.respondWithBookings(c, query)
}

func (s *Server) respondWithCustomer(c echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return err
	}

	customer, err := s.h.GetCustomer.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, toCustomerResponse(customer))
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param(name))
	if err != nil {
		return kernel.UUID{}, badRequest("invalid " + name)
	}
	return id, nil
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return badRequest("invalid request body")
	}
	return c.Validate(req)
}
