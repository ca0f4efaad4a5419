package http

import (
	"net/http"
	"strconv"

	"lockerbooking/internal/core/application/usecases/commands"
	"lockerbooking/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// SearchTerminals handles GET /api/v1/terminals?q=&refresh=.
//
//	@Summary	Search the terminal directory
//	@Tags		terminals
//	@Produce	json
//	@Param		q		query	string	false	"Matches code, name or address"
//	@Param		refresh	query	bool	false	"Refetch the directory first"
//	@Success	200		{array}	TerminalResponse
//	@Failure	502		{object}	Error
//	@Router		/terminals [get]
func (s *Server) SearchTerminals(c echo.Context) error {
	refresh := false
	if raw := c.QueryParam("refresh"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return badRequest("invalid refresh flag")
		}
		refresh = v
	}

	terminals, err := s.h.Terminals.Search(c.Request().Context(), queries.NewSearchTerminalsQuery(c.QueryParam("q"), refresh))
	if err != nil {
		return err
	}

	response := make([]TerminalResponse, len(terminals))
	for i, t := range terminals {
		response[i] = toTerminalResponse(t)
	}
	return c.JSON(http.StatusOK, response)
}

// GetTerminal handles GET /api/v1/terminals/:code.
//
//	@Summary	Get one terminal by code
//	@Tags		terminals
//	@Produce	json
//	@Param		code	path		string	true	"Terminal code"
//	@Success	200		{object}	TerminalResponse
//	@Failure	404		{object}	Error
//	@Router		/terminals/{code} [get]
func (s *Server) GetTerminal(c echo.Context) error {
	query, err := queries.NewGetTerminalQuery(c.Param("code"))
	if err != nil {
		return err
	}

	terminal, err := s.h.Terminals.Get(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toTerminalResponse(terminal))
}

// ClearTerminalCache handles DELETE /api/v1/terminals/cache.
//
//	@Summary	Drop the cached terminal list
//	@Tags		terminals
//	@Success	204
//	@Router		/terminals/cache [delete]
func (s *Server) ClearTerminalCache(c echo.Context) error {
	if _, err := s.h.RefreshTerminals.Handle(c.Request().Context(), commands.RefreshTerminalsCommand{ClearOnly: true}); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
