package http

import (
	"net/http"

	"lockerbooking/internal/core/application/usecases/commands"
	"lockerbooking/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetSender handles GET /api/v1/sender. 404 means no sender is configured yet.
//
//	@Summary	Get the sender
//	@Tags		sender
//	@Produce	json
//	@Success	200	{object}	SenderResponse
//	@Failure	404	{object}	Error
//	@Router		/sender [get]
func (s *Server) GetSender(c echo.Context) error {
	sender, err := s.h.GetSender.Handle(c.Request().Context(), queries.NewGetSenderQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, SenderResponse{
		PartyResponse: toPartyResponse(sender.PartyReadModel),
		UpdatedAt:     sender.UpdatedAt,
	})
}

// SaveSender handles PUT /api/v1/sender.
//
//	@Summary	Create or replace the sender
//	@Tags		sender
//	@Accept		json
//	@Produce	json
//	@Param		sender	body		PartyRequest	true	"Sender details"
//	@Success	200		{object}	SenderResponse
//	@Failure	422		{object}	Error
//	@Router		/sender [put]
func (s *Server) SaveSender(c echo.Context) error {
	var req PartyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	details, err := req.toDomain()
	if err != nil {
		return err
	}

	cmd, err := commands.NewSaveSenderCommand(details)
	if err != nil {
		return err
	}
	if err = s.h.SaveSender.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.GetSender(c)
}
