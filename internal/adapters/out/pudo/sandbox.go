package pudo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"lockerbooking/internal/core/domain/model/shipment"
	"lockerbooking/internal/core/domain/model/terminal"
	"lockerbooking/internal/pkg/errs"

	"github.com/facebookgo/clock"
)

const sandboxStatus = "created"

// Sandbox is an offline gateway. Shipments addressed to a terminal code that
// is not in its list are rejected with a 422 TransportError, like the live
// network would.
type Sandbox struct {
	terminals []terminal.Terminal
	clock     clock.Clock
	logger    *slog.Logger
}

func NewSandbox(terminals []terminal.Terminal, clk clock.Clock, logger *slog.Logger) (*Sandbox, error) {
	if clk == nil {
		return nil, errs.NewValueIsRequiredError("clock")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &Sandbox{
		terminals: slices.Clone(terminals),
		clock:     clk,
		logger:    logger.With("component", "pudo_sandbox"),
	}, nil
}

func (s *Sandbox) ListTerminals(ctx context.Context) ([]terminal.Terminal, error) {
	if err := ctx.Err(); err != nil {
		return nil, &TransportError{Operation: OperationListTerminals, Cause: err}
	}
	return slices.Clone(s.terminals), nil
}

func (s *Sandbox) CreateShipment(ctx context.Context, payload shipment.Payload) (shipment.Result, error) {
	if err := ctx.Err(); err != nil {
		return shipment.Result{}, &TransportError{Operation: OperationCreateShipment, Cause: err}
	}

	for _, ep := range []shipment.Endpoint{payload.CollectionAddress, payload.DeliveryAddress} {
		if code, ok := terminalCode(ep); ok && !s.knows(code) {
			return shipment.Result{}, &TransportError{
				Operation:  OperationCreateShipment,
				StatusCode: http.StatusUnprocessableEntity,
				Body:       fmt.Sprintf("unknown terminal %q", code),
			}
		}
	}

	reference := fmt.Sprintf("MOCK_%d", s.clock.Now().UnixNano())
	raw, err := json.Marshal(map[string]string{
		"id":                 reference,
		"status":             sandboxStatus,
		"service_level_code": payload.ServiceLevelCode,
	})
	if err != nil {
		return shipment.Result{}, err
	}

	s.logger.InfoContext(ctx, "sandbox shipment created", "reference", reference)
	return shipment.Result{Reference: reference, Status: sandboxStatus, Raw: raw}, nil
}

func (s *Sandbox) knows(code string) bool {
	return slices.ContainsFunc(s.terminals, func(t terminal.Terminal) bool {
		return strings.EqualFold(t.Code(), code)
	})
}

func terminalCode(ep shipment.Endpoint) (string, bool) {
	v, ok := ep.(shipment.TerminalEndpoint)
	return v.Code, ok
}

// DefaultSandboxTerminals is the list served when no other is configured.
func DefaultSandboxTerminals() []terminal.Terminal {
	seed := []terminalRecord{
		{Code: "CG1", Name: "Sandbox Canal Walk", Address: "Century Blvd, Century City"},
		{Code: "CG2", Name: "Sandbox Menlyn", Address: "Atterbury Rd, Menlyn"},
		{Code: "CG3", Name: "Sandbox Gateway", Address: "1 Palm Blvd, Umhlanga"},
	}
	seed[0].Place.Town = "Cape Town"
	seed[1].Place.Town = "Pretoria"
	seed[2].Place.Town = "Durban"
	return toTerminals(seed)
}
