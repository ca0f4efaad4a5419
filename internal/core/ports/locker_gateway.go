package ports

import (
	"context"

	"lockerbooking/internal/core/domain/model/shipment"
	"lockerbooking/internal/core/domain/model/terminal"
)

// TerminalSource lists every terminal of the locker network.
type TerminalSource interface {
	ListTerminals(ctx context.Context) ([]terminal.Terminal, error)
}

// LockerGateway is the only way the core talks to the locker network.
// Implementations attach credentials and report failures as errors matching
// errs.ErrTransport. They never retry.
type LockerGateway interface {
	TerminalSource

	CreateShipment(ctx context.Context, payload shipment.Payload) (shipment.Result, error)
}
