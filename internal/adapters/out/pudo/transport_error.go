package pudo

import (
	"fmt"

	"lockerbooking/internal/pkg/errs"
)

const (
	OperationListTerminals  = "list_terminals"
	OperationCreateShipment = "create_shipment"
)

// TransportError is a failed call to the locker network. StatusCode is zero
// when no response was received.
type TransportError struct {
	Operation  string
	StatusCode int
	Body       string
	Cause      error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Body != "":
		return fmt.Sprintf("%s: %s: status %d: %s", errs.ErrTransport, e.Operation, e.StatusCode, e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: %s: status %d", errs.ErrTransport, e.Operation, e.StatusCode)
	default:
		return fmt.Sprintf("%s: %s: %v", errs.ErrTransport, e.Operation, e.Cause)
	}
}

func (e *TransportError) Is(target error) bool {
	return target == errs.ErrTransport
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
