package commands

import (
	"fmt"
	"strings"

	"lockerbooking/internal/core/domain/model/booking"
	"lockerbooking/internal/core/domain/model/kernel"
	"lockerbooking/internal/core/domain/model/shipment"
)

// BatchOutcome classifies a finished batch.
type BatchOutcome string

const (
	AllSucceeded BatchOutcome = "all_succeeded"
	Partial      BatchOutcome = "partial"
	AllFailed    BatchOutcome = "all_failed"
)

// BookingOutcome is the result for one customer of a batch. Err is nil exactly
// when the shipment was created and its booking saved.
type BookingOutcome struct {
	CustomerID   kernel.UUID
	CustomerName string
	Size         shipment.PackageSize

	// Destination is the terminal name for locker deliveries (the raw code when
	// the name is unknown) or the one-line street address.
	Destination string

	Shipment shipment.Result
	Booking  *booking.Booking
	Err      error
}

func (o BookingOutcome) Succeeded() bool {
	return o.Err == nil
}

// Reason is the failure message shown to the operator, or "" on success.
func (o BookingOutcome) Reason() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

// BatchResult holds one outcome per selected customer, in selection order.
type BatchResult struct {
	Outcomes []BookingOutcome
}

func (r BatchResult) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Succeeded() {
			n++
		}
	}
	return n
}

func (r BatchResult) Failed() int {
	return len(r.Outcomes) - r.Succeeded()
}

func (r BatchResult) Outcome() BatchOutcome {
	switch succeeded, failed := r.Succeeded(), r.Failed(); {
	case succeeded > 0 && failed == 0:
		return AllSucceeded
	case succeeded > 0:
		return Partial
	default:
		return AllFailed
	}
}

// Message is the operator-facing summary; each classification has its own wording.
func (r BatchResult) Message() string {
	switch r.Outcome() {
	case AllSucceeded:
		return fmt.Sprintf("Successfully created %d booking(s)", r.Succeeded())
	case Partial:
		return fmt.Sprintf("Created %d booking(s), %d failed", r.Succeeded(), r.Failed())
	default:
		return "All bookings failed to create"
	}
}

func (r BatchResult) Failures() []BookingOutcome {
	var failed []BookingOutcome
	for _, o := range r.Outcomes {
		if !o.Succeeded() {
			failed = append(failed, o)
		}
	}
	return failed
}

// FailureReport lists failed customers as "name: reason", one per line.
func (r BatchResult) FailureReport() string {
	var b strings.Builder
	for i, o := range r.Failures() {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s", o.CustomerName, o.Reason())
	}
	return b.String()
}
