package booking

import (
	"strings"

	"lockerbooking/internal/pkg/errs"
)

// Status is the shipment status as last known. It is free-form because the
// network may report values this service does not know about.
type Status string

// Created is the status every booking starts with.
const Created Status = "created"

func (s Status) Validate() error {
	if strings.TrimSpace(string(s)) == "" {
		return errs.NewValueIsRequiredError("booking status")
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}
