package terminal

import (
	"strings"

	"lockerbooking/internal/core/domain/model/kernel"
	"lockerbooking/internal/pkg/errs"
)

// Terminal is one locker site. Code is the stable identifier issued by the network.
type Terminal struct {
	code     string
	name     string
	address  string
	town     string
	location kernel.GeoPoint
}

// NewTerminal requires a code. location may be the zero GeoPoint when the
// network did not publish coordinates.
func NewTerminal(code, name, address, town string, location kernel.GeoPoint) (Terminal, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Terminal{}, errs.NewValueIsRequiredError("terminal code")
	}

	return Terminal{
		code:     code,
		name:     strings.TrimSpace(name),
		address:  strings.TrimSpace(address),
		town:     strings.TrimSpace(town),
		location: location,
	}, nil
}

func (t Terminal) Code() string    { return t.code }
func (t Terminal) Name() string    { return t.name }
func (t Terminal) Address() string { return t.address }
func (t Terminal) Town() string    { return t.town }

// Location returns the coordinates and whether the network published any.
func (t Terminal) Location() (kernel.GeoPoint, bool) {
	return t.location, t.location.Validate() == nil
}

// Label is the human-readable name used in reports, falling back to the code.
func (t Terminal) Label() string {
	if t.name != "" {
		return t.name
	}
	return t.code
}

// Matches reports whether term occurs in the code, name or address, ignoring case.
// An empty term matches every terminal.
func (t Terminal) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}

	return strings.Contains(strings.ToLower(t.code), term) ||
		strings.Contains(strings.ToLower(t.name), term) ||
		strings.Contains(strings.ToLower(t.address), term)
}
