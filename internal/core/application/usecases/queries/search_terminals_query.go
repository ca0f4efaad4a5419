package queries

import (
	"errors"
	"strings"

	"lockerbooking/internal/pkg/errs"
	"lockerbooking/internal/pkg/guard"
)

var (
	ErrSearchTerminalsQueryIsNotConstructed = errors.New(
		"SearchTerminalsQuery must be created via NewSearchTerminalsQuery constructor",
	)
	ErrGetTerminalQueryIsNotConstructed = errors.New(
		"GetTerminalQuery must be created via NewGetTerminalQuery constructor",
	)
)

// SearchTerminalsQuery filters the terminal directory. Refresh forces a fetch first.
type SearchTerminalsQuery struct {
	term    string
	refresh bool
	guard   guard.ConstructorGuard
}

func NewSearchTerminalsQuery(term string, refresh bool) SearchTerminalsQuery {
	return SearchTerminalsQuery{
		term:    strings.TrimSpace(term),
		refresh: refresh,
		guard:   guard.NewConstructorGuard(),
	}
}

func (q SearchTerminalsQuery) Validate() error {
	return q.guard.Validate(ErrSearchTerminalsQueryIsNotConstructed)
}

func (q SearchTerminalsQuery) Term() string  { return q.term }
func (q SearchTerminalsQuery) Refresh() bool { return q.refresh }

type GetTerminalQuery struct {
	code  string
	guard guard.ConstructorGuard
}

func NewGetTerminalQuery(code string) (GetTerminalQuery, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return GetTerminalQuery{}, errs.NewValueIsRequiredError("terminal code")
	}
	return GetTerminalQuery{code: code, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTerminalQuery) Validate() error {
	return q.guard.Validate(ErrGetTerminalQueryIsNotConstructed)
}

func (q GetTerminalQuery) Code() string { return q.code }

// TerminalReadModel is a terminal as listed to the operator. HasLocation is false
// when the network reported no usable coordinates.
type TerminalReadModel struct {
	Code        string
	Name        string
	Address     string
	Town        string
	Latitude    float64
	Longitude   float64
	HasLocation bool
}
