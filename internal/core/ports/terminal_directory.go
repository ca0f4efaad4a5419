package ports

import (
	"context"

	"lockerbooking/internal/core/domain/model/terminal"
)

// TerminalDirectory is the time-bounded cache of the locker network's terminals.
type TerminalDirectory interface {
	// GetAll returns the cached terminals, fetching them when the cache is cold,
	// expired or forceRefresh is set. A failed fetch empties the cache and
	// returns an error matching errs.ErrCacheFetch.
	GetAll(ctx context.Context, forceRefresh bool) ([]terminal.Terminal, error)

	// FindByCode looks a terminal up in the current cache without fetching.
	// Codes compare case-insensitively.
	FindByCode(code string) (terminal.Terminal, bool)

	// Search filters the current cache without fetching. An empty term returns everything.
	Search(term string) []terminal.Terminal

	// Clear drops the cache so the next GetAll fetches.
	Clear()
}
