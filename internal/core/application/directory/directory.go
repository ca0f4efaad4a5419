// Package directory implements the terminal directory: a process-wide, time-bounded
// cache of the locker network's terminals.
//
// Concurrent GetAll calls on a cold or expired cache share one in-flight fetch,
// and so do concurrent forced refreshes. A forced refresh may overlap a regular
// fetch; whichever finishes last owns the cache. Each caller honours its own
// context while waiting. Cache writes replace the whole snapshot at once, so
// readers never see a partly filled cache.
package directory

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"lockerbooking/internal/core/domain/model/terminal"
	"lockerbooking/internal/core/ports"
	"lockerbooking/internal/pkg/errs"

	"github.com/facebookgo/clock"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long a fetched terminal list is served without refetching.
const DefaultTTL = 5 * time.Minute

const (
	fetchKey       = "terminals"
	forcedFetchKey = "terminals/forced"
)

// FetchRecorder observes directory fetches.
type FetchRecorder interface {
	RecordTerminalFetch(success bool, size int)
}

type Option func(*Directory)

func WithClock(c clock.Clock) Option {
	return func(d *Directory) { d.clock = c }
}

func WithTTL(ttl time.Duration) Option {
	return func(d *Directory) {
		if ttl > 0 {
			d.ttl = ttl
		}
	}
}

func WithRecorder(r FetchRecorder) Option {
	return func(d *Directory) { d.recorder = r }
}

// Directory caches the terminal list fetched from a ports.TerminalSource.
type Directory struct {
	source   ports.TerminalSource
	clock    clock.Clock
	ttl      time.Duration
	logger   *slog.Logger
	recorder FetchRecorder

	group singleflight.Group

	mu        sync.RWMutex
	terminals []terminal.Terminal
	byCode    map[string]terminal.Terminal
	fetchedAt time.Time
	populated bool
}

var _ ports.TerminalDirectory = (*Directory)(nil)

func New(source ports.TerminalSource, logger *slog.Logger, opts ...Option) (*Directory, error) {
	if source == nil {
		return nil, errs.NewValueIsRequiredError("terminal source")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	d := &Directory{
		source: source,
		clock:  clock.New(),
		ttl:    DefaultTTL,
		logger: logger.With("component", "terminal_directory"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// GetAll returns the cached terminals while they are younger than the TTL and
// forceRefresh is false. Otherwise it fetches, replaces the cache and returns
// the fresh list. On failure the cache is left empty and the error matches
// errs.ErrCacheFetch.
func (d *Directory) GetAll(ctx context.Context, forceRefresh bool) ([]terminal.Terminal, error) {
	if !forceRefresh {
		if cached, ok := d.fresh(); ok {
			return cached, nil
		}
	}

	key := fetchKey
	if forceRefresh {
		key = forcedFetchKey
	}
	ch := d.group.DoChan(key, func() (any, error) {
		if !forceRefresh {
			if cached, ok := d.fresh(); ok {
				return cached, nil
			}
		}
		return d.fetch(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", errs.ErrCacheFetch, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		list, _ := res.Val.([]terminal.Terminal)
		return slices.Clone(list), nil
	}
}

// FindByCode looks a terminal up by code, ignoring case and surrounding spaces.
func (d *Directory) FindByCode(code string) (terminal.Terminal, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	t, ok := d.byCode[codeKey(code)]
	return t, ok
}

func (d *Directory) Search(term string) []terminal.Terminal {
	d.mu.RLock()
	defer d.mu.RUnlock()

	found := make([]terminal.Terminal, 0, len(d.terminals))
	for _, t := range d.terminals {
		if t.Matches(term) {
			found = append(found, t)
		}
	}
	return found
}

func (d *Directory) Clear() {
	d.replace(nil, time.Time{}, false)
	d.logger.Info("terminal cache cleared")
}

// FetchedAt returns when the current snapshot was fetched and whether one exists.
func (d *Directory) FetchedAt() (time.Time, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.fetchedAt, d.populated
}

func (d *Directory) fresh() ([]terminal.Terminal, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.populated || d.clock.Now().Sub(d.fetchedAt) >= d.ttl {
		return nil, false
	}
	return slices.Clone(d.terminals), true
}

func (d *Directory) fetch(ctx context.Context) ([]terminal.Terminal, error) {
	list, err := d.source.ListTerminals(ctx)
	if err != nil {
		d.replace(nil, time.Time{}, false)
		d.record(false, 0)
		d.logger.Error("failed to fetch terminals", "error", err)
		return nil, fmt.Errorf("%w: %w", errs.ErrCacheFetch, err)
	}

	d.replace(list, d.clock.Now(), true)
	d.record(true, len(list))
	d.logger.Debug("terminal cache refreshed", "count", len(list))
	return list, nil
}

// replace swaps the whole snapshot. Duplicate codes keep the last record.
func (d *Directory) replace(list []terminal.Terminal, at time.Time, populated bool) {
	byCode := make(map[string]terminal.Terminal, len(list))
	for _, t := range list {
		byCode[codeKey(t.Code())] = t
	}
	list = slices.Clone(list)

	d.mu.Lock()
	defer d.mu.Unlock()

	d.terminals = list
	d.byCode = byCode
	d.fetchedAt = at
	d.populated = populated
}

func codeKey(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (d *Directory) record(success bool, size int) {
	if d.recorder != nil {
		d.recorder.RecordTerminalFetch(success, size)
	}
}
