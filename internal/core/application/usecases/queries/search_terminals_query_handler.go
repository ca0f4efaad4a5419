package queries

import (
	"context"

	"lockerbooking/internal/core/domain/model/terminal"
	"lockerbooking/internal/core/ports"
	"lockerbooking/internal/pkg/errs"
)

// TerminalQueryHandler answers terminal lookups from the directory cache.
type TerminalQueryHandler struct {
	directory ports.TerminalDirectory
}

func NewTerminalQueryHandler(directory ports.TerminalDirectory) (TerminalQueryHandler, error) {
	if directory == nil {
		return TerminalQueryHandler{}, errs.NewValueIsRequiredError("directory")
	}
	return TerminalQueryHandler{directory: directory}, nil
}

// Search warms the cache when it is cold or expired (always, with Refresh) and
// then filters it. A failed fetch is returned as is, matching errs.ErrCacheFetch.
func (h TerminalQueryHandler) Search(ctx context.Context, query SearchTerminalsQuery) ([]TerminalReadModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.directory.GetAll(ctx, query.Refresh()); err != nil {
		return nil, err
	}

	found := h.directory.Search(query.Term())
	result := make([]TerminalReadModel, 0, len(found))
	for _, t := range found {
		result = append(result, toTerminalReadModel(t))
	}
	return result, nil
}

// Get warms a cold or expired cache and then looks the code up.
func (h TerminalQueryHandler) Get(ctx context.Context, query GetTerminalQuery) (TerminalReadModel, error) {
	if err := query.Validate(); err != nil {
		return TerminalReadModel{}, err
	}

	if _, err := h.directory.GetAll(ctx, false); err != nil {
		return TerminalReadModel{}, err
	}

	t, ok := h.directory.FindByCode(query.Code())
	if !ok {
		return TerminalReadModel{}, errs.NewObjectNotFoundError("terminal", query.Code())
	}
	return toTerminalReadModel(t), nil
}

func toTerminalReadModel(t terminal.Terminal) TerminalReadModel {
	m := TerminalReadModel{
		Code:    t.Code(),
		Name:    t.Name(),
		Address: t.Address(),
		Town:    t.Town(),
	}
	if loc, ok := t.Location(); ok {
		m.Latitude = loc.Latitude()
		m.Longitude = loc.Longitude()
		m.HasLocation = true
	}
	return m
}
