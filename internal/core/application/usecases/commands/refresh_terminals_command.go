package commands

import (
	"context"

	"lockerbooking/internal/core/ports"
)

// RefreshTerminalsCommand asks the terminal directory to refetch now, or to drop
// its cache when ClearOnly is set.
type RefreshTerminalsCommand struct {
	ClearOnly bool
}

// RefreshTerminalsCommandHandler keeps the terminal directory warm. It is driven
// by the scheduler and by operators through the API.
type RefreshTerminalsCommandHandler struct {
	directory ports.TerminalDirectory
}

func NewRefreshTerminalsCommandHandler(directory ports.TerminalDirectory) RefreshTerminalsCommandHandler {
	return RefreshTerminalsCommandHandler{directory: directory}
}

// Handle returns the number of terminals cached afterwards.
func (h RefreshTerminalsCommandHandler) Handle(ctx context.Context, cmd RefreshTerminalsCommand) (int, error) {
	if cmd.ClearOnly {
		h.directory.Clear()
		return 0, nil
	}

	terminals, err := h.directory.GetAll(ctx, true)
	if err != nil {
		return 0, err
	}
	return len(terminals), nil
}
