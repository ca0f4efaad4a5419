package jobs

import (
	"context"
	"log/slog"

	"lockerbooking/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultRefreshSchedule runs at second zero of every fifth minute.
const DefaultRefreshSchedule = "0 */5 * * * *"

type terminalRefresher interface {
	Handle(ctx context.Context, cmd commands.RefreshTerminalsCommand) (int, error)
}

// TerminalRefreshJob periodically refetches the terminal directory.
type TerminalRefreshJob struct {
	handler  terminalRefresher
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewTerminalRefreshJob(handler terminalRefresher, schedule string, logger *slog.Logger) *TerminalRefreshJob {
	if schedule == "" {
		schedule = DefaultRefreshSchedule
	}
	return &TerminalRefreshJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "terminal_refresh_job"),
	}
}

// Start registers the job on its schedule. An invalid schedule is returned as an error.
func (j *TerminalRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Terminal refresh job started", "schedule", j.schedule)
	return nil
}

// Run performs one refresh.
func (j *TerminalRefreshJob) Run(ctx context.Context) {
	n, err := j.handler.Handle(ctx, commands.RefreshTerminalsCommand{})
	if err != nil {
		j.logger.ErrorContext(ctx, "Terminal refresh failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Terminal directory refreshed", "terminals", n)
}

// Stop waits for a running refresh to finish.
func (j *TerminalRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Terminal refresh job stopped")
}
