package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"lockerbooking/internal/core/application/usecases/commands"
	"lockerbooking/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRefresher struct{ mock.Mock }

func (m *MockRefresher) Handle(ctx context.Context, cmd commands.RefreshTerminalsCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockJob struct{ mock.Mock }

func (m *MockJob) Start() error { return m.Called().Error(0) }
func (m *MockJob) Stop()        { m.Called() }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTerminalRefreshJob_Run(t *testing.T) {
	t.Run("should force a refresh", func(t *testing.T) {
		refresher := new(MockRefresher)
		refresher.On("Handle", mock.Anything, commands.RefreshTerminalsCommand{}).Return(12, nil).Once()

		jobs.NewTerminalRefreshJob(refresher, "", discardLogger()).Run(t.Context())

		refresher.AssertExpectations(t)
	})

	t.Run("should swallow refresh failures", func(t *testing.T) {
		refresher := new(MockRefresher)
		refresher.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("network down")).Once()

		assert.NotPanics(t, func() {
			jobs.NewTerminalRefreshJob(refresher, "", discardLogger()).Run(t.Context())
		})
		refresher.AssertExpectations(t)
	})
}

func TestTerminalRefreshJob_Start(t *testing.T) {
	t.Run("should reject an invalid schedule", func(t *testing.T) {
		job := jobs.NewTerminalRefreshJob(new(MockRefresher), "every now and then", discardLogger())

		require.Error(t, job.Start())
	})

	t.Run("should start and stop", func(t *testing.T) {
		job := jobs.NewTerminalRefreshJob(new(MockRefresher), "0 0 3 * * *", discardLogger())

		require.NoError(t, job.Start())
		job.Stop()
	})
}

func TestJobManager(t *testing.T) {
	t.Run("should stop started jobs when a later one fails", func(t *testing.T) {
		first := new(MockJob)
		first.On("Start").Return(nil).Once()
		first.On("Stop").Once()
		second := new(MockJob)
		second.On("Start").Return(errors.New("bad schedule")).Once()

		err := jobs.NewJobManager(first, second).StartAll()

		require.ErrorContains(t, err, "bad schedule")
		first.AssertExpectations(t)
		second.AssertExpectations(t)
		second.AssertNotCalled(t, "Stop")
	})

	t.Run("should stop in reverse order", func(t *testing.T) {
		var order []string
		first := new(MockJob)
		first.On("Stop").Run(func(mock.Arguments) { order = append(order, "first") }).Once()
		second := new(MockJob)
		second.On("Stop").Run(func(mock.Arguments) { order = append(order, "second") }).Once()

		jobs.NewJobManager(first, second).StopAll()

		assert.Equal(t, []string{"second", "first"}, order)
	})
}
