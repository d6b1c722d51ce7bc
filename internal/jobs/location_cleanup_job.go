package jobs

import (
	"context"
	"log/slog"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// LocationCleanupJob periodically removes stored rider positions that no
// active order justifies keeping. Runs every minute; the feed stays small
// because only in-flight riders are tracked.
type LocationCleanupJob struct {
	handler commands.CleanupLocationsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLocationCleanupJob creates the location cleanup job.
func NewLocationCleanupJob(handler commands.CleanupLocationsCommandHandler, logger *slog.Logger) *LocationCleanupJob {
	return &LocationCleanupJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "location_cleanup_job"),
	}
}

// Start begins the cleanup job, running every minute.
func (j *LocationCleanupJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCleanupLocationsCommand()

		removed, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Location cleanup job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Removed stale rider locations", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Location cleanup job started (running every minute)")
	return nil
}

// Stop stops the cleanup job.
func (j *LocationCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Location cleanup job stopped")
}
