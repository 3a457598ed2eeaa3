package jobs

import (
	"context"
	"log/slog"

	"petadoption/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AvailabilityReconciliationJob manages the scheduled repair of pet
// availability flags. Runs every minute to realign the available flag with
// the set of active adoption orders.
type AvailabilityReconciliationJob struct {
	handler commands.ReconcileAvailabilityCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAvailabilityReconciliationJob creates a new job for availability repair.
// Uses ReconcileAvailabilityCommandHandler to sweep the pets table every minute.
func NewAvailabilityReconciliationJob(
	handler commands.ReconcileAvailabilityCommandHandler,
	logger *slog.Logger,
) *AvailabilityReconciliationJob {
	return &AvailabilityReconciliationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "availability_reconciliation_job"),
	}
}

// Start begins the availability reconciliation job to run every minute.
func (j *AvailabilityReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewReconcileAvailabilityCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Availability reconciliation job failed", "error", err)
			return
		}

		report, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Availability reconciliation job failed", "error", err)
			return
		}

		// A consistent store is the normal case; only repairs are worth a line.
		if report.Released > 0 || report.Reserved > 0 {
			j.logger.InfoContext(ctx, "Availability flags repaired",
				"released", report.Released,
				"reserved", report.Reserved,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Availability reconciliation job started (running every minute)")
	return nil
}

// Stop stops the availability reconciliation job.
func (j *AvailabilityReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Availability reconciliation job stopped")
}
