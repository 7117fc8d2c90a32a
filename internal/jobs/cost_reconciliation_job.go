package jobs

import (
	"context"
	"log/slog"

	"freight/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CostReconciliationJob reprices the whole inventory against the current
// rates every night. Catches items whose stored cost drifted from the rates
// row, typically after an administrator edited rates without triggering a
// recompute sweep.
type CostReconciliationJob struct {
	handler commands.RecomputeCostsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCostReconciliationJob creates the nightly repricing job.
// Uses RecomputeCostsCommandHandler to run the sweep.
func NewCostReconciliationJob(handler commands.RecomputeCostsCommandHandler, logger *slog.Logger) *CostReconciliationJob {
	return &CostReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "cost_reconciliation_job"),
	}
}

// Start schedules the job to run every night at 02:00.
func (j *CostReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("0 0 2 * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewRecomputeCostsCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Cost reconciliation job failed to build command", "error", cmdErr)
			return
		}

		repriced, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Cost reconciliation job failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Cost reconciliation completed", "repriced", repriced)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cost reconciliation job started (running nightly at 02:00)")
	return nil
}

// Stop stops the cost reconciliation job.
func (j *CostReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cost reconciliation job stopped")
}
