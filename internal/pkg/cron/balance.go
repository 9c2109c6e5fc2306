package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/caredesk/homecare-backend-go/internal/domain/client"
	"github.com/caredesk/homecare-backend-go/internal/domain/planning"
	"github.com/caredesk/homecare-backend-go/internal/pkg/alerts"
	"github.com/caredesk/homecare-backend-go/internal/pkg/metrics"
)

// BalanceJobs owns the monthly balance snapshot batch. The planning
// computations themselves never persist anything; this job is the single
// writer of the monthly_balances table.
type BalanceJobs struct {
	clientRepo   client.Repository
	planningSvc  planning.Service
	snapshotRepo planning.SnapshotRepository
	publisher    alerts.Publisher
	now          func() time.Time
}

func NewBalanceJobs(
	clientRepo client.Repository,
	planningSvc planning.Service,
	snapshotRepo planning.SnapshotRepository,
	publisher alerts.Publisher,
) *BalanceJobs {
	return &BalanceJobs{
		clientRepo:   clientRepo,
		planningSvc:  planningSvc,
		snapshotRepo: snapshotRepo,
		publisher:    publisher,
		now:          time.Now,
	}
}

func (j *BalanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("snapshot_monthly_balances", 1*time.Hour, j.SnapshotMonthlyBalances)
}

// SnapshotMonthlyBalances recomputes every client's balance for the current
// month and upserts the result. A failing client is logged and skipped so
// one bad record cannot starve the rest of the batch.
func (j *BalanceJobs) SnapshotMonthlyBalances(ctx context.Context) error {
	// Only run in the early-morning window (02:00-02:59 UTC)
	if j.now().UTC().Hour() != 2 {
		return nil
	}

	slog.Info("Cron: Starting monthly balance snapshot job")

	now := j.now().UTC()
	year, month := now.Year(), int(now.Month())

	clients, err := j.clientRepo.List(ctx)
	if err != nil {
		metrics.SnapshotRunsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to list clients: %w", err)
	}

	var failed int
	for _, c := range clients {
		if err := j.snapshotClient(ctx, c, year, month); err != nil {
			slog.Error("Cron: Balance snapshot failed for client", "client_id", c.ID, "error", err)
			failed++
		}
	}

	if failed > 0 {
		metrics.SnapshotRunsTotal.WithLabelValues("partial").Inc()
		return fmt.Errorf("%d of %d client snapshots failed", failed, len(clients))
	}

	metrics.SnapshotRunsTotal.WithLabelValues("ok").Inc()
	slog.Info("Cron: Monthly balance snapshot completed", "clients", len(clients))
	return nil
}

func (j *BalanceJobs) snapshotClient(ctx context.Context, c client.Client, year, month int) error {
	plan, err := j.planningSvc.MonthlyPlan(ctx, c.ID, year, month)
	if err != nil {
		return fmt.Errorf("compute monthly plan: %w", err)
	}

	var real float64
	for _, entry := range plan.Planning {
		real += entry.Hours
	}

	record := planning.MonthlyBalanceRecord{
		ClientID:      c.ID,
		Year:          year,
		Month:         month,
		AssignedHours: c.MonthlyContractedHours,
		RealHours:     real,
		Difference:    c.MonthlyContractedHours - real,
	}
	if err := j.snapshotRepo.Upsert(ctx, record); err != nil {
		return fmt.Errorf("upsert balance record: %w", err)
	}

	if len(plan.Unresolved) > 0 && j.publisher != nil {
		alert := alerts.UnresolvedServiceAlert{
			ClientID:   c.ID,
			ClientName: c.Name,
			Year:       year,
			Month:      month,
			Unresolved: plan.Unresolved,
		}
		if err := j.publisher.PublishUnresolved(ctx, alert); err != nil {
			// The snapshot itself succeeded; losing the alert is logged, not
			// fatal.
			slog.Error("Cron: Failed to publish unresolved service alert", "client_id", c.ID, "error", err)
		}
	}
	return nil
}
