package planning

import (
	"context"
	"time"
)

// Service is the computation layer's entry point. Every method recomputes
// from a fresh snapshot of assignments and holidays; nothing is cached or
// persisted here, so independent calls may run concurrently.
type Service interface {
	// DetectConflicts runs the pairwise overlap and capacity checks over
	// all active assignments.
	DetectConflicts(ctx context.Context) ([]Conflict, error)

	// PlanReassignments moves festive-day service for one client's month
	// from laborable workers onto holiday/weekend workers.
	PlanReassignments(ctx context.Context, clientID string, year, month int) (ReassignmentResult, error)

	// MonthlyPlan generates the day-by-day hour plan for a client's month,
	// reassignments folded in.
	MonthlyPlan(ctx context.Context, clientID string, year, month int) (MonthlyPlan, error)

	// ClientBalance compares the plan's hours-to-date against the client's
	// contracted monthly hours. The reference date decides how much of the
	// month counts as "to date".
	ClientBalance(ctx context.Context, clientID string, year, month int, ref time.Time) (Balance, error)

	// WorkerBalance measures one worker's own scheduled hours against their
	// personal monthly commitment, independent of any client-wide view.
	WorkerBalance(ctx context.Context, workerID string, year, month int, ref time.Time) (Balance, error)

	// BalanceSnapshot returns the persisted monthly balance record written by
	// the batch job, without recomputing anything.
	BalanceSnapshot(ctx context.Context, clientID string, year, month int) (MonthlyBalanceRecord, error)
}

// SnapshotRepository persists monthly balance records. Writes happen only in
// the cron batch job; the computations themselves never write here.
type SnapshotRepository interface {
	Upsert(ctx context.Context, rec MonthlyBalanceRecord) error
	GetByClientMonth(ctx context.Context, clientID string, year, month int) (MonthlyBalanceRecord, error)
}
