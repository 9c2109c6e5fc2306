package planning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/caredesk/homecare-backend-go/internal/domain/assignment"
	"github.com/caredesk/homecare-backend-go/internal/domain/client"
	"github.com/caredesk/homecare-backend-go/internal/domain/holiday"
	"github.com/caredesk/homecare-backend-go/internal/domain/planning"
	"github.com/caredesk/homecare-backend-go/internal/domain/worker"
	"github.com/caredesk/homecare-backend-go/internal/pkg/metrics"
	"github.com/jackc/pgx/v5"
)

type planningServiceImpl struct {
	assignmentRepo assignment.Repository
	clientRepo     client.Repository
	workerRepo     worker.Repository
	snapshotRepo   planning.SnapshotRepository
	calendar       holiday.CalendarProvider
	planner        *Planner
	// now is swappable for deterministic tests.
	now func() time.Time
}

func NewPlanningService(
	assignmentRepo assignment.Repository,
	clientRepo client.Repository,
	workerRepo worker.Repository,
	snapshotRepo planning.SnapshotRepository,
	calendar holiday.CalendarProvider,
) planning.Service {
	return &planningServiceImpl{
		assignmentRepo: assignmentRepo,
		clientRepo:     clientRepo,
		workerRepo:     workerRepo,
		snapshotRepo:   snapshotRepo,
		calendar:       calendar,
		planner:        NewPlanner(),
		now:            time.Now,
	}
}

func (s *planningServiceImpl) observe(kind string, start time.Time) {
	metrics.ComputationsTotal.WithLabelValues(kind).Inc()
	metrics.ComputationDurationSeconds.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}

// DetectConflicts implements planning.Service.
func (s *planningServiceImpl) DetectConflicts(ctx context.Context) ([]planning.Conflict, error) {
	defer s.observe("conflicts", time.Now())

	assignments, err := s.assignmentRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active assignments: %w", err)
	}
	workers, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	conflicts := DetectConflicts(assignments, workers)
	for _, c := range conflicts {
		metrics.ConflictsFound.WithLabelValues(string(c.Type)).Inc()
	}
	return conflicts, nil
}

// PlanReassignments implements planning.Service.
func (s *planningServiceImpl) PlanReassignments(ctx context.Context, clientID string, year, month int) (planning.ReassignmentResult, error) {
	defer s.observe("reassignments", time.Now())

	if month < 1 || month > 12 {
		return planning.ReassignmentResult{}, planning.ErrInvalidPeriod
	}

	assignments, holidays, err := s.clientSnapshot(ctx, clientID, year, month)
	if err != nil {
		return planning.ReassignmentResult{}, err
	}

	result := s.planner.PlanMonth(assignments, holidays, year, month)
	for range result.Unresolved {
		metrics.UnresolvedServicesTotal.Inc()
	}
	return result, nil
}

// MonthlyPlan implements planning.Service.
func (s *planningServiceImpl) MonthlyPlan(ctx context.Context, clientID string, year, month int) (planning.MonthlyPlan, error) {
	defer s.observe("monthly_plan", time.Now())

	if month < 1 || month > 12 {
		return planning.MonthlyPlan{}, planning.ErrInvalidPeriod
	}

	assignments, holidays, err := s.clientSnapshot(ctx, clientID, year, month)
	if err != nil {
		return planning.MonthlyPlan{}, err
	}

	reassigned := s.planner.PlanMonth(assignments, holidays, year, month)
	plan := BuildMonthlyPlan(assignments, holidays, reassigned.Reassignments, year, month)

	return planning.MonthlyPlan{
		Planning:      plan,
		Reassignments: reassigned.Reassignments,
		Unresolved:    reassigned.Unresolved,
	}, nil
}

// ClientBalance implements planning.Service.
func (s *planningServiceImpl) ClientBalance(ctx context.Context, clientID string, year, month int, ref time.Time) (planning.Balance, error) {
	defer s.observe("client_balance", time.Now())

	if month < 1 || month > 12 {
		return planning.Balance{}, planning.ErrInvalidPeriod
	}
	if ref.IsZero() {
		ref = s.now()
	}

	c, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, client.ErrClientNotFound) {
			return planning.Balance{}, client.ErrClientNotFound
		}
		return planning.Balance{}, fmt.Errorf("failed to get client: %w", err)
	}

	assignments, holidays, err := s.clientSnapshot(ctx, clientID, year, month)
	if err != nil {
		return planning.Balance{}, err
	}

	reassigned := s.planner.PlanMonth(assignments, holidays, year, month)
	plan := BuildMonthlyPlan(assignments, holidays, reassigned.Reassignments, year, month)

	return ClientBalance(clientID, c.MonthlyContractedHours, plan, year, month, ref), nil
}

// WorkerBalance implements planning.Service.
func (s *planningServiceImpl) WorkerBalance(ctx context.Context, workerID string, year, month int, ref time.Time) (planning.Balance, error) {
	defer s.observe("worker_balance", time.Now())

	if month < 1 || month > 12 {
		return planning.Balance{}, planning.ErrInvalidPeriod
	}
	if ref.IsZero() {
		ref = s.now()
	}

	if _, err := s.workerRepo.GetByID(ctx, workerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, worker.ErrWorkerNotFound) {
			return planning.Balance{}, worker.ErrWorkerNotFound
		}
		return planning.Balance{}, fmt.Errorf("failed to get worker: %w", err)
	}

	assignments, err := s.assignmentRepo.ListActiveByWorker(ctx, workerID)
	if err != nil {
		return planning.Balance{}, fmt.Errorf("failed to list worker assignments: %w", err)
	}

	return WorkerBalance(workerID, assignments, year, month, ref), nil
}

// BalanceSnapshot implements planning.Service.
func (s *planningServiceImpl) BalanceSnapshot(ctx context.Context, clientID string, year, month int) (planning.MonthlyBalanceRecord, error) {
	if month < 1 || month > 12 {
		return planning.MonthlyBalanceRecord{}, planning.ErrInvalidPeriod
	}

	record, err := s.snapshotRepo.GetByClientMonth(ctx, clientID, year, month)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return planning.MonthlyBalanceRecord{}, planning.ErrSnapshotNotFound
		}
		return planning.MonthlyBalanceRecord{}, fmt.Errorf("failed to get balance snapshot: %w", err)
	}
	return record, nil
}

// clientSnapshot loads the immutable inputs a client-month computation works
// over: active assignments plus that month's holidays. Calendar failures are
// wrapped as ErrLookupFailed and propagated; no silent fallback happens
// here.
func (s *planningServiceImpl) clientSnapshot(ctx context.Context, clientID string, year, month int) ([]assignment.Assignment, []holiday.Holiday, error) {
	assignments, err := s.assignmentRepo.ListActiveByClient(ctx, clientID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list client assignments: %w", err)
	}

	holidays, err := s.calendar.GetHolidaysForMonth(ctx, year, month)
	if err != nil {
		metrics.HolidayLookupsTotal.WithLabelValues("error").Inc()
		return nil, nil, fmt.Errorf("%w: %v", holiday.ErrLookupFailed, err)
	}

	return assignments, holidays, nil
}
