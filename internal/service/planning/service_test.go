package planning

import (
	"context"
	"errors"
	"testing"

	"github.com/caredesk/homecare-backend-go/internal/domain/assignment"
	"github.com/caredesk/homecare-backend-go/internal/domain/client"
	"github.com/caredesk/homecare-backend-go/internal/domain/holiday"
	"github.com/caredesk/homecare-backend-go/internal/domain/planning"
	"github.com/caredesk/homecare-backend-go/internal/domain/worker"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAssignmentRepo struct {
	assignment.Repository
	active []assignment.Assignment
}

func (s *stubAssignmentRepo) ListActive(ctx context.Context) ([]assignment.Assignment, error) {
	return s.active, nil
}

func (s *stubAssignmentRepo) ListActiveByClient(ctx context.Context, clientID string) ([]assignment.Assignment, error) {
	var out []assignment.Assignment
	for _, a := range s.active {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *stubAssignmentRepo) ListActiveByWorker(ctx context.Context, workerID string) ([]assignment.Assignment, error) {
	var out []assignment.Assignment
	for _, a := range s.active {
		if a.WorkerID == workerID {
			out = append(out, a)
		}
	}
	return out, nil
}

type stubClientRepo struct {
	client.Repository
	clients map[string]client.Client
}

func (s *stubClientRepo) GetByID(ctx context.Context, id string) (client.Client, error) {
	c, ok := s.clients[id]
	if !ok {
		return client.Client{}, client.ErrClientNotFound
	}
	return c, nil
}

type stubWorkerRepo struct {
	worker.Repository
	workers map[string]worker.Worker
}

func (s *stubWorkerRepo) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	w, ok := s.workers[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (s *stubWorkerRepo) List(ctx context.Context) ([]worker.Worker, error) {
	var out []worker.Worker
	for _, w := range s.workers {
		out = append(out, w)
	}
	return out, nil
}

type stubSnapshotRepo struct {
	planning.SnapshotRepository
	records map[string]planning.MonthlyBalanceRecord
}

func (s *stubSnapshotRepo) GetByClientMonth(ctx context.Context, clientID string, year, month int) (planning.MonthlyBalanceRecord, error) {
	rec, ok := s.records[clientID]
	if !ok {
		return planning.MonthlyBalanceRecord{}, pgx.ErrNoRows
	}
	return rec, nil
}

type stubCalendar struct {
	holidays []holiday.Holiday
	err      error
}

func (s *stubCalendar) GetHolidaysForYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	return s.holidays, s.err
}

func (s *stubCalendar) GetHolidaysForMonth(ctx context.Context, year, month int) ([]holiday.Holiday, error) {
	return s.holidays, s.err
}

func newTestService(active []assignment.Assignment, holidays []holiday.Holiday) planning.Service {
	return NewPlanningService(
		&stubAssignmentRepo{active: active},
		&stubClientRepo{clients: map[string]client.Client{
			"c1": {ID: "c1", MonthlyContractedHours: 80},
		}},
		&stubWorkerRepo{workers: map[string]worker.Worker{
			"w-weekday": {ID: "w-weekday", MaxWeeklyHours: 40},
			"w-festive": {ID: "w-festive", MaxWeeklyHours: 40},
		}},
		&stubSnapshotRepo{records: map[string]planning.MonthlyBalanceRecord{
			"c1": {ClientID: "c1", Year: 2024, Month: 11, AssignedHours: 80, RealHours: 76, Difference: 4},
		}},
		&stubCalendar{holidays: holidays},
	)
}

func TestPlanningService_MonthlyPlan(t *testing.T) {
	t.Parallel()

	assignments, holidays := testMonthFixture()
	svc := newTestService(assignments, holidays)

	plan, err := svc.MonthlyPlan(context.Background(), "c1", 2024, 12)

	require.NoError(t, err)
	assert.Len(t, plan.Planning, 26)
	assert.Len(t, plan.Reassignments, 1)
	assert.Empty(t, plan.Unresolved)
}

func TestPlanningService_InvalidMonth(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil)

	_, err := svc.MonthlyPlan(context.Background(), "c1", 2024, 13)
	assert.ErrorIs(t, err, planning.ErrInvalidPeriod)

	_, err = svc.PlanReassignments(context.Background(), "c1", 2024, 0)
	assert.ErrorIs(t, err, planning.ErrInvalidPeriod)
}

func TestPlanningService_CalendarFailurePropagates(t *testing.T) {
	t.Parallel()

	svc := NewPlanningService(
		&stubAssignmentRepo{},
		&stubClientRepo{clients: map[string]client.Client{"c1": {ID: "c1"}}},
		&stubWorkerRepo{},
		&stubSnapshotRepo{},
		&stubCalendar{err: errors.New("calendar api unreachable")},
	)

	_, err := svc.MonthlyPlan(context.Background(), "c1", 2024, 12)
	assert.ErrorIs(t, err, holiday.ErrLookupFailed)
}

func TestPlanningService_ClientBalance(t *testing.T) {
	t.Parallel()

	assignments, holidays := testMonthFixture()
	svc := newTestService(assignments, holidays)

	// Past month, so the full plan counts against the 80h contract.
	ref := mustDate("2025-01-10")
	balance, err := svc.ClientBalance(context.Background(), "c1", 2024, 12, ref)

	require.NoError(t, err)
	assert.Equal(t, "c1", balance.EntityID)
	assert.Equal(t, 80.0, balance.ContractedHours)
	assert.Equal(t, 83.0, balance.UsedHours)
	assert.Equal(t, planning.StatusExcess, balance.Status)
}

func TestPlanningService_ClientBalance_UnknownClient(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil)

	_, err := svc.ClientBalance(context.Background(), "missing", 2024, 12, mustDate("2025-01-10"))
	assert.ErrorIs(t, err, client.ErrClientNotFound)
}

func TestPlanningService_WorkerBalance_UnknownWorker(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil)

	_, err := svc.WorkerBalance(context.Background(), "missing", 2024, 12, mustDate("2025-01-10"))
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestPlanningService_BalanceSnapshot(t *testing.T) {
	t.Parallel()

	svc := newTestService(nil, nil)

	record, err := svc.BalanceSnapshot(context.Background(), "c1", 2024, 11)
	require.NoError(t, err)
	assert.Equal(t, 76.0, record.RealHours)
	assert.Equal(t, 4.0, record.Difference)

	_, err = svc.BalanceSnapshot(context.Background(), "missing", 2024, 11)
	assert.ErrorIs(t, err, planning.ErrSnapshotNotFound)

	_, err = svc.BalanceSnapshot(context.Background(), "c1", 2024, 13)
	assert.ErrorIs(t, err, planning.ErrInvalidPeriod)
}

func TestPlanningService_DetectConflicts(t *testing.T) {
	t.Parallel()

	a := activeAssignment("w-weekday", "c1", assignment.Schedule{
		assignment.Monday: {slot("09:00", "11:00")},
	}, assignment.WorkerTypeLaborable)
	b := activeAssignment("w-weekday", "c2", assignment.Schedule{
		assignment.Monday: {slot("10:00", "12:00")},
	}, assignment.WorkerTypeLaborable)
	svc := newTestService([]assignment.Assignment{a, b}, nil)

	conflicts, err := svc.DetectConflicts(context.Background())

	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, planning.ConflictWorkerOverlap, conflicts[0].Type)
}
