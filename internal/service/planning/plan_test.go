package planning

import (
	"testing"
	"time"

	"github.com/caredesk/homecare-backend-go/internal/domain/assignment"
	"github.com/caredesk/homecare-backend-go/internal/domain/holiday"
	"github.com/caredesk/homecare-backend-go/internal/domain/planning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMonthFixture() ([]assignment.Assignment, []holiday.Holiday) {
	laborable := activeAssignment("w-weekday", "c1", weekdaySchedule(slot("09:00", "12:30")), assignment.WorkerTypeLaborable)
	festive := activeAssignment("w-festive", "c1", assignment.Schedule{
		assignment.Wednesday: {slot("10:00", "11:30")},
		assignment.Saturday:  {slot("10:00", "12:00")},
	}, assignment.WorkerTypeHolidayWeekend)
	holidays := []holiday.Holiday{nationalHoliday("2024-12-25")}
	return []assignment.Assignment{laborable, festive}, holidays
}

func TestBuildMonthlyPlan(t *testing.T) {
	t.Parallel()

	assignments, holidays := testMonthFixture()
	planner := NewPlanner()
	reassigned := planner.PlanMonth(assignments, holidays, 2024, 12)
	plan := BuildMonthlyPlan(assignments, holidays, reassigned.Reassignments, 2024, 12)

	// 21 laborable weekdays, 4 Saturdays and the reassigned 25th; Sundays
	// carry no service and are omitted.
	require.Len(t, plan, 26)

	entries := make(map[string]planning.DayPlanEntry, len(plan))
	for _, entry := range plan {
		entries[entry.Date.Format("2006-01-02")] = entry
	}

	monday := entries["2024-12-02"]
	assert.Equal(t, 3.5, monday.Hours)
	assert.Equal(t, "w-weekday", monday.WorkerID)
	assert.False(t, monday.IsHoliday)

	saturday := entries["2024-12-07"]
	assert.Equal(t, 2.0, saturday.Hours)
	assert.Equal(t, "w-festive", saturday.WorkerID)
	assert.False(t, saturday.IsHoliday)

	christmas := entries["2024-12-25"]
	assert.Equal(t, 1.5, christmas.Hours)
	assert.Equal(t, "w-festive", christmas.WorkerID)
	assert.True(t, christmas.IsHoliday)

	_, sundayPresent := entries["2024-12-01"]
	assert.False(t, sundayPresent)
}

func TestBuildMonthlyPlan_SumsMultipleReassignmentsOnOneDay(t *testing.T) {
	t.Parallel()

	reassignments := []planning.ReassignedService{
		{Date: mustDate("2024-12-25"), ReassignedWorkerID: "w-a", ReassignedHours: 1.5},
		{Date: mustDate("2024-12-25"), ReassignedWorkerID: "w-b", ReassignedHours: 1.5},
	}
	holidays := []holiday.Holiday{nationalHoliday("2024-12-25")}

	plan := BuildMonthlyPlan(nil, holidays, reassignments, 2024, 12)

	require.Len(t, plan, 1)
	assert.Equal(t, 3.0, plan[0].Hours)
	assert.Equal(t, "w-a", plan[0].WorkerID)
	assert.True(t, plan[0].IsHoliday)
}

func TestBuildMonthlyPlan_FestiveDaysExcludeLaborableService(t *testing.T) {
	t.Parallel()

	// A laborable assignment with weekend slots does not serve weekends
	// directly; without a substitute those days simply have no plan entry.
	laborable := activeAssignment("w-weekday", "c1", fullWeekSchedule(slot("09:00", "11:00")), assignment.WorkerTypeLaborable)

	plan := BuildMonthlyPlan([]assignment.Assignment{laborable}, nil, nil, 2024, 12)

	for _, entry := range plan {
		assert.False(t, assignment.WeekdayOf(entry.Date).IsWeekend())
	}
	assert.Len(t, plan, 22)
}

func TestBuildMonthlyPlan_MatchesClientBalanceUsedHours(t *testing.T) {
	t.Parallel()

	assignments, holidays := testMonthFixture()
	planner := NewPlanner()
	reassigned := planner.PlanMonth(assignments, holidays, 2024, 12)
	plan := BuildMonthlyPlan(assignments, holidays, reassigned.Reassignments, 2024, 12)

	var total float64
	for _, entry := range plan {
		total += entry.Hours
	}

	ref := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	balance := ClientBalance("c1", 100, plan, 2024, 12, ref)
	assert.Equal(t, round1(total), balance.UsedHours)
}
