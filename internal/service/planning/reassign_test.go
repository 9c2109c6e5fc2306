package planning

import (
	"testing"

	"github.com/caredesk/homecare-backend-go/internal/domain/assignment"
	"github.com/caredesk/homecare-backend-go/internal/domain/holiday"
	"github.com/caredesk/homecare-backend-go/internal/domain/planning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// December 2024: the 1st is a Sunday, Saturdays fall on 7/14/21/28 and the
// 25th is a Wednesday.

func TestPlanMonth_HolidayReassignment(t *testing.T) {
	t.Parallel()

	laborable := activeAssignment("w-weekday", "c1", weekdaySchedule(slot("09:00", "12:30")), assignment.WorkerTypeLaborable)
	festive := activeAssignment("w-festive", "c1", fullWeekSchedule(slot("10:00", "11:30")), assignment.WorkerTypeHolidayWeekend)
	holidays := []holiday.Holiday{nationalHoliday("2024-12-25")}

	result := NewPlanner().PlanMonth([]assignment.Assignment{laborable, festive}, holidays, 2024, 12)

	require.Len(t, result.Reassignments, 1)
	r := result.Reassignments[0]
	assert.Equal(t, mustDate("2024-12-25"), r.Date)
	assert.Equal(t, "w-weekday", r.OriginalWorkerID)
	assert.Equal(t, "w-festive", r.ReassignedWorkerID)
	assert.Equal(t, 3.5, r.OriginalHours)
	assert.Equal(t, 1.5, r.ReassignedHours)
	assert.Equal(t, planning.ReasonHoliday, r.Reason)

	assert.Empty(t, result.Unresolved)
	assert.Equal(t, 1.5, result.TotalReassignedHours)
}

func TestPlanMonth_NoSubstituteReportsUnresolved(t *testing.T) {
	t.Parallel()

	laborable := activeAssignment("w-weekday", "c1", weekdaySchedule(slot("09:00", "12:30")), assignment.WorkerTypeLaborable)
	holidays := []holiday.Holiday{nationalHoliday("2024-12-25")}

	result := NewPlanner().PlanMonth([]assignment.Assignment{laborable}, holidays, 2024, 12)

	assert.Empty(t, result.Reassignments)
	require.Len(t, result.Unresolved, 1)
	u := result.Unresolved[0]
	assert.Equal(t, mustDate("2024-12-25"), u.Date)
	assert.Equal(t, "w-weekday", u.WorkerID)
	assert.Equal(t, 3.5, u.Hours)
	assert.Equal(t, planning.ReasonHoliday, u.Reason)
	assert.Equal(t, float64(0), result.TotalReassignedHours)
}

func TestPlanMonth_WeekendReassignment(t *testing.T) {
	t.Parallel()

	// Explicitly laborable despite the Saturday slot, so the four December
	// Saturdays each trigger a reassignment.
	schedule := weekdaySchedule(slot("09:00", "11:00"))
	schedule[assignment.Saturday] = []assignment.TimeSlot{slot("09:00", "11:00")}
	laborable := activeAssignment("w-weekday", "c1", schedule, assignment.WorkerTypeLaborable)
	festive := activeAssignment("w-festive", "c1", weekendSchedule(slot("10:00", "12:00")), assignment.WorkerTypeHolidayWeekend)

	result := NewPlanner().PlanMonth([]assignment.Assignment{laborable, festive}, nil, 2024, 12)

	require.Len(t, result.Reassignments, 4)
	for _, r := range result.Reassignments {
		assert.Equal(t, planning.ReasonWeekend, r.Reason)
		assert.Equal(t, 1.5, r.ReassignedHours)
	}
	assert.Equal(t, 6.0, result.TotalReassignedHours)
}

func TestPlanMonth_HolidayReasonWinsOverWeekend(t *testing.T) {
	t.Parallel()

	// A holiday falling on a Saturday reports as a holiday.
	schedule := assignment.Schedule{assignment.Saturday: {slot("09:00", "11:00")}}
	laborable := activeAssignment("w-weekday", "c1", schedule, assignment.WorkerTypeLaborable)
	holidays := []holiday.Holiday{nationalHoliday("2024-12-07")}

	result := NewPlanner().PlanMonth([]assignment.Assignment{laborable}, holidays, 2024, 12)

	require.Len(t, result.Unresolved, 4)
	assert.Equal(t, planning.ReasonHoliday, result.Unresolved[0].Reason)
	assert.Equal(t, planning.ReasonWeekend, result.Unresolved[1].Reason)
}

func TestPlanMonth_OverriddenSubstituteHours(t *testing.T) {
	t.Parallel()

	laborable := activeAssignment("w-weekday", "c1", weekdaySchedule(slot("09:00", "12:30")), assignment.WorkerTypeLaborable)
	festive := activeAssignment("w-festive", "c1", fullWeekSchedule(slot("10:00", "11:30")), assignment.WorkerTypeHolidayWeekend)
	holidays := []holiday.Holiday{nationalHoliday("2024-12-25")}

	planner := &Planner{ReassignedHours: 2}
	result := planner.PlanMonth([]assignment.Assignment{laborable, festive}, holidays, 2024, 12)

	require.Len(t, result.Reassignments, 1)
	assert.Equal(t, 2.0, result.Reassignments[0].ReassignedHours)
	assert.Equal(t, 2.0, result.TotalReassignedHours)
}

func TestPlanMonth_BothTypeNeverSubstitutesForItself(t *testing.T) {
	t.Parallel()

	both := activeAssignment("w-both", "c1", fullWeekSchedule(slot("09:00", "11:00")), assignment.WorkerTypeBoth)
	holidays := []holiday.Holiday{nationalHoliday("2024-12-25")}

	result := NewPlanner().PlanMonth([]assignment.Assignment{both}, holidays, 2024, 12)

	assert.Empty(t, result.Reassignments)
	// The 25th plus nine weekend days, all with no one else to take them.
	assert.Len(t, result.Unresolved, 10)
}

func TestPlanMonth_InactiveAssignmentsAreIgnored(t *testing.T) {
	t.Parallel()

	laborable := activeAssignment("w-weekday", "c1", weekdaySchedule(slot("09:00", "12:30")), assignment.WorkerTypeLaborable)
	laborable.Status = assignment.StatusCancelled
	holidays := []holiday.Holiday{nationalHoliday("2024-12-25")}

	result := NewPlanner().PlanMonth([]assignment.Assignment{laborable}, holidays, 2024, 12)

	assert.Empty(t, result.Reassignments)
	assert.Empty(t, result.Unresolved)
}

func TestPlanMonth_IsDeterministic(t *testing.T) {
	t.Parallel()

	laborable := activeAssignment("w-weekday", "c1", weekdaySchedule(slot("09:00", "12:30")), assignment.WorkerTypeLaborable)
	festive := activeAssignment("w-festive", "c1", fullWeekSchedule(slot("10:00", "11:30")), assignment.WorkerTypeHolidayWeekend)
	holidays := []holiday.Holiday{nationalHoliday("2024-12-25"), nationalHoliday("2024-12-06")}
	input := []assignment.Assignment{laborable, festive}

	first := NewPlanner().PlanMonth(input, holidays, 2024, 12)
	second := NewPlanner().PlanMonth(input, holidays, 2024, 12)

	assert.Equal(t, first, second)
}
