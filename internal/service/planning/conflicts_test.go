package planning

import (
	"testing"

	"github.com/caredesk/homecare-backend-go/internal/domain/assignment"
	"github.com/caredesk/homecare-backend-go/internal/domain/planning"
	"github.com/caredesk/homecare-backend-go/internal/domain/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectConflicts_WorkerOverlap(t *testing.T) {
	t.Parallel()

	a := activeAssignment("w1", "c1", assignment.Schedule{
		assignment.Monday: {slot("09:00", "11:00")},
	}, assignment.WorkerTypeLaborable)
	b := activeAssignment("w1", "c2", assignment.Schedule{
		assignment.Monday: {slot("10:00", "12:00")},
	}, assignment.WorkerTypeLaborable)

	conflicts := DetectConflicts([]assignment.Assignment{a, b}, nil)

	require.Len(t, conflicts, 1)
	assert.Equal(t, planning.ConflictWorkerOverlap, conflicts[0].Type)
	assert.Equal(t, assignment.Monday, conflicts[0].Day)
	assert.Equal(t, "w1", conflicts[0].WorkerID)
	assert.ElementsMatch(t, []string{a.ID, b.ID}, conflicts[0].AssignmentIDs)
}

func TestDetectConflicts_TouchingSlotsDoNotOverlap(t *testing.T) {
	t.Parallel()

	a := activeAssignment("w1", "c1", assignment.Schedule{
		assignment.Monday: {slot("09:00", "11:00")},
	}, assignment.WorkerTypeLaborable)
	b := activeAssignment("w1", "c2", assignment.Schedule{
		assignment.Monday: {slot("11:00", "13:00")},
	}, assignment.WorkerTypeLaborable)

	assert.Empty(t, DetectConflicts([]assignment.Assignment{a, b}, nil))
}

func TestDetectConflicts_ClientDoubleBooking(t *testing.T) {
	t.Parallel()

	a := activeAssignment("w1", "c1", assignment.Schedule{
		assignment.Tuesday: {slot("09:00", "12:00")},
	}, assignment.WorkerTypeLaborable)
	b := activeAssignment("w2", "c1", assignment.Schedule{
		assignment.Tuesday: {slot("11:00", "14:00")},
	}, assignment.WorkerTypeLaborable)

	conflicts := DetectConflicts([]assignment.Assignment{a, b}, nil)

	require.Len(t, conflicts, 1)
	assert.Equal(t, planning.ConflictClientDoubleBook, conflicts[0].Type)
	assert.Equal(t, "c1", conflicts[0].ClientID)
}

func TestDetectConflicts_UnrelatedPairIsIgnored(t *testing.T) {
	t.Parallel()

	// Different worker and different client, even with overlapping times.
	a := activeAssignment("w1", "c1", assignment.Schedule{
		assignment.Monday: {slot("09:00", "12:00")},
	}, assignment.WorkerTypeLaborable)
	b := activeAssignment("w2", "c2", assignment.Schedule{
		assignment.Monday: {slot("09:00", "12:00")},
	}, assignment.WorkerTypeLaborable)

	assert.Empty(t, DetectConflicts([]assignment.Assignment{a, b}, nil))
}

func TestDetectConflicts_OnePerPairAndDay(t *testing.T) {
	t.Parallel()

	// Two overlapping slot pairs on the same day still report once.
	a := activeAssignment("w1", "c1", assignment.Schedule{
		assignment.Monday: {slot("09:00", "11:00"), slot("15:00", "17:00")},
	}, assignment.WorkerTypeLaborable)
	b := activeAssignment("w1", "c2", assignment.Schedule{
		assignment.Monday: {slot("10:00", "12:00"), slot("16:00", "18:00")},
	}, assignment.WorkerTypeLaborable)

	assert.Len(t, DetectConflicts([]assignment.Assignment{a, b}, nil), 1)
}

func TestDetectConflicts_InactiveAssignmentsAreSkipped(t *testing.T) {
	t.Parallel()

	a := activeAssignment("w1", "c1", assignment.Schedule{
		assignment.Monday: {slot("09:00", "11:00")},
	}, assignment.WorkerTypeLaborable)
	b := activeAssignment("w1", "c2", assignment.Schedule{
		assignment.Monday: {slot("10:00", "12:00")},
	}, assignment.WorkerTypeLaborable)
	b.Status = assignment.StatusPaused

	assert.Empty(t, DetectConflicts([]assignment.Assignment{a, b}, nil))
}

func TestDetectConflicts_CapacityExceeded(t *testing.T) {
	t.Parallel()

	// 8h on each of five weekdays is 40h against a 35h maximum.
	a := activeAssignment("w1", "c1", weekdaySchedule(slot("09:00", "17:00")), assignment.WorkerTypeLaborable)
	workers := []worker.Worker{
		{ID: "w1", MaxWeeklyHours: 35},
		{ID: "w2", MaxWeeklyHours: 10},
	}

	conflicts := DetectConflicts([]assignment.Assignment{a}, workers)

	require.Len(t, conflicts, 1)
	assert.Equal(t, planning.ConflictCapacityExceeded, conflicts[0].Type)
	assert.Equal(t, "w1", conflicts[0].WorkerID)
	assert.Equal(t, 40.0, conflicts[0].TotalHours)
	assert.Equal(t, 35.0, conflicts[0].MaxHours)
}

func TestDetectConflicts_CapacityAtLimitIsFine(t *testing.T) {
	t.Parallel()

	a := activeAssignment("w1", "c1", weekdaySchedule(slot("09:00", "17:00")), assignment.WorkerTypeLaborable)
	workers := []worker.Worker{{ID: "w1", MaxWeeklyHours: 40}}

	assert.Empty(t, DetectConflicts([]assignment.Assignment{a}, workers))
}
