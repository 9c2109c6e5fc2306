package planning

import (
	"testing"

	"github.com/caredesk/homecare-backend-go/internal/domain/assignment"
	"github.com/stretchr/testify/assert"
)

func TestClassifySchedule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		schedule assignment.Schedule
		expected assignment.WorkerType
	}{
		{
			name:     "weekday only",
			schedule: weekdaySchedule(slot("09:00", "13:00")),
			expected: assignment.WorkerTypeLaborable,
		},
		{
			name:     "weekend only",
			schedule: weekendSchedule(slot("10:00", "12:00")),
			expected: assignment.WorkerTypeHolidayWeekend,
		},
		{
			name:     "mixed week",
			schedule: fullWeekSchedule(slot("10:00", "12:00")),
			expected: assignment.WorkerTypeBoth,
		},
		{
			name: "days present but empty do not count",
			schedule: assignment.Schedule{
				assignment.Monday:   {slot("09:00", "11:00")},
				assignment.Saturday: {},
			},
			expected: assignment.WorkerTypeLaborable,
		},
		{
			name:     "empty schedule defaults to laborable",
			schedule: assignment.Schedule{},
			expected: assignment.WorkerTypeLaborable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ClassifySchedule(tt.schedule))
		})
	}
}

func TestEffectiveWorkerType(t *testing.T) {
	t.Parallel()

	weekendOnly := weekendSchedule(slot("10:00", "12:00"))

	t.Run("explicit field wins over the schedule shape", func(t *testing.T) {
		t.Parallel()
		a := activeAssignment("w1", "c1", weekendOnly, assignment.WorkerTypeLaborable)
		assert.Equal(t, assignment.WorkerTypeLaborable, EffectiveWorkerType(a))
	})

	t.Run("flexible serves any day type", func(t *testing.T) {
		t.Parallel()
		a := activeAssignment("w1", "c1", weekendOnly, assignment.WorkerTypeFlexible)
		assert.Equal(t, assignment.WorkerTypeBoth, EffectiveWorkerType(a))
	})

	t.Run("missing field falls back to the classifier", func(t *testing.T) {
		t.Parallel()
		a := activeAssignment("w1", "c1", weekendOnly, "")
		assert.Equal(t, assignment.WorkerTypeHolidayWeekend, EffectiveWorkerType(a))
	})
}
