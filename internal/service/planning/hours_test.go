package planning

import (
	"testing"
	"time"

	"github.com/caredesk/homecare-backend-go/internal/domain/assignment"
	"github.com/stretchr/testify/assert"
)

func TestDailyHours(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		slots    []assignment.TimeSlot
		expected float64
	}{
		{
			name:     "single slot",
			slots:    []assignment.TimeSlot{slot("09:00", "12:30")},
			expected: 3.5,
		},
		{
			name:     "split shift",
			slots:    []assignment.TimeSlot{slot("09:00", "11:00"), slot("16:00", "18:30")},
			expected: 4.5,
		},
		{
			name:     "reversed slot counts as zero",
			slots:    []assignment.TimeSlot{slot("12:00", "09:00"), slot("10:00", "11:00")},
			expected: 1,
		},
		{
			name:     "empty day",
			slots:    nil,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, DailyHours(tt.slots))
		})
	}
}

func TestWeeklyHours(t *testing.T) {
	t.Parallel()

	schedule := weekdaySchedule(slot("09:00", "12:30"))
	assert.Equal(t, 17.5, WeeklyHours(schedule))

	assert.Equal(t, float64(0), WeeklyHours(assignment.Schedule{}))
	assert.Equal(t, float64(0), WeeklyHours(nil))
}

func TestEstimateMonthlyHours(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 86.0, EstimateMonthlyHours(20))
	assert.Equal(t, 43.0, EstimateMonthlyHours(10))
	assert.Equal(t, float64(0), EstimateMonthlyHours(0))
}

func TestUsedHoursToDate(t *testing.T) {
	t.Parallel()

	// 2h every weekday. December 2024 has 22 weekdays.
	schedule := weekdaySchedule(slot("10:00", "12:00"))

	t.Run("reference outside the month counts everything", func(t *testing.T) {
		t.Parallel()
		ref := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 44.0, UsedHoursToDate(schedule, 2024, 12, ref))
	})

	t.Run("reference inside the month cuts the walk", func(t *testing.T) {
		t.Parallel()
		// Dec 1-15 2024 has 10 weekdays.
		ref := time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 20.0, UsedHoursToDate(schedule, 2024, 12, ref))
	})
}
