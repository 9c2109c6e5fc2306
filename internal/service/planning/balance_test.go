package planning

import (
	"testing"
	"time"

	"github.com/caredesk/homecare-backend-go/internal/domain/assignment"
	"github.com/caredesk/homecare-backend-go/internal/domain/planning"
	"github.com/stretchr/testify/assert"
)

func TestNewBalance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		contracted        float64
		used              float64
		expectedStatus    planning.BalanceStatus
		expectedRemaining float64
		expectedPercent   float64
	}{
		{
			name:              "exact match is perfect",
			contracted:        80,
			used:              80,
			expectedStatus:    planning.StatusPerfect,
			expectedRemaining: 0,
			expectedPercent:   100,
		},
		{
			name:              "over-served is excess",
			contracted:        80,
			used:              85,
			expectedStatus:    planning.StatusExcess,
			expectedRemaining: -5,
			expectedPercent:   106.3,
		},
		{
			name:              "under-served is deficit",
			contracted:        80,
			used:              70,
			expectedStatus:    planning.StatusDeficit,
			expectedRemaining: 10,
			expectedPercent:   87.5,
		},
		{
			name:              "zero contracted reports zero percent",
			contracted:        0,
			used:              12,
			expectedStatus:    planning.StatusExcess,
			expectedRemaining: -12,
			expectedPercent:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := NewBalance("c1", 2024, 12, tt.contracted, tt.used)
			assert.Equal(t, tt.expectedStatus, b.Status)
			assert.Equal(t, tt.expectedRemaining, b.RemainingHours)
			assert.Equal(t, tt.expectedPercent, b.Percentage)
			assert.Equal(t, "c1", b.EntityID)
			assert.Equal(t, 2024, b.Year)
			assert.Equal(t, 12, b.Month)
		})
	}
}

func TestSumPlanHoursToDate(t *testing.T) {
	t.Parallel()

	plan := []planning.DayPlanEntry{
		{Date: mustDate("2024-12-02"), Hours: 3.5},
		{Date: mustDate("2024-12-10"), Hours: 2},
		{Date: mustDate("2024-12-20"), Hours: 4},
	}

	t.Run("past month counts every entry", func(t *testing.T) {
		t.Parallel()
		ref := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 9.5, SumPlanHoursToDate(plan, 2024, 12, ref))
	})

	t.Run("current month stops at the reference date", func(t *testing.T) {
		t.Parallel()
		ref := time.Date(2024, time.December, 10, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 5.5, SumPlanHoursToDate(plan, 2024, 12, ref))
	})
}

func TestWorkerBalance(t *testing.T) {
	t.Parallel()

	// 2h each weekday: 10h weekly, 43h committed for the month. Up to
	// December 15th 2024 there are 10 weekdays, so 20h used.
	a := activeAssignment("w1", "c1", weekdaySchedule(slot("10:00", "12:00")), "")
	ref := time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC)

	b := WorkerBalance("w1", []assignment.Assignment{a}, 2024, 12, ref)

	assert.Equal(t, 43.0, b.ContractedHours)
	assert.Equal(t, 20.0, b.UsedHours)
	assert.Equal(t, 23.0, b.RemainingHours)
	assert.Equal(t, planning.StatusDeficit, b.Status)
}

func TestWorkerBalance_IgnoresOtherWorkers(t *testing.T) {
	t.Parallel()

	mine := activeAssignment("w1", "c1", weekdaySchedule(slot("10:00", "12:00")), "")
	theirs := activeAssignment("w2", "c1", weekdaySchedule(slot("08:00", "18:00")), "")
	ref := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)

	b := WorkerBalance("w1", []assignment.Assignment{mine, theirs}, 2024, 12, ref)

	assert.Equal(t, 44.0, b.UsedHours)
}
