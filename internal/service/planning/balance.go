package planning

import (
	"time"

	"github.com/caredesk/homecare-backend-go/internal/domain/assignment"
	"github.com/caredesk/homecare-backend-go/internal/domain/planning"
)

// perfectThreshold is how close remaining hours must be to zero before a
// balance counts as perfect.
const perfectThreshold = 0.1

// SumPlanHoursToDate adds up plan hours for the days that count: every day
// when (year, month) is not the reference month, otherwise only days up to
// and including the reference date.
func SumPlanHoursToDate(plan []planning.DayPlanEntry, year, month int, ref time.Time) float64 {
	currentMonth := ref.Year() == year && int(ref.Month()) == month
	cutoff := dateOf(year, month, daysInMonth(year, month))
	if currentMonth {
		cutoff = dateOf(year, month, ref.Day())
	}

	var total float64
	for _, entry := range plan {
		if entry.Date.After(cutoff) {
			continue
		}
		total += entry.Hours
	}
	return round1(total)
}

// NewBalance classifies used against contracted hours. Perfect when the
// remainder is within the threshold, excess when over-served, deficit when
// under-served. Percentage is unclamped; a zero budget reports zero to keep
// the result well-defined.
func NewBalance(entityID string, year, month int, contracted, used float64) planning.Balance {
	remaining := round1(contracted - used)

	status := planning.StatusDeficit
	switch {
	case remaining < perfectThreshold && remaining > -perfectThreshold:
		status = planning.StatusPerfect
	case remaining < 0:
		status = planning.StatusExcess
	}

	var percentage float64
	if contracted > 0 {
		percentage = round1(used / contracted * 100)
	}

	return planning.Balance{
		EntityID:        entityID,
		Month:           month,
		Year:            year,
		ContractedHours: contracted,
		UsedHours:       round1(used),
		RemainingHours:  remaining,
		Status:          status,
		Percentage:      percentage,
	}
}

// ClientBalance measures the month plan against the client's contracted
// hours.
func ClientBalance(clientID string, contracted float64, plan []planning.DayPlanEntry, year, month int, ref time.Time) planning.Balance {
	used := SumPlanHoursToDate(plan, year, month, ref)
	return NewBalance(clientID, year, month, contracted, used)
}

// WorkerBalance measures a worker's own scheduled hours against their
// personal monthly commitment, derived from their weekly schedule via the
// WeeksPerMonth estimate. Independent of any client-wide balance: a worker
// can sit in deficit while the client overall shows excess.
func WorkerBalance(workerID string, assignments []assignment.Assignment, year, month int, ref time.Time) planning.Balance {
	var weekly, used float64
	for _, a := range assignments {
		if !a.IsActive() || a.WorkerID != workerID {
			continue
		}
		weekly += WeeklyHours(a.Schedule)
		used += UsedHoursToDate(a.Schedule, year, month, ref)
	}

	committed := EstimateMonthlyHours(weekly)
	return NewBalance(workerID, year, month, committed, used)
}
