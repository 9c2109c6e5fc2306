package planning

import (
	"time"

	"github.com/caredesk/homecare-backend-go/internal/domain/assignment"
	"github.com/caredesk/homecare-backend-go/internal/domain/holiday"
	"github.com/caredesk/homecare-backend-go/internal/domain/planning"
)

// BuildMonthlyPlan produces the sparse day-by-day hour plan for a client's
// month. Days covered by a reassignment carry the reassigned hours; all
// other days sum the hours of assignments whose worker type matches the day
// type. Days that end up at zero hours are omitted.
func BuildMonthlyPlan(assignments []assignment.Assignment, holidays []holiday.Holiday, reassignments []planning.ReassignedService, year, month int) []planning.DayPlanEntry {
	holidaySet := holiday.NewDateSet(holidays)

	byDate := make(map[string][]planning.ReassignedService, len(reassignments))
	for _, r := range reassignments {
		key := r.Date.Format("2006-01-02")
		byDate[key] = append(byDate[key], r)
	}

	plan := []planning.DayPlanEntry{}
	for day := 1; day <= daysInMonth(year, month); day++ {
		date := dateOf(year, month, day)
		weekday := assignment.WeekdayOf(date)
		isHoliday := holidaySet.Contains(date)
		festiveDay := isHoliday || weekday.IsWeekend()

		if reassigned, ok := byDate[date.Format("2006-01-02")]; ok {
			var hours float64
			for _, r := range reassigned {
				hours += r.ReassignedHours
			}
			plan = append(plan, planning.DayPlanEntry{
				Date:      date,
				Hours:     round1(hours),
				IsHoliday: isHoliday,
				WorkerID:  reassigned[0].ReassignedWorkerID,
			})
			continue
		}

		entry := directServiceEntry(assignments, date, weekday, festiveDay, isHoliday)
		if entry.Hours > 0 {
			plan = append(plan, entry)
		}
	}

	return plan
}

// directServiceEntry sums the day's hours across assignments whose worker
// type matches the day type. WorkerID keeps only the first contributing
// assignment's worker; a known information-loss point when several workers
// share one day.
func directServiceEntry(assignments []assignment.Assignment, date time.Time, weekday assignment.Weekday, festiveDay, isHoliday bool) planning.DayPlanEntry {
	var hours float64
	var workerID string

	for _, a := range assignments {
		if !a.IsActive() {
			continue
		}
		t := EffectiveWorkerType(a)
		if festiveDay && !servesHolidayWeekend(t) {
			continue
		}
		if !festiveDay && !servesLaborable(t) {
			continue
		}

		dayHours := DailyHours(a.Schedule.SlotsOn(weekday))
		if dayHours <= 0 {
			continue
		}
		if workerID == "" {
			workerID = a.WorkerID
		}
		hours += dayHours
	}

	return planning.DayPlanEntry{
		Date:      date,
		Hours:     round1(hours),
		IsHoliday: isHoliday,
		WorkerID:  workerID,
	}
}
