package planning

import (
	"math"
	"time"

	"github.com/caredesk/homecare-backend-go/internal/domain/assignment"
)

// WeeksPerMonth is the fixed weekly-to-monthly approximation used for quick
// previews. It is a display estimate only; the calendar-exact monthly plan
// is the authoritative hour count.
const WeeksPerMonth = 4.3

// round1 rounds to one decimal place. Public numeric results are rounded at
// the function boundary; internal arithmetic keeps full precision so the
// error never compounds across days.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// DailyHours sums a day's slot durations in fractional hours. Reversed or
// empty slots contribute zero, so one bad record cannot poison a total.
func DailyHours(slots []assignment.TimeSlot) float64 {
	var total float64
	for _, slot := range slots {
		total += slot.Hours()
	}
	return round1(total)
}

// WeeklyHours sums DailyHours over all seven weekdays.
func WeeklyHours(schedule assignment.Schedule) float64 {
	var total float64
	for day := assignment.Monday; day <= assignment.Sunday; day++ {
		for _, slot := range schedule.SlotsOn(day) {
			total += slot.Hours()
		}
	}
	return round1(total)
}

// EstimateMonthlyHours converts a weekly total to a monthly preview using
// the WeeksPerMonth constant.
func EstimateMonthlyHours(weekly float64) float64 {
	return round1(weekly * WeeksPerMonth)
}

// daysInMonth returns the number of calendar days in (year, month).
func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// dateOf builds the UTC midnight timestamp for a day of (year, month).
func dateOf(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// UsedHoursToDate walks the calendar days of (year, month) and sums the
// schedule's hours per day. When the reference date falls inside the same
// month the walk stops at it; otherwise the whole month counts. Holidays and
// weekends are not excluded here; that concern belongs to the plan
// generator.
func UsedHoursToDate(schedule assignment.Schedule, year, month int, ref time.Time) float64 {
	last := daysInMonth(year, month)
	if ref.Year() == year && int(ref.Month()) == month && ref.Day() < last {
		last = ref.Day()
	}

	var total float64
	for day := 1; day <= last; day++ {
		weekday := assignment.WeekdayOf(dateOf(year, month, day))
		for _, slot := range schedule.SlotsOn(weekday) {
			total += slot.Hours()
		}
	}
	return round1(total)
}
