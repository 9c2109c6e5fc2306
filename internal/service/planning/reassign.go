package planning

import (
	"github.com/caredesk/homecare-backend-go/internal/domain/assignment"
	"github.com/caredesk/homecare-backend-go/internal/domain/holiday"
	"github.com/caredesk/homecare-backend-go/internal/domain/planning"
)

// DefaultReassignedHours is the agreed duration of a festive-day substitute
// service. It is a flat business constant, deliberately independent of the
// laborable shift it replaces.
const DefaultReassignedHours = 1.5

// Planner moves festive-day service from laborable workers onto
// holiday/weekend workers. ReassignedHours can be overridden per planner;
// zero means DefaultReassignedHours.
type Planner struct {
	ReassignedHours float64
}

func NewPlanner() *Planner {
	return &Planner{ReassignedHours: DefaultReassignedHours}
}

func (p *Planner) reassignedHours() float64 {
	if p.ReassignedHours > 0 {
		return p.ReassignedHours
	}
	return DefaultReassignedHours
}

// PlanMonth walks every calendar day of (year, month). On weekends and
// holidays, each laborable assignment that would have served that weekday is
// reassigned to the first holiday/weekend assignment covering the same
// weekday; when none covers it, the service is reported as unresolved
// rather than silently dropped.
func (p *Planner) PlanMonth(assignments []assignment.Assignment, holidays []holiday.Holiday, year, month int) planning.ReassignmentResult {
	result := planning.ReassignmentResult{
		Reassignments: []planning.ReassignedService{},
		Unresolved:    []planning.UnresolvedService{},
	}

	var laborable, festive []assignment.Assignment
	for _, a := range assignments {
		if !a.IsActive() {
			continue
		}
		t := EffectiveWorkerType(a)
		if servesLaborable(t) {
			laborable = append(laborable, a)
		}
		if servesHolidayWeekend(t) {
			festive = append(festive, a)
		}
	}

	holidaySet := holiday.NewDateSet(holidays)

	var total float64
	for day := 1; day <= daysInMonth(year, month); day++ {
		date := dateOf(year, month, day)
		weekday := assignment.WeekdayOf(date)

		isHoliday := holidaySet.Contains(date)
		if !isHoliday && !weekday.IsWeekend() {
			continue
		}

		reason := planning.ReasonWeekend
		if isHoliday {
			reason = planning.ReasonHoliday
		}

		for _, src := range laborable {
			originalHours := DailyHours(src.Schedule.SlotsOn(weekday))
			if originalHours <= 0 {
				continue
			}

			substitute, ok := firstCovering(festive, weekday, src.ID)
			if !ok {
				result.Unresolved = append(result.Unresolved, planning.UnresolvedService{
					Date:     date,
					WorkerID: src.WorkerID,
					Hours:    originalHours,
					Reason:   reason,
				})
				continue
			}

			hours := p.reassignedHours()
			result.Reassignments = append(result.Reassignments, planning.ReassignedService{
				Date:               date,
				OriginalWorkerID:   src.WorkerID,
				ReassignedWorkerID: substitute.WorkerID,
				OriginalHours:      originalHours,
				ReassignedHours:    hours,
				Reason:             reason,
			})
			total += hours
		}
	}

	result.TotalReassignedHours = round1(total)
	return result
}

// firstCovering picks the first holiday/weekend assignment with slots on the
// weekday, skipping the assignment whose service is being replaced so a
// "both" assignment never substitutes for itself.
func firstCovering(festive []assignment.Assignment, weekday assignment.Weekday, excludeID string) (assignment.Assignment, bool) {
	for _, a := range festive {
		if a.ID == excludeID {
			continue
		}
		if len(a.Schedule.SlotsOn(weekday)) > 0 {
			return a, true
		}
	}
	return assignment.Assignment{}, false
}
