package planning

import "github.com/caredesk/homecare-backend-go/internal/domain/assignment"

// ClassifySchedule derives a worker type from which weekdays carry slots.
// An entirely empty schedule classifies as laborable; harmless, since it
// never contributes hours.
func ClassifySchedule(schedule assignment.Schedule) assignment.WorkerType {
	var hasWeekday, hasWeekend bool
	for day := assignment.Monday; day <= assignment.Sunday; day++ {
		if len(schedule.SlotsOn(day)) == 0 {
			continue
		}
		if day.IsWeekend() {
			hasWeekend = true
		} else {
			hasWeekday = true
		}
	}

	switch {
	case hasWeekday && hasWeekend:
		return assignment.WorkerTypeBoth
	case hasWeekend:
		return assignment.WorkerTypeHolidayWeekend
	default:
		return assignment.WorkerTypeLaborable
	}
}

// EffectiveWorkerType resolves the type planning should honor. The explicit
// field on the assignment wins; flexible workers serve any day type, and
// assignments predating the explicit field fall back to the classifier.
func EffectiveWorkerType(a assignment.Assignment) assignment.WorkerType {
	switch a.WorkerType {
	case assignment.WorkerTypeLaborable, assignment.WorkerTypeHolidayWeekend, assignment.WorkerTypeBoth:
		return a.WorkerType
	case assignment.WorkerTypeFlexible:
		return assignment.WorkerTypeBoth
	default:
		return ClassifySchedule(a.Schedule)
	}
}

// servesLaborable reports whether the type covers Monday-Friday non-holiday
// service.
func servesLaborable(t assignment.WorkerType) bool {
	return t == assignment.WorkerTypeLaborable || t == assignment.WorkerTypeBoth
}

// servesHolidayWeekend reports whether the type covers weekends and public
// holidays.
func servesHolidayWeekend(t assignment.WorkerType) bool {
	return t == assignment.WorkerTypeHolidayWeekend || t == assignment.WorkerTypeBoth
}
