package planning

import (
	"time"

	"github.com/caredesk/homecare-backend-go/internal/domain/assignment"
	"github.com/caredesk/homecare-backend-go/internal/domain/holiday"
	"github.com/google/uuid"
)

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func slot(start, end string) assignment.TimeSlot {
	s, err := assignment.ParseClockTime(start)
	if err != nil {
		panic(err)
	}
	e, err := assignment.ParseClockTime(end)
	if err != nil {
		panic(err)
	}
	return assignment.TimeSlot{Start: s, End: e}
}

func weekdaySchedule(slots ...assignment.TimeSlot) assignment.Schedule {
	schedule := assignment.Schedule{}
	for day := assignment.Monday; day <= assignment.Friday; day++ {
		schedule[day] = slots
	}
	return schedule
}

func weekendSchedule(slots ...assignment.TimeSlot) assignment.Schedule {
	return assignment.Schedule{
		assignment.Saturday: slots,
		assignment.Sunday:   slots,
	}
}

func fullWeekSchedule(slots ...assignment.TimeSlot) assignment.Schedule {
	schedule := assignment.Schedule{}
	for day := assignment.Monday; day <= assignment.Sunday; day++ {
		schedule[day] = slots
	}
	return schedule
}

func activeAssignment(workerID, clientID string, schedule assignment.Schedule, workerType assignment.WorkerType) assignment.Assignment {
	return assignment.Assignment{
		ID:         uuid.NewString(),
		WorkerID:   workerID,
		ClientID:   clientID,
		Schedule:   schedule,
		WorkerType: workerType,
		Status:     assignment.StatusActive,
	}
}

func nationalHoliday(date string) holiday.Holiday {
	return holiday.Holiday{
		ID:   uuid.NewString(),
		Date: mustDate(date),
		Name: "test holiday",
		Type: holiday.TypeNational,
	}
}
