package worker

import "time"

// Worker is a care worker. MaxWeeklyHours is only used to flag over-capacity
// situations; nothing blocks an assignment that exceeds it.
type Worker struct {
	ID             string
	Name           string
	MaxWeeklyHours float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
