package assignment

import (
	"encoding/json"
	"fmt"
	"time"
)

// ClockTime is a wall-clock time of day in minutes since midnight. It is the
// canonical slot representation: the "HH:MM" strings and legacy slot formats
// accepted on the API are converted to ClockTime at the ingestion boundary
// and never seen by the planning algorithms.
type ClockTime int

func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return ClockTime(t.Hour()*60 + t.Minute()), nil
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// TimeSlot is a half-open service window [Start, End). A slot whose end does
// not come after its start has zero duration rather than being an error.
type TimeSlot struct {
	Start ClockTime `json:"start"`
	End   ClockTime `json:"end"`
}

// Hours returns the slot duration in fractional hours, never negative.
func (s TimeSlot) Hours() float64 {
	if s.End <= s.Start {
		return 0
	}
	return float64(s.End-s.Start) / 60.0
}

// Overlaps reports whether two slots share any time, using half-open
// semantics: a slot ending exactly when another starts does not overlap.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return !(s.End <= other.Start || other.End <= s.Start)
}

// Weekday numbering follows the work-schedule convention 1=Monday..7=Sunday.
type Weekday int

const (
	Monday    Weekday = 1
	Tuesday   Weekday = 2
	Wednesday Weekday = 3
	Thursday  Weekday = 4
	Friday    Weekday = 5
	Saturday  Weekday = 6
	Sunday    Weekday = 7
)

func (d Weekday) IsWeekend() bool {
	return d == Saturday || d == Sunday
}

// WeekdayOf converts a calendar date to its 1=Monday..7=Sunday weekday.
func WeekdayOf(t time.Time) Weekday {
	wd := int(t.Weekday())
	if wd == 0 {
		return Sunday
	}
	return Weekday(wd)
}

// Schedule maps weekdays to service slots. Days without service are simply
// absent; an entirely empty schedule is legal and contributes zero hours.
type Schedule map[Weekday][]TimeSlot

// SlotsOn returns the slots for a weekday, nil when the day has no service.
func (s Schedule) SlotsOn(day Weekday) []TimeSlot {
	if s == nil {
		return nil
	}
	return s[day]
}

type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var StatusValues = []string{
	string(StatusActive),
	string(StatusPaused),
	string(StatusCompleted),
	string(StatusCancelled),
}

// WorkerType is carried explicitly on the assignment instead of being
// re-derived from which weekdays happen to have slots. It is set when the
// assignment is created (the classifier supplies a default) so a laborable
// worker covering one occasional Saturday cannot be misclassified.
type WorkerType string

const (
	WorkerTypeLaborable      WorkerType = "laborable"
	WorkerTypeHolidayWeekend WorkerType = "holiday_weekend"
	WorkerTypeBoth           WorkerType = "both"
	WorkerTypeFlexible       WorkerType = "flexible"
)

var WorkerTypeValues = []string{
	string(WorkerTypeLaborable),
	string(WorkerTypeHolidayWeekend),
	string(WorkerTypeBoth),
	string(WorkerTypeFlexible),
}

type Assignment struct {
	ID         string
	WorkerID   string
	ClientID   string
	Schedule   Schedule
	WorkerType WorkerType
	Status     Status
	StartDate  time.Time
	EndDate    *time.Time
	Priority   int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsActive reports whether the assignment participates in hour, conflict and
// planning computations.
func (a Assignment) IsActive() bool {
	return a.Status == StatusActive
}
