package assignment

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caredesk/homecare-backend-go/internal/pkg/validator"
)

// SlotInput accepts both slot formats that exist in the wild: the legacy
// "09:00-12:30" string and the {"start":"09:00","end":"12:30"} object. It is
// normalized to a canonical TimeSlot here, at the ingestion boundary, so the
// planning code never does format detection.
type SlotInput struct {
	Slot TimeSlot
}

func (s *SlotInput) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		parts := strings.SplitN(str, "-", 2)
		if len(parts) != 2 {
			return fmt.Errorf("%w: %q", ErrInvalidSlotFormat, str)
		}
		start, err := ParseClockTime(strings.TrimSpace(parts[0]))
		if err != nil {
			return err
		}
		end, err := ParseClockTime(strings.TrimSpace(parts[1]))
		if err != nil {
			return err
		}
		s.Slot = TimeSlot{Start: start, End: end}
		return nil
	}

	var obj TimeSlot
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSlotFormat, string(data))
	}
	s.Slot = obj
	return nil
}

// ScheduleInput is the wire form of a weekly schedule, keyed by weekday
// number ("1"=Monday .. "7"=Sunday).
type ScheduleInput map[string][]SlotInput

// Normalize converts the wire schedule into the canonical representation.
func (in ScheduleInput) Normalize() (Schedule, error) {
	if in == nil {
		return Schedule{}, nil
	}
	schedule := make(Schedule, len(in))
	for key, slots := range in {
		day, err := strconv.Atoi(key)
		if err != nil || day < 1 || day > 7 {
			return nil, fmt.Errorf("invalid weekday key %q", key)
		}
		if len(slots) == 0 {
			continue
		}
		converted := make([]TimeSlot, 0, len(slots))
		for _, s := range slots {
			converted = append(converted, s.Slot)
		}
		schedule[Weekday(day)] = converted
	}
	return schedule, nil
}

type CreateAssignmentRequest struct {
	WorkerID   string        `json:"worker_id"`
	ClientID   string        `json:"client_id"`
	Schedule   ScheduleInput `json:"schedule"`
	WorkerType string        `json:"worker_type,omitempty"`
	Status     string        `json:"status,omitempty"`
	StartDate  string        `json:"start_date"`
	EndDate    *string       `json:"end_date,omitempty"`
	Priority   *int          `json:"priority,omitempty"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}
	if validator.IsEmpty(r.ClientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "client_id",
			Message: "client_id is required",
		})
	}
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}
	if r.WorkerType != "" && !validator.IsInSlice(r.WorkerType, WorkerTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_type",
			Message: "worker_type must be one of: " + strings.Join(WorkerTypeValues, ", "),
		})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues, ", "),
		})
	}
	if r.Priority != nil && *r.Priority < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAssignmentRequest struct {
	ID         string        `json:"-"`
	Schedule   ScheduleInput `json:"schedule,omitempty"`
	WorkerType *string       `json:"worker_type,omitempty"`
	Status     *string       `json:"status,omitempty"`
	EndDate    *string       `json:"end_date,omitempty"`
	Priority   *int          `json:"priority,omitempty"`
}

func (r *UpdateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.WorkerType != nil && !validator.IsInSlice(*r.WorkerType, WorkerTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_type",
			Message: "worker_type must be one of: " + strings.Join(WorkerTypeValues, ", "),
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: " + strings.Join(StatusValues, ", "),
		})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignmentResponse struct {
	ID         string   `json:"id"`
	WorkerID   string   `json:"worker_id"`
	ClientID   string   `json:"client_id"`
	Schedule   Schedule `json:"schedule"`
	WorkerType string   `json:"worker_type"`
	Status     string   `json:"status"`
	StartDate  string   `json:"start_date"`
	EndDate    *string  `json:"end_date,omitempty"`
	Priority   int      `json:"priority"`
	// WeeklyHours and MonthlyHoursEstimate are display figures derived from
	// the schedule; the calendar-exact monthly plan is authoritative.
	WeeklyHours          float64 `json:"weekly_hours"`
	MonthlyHoursEstimate float64 `json:"monthly_hours_estimate"`
	CreatedAt            string  `json:"created_at"`
	UpdatedAt            string  `json:"updated_at"`
}

type Filter struct {
	WorkerID *string
	ClientID *string
	Status   *string
}

// NewResponse maps an entity to its wire form; hour figures are filled in by
// the service, which owns the calculators.
func NewResponse(a Assignment) AssignmentResponse {
	resp := AssignmentResponse{
		ID:         a.ID,
		WorkerID:   a.WorkerID,
		ClientID:   a.ClientID,
		Schedule:   a.Schedule,
		WorkerType: string(a.WorkerType),
		Status:     string(a.Status),
		StartDate:  a.StartDate.Format("2006-01-02"),
		Priority:   a.Priority,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  a.UpdatedAt.Format(time.RFC3339),
	}
	if a.EndDate != nil {
		end := a.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	return resp
}
