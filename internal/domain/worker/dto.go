package worker

import (
	"time"

	"github.com/caredesk/homecare-backend-go/internal/pkg/validator"
)

type CreateWorkerRequest struct {
	Name           string   `json:"name"`
	MaxWeeklyHours *float64 `json:"max_weekly_hours"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.MaxWeeklyHours == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "max_weekly_hours",
			Message: "max_weekly_hours is required",
		})
	}
	if r.MaxWeeklyHours != nil && *r.MaxWeeklyHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_weekly_hours",
			Message: "max_weekly_hours must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	MaxWeeklyHours float64 `json:"max_weekly_hours"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

func NewResponse(w Worker) WorkerResponse {
	return WorkerResponse{
		ID:             w.ID,
		Name:           w.Name,
		MaxWeeklyHours: w.MaxWeeklyHours,
		CreatedAt:      w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      w.UpdatedAt.Format(time.RFC3339),
	}
}
