package client

import (
	"time"

	"github.com/caredesk/homecare-backend-go/internal/pkg/validator"
)

type CreateClientRequest struct {
	Name                   string   `json:"name"`
	MonthlyContractedHours *float64 `json:"monthly_contracted_hours"`
}

func (r *CreateClientRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.MonthlyContractedHours == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_contracted_hours",
			Message: "monthly_contracted_hours is required",
		})
	}
	if r.MonthlyContractedHours != nil && *r.MonthlyContractedHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_contracted_hours",
			Message: "monthly_contracted_hours must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ClientResponse struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	MonthlyContractedHours float64 `json:"monthly_contracted_hours"`
	CreatedAt              string  `json:"created_at"`
	UpdatedAt              string  `json:"updated_at"`
}

func NewResponse(c Client) ClientResponse {
	return ClientResponse{
		ID:                     c.ID,
		Name:                   c.Name,
		MonthlyContractedHours: c.MonthlyContractedHours,
		CreatedAt:              c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              c.UpdatedAt.Format(time.RFC3339),
	}
}
