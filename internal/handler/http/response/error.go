package response

import (
	"errors"
	"net/http"

	"github.com/caredesk/homecare-backend-go/internal/domain/assignment"
	"github.com/caredesk/homecare-backend-go/internal/domain/auth"
	"github.com/caredesk/homecare-backend-go/internal/domain/client"
	"github.com/caredesk/homecare-backend-go/internal/domain/holiday"
	"github.com/caredesk/homecare-backend-go/internal/domain/planning"
	"github.com/caredesk/homecare-backend-go/internal/domain/user"
	"github.com/caredesk/homecare-backend-go/internal/domain/worker"
	"github.com/caredesk/homecare-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Assignment domain errors
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, assignment.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, assignment.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, assignment.ErrInvalidSlotFormat),
		errors.Is(err, assignment.ErrInvalidRequestData):
		BadRequest(w, err.Error(), nil)

	// Client and worker domain errors
	case errors.Is(err, client.ErrClientNotFound):
		NotFound(w, "Client not found")
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already registered for that date")
	case errors.Is(err, holiday.ErrLookupFailed):
		BadGateway(w, "Holiday calendar lookup failed")

	// Planning domain errors
	case errors.Is(err, planning.ErrInvalidPeriod):
		BadRequest(w, "Invalid year or month", nil)
	case errors.Is(err, planning.ErrSnapshotNotFound):
		NotFound(w, "Balance snapshot not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
