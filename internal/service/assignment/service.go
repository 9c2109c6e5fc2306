package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/caredesk/homecare-backend-go/internal/domain/assignment"
	"github.com/caredesk/homecare-backend-go/internal/domain/client"
	"github.com/caredesk/homecare-backend-go/internal/domain/worker"
	"github.com/caredesk/homecare-backend-go/internal/pkg/database"
	"github.com/caredesk/homecare-backend-go/internal/repository/postgresql"
	planningcore "github.com/caredesk/homecare-backend-go/internal/service/planning"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type assignmentServiceImpl struct {
	db             *database.DB
	assignmentRepo assignment.Repository
	clientRepo     client.Repository
	workerRepo     worker.Repository
}

func NewAssignmentService(
	db *database.DB,
	assignmentRepo assignment.Repository,
	clientRepo client.Repository,
	workerRepo worker.Repository,
) assignment.Service {
	return &assignmentServiceImpl{
		db:             db,
		assignmentRepo: assignmentRepo,
		clientRepo:     clientRepo,
		workerRepo:     workerRepo,
	}
}

// Create implements assignment.Service.
func (s *assignmentServiceImpl) Create(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	schedule, err := req.Schedule.Normalize()
	if err != nil {
		return assignment.AssignmentResponse{}, fmt.Errorf("%w: %v", assignment.ErrInvalidRequestData, err)
	}

	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, worker.ErrWorkerNotFound) {
			return assignment.AssignmentResponse{}, assignment.ErrWorkerNotFound
		}
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to get worker: %w", err)
	}
	if _, err := s.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, client.ErrClientNotFound) {
			return assignment.AssignmentResponse{}, assignment.ErrClientNotFound
		}
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to get client: %w", err)
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	var endDate *time.Time
	if req.EndDate != nil {
		t, _ := time.Parse("2006-01-02", *req.EndDate)
		endDate = &t
	}

	workerType := assignment.WorkerType(req.WorkerType)
	if req.WorkerType == "" {
		workerType = planningcore.ClassifySchedule(schedule)
	}
	status := assignment.Status(req.Status)
	if req.Status == "" {
		status = assignment.StatusActive
	}
	priority := 0
	if req.Priority != nil {
		priority = *req.Priority
	}

	created, err := s.assignmentRepo.Create(ctx, assignment.Assignment{
		ID:         uuid.NewString(),
		WorkerID:   req.WorkerID,
		ClientID:   req.ClientID,
		Schedule:   schedule,
		WorkerType: workerType,
		Status:     status,
		StartDate:  startDate,
		EndDate:    endDate,
		Priority:   priority,
	})
	if err != nil {
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return s.toResponse(created), nil
}

// Get implements assignment.Service.
func (s *assignmentServiceImpl) Get(ctx context.Context, id string) (assignment.AssignmentResponse, error) {
	a, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return assignment.AssignmentResponse{}, assignment.ErrAssignmentNotFound
		}
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to get assignment: %w", err)
	}
	return s.toResponse(a), nil
}

// List implements assignment.Service.
func (s *assignmentServiceImpl) List(ctx context.Context, filter assignment.Filter) ([]assignment.AssignmentResponse, error) {
	list, err := s.assignmentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}

	responses := make([]assignment.AssignmentResponse, 0, len(list))
	for _, a := range list {
		responses = append(responses, s.toResponse(a))
	}
	return responses, nil
}

// Update implements assignment.Service. The read-modify-write runs inside a
// transaction so concurrent updates cannot interleave.
func (s *assignmentServiceImpl) Update(ctx context.Context, req assignment.UpdateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	var updated assignment.Assignment
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		a, err := s.assignmentRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return assignment.ErrAssignmentNotFound
			}
			return fmt.Errorf("failed to get assignment: %w", err)
		}

		if req.Schedule != nil {
			schedule, err := req.Schedule.Normalize()
			if err != nil {
				return fmt.Errorf("%w: %v", assignment.ErrInvalidRequestData, err)
			}
			a.Schedule = schedule
			// A reshaped schedule invalidates a classifier-derived type; an
			// explicit request value below still wins.
			if req.WorkerType == nil && a.WorkerType == "" {
				a.WorkerType = planningcore.ClassifySchedule(schedule)
			}
		}
		if req.WorkerType != nil {
			a.WorkerType = assignment.WorkerType(*req.WorkerType)
		}
		if req.Status != nil {
			a.Status = assignment.Status(*req.Status)
		}
		if req.EndDate != nil {
			t, _ := time.Parse("2006-01-02", *req.EndDate)
			a.EndDate = &t
		}
		if req.Priority != nil {
			a.Priority = *req.Priority
		}

		updated, err = s.assignmentRepo.Update(txCtx, a)
		if err != nil {
			return fmt.Errorf("failed to update assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	return s.toResponse(updated), nil
}

// Delete implements assignment.Service.
func (s *assignmentServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return assignment.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

func (s *assignmentServiceImpl) toResponse(a assignment.Assignment) assignment.AssignmentResponse {
	resp := assignment.NewResponse(a)
	resp.WeeklyHours = planningcore.WeeklyHours(a.Schedule)
	resp.MonthlyHoursEstimate = planningcore.EstimateMonthlyHours(resp.WeeklyHours)
	return resp
}
