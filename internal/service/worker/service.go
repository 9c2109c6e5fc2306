package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/caredesk/homecare-backend-go/internal/domain/worker"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type workerServiceImpl struct {
	workerRepo worker.Repository
}

func NewWorkerService(workerRepo worker.Repository) worker.Service {
	return &workerServiceImpl{workerRepo: workerRepo}
}

// Create implements worker.Service.
func (s *workerServiceImpl) Create(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	created, err := s.workerRepo.Create(ctx, worker.Worker{
		ID:             uuid.NewString(),
		Name:           req.Name,
		MaxWeeklyHours: *req.MaxWeeklyHours,
	})
	if err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to create worker: %w", err)
	}
	return worker.NewResponse(created), nil
}

// Get implements worker.Service.
func (s *workerServiceImpl) Get(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worker.WorkerResponse{}, worker.ErrWorkerNotFound
		}
		return worker.WorkerResponse{}, fmt.Errorf("failed to get worker: %w", err)
	}
	return worker.NewResponse(w), nil
}

// List implements worker.Service.
func (s *workerServiceImpl) List(ctx context.Context) ([]worker.WorkerResponse, error) {
	list, err := s.workerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workers: %w", err)
	}

	responses := make([]worker.WorkerResponse, 0, len(list))
	for _, w := range list {
		responses = append(responses, worker.NewResponse(w))
	}
	return responses, nil
}
