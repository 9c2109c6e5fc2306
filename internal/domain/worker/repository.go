package worker

import "context"

type Repository interface {
	Create(ctx context.Context, w Worker) (Worker, error)
	GetByID(ctx context.Context, id string) (Worker, error)
	List(ctx context.Context) ([]Worker, error)
}
