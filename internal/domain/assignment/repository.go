package assignment

import "context"

type Repository interface {
	Create(ctx context.Context, a Assignment) (Assignment, error)
	GetByID(ctx context.Context, id string) (Assignment, error)
	List(ctx context.Context, filter Filter) ([]Assignment, error)
	// ListActiveByClient and ListActiveByWorker feed the planning core,
	// which only ever consumes active assignments.
	ListActiveByClient(ctx context.Context, clientID string) ([]Assignment, error)
	ListActiveByWorker(ctx context.Context, workerID string) ([]Assignment, error)
	ListActive(ctx context.Context) ([]Assignment, error)
	Update(ctx context.Context, a Assignment) (Assignment, error)
	Delete(ctx context.Context, id string) error
}
