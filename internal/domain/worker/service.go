package worker

import "context"

type Service interface {
	Create(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	Get(ctx context.Context, id string) (WorkerResponse, error)
	List(ctx context.Context) ([]WorkerResponse, error)
}
