package assignment

import "context"

type Service interface {
	Create(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	Get(ctx context.Context, id string) (AssignmentResponse, error)
	List(ctx context.Context, filter Filter) ([]AssignmentResponse, error)
	Update(ctx context.Context, req UpdateAssignmentRequest) (AssignmentResponse, error)
	Delete(ctx context.Context, id string) error
}
