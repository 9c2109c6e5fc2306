package client

import "context"

type Service interface {
	Create(ctx context.Context, req CreateClientRequest) (ClientResponse, error)
	Get(ctx context.Context, id string) (ClientResponse, error)
	List(ctx context.Context) ([]ClientResponse, error)
}
