package client

import "context"

type Repository interface {
	Create(ctx context.Context, c Client) (Client, error)
	GetByID(ctx context.Context, id string) (Client, error)
	List(ctx context.Context) ([]Client, error)
}
