package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/caredesk/homecare-backend-go/internal/domain/client"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type clientServiceImpl struct {
	clientRepo client.Repository
}

func NewClientService(clientRepo client.Repository) client.Service {
	return &clientServiceImpl{clientRepo: clientRepo}
}

// Create implements client.Service.
func (s *clientServiceImpl) Create(ctx context.Context, req client.CreateClientRequest) (client.ClientResponse, error) {
	if err := req.Validate(); err != nil {
		return client.ClientResponse{}, err
	}

	created, err := s.clientRepo.Create(ctx, client.Client{
		ID:                     uuid.NewString(),
		Name:                   req.Name,
		MonthlyContractedHours: *req.MonthlyContractedHours,
	})
	if err != nil {
		return client.ClientResponse{}, fmt.Errorf("failed to create client: %w", err)
	}
	return client.NewResponse(created), nil
}

// Get implements client.Service.
func (s *clientServiceImpl) Get(ctx context.Context, id string) (client.ClientResponse, error) {
	c, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return client.ClientResponse{}, client.ErrClientNotFound
		}
		return client.ClientResponse{}, fmt.Errorf("failed to get client: %w", err)
	}
	return client.NewResponse(c), nil
}

// List implements client.Service.
func (s *clientServiceImpl) List(ctx context.Context) ([]client.ClientResponse, error) {
	list, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	responses := make([]client.ClientResponse, 0, len(list))
	for _, c := range list {
		responses = append(responses, client.NewResponse(c))
	}
	return responses, nil
}
