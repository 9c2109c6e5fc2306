package postgresql

import (
	"context"

	"github.com/caredesk/homecare-backend-go/internal/domain/client"
	"github.com/caredesk/homecare-backend-go/internal/pkg/database"
)

type clientRepositoryImpl struct {
	db *database.DB
}

func NewClientRepository(db *database.DB) client.Repository {
	return &clientRepositoryImpl{db: db}
}

// Create implements client.Repository.
func (r *clientRepositoryImpl) Create(ctx context.Context, c client.Client) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO clients (id, name, monthly_contracted_hours, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, name, monthly_contracted_hours, created_at, updated_at
	`

	var created client.Client
	err := q.QueryRow(ctx, insertQuery, c.ID, c.Name, c.MonthlyContractedHours).Scan(
		&created.ID,
		&created.Name,
		&created.MonthlyContractedHours,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return client.Client{}, err
	}
	return created, nil
}

// GetByID implements client.Repository.
func (r *clientRepositoryImpl) GetByID(ctx context.Context, id string) (client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, monthly_contracted_hours, created_at, updated_at
		FROM clients
		WHERE id = $1
	`

	var c client.Client
	err := q.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.MonthlyContractedHours,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return client.Client{}, err
	}
	return c, nil
}

// List implements client.Repository.
func (r *clientRepositoryImpl) List(ctx context.Context) ([]client.Client, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, monthly_contracted_hours, created_at, updated_at
		FROM clients
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []client.Client
	for rows.Next() {
		var c client.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.MonthlyContractedHours, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
