package postgresql

import (
	"context"

	"github.com/caredesk/homecare-backend-go/internal/domain/worker"
	"github.com/caredesk/homecare-backend-go/internal/pkg/database"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.Repository {
	return &workerRepositoryImpl{db: db}
}

// Create implements worker.Repository.
func (r *workerRepositoryImpl) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO workers (id, name, max_weekly_hours, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, name, max_weekly_hours, created_at, updated_at
	`

	var created worker.Worker
	err := q.QueryRow(ctx, insertQuery, w.ID, w.Name, w.MaxWeeklyHours).Scan(
		&created.ID,
		&created.Name,
		&created.MaxWeeklyHours,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return worker.Worker{}, err
	}
	return created, nil
}

// GetByID implements worker.Repository.
func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, max_weekly_hours, created_at, updated_at
		FROM workers
		WHERE id = $1
	`

	var w worker.Worker
	err := q.QueryRow(ctx, query, id).Scan(
		&w.ID,
		&w.Name,
		&w.MaxWeeklyHours,
		&w.CreatedAt,
		&w.UpdatedAt,
	)
	if err != nil {
		return worker.Worker{}, err
	}
	return w, nil
}

// List implements worker.Repository.
func (r *workerRepositoryImpl) List(ctx context.Context) ([]worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, max_weekly_hours, created_at, updated_at
		FROM workers
		ORDER BY name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []worker.Worker
	for rows.Next() {
		var w worker.Worker
		if err := rows.Scan(&w.ID, &w.Name, &w.MaxWeeklyHours, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, w)
	}
	return list, rows.Err()
}
