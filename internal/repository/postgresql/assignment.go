package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/caredesk/homecare-backend-go/internal/domain/assignment"
	"github.com/caredesk/homecare-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) assignment.Repository {
	return &assignmentRepositoryImpl{db: db}
}

const assignmentColumns = `id, worker_id, client_id, schedule, worker_type, status,
		start_date, end_date, priority, created_at, updated_at`

// Create implements assignment.Repository.
func (r *assignmentRepositoryImpl) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	scheduleJSON, err := json.Marshal(a.Schedule)
	if err != nil {
		return assignment.Assignment{}, fmt.Errorf("marshal schedule: %w", err)
	}

	insertQuery := `
		INSERT INTO assignments (id, worker_id, client_id, schedule, worker_type, status,
			start_date, end_date, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING ` + assignmentColumns

	row := q.QueryRow(ctx, insertQuery,
		a.ID, a.WorkerID, a.ClientID, scheduleJSON, a.WorkerType, a.Status,
		a.StartDate, a.EndDate, a.Priority,
	)
	return scanAssignment(row)
}

// GetByID implements assignment.Repository.
func (r *assignmentRepositoryImpl) GetByID(ctx context.Context, id string) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = $1`
	return scanAssignment(q.QueryRow(ctx, query, id))
}

// List implements assignment.Repository.
func (r *assignmentRepositoryImpl) List(ctx context.Context, filter assignment.Filter) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE 1=1`
	var args []interface{}
	if filter.WorkerID != nil {
		args = append(args, *filter.WorkerID)
		query += ` AND worker_id = $` + strconv.Itoa(len(args))
	}
	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		query += ` AND client_id = $` + strconv.Itoa(len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY created_at`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// ListActiveByClient implements assignment.Repository.
func (r *assignmentRepositoryImpl) ListActiveByClient(ctx context.Context, clientID string) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE client_id = $1 AND status = 'active'
		ORDER BY priority DESC, created_at`

	rows, err := q.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// ListActiveByWorker implements assignment.Repository.
func (r *assignmentRepositoryImpl) ListActiveByWorker(ctx context.Context, workerID string) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE worker_id = $1 AND status = 'active'
		ORDER BY priority DESC, created_at`

	rows, err := q.Query(ctx, query, workerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// ListActive implements assignment.Repository.
func (r *assignmentRepositoryImpl) ListActive(ctx context.Context) ([]assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE status = 'active'
		ORDER BY priority DESC, created_at`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// Update implements assignment.Repository.
func (r *assignmentRepositoryImpl) Update(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	scheduleJSON, err := json.Marshal(a.Schedule)
	if err != nil {
		return assignment.Assignment{}, fmt.Errorf("marshal schedule: %w", err)
	}

	updateQuery := `
		UPDATE assignments
		SET schedule = $1, worker_type = $2, status = $3, end_date = $4, priority = $5,
			updated_at = NOW()
		WHERE id = $6
		RETURNING ` + assignmentColumns

	row := q.QueryRow(ctx, updateQuery,
		scheduleJSON, a.WorkerType, a.Status, a.EndDate, a.Priority, a.ID,
	)
	return scanAssignment(row)
}

// Delete implements assignment.Repository.
func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var deleted string
	return q.QueryRow(ctx, `DELETE FROM assignments WHERE id = $1 RETURNING id`, id).Scan(&deleted)
}

func scanAssignment(row pgx.Row) (assignment.Assignment, error) {
	var a assignment.Assignment
	var scheduleJSON []byte

	err := row.Scan(
		&a.ID,
		&a.WorkerID,
		&a.ClientID,
		&scheduleJSON,
		&a.WorkerType,
		&a.Status,
		&a.StartDate,
		&a.EndDate,
		&a.Priority,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return assignment.Assignment{}, err
	}

	if err := json.Unmarshal(scheduleJSON, &a.Schedule); err != nil {
		return assignment.Assignment{}, fmt.Errorf("unmarshal schedule: %w", err)
	}
	return a, nil
}

func scanAssignments(rows pgx.Rows) ([]assignment.Assignment, error) {
	var list []assignment.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
