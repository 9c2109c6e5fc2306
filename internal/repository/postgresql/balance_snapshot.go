package postgresql

import (
	"context"

	"github.com/caredesk/homecare-backend-go/internal/domain/planning"
	"github.com/caredesk/homecare-backend-go/internal/pkg/database"
)

type balanceSnapshotRepositoryImpl struct {
	db *database.DB
}

func NewBalanceSnapshotRepository(db *database.DB) planning.SnapshotRepository {
	return &balanceSnapshotRepositoryImpl{db: db}
}

// Upsert implements planning.SnapshotRepository. Last write wins on the
// (client_id, year, month) key.
func (r *balanceSnapshotRepositoryImpl) Upsert(ctx context.Context, record planning.MonthlyBalanceRecord) error {
	q := GetQuerier(ctx, r.db)

	upsertQuery := `
		INSERT INTO monthly_balances (client_id, year, month, assigned_hours, real_hours, difference, computed_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (client_id, year, month)
		DO UPDATE SET assigned_hours = EXCLUDED.assigned_hours,
			real_hours = EXCLUDED.real_hours,
			difference = EXCLUDED.difference,
			computed_at = NOW()
	`

	_, err := q.Exec(ctx, upsertQuery,
		record.ClientID, record.Year, record.Month,
		record.AssignedHours, record.RealHours, record.Difference,
	)
	return err
}

// GetByClientMonth implements planning.SnapshotRepository.
func (r *balanceSnapshotRepositoryImpl) GetByClientMonth(ctx context.Context, clientID string, year, month int) (planning.MonthlyBalanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT client_id, year, month, assigned_hours, real_hours, difference
		FROM monthly_balances
		WHERE client_id = $1 AND year = $2 AND month = $3
	`

	var record planning.MonthlyBalanceRecord
	err := q.QueryRow(ctx, query, clientID, year, month).Scan(
		&record.ClientID,
		&record.Year,
		&record.Month,
		&record.AssignedHours,
		&record.RealHours,
		&record.Difference,
	)
	if err != nil {
		return planning.MonthlyBalanceRecord{}, err
	}
	return record, nil
}
