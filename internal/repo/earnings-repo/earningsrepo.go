package earningsrepo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, earnings *domain.Earnings) (*domain.Earnings, error) {
	query := `
        INSERT INTO earnings (driver_id, ride_id, amount, commission, commission_percentage, net_amount, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		earnings.DriverID, earnings.RideID, earnings.Amount, earnings.Commission,
		earnings.CommissionPercentage, earnings.NetAmount, string(earnings.Status),
	).Scan(&earnings.ID, &earnings.CreatedAt)
	if err != nil {
		zap.L().Error("can't save earnings", zap.Error(err))
		return nil, err
	}
	return earnings, nil
}

func (r *Repository) ListByDriver(ctx context.Context, driverID uuid.UUID, limit int) ([]domain.Earnings, error) {
	query := `
        SELECT id, driver_id, ride_id, amount, commission, commission_percentage, net_amount, status, created_at
        FROM earnings
        WHERE driver_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, driverID, limit)
	if err != nil {
		zap.L().Error("failed to fetch earnings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []domain.Earnings
	for rows.Next() {
		var e domain.Earnings
		var status string
		err := rows.Scan(&e.ID, &e.DriverID, &e.RideID, &e.Amount, &e.Commission,
			&e.CommissionPercentage, &e.NetAmount, &status, &e.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan earnings row", zap.Error(err))
			return nil, err
		}
		e.Status = domain.EarningsStatus(status)
		out = append(out, e)
	}
	return out, nil
}
