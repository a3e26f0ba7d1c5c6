package driverrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
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

func (r *Repository) get(ctx context.Context, query string, id uuid.UUID) (*domain.Driver, error) {
	var driver domain.Driver
	var status string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&driver.ID, &driver.Name, &driver.VehicleModel, &status, &driver.WalletBalance, &driver.CreditRideCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't get driver", zap.Error(err))
		return nil, err
	}
	driver.Status = domain.DriverStatus(status)
	return &driver, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Driver, error) {
	query := `
        SELECT id, name, vehicle_model, status, wallet_balance, credit_ride_count
        FROM drivers
        WHERE id = $1
    `
	return r.get(ctx, query, id)
}

// GetForUpdate locks the driver row. Callers lock the ride first.
func (r *Repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Driver, error) {
	query := `
        SELECT id, name, vehicle_model, status, wallet_balance, credit_ride_count
        FROM drivers
        WHERE id = $1 FOR UPDATE
    `
	return r.get(ctx, query, id)
}

func (r *Repository) IncrementCreditRides(ctx context.Context, id uuid.UUID) (int, error) {
	query := `
        UPDATE drivers
        SET credit_ride_count = credit_ride_count + 1, updated_at = now()
        WHERE id = $1
        RETURNING credit_ride_count
    `
	var count int
	if err := r.db.QueryRow(ctx, query, id).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		zap.L().Error("can't increment credit rides", zap.Error(err))
		return 0, err
	}
	return count, nil
}
