package settingsrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/pg"
)

// Repository reads the settings row owned by the admin side. This service
// never writes it.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Get returns nil, nil when no settings row exists.
func (r *Repository) Get(ctx context.Context) (*domain.Settings, error) {
	query := `
        SELECT tax_rate, min_wallet_percentage, credit_ride_limit
        FROM settings
        ORDER BY id
        LIMIT 1
    `
	var s domain.Settings
	err := r.db.QueryRow(ctx, query).Scan(&s.TaxRate, &s.MinWalletPercentage, &s.CreditRideLimit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to read settings", zap.Error(err))
		return nil, err
	}
	return &s, nil
}
