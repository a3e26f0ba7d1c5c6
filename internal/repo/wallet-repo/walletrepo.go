package walletrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
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

func (r *Repository) updateBalance(ctx context.Context, query string, driverID uuid.UUID, value decimal.Decimal) (decimal.Decimal, error) {
	var balance decimal.Decimal
	if err := r.db.QueryRow(ctx, query, driverID, value).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrNotFound
		}
		zap.L().Error("failed to update wallet balance", zap.Error(err))
		return decimal.Zero, err
	}
	return balance, nil
}

// AddToBalance applies a signed delta and returns the resulting balance.
func (r *Repository) AddToBalance(ctx context.Context, driverID uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	query := `
        UPDATE drivers
        SET wallet_balance = wallet_balance + $2, updated_at = now()
        WHERE id = $1
        RETURNING wallet_balance
    `
	return r.updateBalance(ctx, query, driverID, delta)
}

func (r *Repository) SetBalance(ctx context.Context, driverID uuid.UUID, balance decimal.Decimal) (decimal.Decimal, error) {
	query := `
        UPDATE drivers
        SET wallet_balance = $2, updated_at = now()
        WHERE id = $1
        RETURNING wallet_balance
    `
	return r.updateBalance(ctx, query, driverID, balance)
}

func (r *Repository) CreateEntry(ctx context.Context, entry *domain.WalletEntry) (*domain.WalletEntry, error) {
	query := `
        INSERT INTO wallet_transactions (driver_id, amount, balance_after, transaction_type, description)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		entry.DriverID, entry.Amount, entry.BalanceAfter, string(entry.Type), entry.Description,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		zap.L().Error("can't save wallet transaction", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (r *Repository) ListEntries(ctx context.Context, driverID uuid.UUID, limit int) ([]domain.WalletEntry, error) {
	query := `
        SELECT id, driver_id, amount, balance_after, transaction_type, description, created_at
        FROM wallet_transactions
        WHERE driver_id = $1
        ORDER BY id DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, driverID, limit)
	if err != nil {
		zap.L().Error("failed to fetch wallet transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.WalletEntry
	for rows.Next() {
		var e domain.WalletEntry
		var typ string
		if err := rows.Scan(&e.ID, &e.DriverID, &e.Amount, &e.BalanceAfter, &typ, &e.Description, &e.CreatedAt); err != nil {
			zap.L().Error("failed to scan wallet transaction row", zap.Error(err))
			return nil, err
		}
		e.Type = domain.TransactionType(typ)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("failed to iterate wallet transactions", zap.Error(err))
		return nil, err
	}
	return entries, nil
}
