// Package walletservice is the wallet ledger: every change to a driver's
// wallet balance goes through here and leaves exactly one append-only entry
// whose balance_after equals the new balance.
package walletservice

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/pg"
)

//go:generate mockgen -source=walletservice.go -destination=mock_walletservice.go -package=walletservice
type Repo interface {
	AddToBalance(ctx context.Context, driverID uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error)
	SetBalance(ctx context.Context, driverID uuid.UUID, balance decimal.Decimal) (decimal.Decimal, error)
	CreateEntry(ctx context.Context, entry *domain.WalletEntry) (*domain.WalletEntry, error)
	ListEntries(ctx context.Context, driverID uuid.UUID, limit int) ([]domain.WalletEntry, error)
}

type DriverRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Driver, error)
}

const historyLimit = 100

type Service struct {
	repo        Repo
	drivers     DriverRepo
	txManager   pg.TXManager
	readRetries uint64
}

func New(repo Repo, drivers DriverRepo, txManager pg.TXManager, readRetries uint64) *Service {
	return &Service{
		repo:        repo,
		drivers:     drivers,
		txManager:   txManager,
		readRetries: readRetries,
	}
}

// ApplyDelta adds a signed delta to the driver's balance and records it.
// Credits must be non-negative and debits non-positive. When called inside
// a transaction it joins it.
func (s *Service) ApplyDelta(ctx context.Context, driverID uuid.UUID, delta decimal.Decimal, typ domain.TransactionType, description string) (decimal.Decimal, error) {
	if err := checkSign(delta, typ); err != nil {
		return decimal.Zero, err
	}

	var balance decimal.Decimal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		balance, err = s.repo.AddToBalance(ctx, driverID, delta)
		if err != nil {
			return err
		}
		return s.record(ctx, driverID, delta, balance, typ, description)
	})
	if err != nil {
		zap.L().Error("failed to apply wallet delta", zap.Stringer("driver_id", driverID), zap.Error(err))
		return decimal.Zero, domain.Internal(err)
	}
	return balance, nil
}

// DrainForCredit empties the wallet for a ride taken on credit. The entry
// records the shortfall against the required amount, not the drained
// balance, while balance_after is the new zero balance.
func (s *Service) DrainForCredit(ctx context.Context, driverID uuid.UUID, shortfall decimal.Decimal, description string) (decimal.Decimal, error) {
	if shortfall.IsNegative() {
		return decimal.Zero, domain.Validationf("shortfall must not be negative")
	}

	var balance decimal.Decimal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		balance, err = s.repo.SetBalance(ctx, driverID, decimal.Zero)
		if err != nil {
			return err
		}
		return s.record(ctx, driverID, shortfall.Neg(), balance, domain.TransactionDebit, description)
	})
	if err != nil {
		zap.L().Error("failed to drain wallet", zap.Stringer("driver_id", driverID), zap.Error(err))
		return decimal.Zero, domain.Internal(err)
	}
	return balance, nil
}

func (s *Service) record(ctx context.Context, driverID uuid.UUID, amount, balance decimal.Decimal, typ domain.TransactionType, description string) error {
	_, err := s.repo.CreateEntry(ctx, &domain.WalletEntry{
		DriverID:     driverID,
		Amount:       amount,
		BalanceAfter: balance,
		Type:         typ,
		Description:  description,
	})
	return err
}

func (s *Service) GetWallet(ctx context.Context, driverID uuid.UUID) (*domain.Driver, error) {
	driver, err := pg.RetryRead(ctx, s.readRetries, func(ctx context.Context) (*domain.Driver, error) {
		return s.drivers.GetByID(ctx, driverID)
	})
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, domain.Internal(err)
	}
	if driver == nil {
		return nil, domain.ErrNotFound
	}
	return driver, nil
}

func (s *Service) ListEntries(ctx context.Context, driverID uuid.UUID) ([]domain.WalletEntry, error) {
	entries, err := pg.RetryRead(ctx, s.readRetries, func(ctx context.Context) ([]domain.WalletEntry, error) {
		return s.repo.ListEntries(ctx, driverID, historyLimit)
	})
	if err != nil {
		zap.L().Error("failed to fetch wallet transactions", zap.Error(err))
		return nil, domain.Internal(err)
	}
	return entries, nil
}

func checkSign(delta decimal.Decimal, typ domain.TransactionType) error {
	switch typ {
	case domain.TransactionCredit:
		if delta.IsNegative() {
			return domain.Validationf("credit amount must not be negative")
		}
	case domain.TransactionDebit:
		if delta.IsPositive() {
			return domain.Validationf("debit amount must not be positive")
		}
	default:
		return domain.Validationf("unknown transaction type %q", typ)
	}
	return nil
}
