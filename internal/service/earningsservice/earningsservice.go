package earningsservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/pg"
)

//go:generate mockgen -source=earningsservice.go -destination=mock_earningsservice.go -package=earningsservice
type Repo interface {
	Create(ctx context.Context, earnings *domain.Earnings) (*domain.Earnings, error)
	ListByDriver(ctx context.Context, driverID uuid.UUID, limit int) ([]domain.Earnings, error)
}

type Wallet interface {
	ApplyDelta(ctx context.Context, driverID uuid.UUID, delta decimal.Decimal, typ domain.TransactionType, description string) (decimal.Decimal, error)
}

const historyLimit = 100

var hundred = decimal.NewFromInt(100)

type Service struct {
	repo        Repo
	wallet      Wallet
	readRetries uint64
}

func New(repo Repo, wallet Wallet, readRetries uint64) *Service {
	return &Service{
		repo:        repo,
		wallet:      wallet,
		readRetries: readRetries,
	}
}

// Breakdown is the commission split of a fare.
type Breakdown struct {
	Amount     decimal.Decimal
	Commission decimal.Decimal
	Percentage decimal.Decimal
	Net        decimal.Decimal
}

// Calculate splits amount into commission and net at taxRate percent.
// Commission is rounded to cents.
func Calculate(amount, taxRate decimal.Decimal) Breakdown {
	commission := amount.Mul(taxRate).Div(hundred).Round(2)
	return Breakdown{
		Amount:     amount,
		Commission: commission,
		Percentage: taxRate,
		Net:        amount.Sub(commission),
	}
}

// Settle records the earnings of a completed ride and moves the money.
// Rides taken on credit give back the full fare; others receive the net.
// It must run inside the transaction that completes the ride.
func (s *Service) Settle(ctx context.Context, ride *domain.Ride, settings domain.Settings) (*domain.Earnings, decimal.Decimal, error) {
	if ride.DriverID == nil {
		return nil, decimal.Zero, domain.Validationf("ride %s has no driver", ride.ID)
	}
	driverID := *ride.DriverID
	b := Calculate(ride.TotalAmount, settings.TaxRate)

	earnings, err := s.repo.Create(ctx, &domain.Earnings{
		DriverID:             driverID,
		RideID:               ride.ID,
		Amount:               b.Amount,
		Commission:           b.Commission,
		CommissionPercentage: b.Percentage,
		NetAmount:            b.Net,
		Status:               domain.EarningsProcessed,
	})
	if err != nil {
		zap.L().Error("failed to create earnings", zap.Stringer("ride_id", ride.ID), zap.Error(err))
		return nil, decimal.Zero, domain.Internal(err)
	}

	delta, typ := b.Net, domain.TransactionCredit
	description := fmt.Sprintf("Earnings for ride %s", ride.RideNumber)
	if ride.IsCredit {
		delta, typ = b.Amount.Neg(), domain.TransactionDebit
		description = fmt.Sprintf("Credit recovery for ride %s", ride.RideNumber)
	}

	balance, err := s.wallet.ApplyDelta(ctx, driverID, delta, typ, description)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return earnings, balance, nil
}

func (s *Service) ListEarnings(ctx context.Context, driverID uuid.UUID) ([]domain.Earnings, error) {
	earnings, err := pg.RetryRead(ctx, s.readRetries, func(ctx context.Context) ([]domain.Earnings, error) {
		return s.repo.ListByDriver(ctx, driverID, historyLimit)
	})
	if err != nil {
		zap.L().Error("failed to fetch earnings", zap.Error(err))
		return nil, domain.Internal(err)
	}
	return earnings, nil
}
