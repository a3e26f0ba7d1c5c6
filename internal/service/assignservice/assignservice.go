// Package assignservice coordinates ride acceptance. A pending ride goes to
// at most one driver: the ride row and then the driver row are locked, and
// the claim itself is a conditional update that only succeeds while the ride
// is still pending and unassigned.
package assignservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/pg"
)

//go:generate mockgen -source=assignservice.go -destination=mock_assignservice.go -package=assignservice
type RideRepo interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Ride, error)
	Assign(ctx context.Context, rideID, driverID uuid.UUID, isCredit bool, acceptTime string) (*domain.Ride, error)
}

type DriverRepo interface {
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Driver, error)
	IncrementCreditRides(ctx context.Context, id uuid.UUID) (int, error)
}

type Wallet interface {
	ApplyDelta(ctx context.Context, driverID uuid.UUID, delta decimal.Decimal, typ domain.TransactionType, description string) (decimal.Decimal, error)
	DrainForCredit(ctx context.Context, driverID uuid.UUID, shortfall decimal.Decimal, description string) (decimal.Decimal, error)
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

type EventRepo interface {
	Append(ctx context.Context, event *domain.RideEvent) error
}

var hundred = decimal.NewFromInt(100)

type Service struct {
	rides           RideRepo
	drivers         DriverRepo
	wallet          Wallet
	settings        SettingsRepo
	events          EventRepo
	txManager       pg.TXManager
	creditRideLimit int

	now func() time.Time
}

func New(rides RideRepo, drivers DriverRepo, wallet Wallet, settings SettingsRepo, events EventRepo, txManager pg.TXManager, creditRideLimit int) *Service {
	if creditRideLimit <= 0 {
		creditRideLimit = domain.DefaultCreditRideLimit
	}
	return &Service{
		rides:           rides,
		drivers:         drivers,
		wallet:          wallet,
		settings:        settings,
		events:          events,
		txManager:       txManager,
		creditRideLimit: creditRideLimit,
		now:             time.Now,
	}
}

// Decision is how a driver pays the acceptance requirement of a ride.
type Decision struct {
	Required  decimal.Decimal
	OnCredit  bool
	Shortfall decimal.Decimal
}

// RequiredBalance is the share of amount a driver must hold to accept a
// ride without credit, rounded to cents.
func RequiredBalance(amount, minWalletPercentage decimal.Decimal) decimal.Decimal {
	return amount.Mul(minWalletPercentage).Div(hundred).Round(2)
}

// Decide applies the eligibility policy without touching any state.
func Decide(driver *domain.Driver, amount decimal.Decimal, settings domain.Settings) (Decision, error) {
	required := RequiredBalance(amount, settings.MinWalletPercentage)
	if driver.WalletBalance.GreaterThanOrEqual(required) {
		return Decision{Required: required}, nil
	}
	if driver.CreditRideCount < settings.CreditRideLimit {
		return Decision{
			Required:  required,
			OnCredit:  true,
			Shortfall: required.Sub(driver.WalletBalance),
		}, nil
	}
	return Decision{}, fmt.Errorf("%w: %d of %d credit rides used",
		domain.ErrCreditLimitExceeded, driver.CreditRideCount, settings.CreditRideLimit)
}

// VehicleMatches reports whether the driver's vehicle satisfies the ride's
// required model. An empty requirement accepts any vehicle.
func VehicleMatches(required, actual string) bool {
	required = strings.TrimSpace(required)
	if required == "" {
		return true
	}
	return strings.EqualFold(required, strings.TrimSpace(actual))
}

// AcceptRide assigns the ride to the driver and takes the acceptance
// payment, all in one transaction. Every rule is checked before the first
// write, so a rejected call leaves no trace.
func (s *Service) AcceptRide(ctx context.Context, rideID, driverID uuid.UUID) (*domain.Ride, error) {
	var accepted *domain.Ride
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		ride, err := s.rides.GetForUpdate(ctx, rideID)
		if err != nil {
			return err
		}
		if ride == nil {
			return fmt.Errorf("ride %s: %w", rideID, domain.ErrNotFound)
		}
		if ride.Status != domain.RidePending || ride.DriverID != nil {
			return domain.ErrRideUnavailable
		}

		driver, err := s.drivers.GetForUpdate(ctx, driverID)
		if err != nil {
			return err
		}
		if driver == nil {
			return fmt.Errorf("driver %s: %w", driverID, domain.ErrNotFound)
		}
		if driver.Status != domain.DriverActive {
			return domain.ErrDriverNotActive
		}
		if !VehicleMatches(ride.CarModel, driver.VehicleModel) {
			return &domain.VehicleMismatchError{Required: ride.CarModel, Actual: driver.VehicleModel}
		}

		row, err := s.settings.Get(ctx)
		if err != nil {
			return err
		}
		decision, err := Decide(driver, ride.TotalAmount, domain.SettingsSnapshot(row, s.creditRideLimit))
		if err != nil {
			return err
		}

		accepted, err = s.rides.Assign(ctx, rideID, driverID, decision.OnCredit, domain.FormatTimestamp(s.now()))
		if err != nil {
			return err
		}
		if accepted == nil {
			return domain.ErrRideUnavailable
		}

		if err := s.pay(ctx, driverID, ride.RideNumber, decision); err != nil {
			return err
		}

		event, err := domain.NewRideEvent(domain.EventRideAccepted, accepted, s.now())
		if err != nil {
			return err
		}
		return s.events.Append(ctx, event)
	})
	if err != nil {
		err = domain.Internal(err)
		if errors.Is(err, domain.ErrInternal) {
			zap.L().Error("failed to accept ride", zap.Stringer("ride_id", rideID), zap.Stringer("driver_id", driverID), zap.Error(err))
		} else {
			zap.L().Info("ride not accepted", zap.Stringer("ride_id", rideID), zap.Stringer("driver_id", driverID), zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("ride accepted",
		zap.Stringer("ride_id", rideID),
		zap.Stringer("driver_id", driverID),
		zap.Bool("is_credit", accepted.IsCredit),
	)
	return accepted, nil
}

func (s *Service) pay(ctx context.Context, driverID uuid.UUID, rideNumber string, decision Decision) error {
	if !decision.OnCredit {
		if decision.Required.IsZero() {
			return nil
		}
		_, err := s.wallet.ApplyDelta(ctx, driverID, decision.Required.Neg(), domain.TransactionDebit,
			fmt.Sprintf("Acceptance fee for ride %s", rideNumber))
		return err
	}

	if _, err := s.wallet.DrainForCredit(ctx, driverID, decision.Shortfall,
		fmt.Sprintf("Credit acceptance for ride %s", rideNumber)); err != nil {
		return err
	}
	_, err := s.drivers.IncrementCreditRides(ctx, driverID)
	return err
}
