package rideservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/pg"
	"github.com/GlebRadaev/ridehail/pkg/validate"
)

//go:generate mockgen -source=rideservice.go -destination=mock_rideservice.go -package=rideservice
type RideRepo interface {
	Create(ctx context.Context, ride *domain.Ride) (*domain.Ride, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Ride, error)
	GetByNumber(ctx context.Context, number string) (*domain.Ride, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Ride, error)
	ListPending(ctx context.Context, limit int) ([]domain.Ride, error)
	MarkStarted(ctx context.Context, rideID, driverID uuid.UUID, pickupTime string) (*domain.Ride, error)
	MarkCompleted(ctx context.Context, rideID, driverID uuid.UUID, dropoffTime string) (*domain.Ride, error)
	Release(ctx context.Context, rideID, driverID uuid.UUID) (*domain.Ride, error)
	Cancel(ctx context.Context, rideID, initiatorID uuid.UUID) (*domain.Ride, error)
}

type EventRepo interface {
	Append(ctx context.Context, event *domain.RideEvent) error
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
}

type Settler interface {
	Settle(ctx context.Context, ride *domain.Ride, settings domain.Settings) (*domain.Earnings, decimal.Decimal, error)
}

const (
	DefaultPendingLimit = 50
	MaxPendingLimit     = 200
)

type Service struct {
	rides           RideRepo
	events          EventRepo
	settings        SettingsRepo
	settler         Settler
	txManager       pg.TXManager
	readRetries     uint64
	creditRideLimit int

	now       func() time.Time
	newNumber func() (string, error)
}

func New(rides RideRepo, events EventRepo, settings SettingsRepo, settler Settler, txManager pg.TXManager, readRetries uint64, creditRideLimit int) *Service {
	if creditRideLimit <= 0 {
		creditRideLimit = domain.DefaultCreditRideLimit
	}
	return &Service{
		rides:           rides,
		events:          events,
		settings:        settings,
		settler:         settler,
		txManager:       txManager,
		readRetries:     readRetries,
		creditRideLimit: creditRideLimit,
		now:             time.Now,
		newNumber:       validate.NewRideNumber,
	}
}

func (s *Service) CreateRide(ctx context.Context, params domain.CreateRideParams) (*domain.Ride, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	number, err := s.newNumber()
	if err != nil {
		zap.L().Error("failed to generate ride number", zap.Error(err))
		return nil, domain.Internal(err)
	}

	ride := &domain.Ride{
		ID:             uuid.New(),
		RideNumber:     number,
		InitiatorID:    params.InitiatorID,
		Status:         domain.RidePending,
		CarModel:       strings.TrimSpace(params.CarModel),
		PickupLat:      *params.PickupLat,
		PickupLng:      *params.PickupLng,
		PickupAddress:  params.PickupAddress,
		DropoffLat:     *params.DropoffLat,
		DropoffLng:     *params.DropoffLng,
		DropoffAddress: params.DropoffAddress,
		CustomerName:   strings.TrimSpace(params.CustomerName),
		CustomerPhone:  params.CustomerPhone,
		TotalAmount:    params.TotalAmount,
	}

	var created *domain.Ride
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.rides.Create(ctx, ride)
		if err != nil {
			return err
		}
		return s.appendEvent(ctx, domain.EventRideCreated, created)
	})
	if err != nil {
		return nil, s.fail("failed to create ride", uuid.Nil, err)
	}
	zap.L().Info("ride created", zap.Stringer("ride_id", created.ID), zap.String("ride_number", created.RideNumber))
	return created, nil
}

func (s *Service) GetRide(ctx context.Context, rideID uuid.UUID) (*domain.Ride, error) {
	return s.get(ctx, func(ctx context.Context) (*domain.Ride, error) {
		return s.rides.GetByID(ctx, rideID)
	})
}

func (s *Service) GetRideByNumber(ctx context.Context, number string) (*domain.Ride, error) {
	if !validate.IsLuhn(number) {
		return nil, domain.Validationf("invalid ride number %q", number)
	}
	return s.get(ctx, func(ctx context.Context) (*domain.Ride, error) {
		return s.rides.GetByNumber(ctx, number)
	})
}

func (s *Service) get(ctx context.Context, fn func(ctx context.Context) (*domain.Ride, error)) (*domain.Ride, error) {
	ride, err := pg.RetryRead(ctx, s.readRetries, fn)
	if err != nil {
		zap.L().Error("failed to get ride", zap.Error(err))
		return nil, domain.Internal(err)
	}
	if ride == nil {
		return nil, domain.ErrNotFound
	}
	return ride, nil
}

// ListPendingRides returns unassigned rides oldest first. A non-positive
// limit means DefaultPendingLimit.
func (s *Service) ListPendingRides(ctx context.Context, limit int) ([]domain.Ride, error) {
	switch {
	case limit <= 0:
		limit = DefaultPendingLimit
	case limit > MaxPendingLimit:
		limit = MaxPendingLimit
	}
	rides, err := pg.RetryRead(ctx, s.readRetries, func(ctx context.Context) ([]domain.Ride, error) {
		return s.rides.ListPending(ctx, limit)
	})
	if err != nil {
		zap.L().Error("failed to list pending rides", zap.Error(err))
		return nil, domain.Internal(err)
	}
	return rides, nil
}

func (s *Service) StartRide(ctx context.Context, rideID, driverID uuid.UUID) (*domain.Ride, error) {
	var ride *domain.Ride
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.lockForDriver(ctx, rideID, driverID, domain.RideAccepted); err != nil {
			return err
		}
		var err error
		ride, err = s.rides.MarkStarted(ctx, rideID, driverID, domain.FormatTimestamp(s.now()))
		if err != nil {
			return err
		}
		if ride == nil {
			return domain.ErrConflict
		}
		return s.appendEvent(ctx, domain.EventRideStarted, ride)
	})
	if err != nil {
		return nil, s.fail("failed to start ride", rideID, err)
	}
	return ride, nil
}

// EndRide completes the ride and settles its earnings in one transaction.
func (s *Service) EndRide(ctx context.Context, rideID, driverID uuid.UUID) (*domain.RideCompletion, error) {
	var result *domain.RideCompletion
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.lockForDriver(ctx, rideID, driverID, domain.RideOnRoute); err != nil {
			return err
		}
		row, err := s.settings.Get(ctx)
		if err != nil {
			return err
		}
		settings := domain.SettingsSnapshot(row, s.creditRideLimit)

		ride, err := s.rides.MarkCompleted(ctx, rideID, driverID, domain.FormatTimestamp(s.now()))
		if err != nil {
			return err
		}
		if ride == nil {
			return domain.ErrConflict
		}
		earnings, balance, err := s.settler.Settle(ctx, ride, settings)
		if err != nil {
			return err
		}
		if err := s.appendEvent(ctx, domain.EventRideCompleted, ride); err != nil {
			return err
		}
		result = &domain.RideCompletion{Ride: ride, Earnings: earnings, WalletBalance: balance}
		return nil
	})
	if err != nil {
		return nil, s.fail("failed to end ride", rideID, err)
	}
	zap.L().Info("ride completed",
		zap.Stringer("ride_id", rideID),
		zap.Stringer("driver_id", driverID),
		zap.String("net_amount", result.Earnings.NetAmount.String()),
	)
	return result, nil
}

// ReleaseRide hands an accepted ride back to the pending pool. The wallet
// debit taken at acceptance is kept and the credit ride count is unchanged.
func (s *Service) ReleaseRide(ctx context.Context, rideID, driverID uuid.UUID) (*domain.Ride, error) {
	var ride *domain.Ride
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.lockForDriver(ctx, rideID, driverID, domain.RideAccepted); err != nil {
			return err
		}
		var err error
		ride, err = s.rides.Release(ctx, rideID, driverID)
		if err != nil {
			return err
		}
		if ride == nil {
			return domain.ErrConflict
		}
		return s.appendEvent(ctx, domain.EventRideReleased, ride)
	})
	if err != nil {
		return nil, s.fail("failed to release ride", rideID, err)
	}
	return ride, nil
}

func (s *Service) CancelRide(ctx context.Context, rideID, initiatorID uuid.UUID) (*domain.Ride, error) {
	var ride *domain.Ride
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.lock(ctx, rideID)
		if err != nil {
			return err
		}
		if current.Status != domain.RidePending {
			return &domain.StateError{Current: current.Status, Expected: []domain.RideStatus{domain.RidePending}}
		}
		if current.InitiatorID != initiatorID {
			return domain.ErrForbidden
		}
		ride, err = s.rides.Cancel(ctx, rideID, initiatorID)
		if err != nil {
			return err
		}
		if ride == nil {
			return domain.ErrConflict
		}
		return s.appendEvent(ctx, domain.EventRideCancelled, ride)
	})
	if err != nil {
		return nil, s.fail("failed to cancel ride", rideID, err)
	}
	return ride, nil
}

func (s *Service) lock(ctx context.Context, rideID uuid.UUID) (*domain.Ride, error) {
	ride, err := s.rides.GetForUpdate(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride == nil {
		return nil, domain.ErrNotFound
	}
	return ride, nil
}

// lockForDriver locks the ride and checks it is in the expected status and
// owned by driverID. Status is checked first.
func (s *Service) lockForDriver(ctx context.Context, rideID, driverID uuid.UUID, expected domain.RideStatus) (*domain.Ride, error) {
	ride, err := s.lock(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.Status != expected {
		return nil, &domain.StateError{Current: ride.Status, Expected: []domain.RideStatus{expected}}
	}
	if !ride.AssignedTo(driverID) {
		return nil, domain.ErrForbidden
	}
	return ride, nil
}

func (s *Service) appendEvent(ctx context.Context, typ domain.RideEventType, ride *domain.Ride) error {
	event, err := domain.NewRideEvent(typ, ride, s.now())
	if err != nil {
		return err
	}
	return s.events.Append(ctx, event)
}

func (s *Service) fail(msg string, rideID uuid.UUID, err error) error {
	err = domain.Internal(err)
	if errors.Is(err, domain.ErrInternal) {
		zap.L().Error(msg, zap.Stringer("ride_id", rideID), zap.Error(err))
	} else {
		zap.L().Info(msg, zap.Stringer("ride_id", rideID), zap.Error(err))
	}
	return err
}
