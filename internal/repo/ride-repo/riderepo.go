package riderepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/pg"
)

const rideColumns = `id, ride_number, initiator_id, driver_id, status, car_model,
        pickup_lat, pickup_lng, pickup_address, dropoff_lat, dropoff_lng, dropoff_address,
        customer_name, customer_phone, total_amount, is_credit,
        accept_time, pickup_time, dropoff_time, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanRide(row pgx.Row) (*domain.Ride, error) {
	var ride domain.Ride
	var status string
	err := row.Scan(
		&ride.ID, &ride.RideNumber, &ride.InitiatorID, &ride.DriverID, &status, &ride.CarModel,
		&ride.PickupLat, &ride.PickupLng, &ride.PickupAddress, &ride.DropoffLat, &ride.DropoffLng, &ride.DropoffAddress,
		&ride.CustomerName, &ride.CustomerPhone, &ride.TotalAmount, &ride.IsCredit,
		&ride.AcceptTime, &ride.PickupTime, &ride.DropoffTime, &ride.CreatedAt, &ride.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	ride.Status = domain.RideStatus(status)
	return &ride, nil
}

// queryRide returns nil, nil when no row matched.
func (r *Repository) queryRide(ctx context.Context, msg string, query string, args ...any) (*domain.Ride, error) {
	ride, err := scanRide(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error(msg, zap.Error(err))
		return nil, err
	}
	return ride, nil
}

func (r *Repository) Create(ctx context.Context, ride *domain.Ride) (*domain.Ride, error) {
	query := `
        INSERT INTO rides (id, ride_number, initiator_id, status, car_model,
            pickup_lat, pickup_lng, pickup_address, dropoff_lat, dropoff_lng, dropoff_address,
            customer_name, customer_phone, total_amount)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING ` + rideColumns
	created, err := scanRide(r.db.QueryRow(ctx, query,
		ride.ID, ride.RideNumber, ride.InitiatorID, string(ride.Status), ride.CarModel,
		ride.PickupLat, ride.PickupLng, ride.PickupAddress, ride.DropoffLat, ride.DropoffLng, ride.DropoffAddress,
		ride.CustomerName, ride.CustomerPhone, ride.TotalAmount,
	))
	if err != nil {
		zap.L().Error("can't create ride", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1`
	return r.queryRide(ctx, "can't get ride", query, id)
}

func (r *Repository) GetByNumber(ctx context.Context, number string) (*domain.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE ride_number = $1`
	return r.queryRide(ctx, "can't get ride by number", query, number)
}

// GetForUpdate locks the ride row until the surrounding transaction ends.
func (r *Repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE id = $1 FOR UPDATE`
	return r.queryRide(ctx, "can't lock ride", query, id)
}

func (r *Repository) ListPending(ctx context.Context, limit int) ([]domain.Ride, error) {
	query := `
        SELECT ` + rideColumns + `
        FROM rides
        WHERE status = 'pending' AND driver_id IS NULL
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't list pending rides", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rides []domain.Ride
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			zap.L().Error("can't scan ride row", zap.Error(err))
			return nil, err
		}
		rides = append(rides, *ride)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate ride rows", zap.Error(err))
		return nil, err
	}
	return rides, nil
}

// Assign claims a pending, unassigned ride for driverID. The update only
// applies while the ride is still pending with no driver, so of two racing
// callers exactly one gets a row back. nil, nil means the claim was lost.
func (r *Repository) Assign(ctx context.Context, rideID, driverID uuid.UUID, isCredit bool, acceptTime string) (*domain.Ride, error) {
	query := `
        UPDATE rides
        SET driver_id = $2, status = 'accepted', is_credit = $3, accept_time = $4, updated_at = now()
        WHERE id = $1 AND status = 'pending' AND driver_id IS NULL
        RETURNING ` + rideColumns
	return r.queryRide(ctx, "can't assign ride", query, rideID, driverID, isCredit, acceptTime)
}

func (r *Repository) MarkStarted(ctx context.Context, rideID, driverID uuid.UUID, pickupTime string) (*domain.Ride, error) {
	query := `
        UPDATE rides
        SET status = 'on-route', pickup_time = $3, updated_at = now()
        WHERE id = $1 AND driver_id = $2 AND status = 'accepted'
        RETURNING ` + rideColumns
	return r.queryRide(ctx, "can't start ride", query, rideID, driverID, pickupTime)
}

func (r *Repository) MarkCompleted(ctx context.Context, rideID, driverID uuid.UUID, dropoffTime string) (*domain.Ride, error) {
	query := `
        UPDATE rides
        SET status = 'completed', dropoff_time = $3, updated_at = now()
        WHERE id = $1 AND driver_id = $2 AND status = 'on-route'
        RETURNING ` + rideColumns
	return r.queryRide(ctx, "can't complete ride", query, rideID, driverID, dropoffTime)
}

// Release hands an accepted ride back to the pending pool.
func (r *Repository) Release(ctx context.Context, rideID, driverID uuid.UUID) (*domain.Ride, error) {
	query := `
        UPDATE rides
        SET status = 'pending', driver_id = NULL, accept_time = NULL, updated_at = now()
        WHERE id = $1 AND driver_id = $2 AND status = 'accepted'
        RETURNING ` + rideColumns
	return r.queryRide(ctx, "can't release ride", query, rideID, driverID)
}

func (r *Repository) Cancel(ctx context.Context, rideID, initiatorID uuid.UUID) (*domain.Ride, error) {
	query := `
        UPDATE rides
        SET status = 'cancelled', updated_at = now()
        WHERE id = $1 AND initiator_id = $2 AND status = 'pending' AND driver_id IS NULL
        RETURNING ` + rideColumns
	return r.queryRide(ctx, "can't cancel ride", query, rideID, initiatorID)
}
