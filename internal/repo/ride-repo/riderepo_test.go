package riderepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/testutil"
)

var (
	rideID      = uuid.MustParse("7d3c1a52-5d0b-4f3e-9a55-0f1d7b8e2c11")
	driverID    = uuid.MustParse("0b8f4c6e-2a7d-4e19-8c3b-5f6a7d8e9f00")
	initiatorID = uuid.MustParse("c1d2e3f4-a5b6-4c7d-8e9f-0a1b2c3d4e5f")
	createdAt   = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	acceptTime  = "2024-05-01T10:05:00Z"
)

var columns = []string{
	"id", "ride_number", "initiator_id", "driver_id", "status", "car_model",
	"pickup_lat", "pickup_lng", "pickup_address", "dropoff_lat", "dropoff_lng", "dropoff_address",
	"customer_name", "customer_phone", "total_amount", "is_credit",
	"accept_time", "pickup_time", "dropoff_time", "created_at", "updated_at",
}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func pendingRow() *pgxmock.Rows {
	return pgxmock.NewRows(columns).AddRow(
		rideID, "1234567897", initiatorID, nil, "pending", "Toyota Prius",
		41.31, 69.24, "Amir Temur 1", 41.29, 69.21, "Chilonzor 5",
		"Aziz", "+998901234567", testutil.D("100"), false,
		nil, nil, nil, createdAt, createdAt,
	)
}

func acceptedRow(isCredit bool) *pgxmock.Rows {
	d := driverID
	at := acceptTime
	return pgxmock.NewRows(columns).AddRow(
		rideID, "1234567897", initiatorID, &d, "accepted", "Toyota Prius",
		41.31, 69.24, "Amir Temur 1", 41.29, 69.21, "Chilonzor 5",
		"Aziz", "+998901234567", testutil.D("100"), isCredit,
		&at, nil, nil, createdAt, createdAt,
	)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`FROM rides WHERE id = $1`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectNil bool
	}{
		{
			name: "Existing ride",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(rideID).WillReturnRows(pendingRow())
			},
		},
		{
			name: "Missing ride returns nil",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(rideID).WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(rideID).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			ride, err := repo.GetByID(context.Background(), rideID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, ride)
				return
			}
			require.NotNil(t, ride)
			assert.Equal(t, rideID, ride.ID)
			assert.Equal(t, domain.RidePending, ride.Status)
			assert.Nil(t, ride.DriverID)
			assert.True(t, ride.TotalAmount.Equal(testutil.D("100")))
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM rides WHERE id = $1 FOR UPDATE`)).
		WithArgs(rideID).
		WillReturnRows(pendingRow())

	ride, err := repo.GetForUpdate(context.Background(), rideID)
	require.NoError(t, err)
	assert.Equal(t, "1234567897", ride.RideNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByNumber(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM rides WHERE ride_number = $1`)).
		WithArgs("1234567897").
		WillReturnRows(pendingRow())

	ride, err := repo.GetByNumber(context.Background(), "1234567897")
	require.NoError(t, err)
	assert.Equal(t, rideID, ride.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	ride := &domain.Ride{
		ID: rideID, RideNumber: "1234567897", InitiatorID: initiatorID, Status: domain.RidePending,
		CarModel: "Toyota Prius", PickupLat: 41.31, PickupLng: 69.24, PickupAddress: "Amir Temur 1",
		DropoffLat: 41.29, DropoffLng: 69.21, DropoffAddress: "Chilonzor 5",
		CustomerName: "Aziz", CustomerPhone: "+998901234567", TotalAmount: testutil.D("100"),
	}
	query := regexp.QuoteMeta(`INSERT INTO rides`)

	t.Run("Creates ride", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(rideID, "1234567897", initiatorID, "pending", "Toyota Prius",
				41.31, 69.24, "Amir Temur 1", 41.29, 69.21, "Chilonzor 5",
				"Aziz", "+998901234567", testutil.Dec("100")).
			WillReturnRows(pendingRow())

		created, err := repo.Create(context.Background(), ride)
		require.NoError(t, err)
		assert.Equal(t, createdAt, created.CreatedAt)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(errors.New("duplicate key"))

		created, err := repo.Create(context.Background(), ride)
		assert.Error(t, err)
		assert.Nil(t, created)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Assign(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`WHERE id = $1 AND status = 'pending' AND driver_id IS NULL`)

	t.Run("Claims pending ride", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(rideID, driverID, true, acceptTime).
			WillReturnRows(acceptedRow(true))

		ride, err := repo.Assign(context.Background(), rideID, driverID, true, acceptTime)
		require.NoError(t, err)
		require.NotNil(t, ride)
		assert.Equal(t, domain.RideAccepted, ride.Status)
		assert.True(t, ride.AssignedTo(driverID))
		assert.True(t, ride.IsCredit)
		assert.Equal(t, acceptTime, *ride.AcceptTime)
	})

	t.Run("Lost claim returns nil", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(rideID, driverID, false, acceptTime).
			WillReturnError(pgx.ErrNoRows)

		ride, err := repo.Assign(context.Background(), rideID, driverID, false, acceptTime)
		assert.NoError(t, err)
		assert.Nil(t, ride)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Transitions(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		args  []any
		call  func() (*domain.Ride, error)
	}{
		{
			name:  "MarkStarted",
			query: `SET status = 'on-route', pickup_time = $3`,
			args:  []any{rideID, driverID, "2024-05-01T10:10:00Z"},
			call: func() (*domain.Ride, error) {
				return repo.MarkStarted(ctx, rideID, driverID, "2024-05-01T10:10:00Z")
			},
		},
		{
			name:  "MarkCompleted",
			query: `SET status = 'completed', dropoff_time = $3`,
			args:  []any{rideID, driverID, "2024-05-01T10:30:00Z"},
			call: func() (*domain.Ride, error) {
				return repo.MarkCompleted(ctx, rideID, driverID, "2024-05-01T10:30:00Z")
			},
		},
		{
			name:  "Release",
			query: `SET status = 'pending', driver_id = NULL, accept_time = NULL`,
			args:  []any{rideID, driverID},
			call: func() (*domain.Ride, error) {
				return repo.Release(ctx, rideID, driverID)
			},
		},
		{
			name:  "Cancel",
			query: `SET status = 'cancelled'`,
			args:  []any{rideID, initiatorID},
			call: func() (*domain.Ride, error) {
				return repo.Cancel(ctx, rideID, initiatorID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" no longer applicable", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(tt.query)).WithArgs(tt.args...).WillReturnError(pgx.ErrNoRows)
			ride, err := tt.call()
			assert.NoError(t, err)
			assert.Nil(t, ride)
		})
		t.Run(tt.name+" database error", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(tt.query)).WithArgs(tt.args...).WillReturnError(errors.New("database error"))
			ride, err := tt.call()
			assert.Error(t, err)
			assert.Nil(t, ride)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListPending(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`WHERE status = 'pending' AND driver_id IS NULL`)

	t.Run("Lists rides", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(20).WillReturnRows(pendingRow())

		rides, err := repo.ListPending(context.Background(), 20)
		require.NoError(t, err)
		assert.Len(t, rides, 1)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(20).WillReturnError(errors.New("database error"))

		rides, err := repo.ListPending(context.Background(), 20)
		assert.Error(t, err)
		assert.Nil(t, rides)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
