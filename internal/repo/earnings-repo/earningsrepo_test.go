package earningsrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/testutil"
)

var (
	driverID = uuid.MustParse("0b8f4c6e-2a7d-4e19-8c3b-5f6a7d8e9f00")
	rideID   = uuid.MustParse("7d3c1a52-5d0b-4f3e-9a55-0f1d7b8e2c11")
	created  = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`INSERT INTO earnings`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Saves earnings",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(driverID, rideID, testutil.Dec("150"), testutil.Dec("15"), testutil.Dec("10"), testutil.Dec("135"), "processed").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), created))
			},
		},
		{
			name: "Duplicate ride",
			mockSetup: func() {
				mock.ExpectQuery(query).WillReturnError(errors.New("duplicate key value violates unique constraint"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			e, err := repo.Create(context.Background(), &domain.Earnings{
				DriverID: driverID, RideID: rideID, Amount: testutil.D("150"), Commission: testutil.D("15"),
				CommissionPercentage: testutil.D("10"), NetAmount: testutil.D("135"), Status: domain.EarningsProcessed,
			})
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, e)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(3), e.ID)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByDriver(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM earnings WHERE driver_id = $1`)).
		WithArgs(driverID, 10).
		WillReturnRows(pgxmock.NewRows([]string{"id", "driver_id", "ride_id", "amount", "commission", "commission_percentage", "net_amount", "status", "created_at"}).
			AddRow(int64(3), driverID, rideID, testutil.D("150"), testutil.D("15"), testutil.D("10"), testutil.D("135"), "processed", created))

	list, err := repo.ListByDriver(context.Background(), driverID, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.EarningsProcessed, list[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
