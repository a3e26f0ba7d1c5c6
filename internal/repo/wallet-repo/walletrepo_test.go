package walletrepo

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

var driverID = uuid.MustParse("0b8f4c6e-2a7d-4e19-8c3b-5f6a7d8e9f00")

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_AddToBalance(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SET wallet_balance = wallet_balance + $2`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		expected  string
	}{
		{
			name: "Applies delta",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(driverID, testutil.Dec("-10")).
					WillReturnRows(pgxmock.NewRows([]string{"wallet_balance"}).AddRow(testutil.D("90")))
			},
			expected: "90",
		},
		{
			name: "Missing driver",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(driverID, testutil.Dec("-10")).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrNotFound,
			expected:  "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			balance, err := repo.AddToBalance(context.Background(), driverID, testutil.D("-10"))
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, balance.Equal(testutil.D(tt.expected)))
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetBalance(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SET wallet_balance = $2`)).
		WithArgs(driverID, testutil.Dec("0")).
		WillReturnError(errors.New("database error"))

	_, err := repo.SetBalance(context.Background(), driverID, testutil.D("0"))
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateEntry(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`INSERT INTO wallet_transactions (driver_id, amount, balance_after, transaction_type, description)`)

	t.Run("Saves entry", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(driverID, testutil.Dec("-5"), testutil.Dec("0"), "debit", "credit ride 1234567897").
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), created))

		entry, err := repo.CreateEntry(context.Background(), &domain.WalletEntry{
			DriverID: driverID, Amount: testutil.D("-5"), BalanceAfter: testutil.D("0"),
			Type: domain.TransactionDebit, Description: "credit ride 1234567897",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(7), entry.ID)
		assert.Equal(t, created, entry.CreatedAt)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(errors.New("database error"))

		entry, err := repo.CreateEntry(context.Background(), &domain.WalletEntry{DriverID: driverID})
		assert.Error(t, err)
		assert.Nil(t, entry)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListEntries(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions`)).
		WithArgs(driverID, 50).
		WillReturnRows(pgxmock.NewRows([]string{"id", "driver_id", "amount", "balance_after", "transaction_type", "description", "created_at"}).
			AddRow(int64(2), driverID, testutil.D("135"), testutil.D("225"), "credit", "earnings", created).
			AddRow(int64(1), driverID, testutil.D("-10"), testutil.D("90"), "debit", "acceptance", created))

	entries, err := repo.ListEntries(context.Background(), driverID, 50)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, domain.TransactionCredit, entries[0].Type)
	assert.True(t, entries[1].BalanceAfter.Equal(testutil.D("90")))
	assert.NoError(t, mock.ExpectationsWereMet())
}
