package earningsservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/testutil"
)

var driverID = uuid.MustParse("6d1e0a2b-3c4d-4e5f-8a9b-0c1d2e3f4a5b")

func NewMock(t *testing.T) (*Service, *MockRepo, *MockWallet) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	wallet := NewMockWallet(ctrl)
	return New(repo, wallet, 0), repo, wallet
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		taxRate    string
		commission string
		net        string
	}{
		{name: "Ten percent", amount: "150", taxRate: "10", commission: "15", net: "135"},
		{name: "No settings", amount: "150", taxRate: "0", commission: "0", net: "150"},
		{name: "Rounded to cents", amount: "99.99", taxRate: "12.5", commission: "12.50", net: "87.49"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Calculate(testutil.D(tt.amount), testutil.D(tt.taxRate))
			assert.True(t, b.Commission.Equal(testutil.D(tt.commission)), "commission %s", b.Commission)
			assert.True(t, b.Net.Equal(testutil.D(tt.net)), "net %s", b.Net)
			assert.True(t, b.Commission.Add(b.Net).Equal(b.Amount))
		})
	}
}

func TestSettle(t *testing.T) {
	ride := func(isCredit bool) *domain.Ride {
		return &domain.Ride{
			ID:          uuid.MustParse("a1b2c3d4-0000-4000-8000-000000000001"),
			RideNumber:  "1234567897",
			DriverID:    &driverID,
			Status:      domain.RideCompleted,
			TotalAmount: testutil.D("150"),
			IsCredit:    isCredit,
		}
	}
	settings := domain.Settings{TaxRate: testutil.D("10"), MinWalletPercentage: testutil.D("10"), CreditRideLimit: 3}

	tests := []struct {
		name        string
		ride        *domain.Ride
		prepareMock func(repo *MockRepo, wallet *MockWallet)
		balance     string
		expectedErr error
	}{
		{
			name: "Regular ride credits net amount",
			ride: ride(false),
			prepareMock: func(repo *MockRepo, wallet *MockWallet) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e *domain.Earnings) (*domain.Earnings, error) {
						assert.True(t, e.Commission.Equal(testutil.D("15")))
						assert.True(t, e.NetAmount.Equal(testutil.D("135")))
						assert.Equal(t, domain.EarningsProcessed, e.Status)
						e.ID = 1
						return e, nil
					})
				wallet.EXPECT().ApplyDelta(gomock.Any(), driverID, testutil.Dec("135"), domain.TransactionCredit, gomock.Any()).
					Return(testutil.D("235"), nil)
			},
			balance: "235",
		},
		{
			name: "Credit ride recovers full fare",
			ride: ride(true),
			prepareMock: func(repo *MockRepo, wallet *MockWallet) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e *domain.Earnings) (*domain.Earnings, error) {
						e.ID = 2
						return e, nil
					})
				wallet.EXPECT().ApplyDelta(gomock.Any(), driverID, testutil.Dec("-150"), domain.TransactionDebit, gomock.Any()).
					Return(testutil.D("-150"), nil)
			},
			balance: "-150",
		},
		{
			name: "Earnings insert fails",
			ride: ride(false),
			prepareMock: func(repo *MockRepo, _ *MockWallet) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("duplicate key"))
			},
			expectedErr: domain.ErrInternal,
		},
		{
			name: "Wallet fails",
			ride: ride(false),
			prepareMock: func(repo *MockRepo, wallet *MockWallet) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e *domain.Earnings) (*domain.Earnings, error) { return e, nil })
				wallet.EXPECT().ApplyDelta(gomock.Any(), driverID, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(decimal.Zero, domain.ErrInternal)
			},
			expectedErr: domain.ErrInternal,
		},
		{
			name:        "Ride without driver",
			ride:        &domain.Ride{ID: uuid.New(), TotalAmount: testutil.D("150")},
			prepareMock: func(*MockRepo, *MockWallet) {},
			expectedErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo, wallet := NewMock(t)
			tt.prepareMock(repo, wallet)

			earnings, balance, err := service.Settle(context.Background(), tt.ride, settings)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, earnings)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, earnings)
			assert.Equal(t, tt.ride.ID, earnings.RideID)
			assert.True(t, balance.Equal(testutil.D(tt.balance)))
		})
	}
}

func TestListEarnings(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		repo.EXPECT().ListByDriver(gomock.Any(), driverID, historyLimit).Return([]domain.Earnings{{ID: 1}}, nil)

		earnings, err := service.ListEarnings(context.Background(), driverID)
		require.NoError(t, err)
		assert.Len(t, earnings, 1)
	})

	t.Run("Storage failure", func(t *testing.T) {
		service, repo, _ := NewMock(t)
		repo.EXPECT().ListByDriver(gomock.Any(), driverID, historyLimit).Return(nil, errors.New("db error"))

		_, err := service.ListEarnings(context.Background(), driverID)
		assert.ErrorIs(t, err, domain.ErrInternal)
	})
}
