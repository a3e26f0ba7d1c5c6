package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/dto"
	"github.com/GlebRadaev/ridehail/internal/testutil"
	"github.com/GlebRadaev/ridehail/pkg/auth"
)

var driverID = uuid.MustParse("0f1e2d3c-4b5a-4968-8776-655443322110")

func NewMock(t *testing.T) (*WalletHandler, *MockService, *MockEarningsService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	earnings := NewMockEarningsService(ctrl)
	return New(service, earnings), service, earnings
}

func authed(target string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	return r.WithContext(auth.WithDriverID(context.Background(), driverID))
}

func TestGetWallet(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Found",
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), driverID).Return(&domain.Driver{
					ID:              driverID,
					Status:          domain.DriverActive,
					WalletBalance:   testutil.D("90"),
					CreditRideCount: 1,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Unknown driver",
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), driverID).Return(nil, domain.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal",
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), driverID).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.GetWallet(w, authed("/api/driver/wallet"))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.WalletResponseV1
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.True(t, body.Balance.Equal(testutil.D("90")))
				assert.Equal(t, 1, body.CreditRideCount)
			}
		})
	}
}

func TestGetWallet_Unauthenticated(t *testing.T) {
	handler, _, _ := NewMock(t)
	w := httptest.NewRecorder()

	handler.GetWallet(w, httptest.NewRequest(http.MethodGet, "/api/driver/wallet", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetTransactions(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Entries",
			prepareMock: func() {
				service.EXPECT().ListEntries(gomock.Any(), driverID).Return([]domain.WalletEntry{
					{ID: 2, DriverID: driverID, Amount: testutil.D("-5"), BalanceAfter: testutil.D("0"), Type: domain.TransactionDebit},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Empty",
			prepareMock: func() {
				service.EXPECT().ListEntries(gomock.Any(), driverID).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()

			handler.GetTransactions(w, authed("/api/driver/wallet/transactions"))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.WalletEntryResponseV1
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				require.Len(t, body, 1)
				assert.Equal(t, "debit", body[0].Type)
				assert.True(t, body[0].Amount.Equal(testutil.D("-5")))
			}
		})
	}
}

func TestGetEarnings(t *testing.T) {
	handler, _, earnings := NewMock(t)
	earnings.EXPECT().ListEarnings(gomock.Any(), driverID).Return([]domain.Earnings{
		{RideID: uuid.New(), Amount: testutil.D("150"), Commission: testutil.D("15"), NetAmount: testutil.D("135"), Status: domain.EarningsProcessed},
	}, nil)
	w := httptest.NewRecorder()

	handler.GetEarnings(w, authed("/api/driver/earnings"))

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.EarningsResponseV1
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "processed", body[0].Status)
}
