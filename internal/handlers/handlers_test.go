package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ridehail/internal/handlers/rides"
	"github.com/GlebRadaev/ridehail/internal/handlers/wallet"
	"github.com/GlebRadaev/ridehail/internal/service"
	"github.com/GlebRadaev/ridehail/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		RideService:     rides.NewMockService(ctrl),
		AssignService:   rides.NewMockAssignService(ctrl),
		WalletService:   wallet.NewMockService(ctrl),
		EarningsService: wallet.NewMockEarningsService(ctrl),
	}

	h := New(services, auth.NewJWTService("secret"))
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.RideHandler)
	assert.NotNil(t, h.WalletHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRideHandler := NewMockRideHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)

	mockRideHandler.EXPECT().CreateRide(gomock.Any(), gomock.Any()).AnyTimes()
	mockRideHandler.EXPECT().GetRide(gomock.Any(), gomock.Any()).AnyTimes()
	mockRideHandler.EXPECT().GetRideByNumber(gomock.Any(), gomock.Any()).AnyTimes()
	mockRideHandler.EXPECT().ListPending(gomock.Any(), gomock.Any()).AnyTimes()
	mockRideHandler.EXPECT().AcceptRide(gomock.Any(), gomock.Any()).AnyTimes()
	mockRideHandler.EXPECT().StartRide(gomock.Any(), gomock.Any()).AnyTimes()
	mockRideHandler.EXPECT().EndRide(gomock.Any(), gomock.Any()).AnyTimes()
	mockRideHandler.EXPECT().ReleaseRide(gomock.Any(), gomock.Any()).AnyTimes()
	mockRideHandler.EXPECT().CancelRide(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetEarnings(gomock.Any(), gomock.Any()).AnyTimes()

	jwtService := auth.NewJWTService("secret")
	token, err := jwtService.GenerateJWT(uuid.New(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	h := &Handlers{
		RideHandler:   mockRideHandler,
		WalletHandler: mockWalletHandler,
		JWTService:    jwtService,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	rideURL := "/api/rides/" + uuid.NewString()
	routes := []struct {
		method string
		url    string
	}{
		{"POST", "/api/rides"},
		{"GET", "/api/rides/pending"},
		{"GET", "/api/rides/number/1234567897"},
		{"GET", rideURL},
		{"POST", rideURL + "/accept"},
		{"POST", rideURL + "/start"},
		{"POST", rideURL + "/end"},
		{"POST", rideURL + "/release"},
		{"POST", rideURL + "/cancel"},
		{"GET", "/api/driver/wallet"},
		{"GET", "/api/driver/wallet/transactions"},
		{"GET", "/api/driver/earnings"},
	}

	for _, tt := range routes {
		t.Run("anonymous "+tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
		t.Run("driver "+tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}

	t.Run("unknown route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, rideURL, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}
