package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/ridehail/internal/domain"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "Not found", err: fmt.Errorf("ride x: %w", domain.ErrNotFound), want: http.StatusNotFound},
		{name: "Ride unavailable", err: domain.ErrRideUnavailable, want: http.StatusConflict},
		{name: "Wrong state", err: &domain.StateError{Current: domain.RidePending, Expected: []domain.RideStatus{domain.RideAccepted}}, want: http.StatusConflict},
		{name: "Vehicle mismatch", err: &domain.VehicleMismatchError{Required: "Sedan", Actual: "Van"}, want: http.StatusUnprocessableEntity},
		{name: "Credit limit", err: domain.ErrCreditLimitExceeded, want: http.StatusPaymentRequired},
		{name: "Validation", err: domain.Validationf("pickup coordinates are required"), want: http.StatusBadRequest},
		{name: "Forbidden", err: domain.ErrForbidden, want: http.StatusForbidden},
		{name: "Driver not active", err: domain.ErrDriverNotActive, want: http.StatusForbidden},
		{name: "Internal", err: domain.Internal(errors.New("db down")), want: http.StatusInternalServerError},
		{name: "Unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(tt.err))
		})
	}
}

func TestRespond_HidesInternalCause(t *testing.T) {
	w := httptest.NewRecorder()
	Respond(w, domain.Internal(errors.New("password authentication failed")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
	assert.Contains(t, w.Body.String(), "Internal server error")
}
