// Package apierror maps domain errors onto HTTP responses.
package apierror

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/pkg/utils"
)

// Status returns the HTTP status for err. Order matters: ErrRideUnavailable
// and ErrDriverNotActive wrap broader sentinels.
func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrVehicleMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrCreditLimitExceeded):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as a utils.Response. Internal failures never leak
// their cause to the client.
func Respond(w http.ResponseWriter, err error) {
	code := Status(err)
	if code == http.StatusInternalServerError {
		utils.RespondWithError(w, code, "Internal server error")
		return
	}
	utils.RespondWithError(w, code, err.Error())
}
