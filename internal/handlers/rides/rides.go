package rides

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/dto"
	"github.com/GlebRadaev/ridehail/internal/handlers/apierror"
	"github.com/GlebRadaev/ridehail/pkg/auth"
	"github.com/GlebRadaev/ridehail/pkg/utils"
)

//go:generate mockgen -source=rides.go -destination=mock_rides.go -package=rides
type Service interface {
	CreateRide(ctx context.Context, params domain.CreateRideParams) (*domain.Ride, error)
	GetRide(ctx context.Context, rideID uuid.UUID) (*domain.Ride, error)
	GetRideByNumber(ctx context.Context, number string) (*domain.Ride, error)
	ListPendingRides(ctx context.Context, limit int) ([]domain.Ride, error)
	StartRide(ctx context.Context, rideID, driverID uuid.UUID) (*domain.Ride, error)
	EndRide(ctx context.Context, rideID, driverID uuid.UUID) (*domain.RideCompletion, error)
	ReleaseRide(ctx context.Context, rideID, driverID uuid.UUID) (*domain.Ride, error)
	CancelRide(ctx context.Context, rideID, initiatorID uuid.UUID) (*domain.Ride, error)
}

type AssignService interface {
	AcceptRide(ctx context.Context, rideID, driverID uuid.UUID) (*domain.Ride, error)
}

const maxBodyBytes = 1 << 20

type RideHandler struct {
	rideService   Service
	assignService AssignService
}

func New(rideService Service, assignService AssignService) *RideHandler {
	return &RideHandler{
		rideService:   rideService,
		assignService: assignService,
	}
}

// CreateRide godoc
//
//	@Summary		Create a ride
//	@Description	Create a pending ride initiated by the authenticated caller.
//	@Tags			Rides
//	@Accept			json
//	@Produce		json
//	@Param			ride	body	dto.CreateRideRequestV1	true	"Ride payload"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.RideResponseV1
//	@Failure		400	{object}	utils.Response	"Malformed payload"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/rides [post]
func (h *RideHandler) CreateRide(w http.ResponseWriter, r *http.Request) {
	initiatorID, ok := auth.DriverIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateRideRequestV1
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ride, err := h.rideService.CreateRide(r.Context(), req.ToParams(initiatorID))
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewRideResponseV1(ride))
}

// GetRide godoc
//
//	@Summary	Get a ride
//	@Tags		Rides
//	@Produce	json
//	@Param		id	path	string	true	"Ride id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.RideResponseV1
//	@Failure	400	{object}	utils.Response	"Malformed ride id"
//	@Failure	404	{object}	utils.Response	"Ride not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/rides/{id} [get]
func (h *RideHandler) GetRide(w http.ResponseWriter, r *http.Request) {
	rideID, ok := rideIDParam(w, r)
	if !ok {
		return
	}
	ride, err := h.rideService.GetRide(r.Context(), rideID)
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRideResponseV1(ride))
}

// GetRideByNumber godoc
//
//	@Summary	Get a ride by its number
//	@Tags		Rides
//	@Produce	json
//	@Param		number	path	string	true	"Ride number"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.RideResponseV1
//	@Failure	400	{object}	utils.Response	"Invalid ride number"
//	@Failure	404	{object}	utils.Response	"Ride not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/rides/number/{number} [get]
func (h *RideHandler) GetRideByNumber(w http.ResponseWriter, r *http.Request) {
	ride, err := h.rideService.GetRideByNumber(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRideResponseV1(ride))
}

// ListPending godoc
//
//	@Summary	List pending rides
//	@Tags		Rides
//	@Produce	json
//	@Param		limit	query	int	false	"Maximum number of rides"
//	@Security	BearerAuth
//	@Success	200	{array}		dto.RideResponseV1
//	@Failure	400	{object}	utils.Response	"Invalid limit"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/rides/pending [get]
func (h *RideHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
	}

	rides, err := h.rideService.ListPendingRides(r.Context(), limit)
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	resp := make([]dto.RideResponseV1, 0, len(rides))
	for i := range rides {
		resp = append(resp, dto.NewRideResponseV1(&rides[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// AcceptRide godoc
//
//	@Summary		Accept a pending ride
//	@Description	Claim the ride for the authenticated driver and take the acceptance payment from the wallet, on credit when the balance is short.
//	@Tags			Rides
//	@Produce		json
//	@Param			id	path	string	true	"Ride id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RideResponseV1
//	@Failure		402	{object}	utils.Response	"Credit ride limit exceeded"
//	@Failure		403	{object}	utils.Response	"Driver is not active"
//	@Failure		404	{object}	utils.Response	"Ride or driver not found"
//	@Failure		409	{object}	utils.Response	"Ride is no longer available"
//	@Failure		422	{object}	utils.Response	"Vehicle mismatch"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/rides/{id}/accept [post]
func (h *RideHandler) AcceptRide(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.assignService.AcceptRide)
}

// StartRide godoc
//
//	@Summary	Start an accepted ride
//	@Tags		Rides
//	@Produce	json
//	@Param		id	path	string	true	"Ride id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.RideResponseV1
//	@Failure	403	{object}	utils.Response	"Not the assigned driver"
//	@Failure	404	{object}	utils.Response	"Ride not found"
//	@Failure	409	{object}	utils.Response	"Ride is not accepted"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/rides/{id}/start [post]
func (h *RideHandler) StartRide(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.rideService.StartRide)
}

// EndRide godoc
//
//	@Summary		Complete a ride
//	@Description	Complete an on-route ride, record its earnings and settle the driver's wallet.
//	@Tags			Rides
//	@Produce		json
//	@Param			id	path	string	true	"Ride id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.EndRideResponseV1
//	@Failure		403	{object}	utils.Response	"Not the assigned driver"
//	@Failure		404	{object}	utils.Response	"Ride not found"
//	@Failure		409	{object}	utils.Response	"Ride is not on route"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/rides/{id}/end [post]
func (h *RideHandler) EndRide(w http.ResponseWriter, r *http.Request) {
	rideID, driverID, ok := rideAndDriver(w, r)
	if !ok {
		return
	}
	result, err := h.rideService.EndRide(r.Context(), rideID, driverID)
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEndRideResponseV1(result))
}

// ReleaseRide godoc
//
//	@Summary		Release an accepted ride
//	@Description	Return the ride to the pending pool. The acceptance payment is not refunded.
//	@Tags			Rides
//	@Produce		json
//	@Param			id	path	string	true	"Ride id"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.RideResponseV1
//	@Failure		403	{object}	utils.Response	"Not the assigned driver"
//	@Failure		404	{object}	utils.Response	"Ride not found"
//	@Failure		409	{object}	utils.Response	"Ride is not accepted"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/rides/{id}/release [post]
func (h *RideHandler) ReleaseRide(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.rideService.ReleaseRide)
}

// CancelRide godoc
//
//	@Summary	Cancel a pending ride
//	@Tags		Rides
//	@Produce	json
//	@Param		id	path	string	true	"Ride id"
//	@Security	BearerAuth
//	@Success	200	{object}	dto.RideResponseV1
//	@Failure	403	{object}	utils.Response	"Not the initiator"
//	@Failure	404	{object}	utils.Response	"Ride not found"
//	@Failure	409	{object}	utils.Response	"Ride is not pending"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/rides/{id}/cancel [post]
func (h *RideHandler) CancelRide(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.rideService.CancelRide)
}

type transitionFn func(ctx context.Context, rideID, driverID uuid.UUID) (*domain.Ride, error)

func (h *RideHandler) transition(w http.ResponseWriter, r *http.Request, fn transitionFn) {
	rideID, driverID, ok := rideAndDriver(w, r)
	if !ok {
		return
	}
	ride, err := fn(r.Context(), rideID, driverID)
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewRideResponseV1(ride))
}

func rideIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	rideID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid ride id")
		return uuid.Nil, false
	}
	return rideID, true
}

func rideAndDriver(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	driverID, ok := auth.DriverIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, uuid.Nil, false
	}
	rideID, ok := rideIDParam(w, r)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return rideID, driverID, true
}
