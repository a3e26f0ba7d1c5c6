package wallet

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/dto"
	"github.com/GlebRadaev/ridehail/internal/handlers/apierror"
	"github.com/GlebRadaev/ridehail/pkg/auth"
	"github.com/GlebRadaev/ridehail/pkg/utils"
)

//go:generate mockgen -source=wallet.go -destination=mock_wallet.go -package=wallet
type Service interface {
	GetWallet(ctx context.Context, driverID uuid.UUID) (*domain.Driver, error)
	ListEntries(ctx context.Context, driverID uuid.UUID) ([]domain.WalletEntry, error)
}

type EarningsService interface {
	ListEarnings(ctx context.Context, driverID uuid.UUID) ([]domain.Earnings, error)
}

type WalletHandler struct {
	walletService   Service
	earningsService EarningsService
}

func New(walletService Service, earningsService EarningsService) *WalletHandler {
	return &WalletHandler{
		walletService:   walletService,
		earningsService: earningsService,
	}
}

// GetWallet godoc
//
//	@Summary	Get the driver's wallet
//	@Tags		Wallet
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	dto.WalletResponseV1
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	404	{object}	utils.Response	"Driver not found"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/driver/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	driverID, ok := auth.DriverIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	driver, err := h.walletService.GetWallet(r.Context(), driverID)
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWalletResponseV1(driver))
}

// GetTransactions godoc
//
//	@Summary		Get wallet transactions
//	@Description	Most recent ledger entries first.
//	@Tags			Wallet
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.WalletEntryResponseV1
//	@Failure		204	{object}	utils.Response	"No data available"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/driver/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	driverID, ok := auth.DriverIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	entries, err := h.walletService.ListEntries(r.Context(), driverID)
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWalletEntriesResponseV1(entries))
}

// GetEarnings godoc
//
//	@Summary	Get the driver's earnings
//	@Tags		Wallet
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}		dto.EarningsResponseV1
//	@Failure	204	{object}	utils.Response	"No data available"
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	500	{object}	utils.Response	"Internal server error"
//	@Router		/api/driver/earnings [get]
func (h *WalletHandler) GetEarnings(w http.ResponseWriter, r *http.Request) {
	driverID, ok := auth.DriverIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	earnings, err := h.earningsService.ListEarnings(r.Context(), driverID)
	if err != nil {
		apierror.Respond(w, err)
		return
	}
	if len(earnings) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewEarningsListResponseV1(earnings))
}
