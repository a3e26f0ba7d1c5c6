package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/ridehail/docs"
	rideshandlers "github.com/GlebRadaev/ridehail/internal/handlers/rides"
	wallethandlers "github.com/GlebRadaev/ridehail/internal/handlers/wallet"
	"github.com/GlebRadaev/ridehail/internal/service"
	"github.com/GlebRadaev/ridehail/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers
type RideHandler interface {
	CreateRide(w http.ResponseWriter, r *http.Request)
	GetRide(w http.ResponseWriter, r *http.Request)
	GetRideByNumber(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	AcceptRide(w http.ResponseWriter, r *http.Request)
	StartRide(w http.ResponseWriter, r *http.Request)
	EndRide(w http.ResponseWriter, r *http.Request)
	ReleaseRide(w http.ResponseWriter, r *http.Request)
	CancelRide(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	GetEarnings(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	RideHandler   RideHandler
	WalletHandler WalletHandler
	JWTService    auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		RideHandler:   rideshandlers.New(s.RideService, s.AssignService),
		WalletHandler: wallethandlers.New(s.WalletService, s.EarningsService),
		JWTService:    jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.RequestID,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.Middleware(h.JWTService))

		r.Route("/rides", func(r chi.Router) {
			r.Post("/", h.RideHandler.CreateRide)
			r.Get("/pending", h.RideHandler.ListPending)
			r.Get("/number/{number}", h.RideHandler.GetRideByNumber)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.RideHandler.GetRide)
				r.Post("/accept", h.RideHandler.AcceptRide)
				r.Post("/start", h.RideHandler.StartRide)
				r.Post("/end", h.RideHandler.EndRide)
				r.Post("/release", h.RideHandler.ReleaseRide)
				r.Post("/cancel", h.RideHandler.CancelRide)
			})
		})
		r.Route("/driver", func(r chi.Router) {
			r.Get("/wallet", h.WalletHandler.GetWallet)
			r.Get("/wallet/transactions", h.WalletHandler.GetTransactions)
			r.Get("/earnings", h.WalletHandler.GetEarnings)
		})
	})

	return r
}
