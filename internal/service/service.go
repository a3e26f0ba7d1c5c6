package service

import (
	"github.com/GlebRadaev/ridehail/internal/config"
	"github.com/GlebRadaev/ridehail/internal/handlers/rides"
	"github.com/GlebRadaev/ridehail/internal/handlers/wallet"
	"github.com/GlebRadaev/ridehail/internal/repo"
	"github.com/GlebRadaev/ridehail/internal/service/assignservice"
	"github.com/GlebRadaev/ridehail/internal/service/earningsservice"
	"github.com/GlebRadaev/ridehail/internal/service/rideservice"
	"github.com/GlebRadaev/ridehail/internal/service/walletservice"
)

type Services struct {
	RideService     rides.Service
	AssignService   rides.AssignService
	WalletService   wallet.Service
	EarningsService wallet.EarningsService
}

func New(repo *repo.Repositories, cfg *config.Config) *Services {
	walletService := walletservice.New(repo.WalletRepo, repo.DriverRepo, repo.TxManager, cfg.ReadRetries)
	earningsService := earningsservice.New(repo.EarningsRepo, walletService, cfg.ReadRetries)
	rideService := rideservice.New(repo.RideRepo, repo.EventRepo, repo.SettingsRepo, earningsService, repo.TxManager, cfg.ReadRetries, cfg.CreditRideLimit)
	assignService := assignservice.New(repo.RideRepo, repo.DriverRepo, walletService, repo.SettingsRepo, repo.EventRepo, repo.TxManager, cfg.CreditRideLimit)

	return &Services{
		RideService:     rideService,
		AssignService:   assignService,
		WalletService:   walletService,
		EarningsService: earningsService,
	}
}
