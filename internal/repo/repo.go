package repo

import (
	"github.com/GlebRadaev/ridehail/internal/pg"
	driverrepo "github.com/GlebRadaev/ridehail/internal/repo/driver-repo"
	earningsrepo "github.com/GlebRadaev/ridehail/internal/repo/earnings-repo"
	eventrepo "github.com/GlebRadaev/ridehail/internal/repo/event-repo"
	riderepo "github.com/GlebRadaev/ridehail/internal/repo/ride-repo"
	settingsrepo "github.com/GlebRadaev/ridehail/internal/repo/settings-repo"
	walletrepo "github.com/GlebRadaev/ridehail/internal/repo/wallet-repo"
)

type Repositories struct {
	RideRepo     *riderepo.Repository
	DriverRepo   *driverrepo.Repository
	WalletRepo   *walletrepo.Repository
	EarningsRepo *earningsrepo.Repository
	SettingsRepo *settingsrepo.Repository
	EventRepo    *eventrepo.Repository
	TxManager    pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		RideRepo:     riderepo.New(conn),
		DriverRepo:   driverrepo.New(conn),
		WalletRepo:   walletrepo.New(conn),
		EarningsRepo: earningsrepo.New(conn),
		SettingsRepo: settingsrepo.New(conn),
		EventRepo:    eventrepo.New(conn),
		TxManager:    txManager,
	}
}
