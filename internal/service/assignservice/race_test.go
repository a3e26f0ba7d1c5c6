package assignservice

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/pg"
	"github.com/GlebRadaev/ridehail/internal/testutil"
)

// memStore keeps rides and drivers in memory. Reads take no lock beyond the
// map mutex, so concurrent callers can observe the same pending ride and
// only the conditional Assign decides the winner.
type memStore struct {
	mu      sync.Mutex
	rides   map[uuid.UUID]domain.Ride
	drivers map[uuid.UUID]domain.Driver
	entries []domain.WalletEntry
	events  []domain.RideEvent
}

type memRides struct{ *memStore }

func (s memRides) GetForUpdate(_ context.Context, id uuid.UUID) (*domain.Ride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rides[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (s memRides) Assign(_ context.Context, rideID, driverID uuid.UUID, isCredit bool, acceptTime string) (*domain.Ride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rides[rideID]
	if !ok || r.Status != domain.RidePending || r.DriverID != nil {
		return nil, nil
	}
	r.Status = domain.RideAccepted
	r.DriverID = &driverID
	r.IsCredit = isCredit
	r.AcceptTime = &acceptTime
	s.rides[rideID] = r
	return &r, nil
}

type memDrivers struct{ *memStore }

func (s memDrivers) GetForUpdate(_ context.Context, id uuid.UUID) (*domain.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drivers[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (s memDrivers) IncrementCreditRides(_ context.Context, id uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.drivers[id]
	d.CreditRideCount++
	s.drivers[id] = d
	return d.CreditRideCount, nil
}

type memWallet struct{ *memStore }

func (s memWallet) set(driverID uuid.UUID, balance, amount decimal.Decimal) decimal.Decimal {
	d := s.drivers[driverID]
	d.WalletBalance = balance
	s.drivers[driverID] = d
	s.entries = append(s.entries, domain.WalletEntry{DriverID: driverID, Amount: amount, BalanceAfter: balance, Type: domain.TransactionDebit})
	return balance
}

func (s memWallet) ApplyDelta(_ context.Context, driverID uuid.UUID, delta decimal.Decimal, _ domain.TransactionType, _ string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(driverID, s.drivers[driverID].WalletBalance.Add(delta), delta), nil
}

func (s memWallet) DrainForCredit(_ context.Context, driverID uuid.UUID, shortfall decimal.Decimal, _ string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(driverID, decimal.Zero, shortfall.Neg()), nil
}

type memSettings struct{ settings *domain.Settings }

func (s memSettings) Get(context.Context) (*domain.Settings, error) { return s.settings, nil }

type memEvents struct{ *memStore }

func (s memEvents) Append(_ context.Context, e *domain.RideEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, *e)
	return nil
}

type passthroughTx struct{}

func (passthroughTx) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	return fn(ctx)
}

func TestAcceptRide_ConcurrentDriversOneWinner(t *testing.T) {
	const contenders = 16

	store := &memStore{
		rides:   map[uuid.UUID]domain.Ride{rideID: *pendingRide("100", "")},
		drivers: map[uuid.UUID]domain.Driver{},
	}
	ids := make([]uuid.UUID, contenders)
	for i := range ids {
		ids[i] = uuid.New()
		store.drivers[ids[i]] = domain.Driver{
			ID:            ids[i],
			Status:        domain.DriverActive,
			WalletBalance: testutil.D("100"),
		}
	}

	service := New(memRides{store}, memDrivers{store}, memWallet{store},
		memSettings{tenPercent}, memEvents{store}, passthroughTx{}, 3)

	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make([]error, contenders)
	)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = service.AcceptRide(context.Background(), rideID, ids[i])
		}(i)
	}
	close(start)
	wg.Wait()

	var winner uuid.UUID
	wins := 0
	for i, err := range errs {
		if err == nil {
			wins++
			winner = ids[i]
			continue
		}
		assert.ErrorIs(t, err, domain.ErrRideUnavailable)
		assert.ErrorIs(t, err, domain.ErrConflict)
	}
	require.Equal(t, 1, wins)

	ride := store.rides[rideID]
	assert.Equal(t, domain.RideAccepted, ride.Status)
	require.NotNil(t, ride.DriverID)
	assert.Equal(t, winner, *ride.DriverID)

	require.Len(t, store.entries, 1)
	assert.Equal(t, winner, store.entries[0].DriverID)
	for _, id := range ids {
		want := "100"
		if id == winner {
			want = "90"
		}
		assert.True(t, store.drivers[id].WalletBalance.Equal(testutil.D(want)))
	}
	assert.Len(t, store.events, 1)
}
