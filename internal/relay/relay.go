package relay

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/ridehail/internal/config"
	"github.com/GlebRadaev/ridehail/internal/domain"
)

const defaultInterval = 2 * time.Second

type EventRepo interface {
	FindUnpublished(ctx context.Context, limit uint32) ([]domain.RideEvent, error)
	MarkPublished(ctx context.Context, id int64) error
}

type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

// Service moves outbox rows from ride_events to the broker.
// A row is marked published only after the broker accepted it, so delivery is at least once.
type Service struct {
	events     EventRepo
	publisher  Publisher
	limit      uint32
	workerPool WorkerPoolI
	interval   time.Duration

	inFlight sync.Map
}

func New(cfg *config.Config, events EventRepo, publisher Publisher) *Service {
	workers := cfg.RelayWorkers
	if workers <= 0 {
		workers = 1
	}
	interval := cfg.RelayInterval
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Service{
		events:     events,
		publisher:  publisher,
		limit:      cfg.RelayBatch,
		workerPool: NewWorkerPool(workers),
		interval:   interval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("ride event relay started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.workerPool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping ride event relay")
			return
		case <-ticker.C:
			s.publishPending(ctx)
		}
	}
}

func (s *Service) publishPending(ctx context.Context) {
	events, err := s.events.FindUnpublished(ctx, s.limit)
	if err != nil {
		zap.L().Error("failed to fetch unpublished ride events", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, event := range events {
		event := event

		if _, loaded := s.inFlight.LoadOrStore(event.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer s.inFlight.Delete(event.ID)
				return s.handleEvent(ctx, event)
			})
			if err != nil {
				s.inFlight.Delete(event.ID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error scheduling ride events", zap.Error(err))
	}
}

func (s *Service) handleEvent(ctx context.Context, event domain.RideEvent) error {
	if err := s.publisher.Publish(ctx, string(event.Type), event.Payload); err != nil {
		return fmt.Errorf("publish event %d: %w", event.ID, err)
	}
	if err := s.events.MarkPublished(ctx, event.ID); err != nil {
		return fmt.Errorf("mark event %d published: %w", event.ID, err)
	}
	zap.L().Debug("ride event published",
		zap.Int64("eventID", event.ID),
		zap.String("type", string(event.Type)),
		zap.String("rideID", event.RideID.String()),
	)
	return nil
}
