package eventrepo

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/ridehail/internal/domain"
	"github.com/GlebRadaev/ridehail/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Append writes an outbox row. It must run in the transaction that changed the ride.
func (r *Repository) Append(ctx context.Context, event *domain.RideEvent) error {
	query := `
        INSERT INTO ride_events (ride_id, event_type, payload)
        VALUES ($1, $2, $3::jsonb)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, event.RideID, string(event.Type), string(event.Payload)).
		Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		zap.L().Error("can't append ride event", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindUnpublished(ctx context.Context, limit uint32) ([]domain.RideEvent, error) {
	query := `
        SELECT id, ride_id, event_type, payload, created_at
        FROM ride_events
        WHERE published_at IS NULL
        ORDER BY id ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get unpublished ride events", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var events []domain.RideEvent
	for rows.Next() {
		var e domain.RideEvent
		var typ string
		if err := rows.Scan(&e.ID, &e.RideID, &typ, &e.Payload, &e.CreatedAt); err != nil {
			zap.L().Error("can't scan ride event row", zap.Error(err))
			return nil, err
		}
		e.Type = domain.RideEventType(typ)
		events = append(events, e)
	}
	return events, nil
}

func (r *Repository) MarkPublished(ctx context.Context, id int64) error {
	query := `
        UPDATE ride_events
        SET published_at = now()
        WHERE id = $1 AND published_at IS NULL
    `
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("failed to mark ride event published", zap.Error(err))
		return err
	}
	return nil
}
