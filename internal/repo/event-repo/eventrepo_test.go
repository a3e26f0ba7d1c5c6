package eventrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/ridehail/internal/domain"
)

var rideID = uuid.MustParse("7d3c1a52-5d0b-4f3e-9a55-0f1d7b8e2c11")

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_Append(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`INSERT INTO ride_events (ride_id, event_type, payload)`)

	t.Run("Appends event", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(rideID, "ride.accepted", `{"status":"accepted"}`).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), created))

		event := &domain.RideEvent{RideID: rideID, Type: domain.EventRideAccepted, Payload: []byte(`{"status":"accepted"}`)}
		require.NoError(t, repo.Append(context.Background(), event))
		assert.Equal(t, int64(11), event.ID)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WillReturnError(errors.New("database error"))

		err := repo.Append(context.Background(), &domain.RideEvent{RideID: rideID, Type: domain.EventRideAccepted, Payload: []byte(`{}`)})
		assert.Error(t, err)
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindUnpublished(t *testing.T) {
	repo, mock := NewMock(t)
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE published_at IS NULL`)).
		WithArgs(100).
		WillReturnRows(pgxmock.NewRows([]string{"id", "ride_id", "event_type", "payload", "created_at"}).
			AddRow(int64(1), rideID, "ride.created", []byte(`{}`), created).
			AddRow(int64(2), rideID, "ride.accepted", []byte(`{}`), created))

	events, err := repo.FindUnpublished(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.EventRideAccepted, events[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_MarkPublished(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta(`SET published_at = now()`)

	mock.ExpectExec(query).WithArgs(int64(1)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	assert.NoError(t, repo.MarkPublished(context.Background(), 1))

	mock.ExpectExec(query).WithArgs(int64(2)).WillReturnError(errors.New("database error"))
	assert.Error(t, repo.MarkPublished(context.Background(), 2))

	assert.NoError(t, mock.ExpectationsWereMet())
}
