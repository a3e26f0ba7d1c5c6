package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type RideEventType string

const (
	EventRideCreated   RideEventType = "ride.created"
	EventRideAccepted  RideEventType = "ride.accepted"
	EventRideStarted   RideEventType = "ride.started"
	EventRideReleased  RideEventType = "ride.released"
	EventRideCompleted RideEventType = "ride.completed"
	EventRideCancelled RideEventType = "ride.cancelled"
)

// RideEvent is an outbox row written in the same transaction as the ride change.
type RideEvent struct {
	ID          int64         `db:"id"`
	RideID      uuid.UUID     `db:"ride_id"`
	Type        RideEventType `db:"event_type"`
	Payload     []byte        `db:"payload"`
	CreatedAt   time.Time     `db:"created_at"`
	PublishedAt *time.Time    `db:"published_at"`
}

type rideEventPayload struct {
	RideID     uuid.UUID  `json:"ride_id"`
	RideNumber string     `json:"ride_number"`
	Status     RideStatus `json:"status"`
	DriverID   *uuid.UUID `json:"driver_id,omitempty"`
	IsCredit   bool       `json:"is_credit"`
	OccurredAt string     `json:"occurred_at"`
}

// NewRideEvent snapshots the ride into an event of the given type.
func NewRideEvent(eventType RideEventType, ride *Ride, at time.Time) (*RideEvent, error) {
	payload, err := json.Marshal(rideEventPayload{
		RideID:     ride.ID,
		RideNumber: ride.RideNumber,
		Status:     ride.Status,
		DriverID:   ride.DriverID,
		IsCredit:   ride.IsCredit,
		OccurredAt: FormatTimestamp(at),
	})
	if err != nil {
		return nil, err
	}
	return &RideEvent{
		RideID:  ride.ID,
		Type:    eventType,
		Payload: payload,
	}, nil
}
