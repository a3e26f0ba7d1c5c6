package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/ridehail/internal/domain"
)

// CreateRideRequestV1 is the body of POST /api/rides. Coordinates are
// pointers so that a missing value is distinguishable from zero.
type CreateRideRequestV1 struct {
	CarModel       string          `json:"car_model" example:"Sedan"`
	PickupLat      *float64        `json:"pickup_lat" example:"55.7558"`
	PickupLng      *float64        `json:"pickup_lng" example:"37.6173"`
	PickupAddress  string          `json:"pickup_address" example:"Red Square, 1"`
	DropoffLat     *float64        `json:"dropoff_lat" example:"55.7298"`
	DropoffLng     *float64        `json:"dropoff_lng" example:"37.6031"`
	DropoffAddress string          `json:"dropoff_address" example:"Gorky Park"`
	CustomerName   string          `json:"customer_name" example:"Anna"`
	CustomerPhone  string          `json:"customer_phone" example:"+79990000000"`
	TotalAmount    decimal.Decimal `json:"total_amount" swaggertype:"string" example:"150.00"`
}

func (r CreateRideRequestV1) ToParams(initiatorID uuid.UUID) domain.CreateRideParams {
	return domain.CreateRideParams{
		InitiatorID:    initiatorID,
		CarModel:       r.CarModel,
		PickupLat:      r.PickupLat,
		PickupLng:      r.PickupLng,
		PickupAddress:  r.PickupAddress,
		DropoffLat:     r.DropoffLat,
		DropoffLng:     r.DropoffLng,
		DropoffAddress: r.DropoffAddress,
		CustomerName:   r.CustomerName,
		CustomerPhone:  r.CustomerPhone,
		TotalAmount:    r.TotalAmount,
	}
}

type RideResponseV1 struct {
	ID             uuid.UUID       `json:"id" example:"5a0c1b2d-3e4f-4a5b-9c6d-7e8f9a0b1c2d"`
	RideNumber     string          `json:"ride_number" example:"12345678903"`
	InitiatorID    uuid.UUID       `json:"initiator_id"`
	DriverID       *uuid.UUID      `json:"driver_id,omitempty"`
	Status         string          `json:"status" example:"pending"`
	CarModel       string          `json:"car_model,omitempty" example:"Sedan"`
	PickupLat      float64         `json:"pickup_lat" example:"55.7558"`
	PickupLng      float64         `json:"pickup_lng" example:"37.6173"`
	PickupAddress  string          `json:"pickup_address,omitempty"`
	DropoffLat     float64         `json:"dropoff_lat" example:"55.7298"`
	DropoffLng     float64         `json:"dropoff_lng" example:"37.6031"`
	DropoffAddress string          `json:"dropoff_address,omitempty"`
	CustomerName   string          `json:"customer_name" example:"Anna"`
	CustomerPhone  string          `json:"customer_phone,omitempty"`
	TotalAmount    decimal.Decimal `json:"total_amount" swaggertype:"string" example:"150.00"`
	IsCredit       bool            `json:"is_credit"`
	AcceptTime     *string         `json:"accept_time,omitempty" example:"2024-05-01T09:00:00Z"`
	PickupTime     *string         `json:"pickup_time,omitempty"`
	DropoffTime    *string         `json:"dropoff_time,omitempty"`
	CreatedAt      string          `json:"created_at" example:"2024-05-01T08:55:00Z"`
}

func NewRideResponseV1(r *domain.Ride) RideResponseV1 {
	return RideResponseV1{
		ID:             r.ID,
		RideNumber:     r.RideNumber,
		InitiatorID:    r.InitiatorID,
		DriverID:       r.DriverID,
		Status:         string(r.Status),
		CarModel:       r.CarModel,
		PickupLat:      r.PickupLat,
		PickupLng:      r.PickupLng,
		PickupAddress:  r.PickupAddress,
		DropoffLat:     r.DropoffLat,
		DropoffLng:     r.DropoffLng,
		DropoffAddress: r.DropoffAddress,
		CustomerName:   r.CustomerName,
		CustomerPhone:  r.CustomerPhone,
		TotalAmount:    r.TotalAmount,
		IsCredit:       r.IsCredit,
		AcceptTime:     r.AcceptTime,
		PickupTime:     r.PickupTime,
		DropoffTime:    r.DropoffTime,
		CreatedAt:      domain.FormatTimestamp(r.CreatedAt),
	}
}

type EndRideResponseV1 struct {
	Ride          RideResponseV1     `json:"ride"`
	Earnings      EarningsResponseV1 `json:"earnings"`
	WalletBalance decimal.Decimal    `json:"wallet_balance" swaggertype:"string" example:"235.00"`
}

func NewEndRideResponseV1(c *domain.RideCompletion) EndRideResponseV1 {
	return EndRideResponseV1{
		Ride:          NewRideResponseV1(c.Ride),
		Earnings:      NewEarningsResponseV1(c.Earnings),
		WalletBalance: c.WalletBalance,
	}
}
