package domain

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxAmount is the exclusive upper bound of a NUMERIC(14, 2) money column.
var MaxAmount = decimal.New(1, 12)

// CreateRideParams carries the fields a new ride is created from.
type CreateRideParams struct {
	InitiatorID    uuid.UUID
	CarModel       string
	PickupLat      *float64
	PickupLng      *float64
	PickupAddress  string
	DropoffLat     *float64
	DropoffLng     *float64
	DropoffAddress string
	CustomerName   string
	CustomerPhone  string
	TotalAmount    decimal.Decimal
}

func (p CreateRideParams) Validate() error {
	if p.InitiatorID == uuid.Nil {
		return Validationf("initiator is required")
	}
	if p.PickupLat == nil || p.PickupLng == nil {
		return Validationf("pickup coordinates are required")
	}
	if p.DropoffLat == nil || p.DropoffLng == nil {
		return Validationf("dropoff coordinates are required")
	}
	if !validLat(*p.PickupLat) || !validLng(*p.PickupLng) {
		return Validationf("pickup coordinates are out of range")
	}
	if !validLat(*p.DropoffLat) || !validLng(*p.DropoffLng) {
		return Validationf("dropoff coordinates are out of range")
	}
	if !p.TotalAmount.IsPositive() {
		return Validationf("total amount must be positive")
	}
	if p.TotalAmount.GreaterThanOrEqual(MaxAmount) {
		return Validationf("total amount must be below %s", MaxAmount)
	}
	if !p.TotalAmount.Equal(p.TotalAmount.Round(2)) {
		return Validationf("total amount must have at most 2 decimal places")
	}
	if strings.TrimSpace(p.CustomerName) == "" {
		return Validationf("customer name is required")
	}
	return nil
}

func validLat(v float64) bool { return v >= -90 && v <= 90 }

func validLng(v float64) bool { return v >= -180 && v <= 180 }
