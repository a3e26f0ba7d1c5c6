package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TimestampLayout is the textual format of ride accept/pickup/dropoff times.
// The columns are plain text and downstream consumers read them verbatim.
const TimestampLayout = time.RFC3339

// DefaultCreditRideLimit applies when no settings row exists.
const DefaultCreditRideLimit = 3

type RideStatus string

const (
	RidePending   RideStatus = "pending"
	RideAccepted  RideStatus = "accepted"
	RideOnRoute   RideStatus = "on-route"
	RideCompleted RideStatus = "completed"
	RideCancelled RideStatus = "cancelled"
)

// HasDriver reports whether a ride in this status must carry a driver.
func (s RideStatus) HasDriver() bool {
	return s == RideAccepted || s == RideOnRoute || s == RideCompleted
}

func (s RideStatus) IsTerminal() bool {
	return s == RideCompleted || s == RideCancelled
}

type DriverStatus string

const (
	DriverActive   DriverStatus = "active"
	DriverInactive DriverStatus = "inactive"
	DriverBlocked  DriverStatus = "blocked"
)

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

type EarningsStatus string

const (
	EarningsPending   EarningsStatus = "pending"
	EarningsProcessed EarningsStatus = "processed"
	EarningsFailed    EarningsStatus = "failed"
)

type Ride struct {
	ID             uuid.UUID       `db:"id"`
	RideNumber     string          `db:"ride_number"`
	InitiatorID    uuid.UUID       `db:"initiator_id"`
	DriverID       *uuid.UUID      `db:"driver_id"`
	Status         RideStatus      `db:"status"`
	CarModel       string          `db:"car_model"`
	PickupLat      float64         `db:"pickup_lat"`
	PickupLng      float64         `db:"pickup_lng"`
	PickupAddress  string          `db:"pickup_address"`
	DropoffLat     float64         `db:"dropoff_lat"`
	DropoffLng     float64         `db:"dropoff_lng"`
	DropoffAddress string          `db:"dropoff_address"`
	CustomerName   string          `db:"customer_name"`
	CustomerPhone  string          `db:"customer_phone"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	IsCredit       bool            `db:"is_credit"`
	AcceptTime     *string         `db:"accept_time"`
	PickupTime     *string         `db:"pickup_time"`
	DropoffTime    *string         `db:"dropoff_time"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}

// AssignedTo reports whether driverID is the ride's current driver.
func (r *Ride) AssignedTo(driverID uuid.UUID) bool {
	return r.DriverID != nil && *r.DriverID == driverID
}

type Driver struct {
	ID              uuid.UUID       `db:"id"`
	Name            string          `db:"name"`
	VehicleModel    string          `db:"vehicle_model"`
	Status          DriverStatus    `db:"status"`
	WalletBalance   decimal.Decimal `db:"wallet_balance"`
	CreditRideCount int             `db:"credit_ride_count"`
}

type WalletEntry struct {
	ID           int64           `db:"id"`
	DriverID     uuid.UUID       `db:"driver_id"`
	Amount       decimal.Decimal `db:"amount"`
	BalanceAfter decimal.Decimal `db:"balance_after"`
	Type         TransactionType `db:"transaction_type"`
	Description  string          `db:"description"`
	CreatedAt    time.Time       `db:"created_at"`
}

type Earnings struct {
	ID                   int64           `db:"id"`
	DriverID             uuid.UUID       `db:"driver_id"`
	RideID               uuid.UUID       `db:"ride_id"`
	Amount               decimal.Decimal `db:"amount"`
	Commission           decimal.Decimal `db:"commission"`
	CommissionPercentage decimal.Decimal `db:"commission_percentage"`
	NetAmount            decimal.Decimal `db:"net_amount"`
	Status               EarningsStatus  `db:"status"`
	CreatedAt            time.Time       `db:"created_at"`
}

// Settings is a read-only snapshot of the externally owned settings row.
type Settings struct {
	TaxRate             decimal.Decimal `db:"tax_rate"`
	MinWalletPercentage decimal.Decimal `db:"min_wallet_percentage"`
	CreditRideLimit     int             `db:"credit_ride_limit"`
}

// SettingsSnapshot resolves an optional settings row into the values an
// operation runs with. A missing row means no commission, no minimum wallet
// requirement and the given credit ride limit. A stored limit of 0 disables
// credit rides.
func SettingsSnapshot(s *Settings, creditRideLimit int) Settings {
	if s == nil {
		return Settings{
			TaxRate:             decimal.Zero,
			MinWalletPercentage: decimal.Zero,
			CreditRideLimit:     creditRideLimit,
		}
	}
	snapshot := *s
	if snapshot.CreditRideLimit < 0 {
		snapshot.CreditRideLimit = 0
	}
	return snapshot
}

// RideCompletion is the outcome of ending a ride.
type RideCompletion struct {
	Ride          *Ride
	Earnings      *Earnings
	WalletBalance decimal.Decimal
}

// FormatTimestamp renders t in the stored textual form.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
