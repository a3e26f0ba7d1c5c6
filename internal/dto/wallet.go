package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/ridehail/internal/domain"
)

type WalletResponseV1 struct {
	DriverID        uuid.UUID       `json:"driver_id"`
	Balance         decimal.Decimal `json:"balance" swaggertype:"string" example:"90.00"`
	CreditRideCount int             `json:"credit_ride_count" example:"1"`
	Status          string          `json:"status" example:"active"`
}

func NewWalletResponseV1(d *domain.Driver) WalletResponseV1 {
	return WalletResponseV1{
		DriverID:        d.ID,
		Balance:         d.WalletBalance,
		CreditRideCount: d.CreditRideCount,
		Status:          string(d.Status),
	}
}

type WalletEntryResponseV1 struct {
	ID           int64           `json:"id" example:"17"`
	Amount       decimal.Decimal `json:"amount" swaggertype:"string" example:"-10.00"`
	BalanceAfter decimal.Decimal `json:"balance_after" swaggertype:"string" example:"90.00"`
	Type         string          `json:"transaction_type" example:"debit"`
	Description  string          `json:"description" example:"Acceptance fee for ride 12345678903"`
	CreatedAt    string          `json:"created_at" example:"2024-05-01T09:00:00Z"`
}

func NewWalletEntriesResponseV1(entries []domain.WalletEntry) []WalletEntryResponseV1 {
	resp := make([]WalletEntryResponseV1, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, WalletEntryResponseV1{
			ID:           e.ID,
			Amount:       e.Amount,
			BalanceAfter: e.BalanceAfter,
			Type:         string(e.Type),
			Description:  e.Description,
			CreatedAt:    domain.FormatTimestamp(e.CreatedAt),
		})
	}
	return resp
}

type EarningsResponseV1 struct {
	RideID               uuid.UUID       `json:"ride_id"`
	Amount               decimal.Decimal `json:"amount" swaggertype:"string" example:"150.00"`
	Commission           decimal.Decimal `json:"commission" swaggertype:"string" example:"15.00"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage" swaggertype:"string" example:"10.00"`
	NetAmount            decimal.Decimal `json:"net_amount" swaggertype:"string" example:"135.00"`
	Status               string          `json:"status" example:"processed"`
	CreatedAt            string          `json:"created_at,omitempty" example:"2024-05-01T09:40:00Z"`
}

func NewEarningsResponseV1(e *domain.Earnings) EarningsResponseV1 {
	if e == nil {
		return EarningsResponseV1{}
	}
	resp := EarningsResponseV1{
		RideID:               e.RideID,
		Amount:               e.Amount,
		Commission:           e.Commission,
		CommissionPercentage: e.CommissionPercentage,
		NetAmount:            e.NetAmount,
		Status:               string(e.Status),
	}
	if !e.CreatedAt.IsZero() {
		resp.CreatedAt = domain.FormatTimestamp(e.CreatedAt)
	}
	return resp
}

func NewEarningsListResponseV1(earnings []domain.Earnings) []EarningsResponseV1 {
	resp := make([]EarningsResponseV1, 0, len(earnings))
	for i := range earnings {
		resp = append(resp, NewEarningsResponseV1(&earnings[i]))
	}
	return resp
}
