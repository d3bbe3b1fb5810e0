package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Gasto is a cash outflow recorded against an open register session. It
// carries the same denomination-breakdown shape as a cash transaction and
// reduces the session's balance.
type Gasto struct {
	ID             int64              `json:"id" db:"id"`
	CashRegisterID int64              `json:"cash_register_id" db:"cash_register_id"`
	CampusID       int64              `json:"campus_id" db:"campus_id"`
	Concept        string             `json:"concept" db:"concept"`
	Amount         decimal.Decimal    `json:"amount" db:"amount"`
	Method         PaymentMethod      `json:"method" db:"method"`
	Denominations  DenominationLedger `json:"denominations,omitempty" db:"denominations"`
	Notes          *string            `json:"notes" db:"notes"`
	CreatedAt      time.Time          `json:"created_at" db:"created_at"`
}

// CreateGastoRequest posts an expense against an open session.
type CreateGastoRequest struct {
	CashRegisterID int64              `json:"cash_register_id"`
	Concept        string             `json:"concept"`
	Amount         decimal.Decimal    `json:"amount"`
	Method         PaymentMethod      `json:"method"`
	Denominations  DenominationLedger `json:"denominations"`
	Notes          *string            `json:"notes"`
}
