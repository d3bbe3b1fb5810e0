package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is how a transaction was settled.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
	PaymentCard     PaymentMethod = "card"
)

// Valid reports whether the method is one of the supported values.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentTransfer, PaymentCard:
		return true
	}
	return false
}

// TransactionType distinguishes settled income from a pending charge.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionPayment TransactionType = "payment"
)

// Transaction is a single money movement posted against a campus.
//
// Folio invariant: an unpaid transaction carries no folio of any kind; a paid
// transaction carries exactly the folios the policy mandates for its current
// method/card, never stale ones from a prior method.
type Transaction struct {
	ID              int64              `json:"id" db:"id"`
	UUID            uuid.UUID          `json:"uuid" db:"uuid"`
	StudentID       int64              `json:"student_id" db:"student_id"`
	CampusID        int64              `json:"campus_id" db:"campus_id"`
	CashRegisterID  *int64             `json:"cash_register_id" db:"cash_register_id"`
	DebtID          *int64             `json:"debt_id" db:"debt_id"`
	CardID          *int64             `json:"card_id" db:"card_id"`
	TransactionType TransactionType    `json:"transaction_type" db:"transaction_type"`
	PaymentMethod   PaymentMethod      `json:"payment_method" db:"payment_method"`
	Amount          decimal.Decimal    `json:"amount" db:"amount"`
	Paid            bool               `json:"paid" db:"paid"`
	PaymentDate     *time.Time         `json:"payment_date" db:"payment_date"`
	ExpirationDate  *time.Time         `json:"expiration_date" db:"expiration_date"`
	Notes           *string            `json:"notes" db:"notes"`
	Image           *string            `json:"image" db:"image"`
	Folio           *int64             `json:"folio" db:"folio"`
	FolioNew        *string            `json:"folio_new" db:"folio_new"`
	FolioCash       *int64             `json:"folio_cash" db:"folio_cash"`
	FolioTransfer   *int64             `json:"folio_transfer" db:"folio_transfer"`
	FolioCard       *int64             `json:"folio_card" db:"folio_card"`
	Denominations   DenominationLedger `json:"denominations,omitempty" db:"denominations"`
	CreatedAt       time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" db:"updated_at"`

	// Card is the loaded card configuration when card_id is set.
	Card *Card `json:"card,omitempty" db:"-"`
}

// SpecificFolio returns the method-specific folio for the transaction's
// current payment method, or nil.
func (t *Transaction) SpecificFolio() *int64 {
	switch t.PaymentMethod {
	case PaymentCash:
		return t.FolioCash
	case PaymentTransfer:
		return t.FolioTransfer
	case PaymentCard:
		return t.FolioCard
	}
	return nil
}

// CreateTransactionRequest is the already-validated command to post a
// transaction. Upload storage and HTTP framing live in the handler layer.
type CreateTransactionRequest struct {
	StudentID       int64              `json:"student_id"`
	CampusID        int64              `json:"campus_id"`
	Amount          decimal.Decimal    `json:"amount"`
	PaymentMethod   PaymentMethod      `json:"payment_method"`
	TransactionType *TransactionType   `json:"transaction_type"`
	Paid            bool               `json:"paid"`
	PaymentDate     *time.Time         `json:"payment_date"`
	ExpirationDate  *time.Time         `json:"expiration_date"`
	Notes           *string            `json:"notes"`
	Image           *string            `json:"image"`
	CardID          *int64             `json:"card_id"`
	DebtID          *int64             `json:"debt_id"`
	CashRegisterID  *int64             `json:"cash_register_id"`
	Denominations   DenominationLedger `json:"denominations"`
}

// UpdateTransactionRequest carries the partial fields of an update. Nil means
// "leave unchanged". CardSet distinguishes "clear the card" (true, CardID nil)
// from "leave it alone".
type UpdateTransactionRequest struct {
	StudentID      *int64             `json:"student_id"`
	Amount         *decimal.Decimal   `json:"amount"`
	PaymentMethod  *PaymentMethod     `json:"payment_method"`
	Paid           *bool              `json:"paid"`
	PaymentDate    *time.Time         `json:"payment_date"`
	Notes          *string            `json:"notes"`
	Image          *string            `json:"image"`
	CardID         *int64             `json:"card_id"`
	CardSet        bool               `json:"-"`
	CashRegisterID *int64             `json:"cash_register_id"`
	Denominations  DenominationLedger `json:"denominations"`
}

// TransactionFilter narrows paid/unpaid listings.
type TransactionFilter struct {
	CampusID       int64
	Search         string
	Folio          string
	PaymentMethod  PaymentMethod
	CardID         *int64
	DateFrom       *time.Time
	DateTo         *time.Time
	ExpirationDate *time.Time
	SortBy         string
	SortDirection  string
	Page           int
	PerPage        int
}

// TransactionPage is one page of a listing plus pagination totals.
type TransactionPage struct {
	Data     []Transaction `json:"data"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PerPage  int           `json:"per_page"`
	LastPage int           `json:"last_page"`
}
