package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterStatus is the lifecycle state of a cash-register session.
type RegisterStatus string

const (
	RegisterOpen   RegisterStatus = "abierta"
	RegisterClosed RegisterStatus = "cerrada"
)

// CashRegister is one open-to-close episode of a physical drawer at a campus.
// At most one session per campus is "abierta" at any instant (partial unique
// index on status). Cerrada is terminal.
type CashRegister struct {
	ID                int64              `json:"id" db:"id"`
	CampusID          int64              `json:"campus_id" db:"campus_id"`
	InitialAmount     decimal.Decimal    `json:"initial_amount" db:"initial_amount"`
	InitialAmountCash DenominationLedger `json:"initial_amount_cash" db:"initial_amount_cash"`
	FinalAmount       *decimal.Decimal   `json:"final_amount" db:"final_amount"`
	FinalAmountCash   DenominationLedger `json:"final_amount_cash,omitempty" db:"final_amount_cash"`
	NextDay           *decimal.Decimal   `json:"next_day" db:"next_day"`
	NextDayCash       DenominationLedger `json:"next_day_cash,omitempty" db:"next_day_cash"`
	Status            RegisterStatus     `json:"status" db:"status"`
	Notes             *string            `json:"notes" db:"notes"`
	OpenedAt          time.Time          `json:"opened_at" db:"opened_at"`
	ClosedAt          *time.Time         `json:"closed_at" db:"closed_at"`
	CreatedAt         time.Time          `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at" db:"updated_at"`

	// Transactions and Gastos are the rows posted while the session was
	// open, loaded for balance computation. Foreign-key association, not
	// containment: they survive the close.
	Transactions []Transaction `json:"transactions,omitempty" db:"-"`
	Gastos       []Gasto       `json:"gastos,omitempty" db:"-"`
}

// MethodSummary aggregates transaction amounts for a single payment method.
type MethodSummary struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// TransactionsSummary totals the session's transactions by method, split
// into paid and unpaid.
type TransactionsSummary struct {
	Paid        map[PaymentMethod]MethodSummary `json:"paid"`
	Unpaid      map[PaymentMethod]MethodSummary `json:"unpaid"`
	PaidTotal   decimal.Decimal                 `json:"paid_total"`
	UnpaidTotal decimal.Decimal                 `json:"unpaid_total"`
}

// Summary computes the per-method totals for the session's transactions.
func (cr *CashRegister) Summary() TransactionsSummary {
	s := TransactionsSummary{
		Paid:        make(map[PaymentMethod]MethodSummary),
		Unpaid:      make(map[PaymentMethod]MethodSummary),
		PaidTotal:   decimal.Zero,
		UnpaidTotal: decimal.Zero,
	}
	for _, t := range cr.Transactions {
		bucket := s.Unpaid
		if t.Paid {
			bucket = s.Paid
			s.PaidTotal = s.PaidTotal.Add(t.Amount)
		} else {
			s.UnpaidTotal = s.UnpaidTotal.Add(t.Amount)
		}
		entry := bucket[t.PaymentMethod]
		entry.Count++
		entry.Total = entry.Total.Add(t.Amount)
		bucket[t.PaymentMethod] = entry
	}
	return s
}

// CurrentBalance is opening amount + paid transaction amounts - gasto
// amounts, across all payment methods.
func (cr *CashRegister) CurrentBalance() decimal.Decimal {
	balance := cr.InitialAmount
	for _, t := range cr.Transactions {
		if t.Paid {
			balance = balance.Add(t.Amount)
		}
	}
	for _, g := range cr.Gastos {
		balance = balance.Sub(g.Amount)
	}
	return balance
}

// cashCurrentBalance is the cash-only view of CurrentBalance, the figure the
// counted drawer must match.
func (cr *CashRegister) cashCurrentBalance() decimal.Decimal {
	balance := cr.InitialAmount
	for _, t := range cr.Transactions {
		if t.Paid && t.PaymentMethod == PaymentCash {
			balance = balance.Add(t.Amount)
		}
	}
	for _, g := range cr.Gastos {
		if g.Method == PaymentCash {
			balance = balance.Sub(g.Amount)
		}
	}
	return balance
}

// CashBalance totals the merged denomination ledger: opening count plus every
// cash transaction's count minus every cash gasto's count.
func (cr *CashRegister) CashBalance() decimal.Decimal {
	ledger := cr.InitialAmountCash
	if ledger == nil {
		ledger = ZeroLedger()
	}
	for _, t := range cr.Transactions {
		if t.Paid && t.PaymentMethod == PaymentCash && t.Denominations != nil {
			ledger = ledger.Merge(t.Denominations)
		}
	}
	for _, g := range cr.Gastos {
		if g.Method == PaymentCash && g.Denominations != nil {
			ledger = ledger.Deduct(g.Denominations)
		}
	}
	return ledger.DeductedTotal()
}

// BalanceCheck is the reconciliation verdict plus the signed discrepancy
// (counted cash minus recorded cash) for diagnostics.
type BalanceCheck struct {
	Balanced    bool            `json:"balanced"`
	Discrepancy decimal.Decimal `json:"discrepancy"`
}

// IsBalanced reports whether the counted denominations match the recorded
// cash movements exactly.
func (cr *CashRegister) IsBalanced() BalanceCheck {
	counted := cr.CashBalance()
	recorded := cr.cashCurrentBalance()
	diff := counted.Sub(recorded)
	return BalanceCheck{Balanced: diff.IsZero(), Discrepancy: diff}
}

// OpenRegisterRequest opens a session for a campus. Opening amount and
// ledger are overridden by the previous closed session's carry-over when one
// exists.
type OpenRegisterRequest struct {
	CampusID          int64              `json:"campus_id"`
	InitialAmount     decimal.Decimal    `json:"initial_amount"`
	InitialAmountCash DenominationLedger `json:"initial_amount_cash"`
	Notes             *string            `json:"notes"`
	Status            RegisterStatus     `json:"status"`
}

// CloseRegisterRequest closes a session with the counted final amounts and
// optional next-day carry-over seed.
type CloseRegisterRequest struct {
	FinalAmount     decimal.Decimal    `json:"final_amount"`
	FinalAmountCash DenominationLedger `json:"final_amount_cash"`
	NextDay         *decimal.Decimal   `json:"next_day"`
	NextDayCash     DenominationLedger `json:"next_day_cash"`
	Notes           *string            `json:"notes"`
}

// RegisterDetail is a session plus its derived reconciliation figures.
type RegisterDetail struct {
	CashRegister
	Summary        TransactionsSummary `json:"summary"`
	CurrentBalance decimal.Decimal     `json:"current_balance"`
	CashBalance    decimal.Decimal     `json:"cash_balance"`
	IsBalanced     BalanceCheck        `json:"is_balanced"`
}

// Detail computes the derived figures for a loaded session.
func (cr *CashRegister) Detail() *RegisterDetail {
	return &RegisterDetail{
		CashRegister:   *cr,
		Summary:        cr.Summary(),
		CurrentBalance: cr.CurrentBalance(),
		CashBalance:    cr.CashBalance(),
		IsBalanced:     cr.IsBalanced(),
	}
}
