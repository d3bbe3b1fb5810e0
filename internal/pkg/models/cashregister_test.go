package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func paidCash(amount int64, denominations DenominationLedger) Transaction {
	return Transaction{
		PaymentMethod: PaymentCash,
		Amount:        decimal.NewFromInt(amount),
		Paid:          true,
		Denominations: denominations,
	}
}

func TestRegisterSummary(t *testing.T) {
	reg := CashRegister{
		Transactions: []Transaction{
			paidCash(250, nil),
			paidCash(100, nil),
			{PaymentMethod: PaymentTransfer, Amount: decimal.NewFromInt(500), Paid: true},
			{PaymentMethod: PaymentCard, Amount: decimal.NewFromInt(80), Paid: false},
		},
	}

	s := reg.Summary()

	assert.Equal(t, 2, s.Paid[PaymentCash].Count)
	assert.True(t, decimal.NewFromInt(350).Equal(s.Paid[PaymentCash].Total))
	assert.Equal(t, 1, s.Paid[PaymentTransfer].Count)
	assert.True(t, decimal.NewFromInt(850).Equal(s.PaidTotal))

	assert.Equal(t, 1, s.Unpaid[PaymentCard].Count)
	assert.True(t, decimal.NewFromInt(80).Equal(s.UnpaidTotal))
}

func TestRegisterCurrentBalance(t *testing.T) {
	reg := CashRegister{
		InitialAmount: decimal.NewFromInt(100),
		Gastos: []Gasto{
			{Method: PaymentCash, Amount: decimal.NewFromInt(40)},
		},
	}

	// Opening 100 minus a 40 expense, no income yet.
	assert.True(t, decimal.NewFromInt(60).Equal(reg.CurrentBalance()))

	reg.Transactions = []Transaction{
		paidCash(250, nil),
		{PaymentMethod: PaymentTransfer, Amount: decimal.NewFromInt(500), Paid: true},
		{PaymentMethod: PaymentCash, Amount: decimal.NewFromInt(75), Paid: false},
	}

	// Unpaid rows never count.
	assert.True(t, decimal.NewFromInt(810).Equal(reg.CurrentBalance()))
}

func TestRegisterIsBalanced(t *testing.T) {
	reg := CashRegister{
		InitialAmount:     decimal.NewFromInt(100),
		InitialAmountCash: DenominationLedger{100: 1},
		Transactions: []Transaction{
			paidCash(250, DenominationLedger{100: 2, 50: 1}),
			// Transfers carry no cash and must not affect reconciliation.
			{PaymentMethod: PaymentTransfer, Amount: decimal.NewFromInt(999), Paid: true},
		},
	}

	assert.True(t, decimal.NewFromInt(350).Equal(reg.CashBalance()))

	check := reg.IsBalanced()
	assert.True(t, check.Balanced)
	assert.True(t, check.Discrepancy.IsZero())

	// A cash expense reduces both sides when its denominations are recorded.
	reg.Gastos = []Gasto{
		{Method: PaymentCash, Amount: decimal.NewFromInt(50), Denominations: DenominationLedger{50: 1}},
	}
	check = reg.IsBalanced()
	assert.True(t, check.Balanced)
	assert.True(t, decimal.NewFromInt(300).Equal(reg.CashBalance()))

	// Perturb the counted drawer: one 50 piece short.
	reg.InitialAmountCash = DenominationLedger{50: 1}
	check = reg.IsBalanced()
	assert.False(t, check.Balanced)
	assert.True(t, decimal.NewFromInt(-50).Equal(check.Discrepancy))
}

func TestRegisterDetail(t *testing.T) {
	reg := CashRegister{
		ID:                7,
		InitialAmount:     decimal.NewFromInt(100),
		InitialAmountCash: DenominationLedger{100: 1},
		Status:            RegisterOpen,
		Transactions:      []Transaction{paidCash(250, DenominationLedger{100: 2, 50: 1})},
	}

	detail := reg.Detail()
	assert.Equal(t, int64(7), detail.ID)
	assert.True(t, decimal.NewFromInt(350).Equal(detail.CurrentBalance))
	assert.True(t, decimal.NewFromInt(350).Equal(detail.CashBalance))
	assert.True(t, detail.IsBalanced.Balanced)
}
