package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/edupagos/backoffice/internal/pkg/apperrors"
)

// StandardDenominations are the MXN faces a drawer is counted in.
var StandardDenominations = []int{5, 10, 20, 50, 100, 200, 500, 1000}

// DenominationType classifies a face value.
type DenominationType string

const (
	DenominationCoin DenominationType = "moneda"
	DenominationBill DenominationType = "billete"
)

// TypeForFace classifies a face value: coins below 100, bills from 100 up.
func TypeForFace(face int) DenominationType {
	if face < 100 {
		return DenominationCoin
	}
	return DenominationBill
}

// DenominationLedger maps a face value to how many pieces of it were counted.
// It is stored as jsonb. Counts in a stored ledger are non-negative; Deduct
// results may go negative and are only meaningful as a running balance.
type DenominationLedger map[int]int

// ZeroLedger returns a ledger with every standard face at zero.
func ZeroLedger() DenominationLedger {
	l := make(DenominationLedger, len(StandardDenominations))
	for _, face := range StandardDenominations {
		l[face] = 0
	}
	return l
}

// Validate rejects negative counts. Faces outside StandardDenominations are
// accepted: a new denomination entering circulation registers itself on first
// use, TypeForFace classifies it.
func (l DenominationLedger) Validate() error {
	for face, count := range l {
		if count < 0 {
			return fmt.Errorf("%w: denomination %d has count %d", apperrors.ErrInvalidCount, face, count)
		}
	}
	return nil
}

// Total sums face*count over the ledger. Negative counts are rejected; use
// DeductedTotal for running balances that may dip below zero per face.
func (l DenominationLedger) Total() (decimal.Decimal, error) {
	if err := l.Validate(); err != nil {
		return decimal.Zero, err
	}
	return l.DeductedTotal(), nil
}

// DeductedTotal sums face*count without validating, for ledgers produced by
// Deduct.
func (l DenominationLedger) DeductedTotal() decimal.Decimal {
	total := decimal.Zero
	for face, count := range l {
		total = total.Add(decimal.NewFromInt(int64(face)).Mul(decimal.NewFromInt(int64(count))))
	}
	return total
}

// Merge returns a new ledger with the counts of both. Neither receiver nor
// argument is modified.
func (l DenominationLedger) Merge(other DenominationLedger) DenominationLedger {
	out := make(DenominationLedger, len(l)+len(other))
	for face, count := range l {
		out[face] = count
	}
	for face, count := range other {
		out[face] += count
	}
	return out
}

// Deduct returns a new ledger with other's counts subtracted. Per-face counts
// may go negative: an expense can pay out a 500 bill the drawer received as
// five 100s.
func (l DenominationLedger) Deduct(other DenominationLedger) DenominationLedger {
	out := make(DenominationLedger, len(l)+len(other))
	for face, count := range l {
		out[face] = count
	}
	for face, count := range other {
		out[face] -= count
	}
	return out
}

// Equals reports whether both ledgers carry the same counts, treating a
// missing face as zero.
func (l DenominationLedger) Equals(other DenominationLedger) bool {
	for face, count := range l {
		if other[face] != count {
			return false
		}
	}
	for face, count := range other {
		if l[face] != count {
			return false
		}
	}
	return true
}

// Value implements driver.Valuer, serializing the ledger to jsonb. A nil
// ledger stores SQL NULL.
func (l DenominationLedger) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for jsonb columns.
func (l *DenominationLedger) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into DenominationLedger", src)
	}
	return json.Unmarshal(data, l)
}
