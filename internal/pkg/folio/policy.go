package folio

import (
	"fmt"
	"time"

	"github.com/edupagos/backoffice/internal/pkg/models"
)

// ShouldGenerateSpecific decides whether a transaction gets a method-specific
// folio instead of the general monthly one. Cash always does. Transfer does
// unless routed through a SAT-flagged card. Card does only when a non-SAT
// card is present. Everything else falls back to the general folio.
func ShouldGenerateSpecific(method models.PaymentMethod, card *models.Card) bool {
	switch method {
	case models.PaymentCash:
		return true
	case models.PaymentTransfer:
		return !(card != nil && card.SAT)
	case models.PaymentCard:
		return card != nil && !card.SAT
	}
	return false
}

// Column returns the transaction column a method-specific folio is written
// to. Explicit dispatch, one column per method.
func Column(method models.PaymentMethod) (string, error) {
	switch method {
	case models.PaymentCash:
		return "folio_cash", nil
	case models.PaymentTransfer:
		return "folio_transfer", nil
	case models.PaymentCard:
		return "folio_card", nil
	}
	return "", fmt.Errorf("no folio column for payment method %q", method)
}

// prefix is the display-folio prefix: E for cash (efectivo), T for transfer,
// the card's own code for card payments (TA when the card has none).
func prefix(method models.PaymentMethod, card *models.Card) string {
	switch method {
	case models.PaymentCash:
		return "E"
	case models.PaymentTransfer:
		return "T"
	case models.PaymentCard:
		if card != nil && card.Code != "" {
			return card.Code
		}
		return "TA"
	}
	return "X"
}

// DisplayFolio composes the human-readable folio_new value from the method
// or card prefix, the payment month/year and the sequence number the
// transaction carries. It consumes no counter of its own and is recomputed
// whenever method, card or payment date change.
func DisplayFolio(method models.PaymentMethod, card *models.Card, at time.Time, seq int64) string {
	return fmt.Sprintf("%s-%02d%04d-%d", prefix(method, card), int(at.Month()), at.Year(), seq)
}

// Plan is the explicit set of folio actions a state change mandates. It
// replaces scattered field-nulling with one total transition function: the
// repository executes exactly what the plan says inside the unit of work.
type Plan struct {
	// ClearAll wipes all five folio fields (paid -> unpaid). Consumed
	// numbers are never recycled.
	ClearAll bool
	// ClearSpecific wipes the three method-specific columns before any
	// reassignment (method or card changed while paid).
	ClearSpecific bool
	// ClearGeneral wipes the general folio (eligibility flipped from
	// general to specific).
	ClearGeneral bool
	// AssignGeneral draws the next number from the campus's general
	// monthly scope into the folio column.
	AssignGeneral bool
	// AssignSpecific draws the next number from the (campus, method)
	// monthly scope into the method's column.
	AssignSpecific bool
	// RecomputeDisplay rewrites folio_new from the resulting numeric folio.
	RecomputeDisplay bool
}

// Empty reports whether the plan touches no folio field.
func (p Plan) Empty() bool {
	return p == Plan{}
}

// PlanCreate decides the folios for a freshly posted transaction.
func PlanCreate(paid bool, method models.PaymentMethod, card *models.Card) Plan {
	if !paid {
		return Plan{}
	}
	p := Plan{RecomputeDisplay: true}
	if ShouldGenerateSpecific(method, card) {
		p.AssignSpecific = true
	} else {
		p.AssignGeneral = true
	}
	return p
}

// PlanUpdate decides the folio actions for an update of an existing
// transaction. prev is the stored row; paid/method/card/paymentDate are the
// resulting state after the partial update is applied. Changes to amount,
// notes or other unrelated fields produce an empty plan.
func PlanUpdate(prev *models.Transaction, paid bool, method models.PaymentMethod, card *models.Card, paymentDate *time.Time) Plan {
	if prev.Paid && !paid {
		return Plan{ClearAll: true}
	}
	if !paid {
		// Unpaid stays unpaid: nothing to assign, nothing to clear.
		return Plan{}
	}

	becamePaid := !prev.Paid && paid
	methodChanged := prev.PaymentMethod != method
	cardChanged := !sameCard(prev.CardID, card)

	if !becamePaid && !methodChanged && !cardChanged {
		if !sameDate(prev.PaymentDate, paymentDate) {
			// The display folio embeds the payment month and year, so a
			// date move rewrites it. The numeric folios stay put.
			return Plan{RecomputeDisplay: true}
		}
		return Plan{}
	}

	p := Plan{RecomputeDisplay: true}
	if methodChanged || cardChanged {
		p.ClearSpecific = true
	}
	if ShouldGenerateSpecific(method, card) {
		p.AssignSpecific = true
	} else if prev.Folio == nil {
		// Falling back to the general sequence only draws a number when
		// the row never had one; an existing general folio is kept.
		p.AssignGeneral = true
	}
	if p.AssignSpecific && prev.Folio == nil {
		// Specific-eligible rows do not carry a general folio; nothing to
		// clear when it was never assigned.
		p.ClearGeneral = false
	} else if p.AssignSpecific && (methodChanged || cardChanged) && prev.Folio != nil {
		p.ClearGeneral = true
	}
	return p
}

func sameCard(prevID *int64, card *models.Card) bool {
	if prevID == nil {
		return card == nil
	}
	return card != nil && card.ID == *prevID
}

func sameDate(prev, next *time.Time) bool {
	if prev == nil || next == nil {
		return prev == nil && next == nil
	}
	return prev.Equal(*next)
}
