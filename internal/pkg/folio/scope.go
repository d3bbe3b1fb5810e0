// Package folio implements the receipt-number policy: which folio schemes a
// transaction gets, the scope keys their sequences live in, and the explicit
// transition plan applied when a paid transaction's method, card or paid
// state changes.
package folio

import (
	"fmt"
	"time"

	"github.com/edupagos/backoffice/internal/pkg/models"
)

// Scope is the partition a folio sequence is independently numbered in:
// campus x optional payment method x calendar month. An empty Method is the
// general (method-less) monthly sequence. Counters never reset except by
// month rollover and never borrow across campuses.
type Scope struct {
	CampusID int64
	Method   models.PaymentMethod
	Year     int
	Month    time.Month
}

// GeneralScope keys the shared monthly sequence of a campus.
func GeneralScope(campusID int64, at time.Time) Scope {
	return Scope{CampusID: campusID, Year: at.Year(), Month: at.Month()}
}

// MethodScope keys the per-method monthly sequence of a campus.
func MethodScope(campusID int64, method models.PaymentMethod, at time.Time) Scope {
	return Scope{CampusID: campusID, Method: method, Year: at.Year(), Month: at.Month()}
}

// IsGeneral reports whether the scope is the method-less sequence.
func (s Scope) IsGeneral() bool {
	return s.Method == ""
}

// String renders the scope key, useful in logs and errors.
func (s Scope) String() string {
	method := string(s.Method)
	if method == "" {
		method = "general"
	}
	return fmt.Sprintf("campus=%d method=%s period=%04d-%02d", s.CampusID, method, s.Year, int(s.Month))
}
