package models

import "time"

// Card is a payment card/terminal configuration. The SAT flag marks a card
// routed through fiscal reporting, which suppresses method-specific folio
// generation for its transactions.
type Card struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Code      string    `json:"code" db:"code"`
	SAT       bool      `json:"sat" db:"sat"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
