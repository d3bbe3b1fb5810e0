package gateway

import (
	"context"
	"time"

	"github.com/edupagos/backoffice/internal/pkg/models"
	"github.com/edupagos/backoffice/internal/pkg/nsq"
)

const topicTransactionPaid = "transaction.paid"

// TransactionGW publishes transaction domain events to NSQ.
type TransactionGW struct {
	producer *nsq.Producer
}

// NewTransactionGW creates a new transaction events gateway
func NewTransactionGW(producer *nsq.Producer) *TransactionGW {
	return &TransactionGW{producer: producer}
}

type transactionPaidEvent struct {
	TransactionID int64     `json:"transaction_id"`
	UUID          string    `json:"uuid"`
	StudentID     int64     `json:"student_id"`
	CampusID      int64     `json:"campus_id"`
	PaymentMethod string    `json:"payment_method"`
	Amount        string    `json:"amount"`
	Folio         *int64    `json:"folio"`
	DisplayFolio  *string   `json:"display_folio"`
	PaidAt        time.Time `json:"paid_at"`
}

// PublishTransactionPaid announces a settled transaction.
func (g *TransactionGW) PublishTransactionPaid(_ context.Context, t *models.Transaction) error {
	paidAt := time.Now()
	if t.PaymentDate != nil {
		paidAt = *t.PaymentDate
	}

	return g.producer.Publish(topicTransactionPaid, transactionPaidEvent{
		TransactionID: t.ID,
		UUID:          t.UUID.String(),
		StudentID:     t.StudentID,
		CampusID:      t.CampusID,
		PaymentMethod: string(t.PaymentMethod),
		Amount:        t.Amount.String(),
		Folio:         t.Folio,
		DisplayFolio:  t.FolioNew,
		PaidAt:        paidAt,
	})
}
