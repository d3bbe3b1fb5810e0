package gateway

import (
	"context"
	"time"

	"github.com/edupagos/backoffice/internal/pkg/models"
	"github.com/edupagos/backoffice/internal/pkg/nsq"
)

const topicRegisterClosed = "register.closed"

// RegisterGW publishes cash-register domain events to NSQ.
type RegisterGW struct {
	producer *nsq.Producer
}

// NewRegisterGW creates a new register events gateway
func NewRegisterGW(producer *nsq.Producer) *RegisterGW {
	return &RegisterGW{producer: producer}
}

type registerClosedEvent struct {
	RegisterID  int64      `json:"register_id"`
	CampusID    int64      `json:"campus_id"`
	FinalAmount string     `json:"final_amount"`
	Balanced    bool       `json:"balanced"`
	Discrepancy string     `json:"discrepancy"`
	ClosedAt    *time.Time `json:"closed_at"`
}

// PublishRegisterClosed announces a closed session with its reconciliation
// verdict.
func (g *RegisterGW) PublishRegisterClosed(_ context.Context, reg *models.CashRegister) error {
	check := reg.IsBalanced()

	finalAmount := ""
	if reg.FinalAmount != nil {
		finalAmount = reg.FinalAmount.String()
	}

	return g.producer.Publish(topicRegisterClosed, registerClosedEvent{
		RegisterID:  reg.ID,
		CampusID:    reg.CampusID,
		FinalAmount: finalAmount,
		Balanced:    check.Balanced,
		Discrepancy: check.Discrepancy.String(),
		ClosedAt:    reg.ClosedAt,
	})
}
