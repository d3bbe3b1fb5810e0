package transactions

import (
	"context"

	"github.com/edupagos/backoffice/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/edupagos/backoffice/services/transactions EventsGW

// EventsGW publishes domain events for downstream consumers (fiscal
// reporting, notifications). Publishing happens after the unit of work
// commits; a failed publish is logged, never rolled back.
type EventsGW interface {
	PublishTransactionPaid(ctx context.Context, t *models.Transaction) error
}
