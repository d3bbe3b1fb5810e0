package register

import (
	"context"

	"github.com/edupagos/backoffice/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/edupagos/backoffice/services/register EventsGW

// RegisterUC is what the HTTP layer calls.
type RegisterUC interface {
	OpenRegister(ctx context.Context, req models.OpenRegisterRequest) (*models.CashRegister, error)
	CloseRegister(ctx context.Context, id int64, req models.CloseRegisterRequest) (*models.RegisterDetail, error)
	// GetActiveSession returns nil when the campus has no open session.
	GetActiveSession(ctx context.Context, campusID int64) (*models.RegisterDetail, error)
	GetRegister(ctx context.Context, id int64) (*models.RegisterDetail, error)
	ListRegisters(ctx context.Context, campusID *int64) ([]models.CashRegister, error)
	CreateGasto(ctx context.Context, req models.CreateGastoRequest) (*models.Gasto, error)
}

// EventsGW publishes register lifecycle events after commit.
type EventsGW interface {
	PublishRegisterClosed(ctx context.Context, reg *models.CashRegister) error
}
