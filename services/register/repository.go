package register

import (
	"context"

	"github.com/edupagos/backoffice/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/edupagos/backoffice/services/register RegisterRepo

// RegisterRepo is the persistence boundary for cash-register sessions. The
// single-open-session invariant is enforced inside Create's unit of work,
// backed by a partial unique index on (campus_id) WHERE status = 'abierta'.
type RegisterRepo interface {
	// Create opens (or backfills) a session. Returns
	// apperrors.ErrRegisterAlreadyOpen when the campus already has an open
	// one, regardless of concurrency.
	Create(ctx context.Context, reg *models.CashRegister) (*models.CashRegister, error)
	// Close transitions a session to cerrada. Returns
	// apperrors.ErrAlreadyClosed when it already is.
	Close(ctx context.Context, id int64, req models.CloseRegisterRequest) (*models.CashRegister, error)
	// GetByID loads a session with its owned transactions and gastos.
	GetByID(ctx context.Context, id int64) (*models.CashRegister, error)
	// GetActiveByCampus returns the campus's open session fully loaded, or
	// nil when there is none.
	GetActiveByCampus(ctx context.Context, campusID int64) (*models.CashRegister, error)
	// LastClosed returns the campus's most recently closed session, or nil.
	LastClosed(ctx context.Context, campusID int64) (*models.CashRegister, error)
	List(ctx context.Context, campusID *int64) ([]models.CashRegister, error)
	CreateGasto(ctx context.Context, g *models.Gasto) (*models.Gasto, error)
}
