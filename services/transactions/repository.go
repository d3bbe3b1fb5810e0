package transactions

import (
	"context"

	"github.com/google/uuid"

	"github.com/edupagos/backoffice/internal/pkg/folio"
	"github.com/edupagos/backoffice/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/edupagos/backoffice/services/transactions TransactionRepo,CardRepo

// TransactionRepo is the persistence boundary for transactions. Create and
// Update execute one atomic unit of work: the row write, the folio sequence
// consumption mandated by the plan, the denomination line items and the
// linked debt status all commit together or not at all.
type TransactionRepo interface {
	Create(ctx context.Context, t *models.Transaction, plan folio.Plan) (*models.Transaction, error)
	Update(ctx context.Context, t *models.Transaction, plan folio.Plan) (*models.Transaction, error)
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	GetByUUID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	Delete(ctx context.Context, id int64) error
	ListPaid(ctx context.Context, filter models.TransactionFilter) (*models.TransactionPage, error)
	ListUnpaid(ctx context.Context, filter models.TransactionFilter) (*models.TransactionPage, error)
	OverrideGeneralFolio(ctx context.Context, id int64, folioValue int64) (*models.Transaction, error)

	// ListPaidByMonth returns a campus's paid transactions for one calendar
	// month in ascending creation order, the ordering the auditor replays.
	ListPaidByMonth(ctx context.Context, campusID int64, year, month int) ([]models.Transaction, error)
	// ApplyFolioFixes writes auditor corrections in one all-or-nothing
	// transaction.
	ApplyFolioFixes(ctx context.Context, fixes []models.FolioChange) error
	// RemapFolios rewrites general folios from import rows in one
	// all-or-nothing transaction, reporting per-row misses.
	RemapFolios(ctx context.Context, campusID int64, rows []models.FolioRemapRow) (*models.FolioImportReport, error)

	// PeekFolio returns a scope's high-water mark without consuming it.
	PeekFolio(ctx context.Context, scope folio.Scope) (int64, error)
}

// CardRepo resolves card configurations; implementations may cache since the
// sat flag is read on every folio decision.
type CardRepo interface {
	GetByID(ctx context.Context, id int64) (*models.Card, error)
}
