package transactions

import (
	"context"

	"github.com/google/uuid"

	"github.com/edupagos/backoffice/internal/pkg/models"
)

// TransactionUC is what the HTTP layer calls.
type TransactionUC interface {
	CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id int64, req models.UpdateTransactionRequest) (*models.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)
	GetTransactionByUUID(ctx context.Context, id uuid.UUID) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
	ListPaid(ctx context.Context, filter models.TransactionFilter) (*models.TransactionPage, error)
	ListUnpaid(ctx context.Context, filter models.TransactionFilter) (*models.TransactionPage, error)
	OverrideFolio(ctx context.Context, id int64, folioValue int64) (*models.Transaction, error)

	AuditFolios(ctx context.Context, req models.FolioAuditRequest) (*models.FolioAuditReport, error)
	ImportFolioRemap(ctx context.Context, campusID int64, rows []models.FolioRemapRow) (*models.FolioImportReport, error)
}
