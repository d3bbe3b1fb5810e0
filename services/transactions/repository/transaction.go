package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/edupagos/backoffice/internal/pkg/apperrors"
	"github.com/edupagos/backoffice/internal/pkg/folio"
	"github.com/edupagos/backoffice/internal/pkg/models"
)

const transactionColumns = `
	id, uuid, student_id, campus_id, cash_register_id, debt_id, card_id,
	transaction_type, payment_method, amount, paid, payment_date,
	expiration_date, notes, image, folio, folio_new, folio_cash,
	folio_transfer, folio_card, denominations, created_at, updated_at
`

// TransactionRepository persists transactions and owns the folio counter
// table. All writes that consume folio numbers run inside a single database
// transaction with the row write.
type TransactionRepository struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(cfg *models.Config, db *sqlx.DB) *TransactionRepository {
	return &TransactionRepository{
		cfg: cfg,
		db:  db,
	}
}

// Create inserts a transaction, executing the folio plan atomically with the
// insert: sequence consumption, register attachment and the linked debt's
// paid flag commit together or roll back together.
func (r *TransactionRepository) Create(ctx context.Context, t *models.Transaction, plan folio.Plan) (*models.Transaction, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: begin transaction: %v", apperrors.ErrInfrastructure, err)
	}
	defer tx.Rollback()

	// Attach to the campus's open register, if any.
	if t.CashRegisterID == nil && t.Paid {
		registerID, err := activeRegisterID(ctx, tx, t.CampusID)
		if err != nil {
			return nil, err
		}
		t.CashRegisterID = registerID
	}

	if err := applyFolioPlan(ctx, tx, t, plan); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO transactions (
			uuid, student_id, campus_id, cash_register_id, debt_id, card_id,
			transaction_type, payment_method, amount, paid, payment_date,
			expiration_date, notes, image, folio, folio_new, folio_cash,
			folio_transfer, folio_card, denominations
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		RETURNING id, created_at, updated_at
	`

	err = tx.QueryRowContext(ctx, query,
		t.UUID,
		t.StudentID,
		t.CampusID,
		t.CashRegisterID,
		t.DebtID,
		t.CardID,
		t.TransactionType,
		t.PaymentMethod,
		t.Amount,
		t.Paid,
		t.PaymentDate,
		t.ExpirationDate,
		t.Notes,
		t.Image,
		t.Folio,
		t.FolioNew,
		t.FolioCash,
		t.FolioTransfer,
		t.FolioCard,
		t.Denominations,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}

	if t.Paid && t.DebtID != nil {
		if err := markDebtPaid(ctx, tx, *t.DebtID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit transaction: %v", apperrors.ErrInfrastructure, err)
	}

	return t, nil
}

// Update persists a merged transaction row, executing the folio plan in the
// same unit of work.
func (r *TransactionRepository) Update(ctx context.Context, t *models.Transaction, plan folio.Plan) (*models.Transaction, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: begin transaction: %v", apperrors.ErrInfrastructure, err)
	}
	defer tx.Rollback()

	if err := applyFolioPlan(ctx, tx, t, plan); err != nil {
		return nil, err
	}

	query := `
		UPDATE transactions SET
			student_id = $1, cash_register_id = $2, debt_id = $3, card_id = $4,
			transaction_type = $5, payment_method = $6, amount = $7, paid = $8,
			payment_date = $9, expiration_date = $10, notes = $11, image = $12,
			folio = $13, folio_new = $14, folio_cash = $15, folio_transfer = $16,
			folio_card = $17, denominations = $18, updated_at = NOW()
		WHERE id = $19
		RETURNING updated_at
	`

	err = tx.QueryRowContext(ctx, query,
		t.StudentID,
		t.CashRegisterID,
		t.DebtID,
		t.CardID,
		t.TransactionType,
		t.PaymentMethod,
		t.Amount,
		t.Paid,
		t.PaymentDate,
		t.ExpirationDate,
		t.Notes,
		t.Image,
		t.Folio,
		t.FolioNew,
		t.FolioCash,
		t.FolioTransfer,
		t.FolioCard,
		t.Denominations,
		t.ID,
	).Scan(&t.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("transaction %d: %w", t.ID, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}

	if t.Paid && t.DebtID != nil {
		if err := markDebtPaid(ctx, tx, *t.DebtID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit transaction: %v", apperrors.ErrInfrastructure, err)
	}

	return t, nil
}

// applyFolioPlan mutates the row's folio fields per the plan, drawing
// sequence numbers inside tx.
func applyFolioPlan(ctx context.Context, tx *sqlx.Tx, t *models.Transaction, plan folio.Plan) error {
	if plan.Empty() {
		return nil
	}

	if plan.ClearAll {
		t.Folio = nil
		t.FolioNew = nil
		t.FolioCash = nil
		t.FolioTransfer = nil
		t.FolioCard = nil
		return nil
	}

	if plan.ClearSpecific {
		t.FolioCash = nil
		t.FolioTransfer = nil
		t.FolioCard = nil
	}
	if plan.ClearGeneral {
		t.Folio = nil
	}

	at := paymentDateOrNow(t)

	if plan.AssignGeneral {
		value, err := nextFolio(ctx, tx, folio.GeneralScope(t.CampusID, at))
		if err != nil {
			return err
		}
		t.Folio = &value
	}

	if plan.AssignSpecific {
		value, err := nextFolio(ctx, tx, folio.MethodScope(t.CampusID, t.PaymentMethod, at))
		if err != nil {
			return err
		}
		switch t.PaymentMethod {
		case models.PaymentCash:
			t.FolioCash = &value
		case models.PaymentTransfer:
			t.FolioTransfer = &value
		case models.PaymentCard:
			t.FolioCard = &value
		default:
			return fmt.Errorf("%w: payment method %q has no folio column", apperrors.ErrValidation, t.PaymentMethod)
		}
	}

	if plan.RecomputeDisplay {
		var seq int64
		if specific := t.SpecificFolio(); specific != nil {
			seq = *specific
		} else if t.Folio != nil {
			seq = *t.Folio
		}
		display := folio.DisplayFolio(t.PaymentMethod, t.Card, at, seq)
		t.FolioNew = &display
	}

	return nil
}

func paymentDateOrNow(t *models.Transaction) time.Time {
	if t.PaymentDate != nil {
		return *t.PaymentDate
	}
	return time.Now()
}

func activeRegisterID(ctx context.Context, tx *sqlx.Tx, campusID int64) (*int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM cash_registers WHERE campus_id = $1 AND status = 'abierta' LIMIT 1`,
		campusID,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup open register: %w", err)
	}
	return &id, nil
}

func markDebtPaid(ctx context.Context, tx *sqlx.Tx, debtID int64) error {
	result, err := tx.ExecContext(ctx, `UPDATE debts SET paid = true WHERE id = $1`, debtID)
	if err != nil {
		return fmt.Errorf("mark debt paid: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark debt paid: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("debt %d: %w", debtID, apperrors.ErrNotFound)
	}
	return nil
}

// GetByID retrieves a transaction by its surrogate id.
func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	var t models.Transaction
	err := r.db.GetContext(ctx, &t, query, id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("transaction %d: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// GetByUUID retrieves a transaction by its external identifier.
func (r *TransactionRepository) GetByUUID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE uuid = $1`

	var t models.Transaction
	err := r.db.GetContext(ctx, &t, query, id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("transaction %s: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get transaction by uuid: %w", err)
	}
	return &t, nil
}

// Delete removes a transaction. Consumed folio numbers are never returned to
// their sequences.
func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("transaction %d: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// OverrideGeneralFolio sets a manually assigned general folio and rewrites
// the display folio to match. The card is loaded so a coded card keeps its
// own prefix in the recomputed value.
func (r *TransactionRepository) OverrideGeneralFolio(ctx context.Context, id int64, folioValue int64) (*models.Transaction, error) {
	t, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.CardID != nil {
		card, err := r.cardForDisplay(ctx, *t.CardID)
		if err != nil {
			return nil, err
		}
		t.Card = card
	}

	at := paymentDateOrNow(t)
	display := folio.DisplayFolio(t.PaymentMethod, t.Card, at, folioValue)

	query := `
		UPDATE transactions SET folio = $1, folio_new = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING updated_at
	`
	if err := r.db.QueryRowContext(ctx, query, folioValue, display, id).Scan(&t.UpdatedAt); err != nil {
		return nil, fmt.Errorf("override folio: %w", err)
	}

	t.Folio = &folioValue
	t.FolioNew = &display
	return t, nil
}

// cardForDisplay fetches a card row for display-folio composition. A dangling
// card reference falls back to the default prefix rather than failing.
func (r *TransactionRepository) cardForDisplay(ctx context.Context, id int64) (*models.Card, error) {
	var card models.Card
	err := r.db.GetContext(ctx, &card,
		`SELECT id, name, code, sat, created_at, updated_at FROM cards WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}
	return &card, nil
}

// ListPaidByMonth returns a campus's paid transactions for one calendar
// month, ascending by creation time.
func (r *TransactionRepository) ListPaidByMonth(ctx context.Context, campusID int64, year, month int) ([]models.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE campus_id = $1
		AND paid = true
		AND EXTRACT(YEAR FROM created_at) = $2
		AND EXTRACT(MONTH FROM created_at) = $3
		ORDER BY created_at ASC
	`

	var list []models.Transaction
	if err := r.db.SelectContext(ctx, &list, query, campusID, year, month); err != nil {
		return nil, fmt.Errorf("list paid transactions for audit: %w", err)
	}
	return list, nil
}

// ApplyFolioFixes writes auditor corrections in a single transaction.
func (r *TransactionRepository) ApplyFolioFixes(ctx context.Context, fixes []models.FolioChange) error {
	if len(fixes) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", apperrors.ErrInfrastructure, err)
	}
	defer tx.Rollback()

	for _, fix := range fixes {
		column, err := folio.Column(fix.PaymentMethod)
		if err != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}

		query := fmt.Sprintf(`UPDATE transactions SET %s = $1, updated_at = NOW() WHERE id = $2`, column)
		if _, err := tx.ExecContext(ctx, query, fix.After, fix.TransactionID); err != nil {
			return fmt.Errorf("apply folio fix for transaction %d: %w", fix.TransactionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit folio fixes: %v", apperrors.ErrInfrastructure, err)
	}
	return nil
}

// RemapFolios rewrites general folios from import rows. The whole batch is
// one transaction: row-level misses are reported, infrastructure failures
// roll everything back.
func (r *TransactionRepository) RemapFolios(ctx context.Context, campusID int64, rows []models.FolioRemapRow) (*models.FolioImportReport, error) {
	report := &models.FolioImportReport{Errors: []string{}}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: begin transaction: %v", apperrors.ErrInfrastructure, err)
	}
	defer tx.Rollback()

	for _, row := range rows {
		result, err := tx.ExecContext(ctx,
			`UPDATE transactions SET folio = $1, updated_at = NOW() WHERE folio = $2 AND campus_id = $3`,
			row.NewFolio, row.OldFolio, campusID,
		)
		if err != nil {
			return nil, fmt.Errorf("remap folio %d: %w", row.OldFolio, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("remap folio %d: %w", row.OldFolio, err)
		}
		if affected == 0 {
			report.NotFound++
			report.Errors = append(report.Errors,
				fmt.Sprintf("Row %d: transaction with folio %d not found in campus %d", row.Row, row.OldFolio, campusID))
			continue
		}
		report.Updated += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit folio remap: %v", apperrors.ErrInfrastructure, err)
	}
	return report, nil
}
