package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/edupagos/backoffice/internal/pkg/apperrors"
	"github.com/edupagos/backoffice/internal/pkg/models"
)

const registerColumns = `
	id, campus_id, initial_amount, initial_amount_cash, final_amount,
	final_amount_cash, next_day, next_day_cash, status, notes, opened_at,
	closed_at, created_at, updated_at
`

const pgUniqueViolation = "23505"

// RegisterRepository persists cash-register sessions, their gastos and the
// single-open-per-campus invariant.
type RegisterRepository struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRegisterRepository creates a new register repository
func NewRegisterRepository(cfg *models.Config, db *sqlx.DB) *RegisterRepository {
	return &RegisterRepository{
		cfg: cfg,
		db:  db,
	}
}

// Create opens a session. A locked existence check inside the transaction
// plus the partial unique index on open sessions make concurrent opens for
// the same campus lose deterministically.
func (r *RegisterRepository) Create(ctx context.Context, reg *models.CashRegister) (*models.CashRegister, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: begin transaction: %v", apperrors.ErrInfrastructure, err)
	}
	defer tx.Rollback()

	if reg.Status == models.RegisterOpen {
		var existing int64
		err := tx.QueryRowContext(ctx,
			`SELECT id FROM cash_registers WHERE campus_id = $1 AND status = 'abierta' FOR UPDATE`,
			reg.CampusID,
		).Scan(&existing)
		if err == nil {
			return nil, fmt.Errorf("campus %d has open register %d: %w", reg.CampusID, existing, apperrors.ErrRegisterAlreadyOpen)
		}
		if err != sql.ErrNoRows {
			return nil, fmt.Errorf("check open register: %w", err)
		}
	}

	query := `
		INSERT INTO cash_registers (
			campus_id, initial_amount, initial_amount_cash, status, notes,
			opened_at, closed_at
		) VALUES ($1, $2, $3, $4, $5, NOW(), CASE WHEN $4 = 'cerrada' THEN NOW() END)
		RETURNING id, opened_at, closed_at, created_at, updated_at
	`

	err = tx.QueryRowContext(ctx, query,
		reg.CampusID,
		reg.InitialAmount,
		reg.InitialAmountCash,
		reg.Status,
		reg.Notes,
	).Scan(&reg.ID, &reg.OpenedAt, &reg.ClosedAt, &reg.CreatedAt, &reg.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, fmt.Errorf("campus %d: %w", reg.CampusID, apperrors.ErrRegisterAlreadyOpen)
		}
		return nil, fmt.Errorf("insert cash register: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit cash register: %v", apperrors.ErrInfrastructure, err)
	}

	return reg, nil
}

// Close transitions a session to cerrada. Cerrada is terminal: closing twice
// fails with ErrAlreadyClosed.
func (r *RegisterRepository) Close(ctx context.Context, id int64, req models.CloseRegisterRequest) (*models.CashRegister, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: begin transaction: %v", apperrors.ErrInfrastructure, err)
	}
	defer tx.Rollback()

	var status models.RegisterStatus
	err = tx.QueryRowContext(ctx,
		`SELECT status FROM cash_registers WHERE id = $1 FOR UPDATE`, id,
	).Scan(&status)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("cash register %d: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("lock cash register: %w", err)
	}
	if status == models.RegisterClosed {
		return nil, fmt.Errorf("cash register %d: %w", id, apperrors.ErrAlreadyClosed)
	}

	query := `
		UPDATE cash_registers SET
			final_amount = $1, final_amount_cash = $2, next_day = $3,
			next_day_cash = $4, notes = COALESCE($5, notes),
			status = 'cerrada', closed_at = NOW(), updated_at = NOW()
		WHERE id = $6
		RETURNING ` + registerColumns + `
	`

	var reg models.CashRegister
	err = tx.QueryRowxContext(ctx, query,
		req.FinalAmount,
		req.FinalAmountCash,
		req.NextDay,
		req.NextDayCash,
		req.Notes,
		id,
	).StructScan(&reg)
	if err != nil {
		return nil, fmt.Errorf("close cash register: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit close: %v", apperrors.ErrInfrastructure, err)
	}

	return &reg, nil
}

// GetByID loads a session with the transactions and gastos posted while it
// was open.
func (r *RegisterRepository) GetByID(ctx context.Context, id int64) (*models.CashRegister, error) {
	query := `SELECT ` + registerColumns + ` FROM cash_registers WHERE id = $1`

	var reg models.CashRegister
	err := r.db.GetContext(ctx, &reg, query, id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("cash register %d: %w", id, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get cash register: %w", err)
	}

	if err := r.loadOwned(ctx, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// GetActiveByCampus returns the campus's open session fully loaded, or nil.
func (r *RegisterRepository) GetActiveByCampus(ctx context.Context, campusID int64) (*models.CashRegister, error) {
	query := `
		SELECT ` + registerColumns + `
		FROM cash_registers
		WHERE campus_id = $1 AND status = 'abierta'
		ORDER BY opened_at DESC
		LIMIT 1
	`

	var reg models.CashRegister
	err := r.db.GetContext(ctx, &reg, query, campusID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get active cash register: %w", err)
	}

	if err := r.loadOwned(ctx, &reg); err != nil {
		return nil, err
	}
	return &reg, nil
}

// LastClosed returns the campus's most recently closed session, or nil. Used
// for opening carry-over; the owned rows are not needed.
func (r *RegisterRepository) LastClosed(ctx context.Context, campusID int64) (*models.CashRegister, error) {
	query := `
		SELECT ` + registerColumns + `
		FROM cash_registers
		WHERE campus_id = $1 AND status = 'cerrada'
		ORDER BY closed_at DESC
		LIMIT 1
	`

	var reg models.CashRegister
	err := r.db.GetContext(ctx, &reg, query, campusID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get last closed register: %w", err)
	}
	return &reg, nil
}

// List returns sessions newest first, optionally scoped to a campus.
func (r *RegisterRepository) List(ctx context.Context, campusID *int64) ([]models.CashRegister, error) {
	query := `SELECT ` + registerColumns + ` FROM cash_registers`
	args := []interface{}{}
	if campusID != nil {
		query += ` WHERE campus_id = $1`
		args = append(args, *campusID)
	}
	query += ` ORDER BY created_at DESC`

	list := []models.CashRegister{}
	if err := r.db.SelectContext(ctx, &list, query, args...); err != nil {
		return nil, fmt.Errorf("list cash registers: %w", err)
	}
	return list, nil
}

// CreateGasto posts an expense against an open session.
func (r *RegisterRepository) CreateGasto(ctx context.Context, g *models.Gasto) (*models.Gasto, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: begin transaction: %v", apperrors.ErrInfrastructure, err)
	}
	defer tx.Rollback()

	var status models.RegisterStatus
	var campusID int64
	err = tx.QueryRowContext(ctx,
		`SELECT status, campus_id FROM cash_registers WHERE id = $1 FOR UPDATE`,
		g.CashRegisterID,
	).Scan(&status, &campusID)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("cash register %d: %w", g.CashRegisterID, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("lock cash register: %w", err)
	}
	if status == models.RegisterClosed {
		return nil, fmt.Errorf("cash register %d: %w", g.CashRegisterID, apperrors.ErrAlreadyClosed)
	}
	g.CampusID = campusID

	query := `
		INSERT INTO gastos (cash_register_id, campus_id, concept, amount, method, denominations, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err = tx.QueryRowContext(ctx, query,
		g.CashRegisterID,
		g.CampusID,
		g.Concept,
		g.Amount,
		g.Method,
		g.Denominations,
		g.Notes,
	).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert gasto: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit gasto: %v", apperrors.ErrInfrastructure, err)
	}
	return g, nil
}

func (r *RegisterRepository) loadOwned(ctx context.Context, reg *models.CashRegister) error {
	transactionsQuery := `
		SELECT id, uuid, student_id, campus_id, cash_register_id, debt_id, card_id,
			transaction_type, payment_method, amount, paid, payment_date,
			expiration_date, notes, image, folio, folio_new, folio_cash,
			folio_transfer, folio_card, denominations, created_at, updated_at
		FROM transactions
		WHERE cash_register_id = $1
		ORDER BY created_at ASC
	`
	reg.Transactions = []models.Transaction{}
	if err := r.db.SelectContext(ctx, &reg.Transactions, transactionsQuery, reg.ID); err != nil {
		return fmt.Errorf("load register transactions: %w", err)
	}

	gastosQuery := `
		SELECT id, cash_register_id, campus_id, concept, amount, method, denominations, notes, created_at
		FROM gastos
		WHERE cash_register_id = $1
		ORDER BY created_at ASC
	`
	reg.Gastos = []models.Gasto{}
	if err := r.db.SelectContext(ctx, &reg.Gastos, gastosQuery, reg.ID); err != nil {
		return fmt.Errorf("load register gastos: %w", err)
	}

	return nil
}
