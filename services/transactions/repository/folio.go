package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/edupagos/backoffice/internal/pkg/apperrors"
	"github.com/edupagos/backoffice/internal/pkg/folio"
)

const pgSerializationFailure = "40001"

// nextFolio consumes the next sequence number for a scope inside the
// caller's transaction. The upsert takes a row lock on the scope's counter,
// serializing concurrent writers; if the enclosing transaction rolls back,
// the increment rolls back with it, so aborted units of work leave no gap.
// A serialization failure on the counter maps to ErrScopeRace so callers can
// retry the unit of work.
func nextFolio(ctx context.Context, tx *sqlx.Tx, scope folio.Scope) (int64, error) {
	query := `
		INSERT INTO folio_counters (campus_id, payment_method, year, month, value)
		VALUES ($1, $2, $3, $4, 1)
		ON CONFLICT (campus_id, payment_method, year, month)
		DO UPDATE SET value = folio_counters.value + 1
		RETURNING value
	`

	var value int64
	err := tx.QueryRowContext(ctx, query,
		scope.CampusID,
		string(scope.Method),
		scope.Year,
		int(scope.Month),
	).Scan(&value)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgSerializationFailure {
			return 0, fmt.Errorf("next folio for %s: %w", scope, apperrors.ErrScopeRace)
		}
		return 0, fmt.Errorf("next folio for %s: %w", scope, err)
	}

	return value, nil
}

// PeekFolio returns the scope's current high-water mark without incrementing
// it. Scopes that never issued a number report 0.
func (r *TransactionRepository) PeekFolio(ctx context.Context, scope folio.Scope) (int64, error) {
	query := `
		SELECT value FROM folio_counters
		WHERE campus_id = $1 AND payment_method = $2 AND year = $3 AND month = $4
	`

	var value int64
	err := r.db.QueryRowContext(ctx, query,
		scope.CampusID,
		string(scope.Method),
		scope.Year,
		int(scope.Month),
	).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("peek folio for %s: %w", scope, err)
	}

	return value, nil
}
