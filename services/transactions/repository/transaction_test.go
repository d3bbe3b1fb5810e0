package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edupagos/backoffice/internal/pkg/apperrors"
	"github.com/edupagos/backoffice/internal/pkg/folio"
	"github.com/edupagos/backoffice/internal/pkg/models"
)

func newTestRepo(t *testing.T) (*TransactionRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewTransactionRepository(&models.Config{}, sqlxDB), mock
}

func TestCreateDrawsSpecificFolio(t *testing.T) {
	repo, mock := newTestRepo(t)

	now := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)
	tr := &models.Transaction{
		UUID:          uuid.New(),
		StudentID:     10,
		CampusID:      1,
		PaymentMethod: models.PaymentCash,
		Amount:        decimal.NewFromInt(250),
		Paid:          true,
		PaymentDate:   &now,
	}
	plan := folio.Plan{AssignSpecific: true, RecomputeDisplay: true}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM cash_registers WHERE campus_id = $1 AND status = 'abierta' LIMIT 1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO folio_counters`)).
		WithArgs(int64(1), "cash", 2026, 3).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(int64(7)))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(99), now, now))
	mock.ExpectCommit()

	created, err := repo.Create(context.Background(), tr, plan)
	require.NoError(t, err)

	assert.Equal(t, int64(99), created.ID)
	require.NotNil(t, created.CashRegisterID)
	assert.Equal(t, int64(3), *created.CashRegisterID)
	require.NotNil(t, created.FolioCash)
	assert.Equal(t, int64(7), *created.FolioCash)
	require.NotNil(t, created.FolioNew)
	assert.Equal(t, "E-032026-7", *created.FolioNew)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUnpaidSkipsCounters(t *testing.T) {
	repo, mock := newTestRepo(t)

	now := time.Now()
	tr := &models.Transaction{
		UUID:          uuid.New(),
		StudentID:     10,
		CampusID:      1,
		PaymentMethod: models.PaymentTransfer,
		Amount:        decimal.NewFromInt(100),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO transactions`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(5), now, now))
	mock.ExpectCommit()

	created, err := repo.Create(context.Background(), tr, folio.Plan{})
	require.NoError(t, err)

	assert.Nil(t, created.Folio)
	assert.Nil(t, created.FolioNew)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateClearAllWipesFolios(t *testing.T) {
	repo, mock := newTestRepo(t)

	now := time.Now()
	folioVal := int64(3)
	cashVal := int64(7)
	display := "E-032026-7"
	tr := &models.Transaction{
		ID:            5,
		StudentID:     10,
		CampusID:      1,
		PaymentMethod: models.PaymentCash,
		Paid:          false,
		Folio:         &folioVal,
		FolioCash:     &cashVal,
		FolioNew:      &display,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE transactions SET`)).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))
	mock.ExpectCommit()

	updated, err := repo.Update(context.Background(), tr, folio.Plan{ClearAll: true})
	require.NoError(t, err)

	assert.Nil(t, updated.Folio)
	assert.Nil(t, updated.FolioCash)
	assert.Nil(t, updated.FolioNew)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRecomputesDisplayForNewPeriod(t *testing.T) {
	repo, mock := newTestRepo(t)

	feb := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	cashVal := int64(7)
	display := "E-012026-7"
	tr := &models.Transaction{
		ID:            5,
		StudentID:     10,
		CampusID:      1,
		PaymentMethod: models.PaymentCash,
		Paid:          true,
		PaymentDate:   &feb,
		FolioCash:     &cashVal,
		FolioNew:      &display,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE transactions SET`)).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(feb))
	mock.ExpectCommit()

	updated, err := repo.Update(context.Background(), tr, folio.Plan{RecomputeDisplay: true})
	require.NoError(t, err)

	// The composite folio follows the payment period, keeping the number.
	require.NotNil(t, updated.FolioNew)
	assert.Equal(t, "E-022026-7", *updated.FolioNew)
	require.NotNil(t, updated.FolioCash)
	assert.Equal(t, int64(7), *updated.FolioCash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateScopeContention(t *testing.T) {
	repo, mock := newTestRepo(t)

	now := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)
	registerID := int64(3)
	tr := &models.Transaction{
		UUID:           uuid.New(),
		StudentID:      10,
		CampusID:       1,
		CashRegisterID: &registerID,
		PaymentMethod:  models.PaymentCash,
		Amount:         decimal.NewFromInt(250),
		Paid:           true,
		PaymentDate:    &now,
	}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO folio_counters`)).
		WillReturnError(&pgconn.PgError{Code: "40001"})
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), tr, folio.Plan{AssignSpecific: true, RecomputeDisplay: true})
	assert.ErrorIs(t, err, apperrors.ErrScopeRace)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM transactions WHERE id = $1`)).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 404)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOverrideFolioUsesCardPrefix(t *testing.T) {
	repo, mock := newTestRepo(t)

	now := time.Date(2026, time.March, 5, 10, 0, 0, 0, time.UTC)
	columns := []string{
		"id", "uuid", "student_id", "campus_id", "cash_register_id", "debt_id",
		"card_id", "transaction_type", "payment_method", "amount", "paid",
		"payment_date", "expiration_date", "notes", "image", "folio",
		"folio_new", "folio_cash", "folio_transfer", "folio_card",
		"denominations", "created_at", "updated_at",
	}
	mock.ExpectQuery(regexp.QuoteMeta(`FROM transactions WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(
			int64(5), uuid.New().String(), int64(10), int64(1), nil, nil,
			int64(3), "income", "card", "120", true,
			now, nil, nil, nil, nil,
			nil, nil, nil, nil,
			nil, now, now,
		))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM cards WHERE id = $1`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "sat", "created_at", "updated_at"}).
			AddRow(int64(3), "Banco X", "BX", false, now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`UPDATE transactions SET folio = $1, folio_new = $2, updated_at = NOW()`)).
		WithArgs(int64(44), "BX-032026-44", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

	updated, err := repo.OverrideGeneralFolio(context.Background(), 5, 44)
	require.NoError(t, err)

	require.NotNil(t, updated.FolioNew)
	assert.Equal(t, "BX-032026-44", *updated.FolioNew)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPeekFolioEmptyScope(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT value FROM folio_counters`)).
		WithArgs(int64(1), "cash", 2026, 3).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	at := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	value, err := repo.PeekFolio(context.Background(), folio.MethodScope(1, models.PaymentCash, at))
	require.NoError(t, err)
	assert.Zero(t, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemapFoliosReportsMisses(t *testing.T) {
	repo, mock := newTestRepo(t)

	rows := []models.FolioRemapRow{
		{Row: 1, OldFolio: 10, CampusID: 1, NewFolio: 100},
		{Row: 2, OldFolio: 11, CampusID: 1, NewFolio: 101},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE transactions SET folio = $1, updated_at = NOW() WHERE folio = $2 AND campus_id = $3`)).
		WithArgs(int64(100), int64(10), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE transactions SET folio = $1, updated_at = NOW() WHERE folio = $2 AND campus_id = $3`)).
		WithArgs(int64(101), int64(11), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	report, err := repo.RemapFolios(context.Background(), 1, rows)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Updated)
	assert.Equal(t, 1, report.NotFound)
	assert.Len(t, report.Errors, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyFolioFixes(t *testing.T) {
	repo, mock := newTestRepo(t)

	after := int64(2)
	fixes := []models.FolioChange{
		{TransactionID: 9, PaymentMethod: models.PaymentCash, After: &after},
		{TransactionID: 11, PaymentMethod: models.PaymentTransfer, After: nil},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE transactions SET folio_cash = $1, updated_at = NOW() WHERE id = $2`)).
		WithArgs(int64(2), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE transactions SET folio_transfer = $1, updated_at = NOW() WHERE id = $2`)).
		WithArgs(nil, int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ApplyFolioFixes(context.Background(), fixes)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
