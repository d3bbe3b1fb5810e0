package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edupagos/backoffice/internal/pkg/apperrors"
	"github.com/edupagos/backoffice/internal/pkg/models"
)

func newTestRepo(t *testing.T) (*RegisterRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewRegisterRepository(&models.Config{}, sqlxDB), mock
}

func TestCreateRejectsSecondOpenSession(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM cash_registers WHERE campus_id = $1 AND status = 'abierta' FOR UPDATE`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(8)))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), &models.CashRegister{
		CampusID:      1,
		InitialAmount: decimal.NewFromInt(100),
		Status:        models.RegisterOpen,
	})
	assert.ErrorIs(t, err, apperrors.ErrRegisterAlreadyOpen)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOpensWhenNoneOpen(t *testing.T) {
	repo, mock := newTestRepo(t)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM cash_registers WHERE campus_id = $1 AND status = 'abierta' FOR UPDATE`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO cash_registers`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "opened_at", "closed_at", "created_at", "updated_at"}).
			AddRow(int64(9), now, nil, now, now))
	mock.ExpectCommit()

	created, err := repo.Create(context.Background(), &models.CashRegister{
		CampusID:          1,
		InitialAmount:     decimal.NewFromInt(100),
		InitialAmountCash: models.ZeroLedger(),
		Status:            models.RegisterOpen,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseAlreadyClosed(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM cash_registers WHERE id = $1 FOR UPDATE`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("cerrada"))
	mock.ExpectRollback()

	_, err := repo.Close(context.Background(), 4, models.CloseRegisterRequest{
		FinalAmount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCloseMissingRegister(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM cash_registers WHERE id = $1 FOR UPDATE`)).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"status"}))
	mock.ExpectRollback()

	_, err := repo.Close(context.Background(), 404, models.CloseRegisterRequest{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGastoRejectsClosedRegister(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status, campus_id FROM cash_registers WHERE id = $1 FOR UPDATE`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "campus_id"}).AddRow("cerrada", int64(1)))
	mock.ExpectRollback()

	_, err := repo.CreateGasto(context.Background(), &models.Gasto{
		CashRegisterID: 4,
		Concept:        "papeleria",
		Amount:         decimal.NewFromInt(40),
		Method:         models.PaymentCash,
	})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGastoInsertsAgainstOpenRegister(t *testing.T) {
	repo, mock := newTestRepo(t)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status, campus_id FROM cash_registers WHERE id = $1 FOR UPDATE`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "campus_id"}).AddRow("abierta", int64(2)))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO gastos`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(12), now))
	mock.ExpectCommit()

	g, err := repo.CreateGasto(context.Background(), &models.Gasto{
		CashRegisterID: 4,
		Concept:        "papeleria",
		Amount:         decimal.NewFromInt(40),
		Method:         models.PaymentCash,
		Denominations:  models.DenominationLedger{20: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), g.ID)
	assert.Equal(t, int64(2), g.CampusID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
