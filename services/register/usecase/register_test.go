package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edupagos/backoffice/internal/pkg/apperrors"
	"github.com/edupagos/backoffice/internal/pkg/models"
	"github.com/edupagos/backoffice/services/register/mocks"
)

func decimalPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func newTestUC(t *testing.T) (*RegisterUC, *mocks.MockRegisterRepo, *mocks.MockEventsGW) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRegisterRepo(ctrl)
	events := mocks.NewMockEventsGW(ctrl)
	return NewRegisterUC(&models.Config{}, repo, events), repo, events
}

func TestOpenRegisterFirstSession(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	repo.EXPECT().LastClosed(gomock.Any(), int64(1)).Return(nil, nil)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reg *models.CashRegister) (*models.CashRegister, error) {
			assert.Equal(t, models.RegisterOpen, reg.Status)
			assert.True(t, decimal.NewFromInt(100).Equal(reg.InitialAmount))
			reg.ID = 1
			return reg, nil
		})

	created, err := uc.OpenRegister(context.Background(), models.OpenRegisterRequest{
		CampusID:          1,
		InitialAmount:     decimal.NewFromInt(100),
		InitialAmountCash: models.DenominationLedger{100: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestOpenRegisterCarriesOverNextDay(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	last := &models.CashRegister{
		ID:              7,
		Status:          models.RegisterClosed,
		FinalAmount:     decimalPtr(900),
		FinalAmountCash: models.DenominationLedger{100: 9},
		NextDay:         decimalPtr(200),
		NextDayCash:     models.DenominationLedger{100: 2},
	}
	repo.EXPECT().LastClosed(gomock.Any(), int64(1)).Return(last, nil)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reg *models.CashRegister) (*models.CashRegister, error) {
			// NextDay wins over the counted final amount, and over the
			// request's own opening figures.
			assert.True(t, decimal.NewFromInt(200).Equal(reg.InitialAmount))
			assert.Equal(t, 2, reg.InitialAmountCash[100])
			return reg, nil
		})

	_, err := uc.OpenRegister(context.Background(), models.OpenRegisterRequest{
		CampusID:      1,
		InitialAmount: decimal.NewFromInt(999),
	})
	require.NoError(t, err)
}

func TestOpenRegisterCarriesOverFinalAmount(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	last := &models.CashRegister{
		ID:              7,
		Status:          models.RegisterClosed,
		FinalAmount:     decimalPtr(900),
		FinalAmountCash: models.DenominationLedger{100: 9},
	}
	repo.EXPECT().LastClosed(gomock.Any(), int64(1)).Return(last, nil)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reg *models.CashRegister) (*models.CashRegister, error) {
			assert.True(t, decimal.NewFromInt(900).Equal(reg.InitialAmount))
			assert.Equal(t, 9, reg.InitialAmountCash[100])
			return reg, nil
		})

	_, err := uc.OpenRegister(context.Background(), models.OpenRegisterRequest{CampusID: 1})
	require.NoError(t, err)
}

func TestOpenRegisterAlreadyOpen(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	repo.EXPECT().LastClosed(gomock.Any(), int64(1)).Return(nil, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrRegisterAlreadyOpen)

	_, err := uc.OpenRegister(context.Background(), models.OpenRegisterRequest{CampusID: 1})
	assert.ErrorIs(t, err, apperrors.ErrRegisterAlreadyOpen)
}

func TestOpenRegisterValidation(t *testing.T) {
	uc, _, _ := newTestUC(t)

	_, err := uc.OpenRegister(context.Background(), models.OpenRegisterRequest{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = uc.OpenRegister(context.Background(), models.OpenRegisterRequest{
		CampusID:      1,
		InitialAmount: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestOpenRegisterBackfillSkipsCarryOver(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	// No LastClosed expectation: backfilled sessions keep their own figures.
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, reg *models.CashRegister) (*models.CashRegister, error) {
			assert.Equal(t, models.RegisterClosed, reg.Status)
			assert.True(t, decimal.NewFromInt(50).Equal(reg.InitialAmount))
			return reg, nil
		})

	_, err := uc.OpenRegister(context.Background(), models.OpenRegisterRequest{
		CampusID:      1,
		InitialAmount: decimal.NewFromInt(50),
		Status:        models.RegisterClosed,
	})
	require.NoError(t, err)
}

func TestCloseRegister(t *testing.T) {
	uc, repo, events := newTestUC(t)

	closedAt := time.Now()
	closed := &models.CashRegister{
		ID:       3,
		CampusID: 1,
		Status:   models.RegisterClosed,
		ClosedAt: &closedAt,
	}
	full := &models.CashRegister{
		ID:                3,
		CampusID:          1,
		Status:            models.RegisterClosed,
		ClosedAt:          &closedAt,
		InitialAmount:     decimal.NewFromInt(100),
		InitialAmountCash: models.DenominationLedger{100: 1},
		FinalAmount:       decimalPtr(350),
		Transactions: []models.Transaction{
			{PaymentMethod: models.PaymentCash, Amount: decimal.NewFromInt(250), Paid: true, Denominations: models.DenominationLedger{100: 2, 50: 1}},
		},
	}

	repo.EXPECT().Close(gomock.Any(), int64(3), gomock.Any()).Return(closed, nil)
	repo.EXPECT().GetByID(gomock.Any(), int64(3)).Return(full, nil)
	events.EXPECT().PublishRegisterClosed(gomock.Any(), full).Return(nil)

	detail, err := uc.CloseRegister(context.Background(), 3, models.CloseRegisterRequest{
		FinalAmount:     decimal.NewFromInt(350),
		FinalAmountCash: models.DenominationLedger{100: 3, 50: 1},
	})
	require.NoError(t, err)

	assert.True(t, detail.IsBalanced.Balanced)
	assert.True(t, decimal.NewFromInt(350).Equal(detail.CashBalance))
}

func TestCloseRegisterAlreadyClosed(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	repo.EXPECT().Close(gomock.Any(), int64(3), gomock.Any()).Return(nil, apperrors.ErrAlreadyClosed)

	_, err := uc.CloseRegister(context.Background(), 3, models.CloseRegisterRequest{
		FinalAmount: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyClosed)
}

func TestGetActiveSessionNilWhenNone(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	repo.EXPECT().GetActiveByCampus(gomock.Any(), int64(1)).Return(nil, nil)

	detail, err := uc.GetActiveSession(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestCreateGastoValidation(t *testing.T) {
	uc, _, _ := newTestUC(t)

	_, err := uc.CreateGasto(context.Background(), models.CreateGastoRequest{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = uc.CreateGasto(context.Background(), models.CreateGastoRequest{
		CashRegisterID: 1,
		Concept:        "papeleria",
		Amount:         decimal.Zero,
		Method:         models.PaymentCash,
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateGastoDropsDenominationsForTransfer(t *testing.T) {
	uc, repo, _ := newTestUC(t)

	repo.EXPECT().
		CreateGasto(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g *models.Gasto) (*models.Gasto, error) {
			assert.Nil(t, g.Denominations)
			return g, nil
		})

	_, err := uc.CreateGasto(context.Background(), models.CreateGastoRequest{
		CashRegisterID: 1,
		Concept:        "servicio",
		Amount:         decimal.NewFromInt(40),
		Method:         models.PaymentTransfer,
		Denominations:  models.DenominationLedger{20: 2},
	})
	require.NoError(t, err)
}
