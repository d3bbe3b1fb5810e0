package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/edupagos/backoffice/internal/pkg/apperrors"
	"github.com/edupagos/backoffice/internal/pkg/logger"
	"github.com/edupagos/backoffice/internal/pkg/models"
	"github.com/edupagos/backoffice/services/register"
)

// RegisterUC implements the register.RegisterUC interface
type RegisterUC struct {
	cfg    *models.Config
	repo   register.RegisterRepo
	events register.EventsGW
}

// NewRegisterUC creates a new register use case. events may be nil when event
// publishing is disabled.
func NewRegisterUC(cfg *models.Config, repo register.RegisterRepo, events register.EventsGW) *RegisterUC {
	return &RegisterUC{
		cfg:    cfg,
		repo:   repo,
		events: events,
	}
}

// OpenRegister starts a session for a campus. The opening amount and ledger
// come from the previous closed session's carry-over when one exists; the
// request's values are used only for the campus's first session ever. Backfill
// requests (status cerrada) skip carry-over entirely.
func (uc *RegisterUC) OpenRegister(ctx context.Context, req models.OpenRegisterRequest) (*models.CashRegister, error) {
	if req.CampusID == 0 {
		return nil, fmt.Errorf("%w: campus_id is required", apperrors.ErrValidation)
	}
	if req.InitialAmount.IsNegative() {
		return nil, fmt.Errorf("%w: initial amount must not be negative", apperrors.ErrValidation)
	}
	if req.InitialAmountCash != nil {
		if err := req.InitialAmountCash.Validate(); err != nil {
			return nil, err
		}
	}

	status := req.Status
	if status == "" {
		status = models.RegisterOpen
	}
	if status != models.RegisterOpen && status != models.RegisterClosed {
		return nil, fmt.Errorf("%w: invalid status %q", apperrors.ErrValidation, status)
	}

	reg := &models.CashRegister{
		CampusID:          req.CampusID,
		InitialAmount:     req.InitialAmount,
		InitialAmountCash: req.InitialAmountCash,
		Status:            status,
		Notes:             req.Notes,
	}

	if status == models.RegisterOpen {
		amount, ledger, err := uc.carryOver(ctx, req.CampusID)
		if err != nil {
			return nil, err
		}
		if amount != nil {
			reg.InitialAmount = *amount
			reg.InitialAmountCash = ledger
		}
	}
	if reg.InitialAmountCash == nil {
		reg.InitialAmountCash = models.ZeroLedger()
	}

	created, err := uc.repo.Create(ctx, reg)
	if err != nil {
		return nil, err
	}

	logger.Info("Opened cash register",
		logger.Int64("register_id", created.ID),
		logger.Int64("campus_id", created.CampusID),
		logger.String("initial_amount", created.InitialAmount.String()))

	return created, nil
}

// CloseRegister counts the drawer and closes the session, returning the full
// detail with the reconciliation verdict.
func (uc *RegisterUC) CloseRegister(ctx context.Context, id int64, req models.CloseRegisterRequest) (*models.RegisterDetail, error) {
	if req.FinalAmount.IsNegative() {
		return nil, fmt.Errorf("%w: final amount must not be negative", apperrors.ErrValidation)
	}
	if req.FinalAmountCash != nil {
		if err := req.FinalAmountCash.Validate(); err != nil {
			return nil, err
		}
	}
	if req.NextDayCash != nil {
		if err := req.NextDayCash.Validate(); err != nil {
			return nil, err
		}
	}

	closed, err := uc.repo.Close(ctx, id, req)
	if err != nil {
		return nil, err
	}

	// Reload with owned rows for the reconciliation figures.
	full, err := uc.repo.GetByID(ctx, closed.ID)
	if err != nil {
		return nil, err
	}

	detail := full.Detail()

	logger.Info("Closed cash register",
		logger.Int64("register_id", full.ID),
		logger.Int64("campus_id", full.CampusID),
		logger.Bool("balanced", detail.IsBalanced.Balanced),
		logger.String("discrepancy", detail.IsBalanced.Discrepancy.String()))

	uc.publishClosed(ctx, full)

	return detail, nil
}

// GetActiveSession returns the campus's open session detail, or nil when the
// campus has none.
func (uc *RegisterUC) GetActiveSession(ctx context.Context, campusID int64) (*models.RegisterDetail, error) {
	if campusID == 0 {
		return nil, fmt.Errorf("%w: campus_id is required", apperrors.ErrValidation)
	}
	reg, err := uc.repo.GetActiveByCampus(ctx, campusID)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, nil
	}
	return reg.Detail(), nil
}

// GetRegister returns a session detail by id.
func (uc *RegisterUC) GetRegister(ctx context.Context, id int64) (*models.RegisterDetail, error) {
	reg, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return reg.Detail(), nil
}

// ListRegisters returns sessions newest first, optionally scoped to a campus.
func (uc *RegisterUC) ListRegisters(ctx context.Context, campusID *int64) ([]models.CashRegister, error) {
	return uc.repo.List(ctx, campusID)
}

// CreateGasto posts an expense against an open session.
func (uc *RegisterUC) CreateGasto(ctx context.Context, req models.CreateGastoRequest) (*models.Gasto, error) {
	if req.CashRegisterID == 0 {
		return nil, fmt.Errorf("%w: cash_register_id is required", apperrors.ErrValidation)
	}
	if req.Concept == "" {
		return nil, fmt.Errorf("%w: concept is required", apperrors.ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if !req.Method.Valid() {
		return nil, fmt.Errorf("%w: invalid payment method %q", apperrors.ErrValidation, req.Method)
	}
	if req.Denominations != nil {
		if err := req.Denominations.Validate(); err != nil {
			return nil, err
		}
	}

	g := &models.Gasto{
		CashRegisterID: req.CashRegisterID,
		Concept:        req.Concept,
		Amount:         req.Amount,
		Method:         req.Method,
		Notes:          req.Notes,
	}
	if req.Method == models.PaymentCash {
		g.Denominations = req.Denominations
	}

	return uc.repo.CreateGasto(ctx, g)
}

// carryOver resolves the opening amount from the campus's last closed
// session. NextDay wins when the cashier set one at close, then the counted
// final amount. Returns nil when the campus has no closed session.
func (uc *RegisterUC) carryOver(ctx context.Context, campusID int64) (*decimal.Decimal, models.DenominationLedger, error) {
	last, err := uc.repo.LastClosed(ctx, campusID)
	if err != nil {
		return nil, nil, err
	}
	if last == nil {
		return nil, nil, nil
	}

	if last.NextDay != nil {
		ledger := last.NextDayCash
		if ledger == nil {
			ledger = models.ZeroLedger()
		}
		return last.NextDay, ledger, nil
	}
	if last.FinalAmount != nil {
		ledger := last.FinalAmountCash
		if ledger == nil {
			ledger = models.ZeroLedger()
		}
		return last.FinalAmount, ledger, nil
	}

	zero := decimal.Zero
	return &zero, models.ZeroLedger(), nil
}

func (uc *RegisterUC) publishClosed(ctx context.Context, reg *models.CashRegister) {
	if uc.events == nil {
		return
	}
	if err := uc.events.PublishRegisterClosed(ctx, reg); err != nil {
		logger.Warn("Failed to publish register.closed event",
			logger.Int64("register_id", reg.ID),
			logger.Err(err))
	}
}
