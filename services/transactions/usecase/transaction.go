package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/edupagos/backoffice/internal/pkg/apperrors"
	"github.com/edupagos/backoffice/internal/pkg/folio"
	"github.com/edupagos/backoffice/internal/pkg/logger"
	"github.com/edupagos/backoffice/internal/pkg/models"
	"github.com/edupagos/backoffice/services/transactions"
)

// TransactionUC implements the transactions.TransactionUC interface
type TransactionUC struct {
	cfg      *models.Config
	repo     transactions.TransactionRepo
	cardRepo transactions.CardRepo
	events   transactions.EventsGW
}

// NewTransactionUC creates a new transaction use case. events may be nil when
// event publishing is disabled.
func NewTransactionUC(
	cfg *models.Config,
	repo transactions.TransactionRepo,
	cardRepo transactions.CardRepo,
	events transactions.EventsGW,
) *TransactionUC {
	return &TransactionUC{
		cfg:      cfg,
		repo:     repo,
		cardRepo: cardRepo,
		events:   events,
	}
}

// CreateTransaction posts a transaction. The folio plan for its paid state
// and method/card is computed here; the repository executes it atomically
// with the insert.
func (uc *TransactionUC) CreateTransaction(ctx context.Context, req models.CreateTransactionRequest) (*models.Transaction, error) {
	if req.StudentID == 0 || req.CampusID == 0 {
		return nil, fmt.Errorf("%w: student_id and campus_id are required", apperrors.ErrValidation)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	if !req.PaymentMethod.Valid() {
		return nil, fmt.Errorf("%w: invalid payment method %q", apperrors.ErrValidation, req.PaymentMethod)
	}
	if req.Denominations != nil {
		if err := req.Denominations.Validate(); err != nil {
			return nil, err
		}
	}

	card, err := uc.resolveCard(ctx, req.CardID)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	transactionType := models.TransactionPayment
	if req.Paid {
		transactionType = models.TransactionIncome
	}
	if req.TransactionType != nil {
		transactionType = *req.TransactionType
	}

	paymentDate := req.PaymentDate
	if paymentDate == nil && req.Paid {
		paymentDate = &now
	}

	expiration := req.ExpirationDate
	if expiration == nil {
		d := now.AddDate(0, 0, uc.cfg.Folio.UnpaidExpirationDays)
		expiration = &d
	}

	t := &models.Transaction{
		UUID:            uuid.New(),
		StudentID:       req.StudentID,
		CampusID:        req.CampusID,
		CashRegisterID:  req.CashRegisterID,
		DebtID:          req.DebtID,
		CardID:          req.CardID,
		TransactionType: transactionType,
		PaymentMethod:   req.PaymentMethod,
		Amount:          req.Amount,
		Paid:            req.Paid,
		PaymentDate:     paymentDate,
		ExpirationDate:  expiration,
		Notes:           req.Notes,
		Image:           req.Image,
		Card:            card,
	}
	if req.PaymentMethod == models.PaymentCash {
		t.Denominations = req.Denominations
	}

	plan := folio.PlanCreate(req.Paid, req.PaymentMethod, card)

	created, err := uc.repo.Create(ctx, t, plan)
	if err != nil {
		return nil, err
	}

	if created.Paid {
		uc.publishPaid(ctx, created)
	}

	return created, nil
}

// UpdateTransaction applies a partial update and re-evaluates folios. Stale
// method-specific folios never survive a method or card change; paid to
// unpaid wipes every folio without recycling the numbers.
func (uc *TransactionUC) UpdateTransaction(ctx context.Context, id int64, req models.UpdateTransactionRequest) (*models.Transaction, error) {
	prev, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *prev

	if req.StudentID != nil {
		merged.StudentID = *req.StudentID
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
		}
		merged.Amount = *req.Amount
	}
	if req.PaymentMethod != nil {
		if !req.PaymentMethod.Valid() {
			return nil, fmt.Errorf("%w: invalid payment method %q", apperrors.ErrValidation, *req.PaymentMethod)
		}
		merged.PaymentMethod = *req.PaymentMethod
	}
	if req.Paid != nil {
		merged.Paid = *req.Paid
	}
	if req.PaymentDate != nil {
		merged.PaymentDate = req.PaymentDate
	}
	if req.Notes != nil {
		merged.Notes = req.Notes
	}
	if req.Image != nil {
		merged.Image = req.Image
	}
	if req.CashRegisterID != nil {
		merged.CashRegisterID = req.CashRegisterID
	}
	if req.CardSet {
		merged.CardID = req.CardID
	}
	if req.Denominations != nil {
		if err := req.Denominations.Validate(); err != nil {
			return nil, err
		}
		merged.Denominations = req.Denominations
	}
	if merged.PaymentMethod != models.PaymentCash {
		merged.Denominations = nil
	}
	if merged.Paid && merged.PaymentDate == nil {
		now := time.Now()
		merged.PaymentDate = &now
	}

	card, err := uc.resolveCard(ctx, merged.CardID)
	if err != nil {
		return nil, err
	}
	merged.Card = card

	plan := folio.PlanUpdate(prev, merged.Paid, merged.PaymentMethod, card, merged.PaymentDate)

	updated, err := uc.repo.Update(ctx, &merged, plan)
	if err != nil {
		return nil, err
	}

	if !prev.Paid && updated.Paid {
		uc.publishPaid(ctx, updated)
	}

	return updated, nil
}

// GetTransaction retrieves a transaction by id.
func (uc *TransactionUC) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	return uc.repo.GetByID(ctx, id)
}

// GetTransactionByUUID retrieves a transaction by its external identifier,
// with its card configuration loaded.
func (uc *TransactionUC) GetTransactionByUUID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	t, err := uc.repo.GetByUUID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.CardID != nil {
		card, err := uc.resolveCard(ctx, t.CardID)
		if err != nil {
			return nil, err
		}
		t.Card = card
	}
	return t, nil
}

// DeleteTransaction removes a transaction.
func (uc *TransactionUC) DeleteTransaction(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// ListPaid returns one page of paid transactions.
func (uc *TransactionUC) ListPaid(ctx context.Context, filter models.TransactionFilter) (*models.TransactionPage, error) {
	if filter.CampusID == 0 {
		return nil, fmt.Errorf("%w: campus_id is required", apperrors.ErrValidation)
	}
	return uc.repo.ListPaid(ctx, filter)
}

// ListUnpaid returns one page of outstanding charges.
func (uc *TransactionUC) ListUnpaid(ctx context.Context, filter models.TransactionFilter) (*models.TransactionPage, error) {
	if filter.CampusID == 0 {
		return nil, fmt.Errorf("%w: campus_id is required", apperrors.ErrValidation)
	}
	return uc.repo.ListUnpaid(ctx, filter)
}

// OverrideFolio manually assigns a general folio value.
func (uc *TransactionUC) OverrideFolio(ctx context.Context, id int64, folioValue int64) (*models.Transaction, error) {
	if folioValue < 1 {
		return nil, fmt.Errorf("%w: folio must be a positive integer", apperrors.ErrValidation)
	}
	return uc.repo.OverrideGeneralFolio(ctx, id, folioValue)
}

func (uc *TransactionUC) resolveCard(ctx context.Context, cardID *int64) (*models.Card, error) {
	if cardID == nil {
		return nil, nil
	}
	return uc.cardRepo.GetByID(ctx, *cardID)
}

func (uc *TransactionUC) publishPaid(ctx context.Context, t *models.Transaction) {
	if uc.events == nil {
		return
	}
	if err := uc.events.PublishTransactionPaid(ctx, t); err != nil {
		logger.Warn("Failed to publish transaction.paid event",
			logger.Int64("transaction_id", t.ID),
			logger.Err(err))
	}
}
