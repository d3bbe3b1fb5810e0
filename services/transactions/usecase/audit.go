package usecase

import (
	"context"
	"fmt"

	"github.com/edupagos/backoffice/internal/pkg/apperrors"
	"github.com/edupagos/backoffice/internal/pkg/folio"
	"github.com/edupagos/backoffice/internal/pkg/logger"
	"github.com/edupagos/backoffice/internal/pkg/models"
)

// AuditFolios recomputes the expected method-specific folio for every paid
// transaction of a campus month, replaying creation order with fresh
// counters, and reports drift. Fixes are applied in one transaction only
// when dry_run is false; a bad row is recorded and skipped, never aborting
// the batch. The run is idempotent: a clean month reports zero changes.
func (uc *TransactionUC) AuditFolios(ctx context.Context, req models.FolioAuditRequest) (*models.FolioAuditReport, error) {
	if req.CampusID == 0 {
		return nil, fmt.Errorf("%w: campus_id is required", apperrors.ErrValidation)
	}
	if req.Month < 1 || req.Month > 12 {
		return nil, fmt.Errorf("%w: month must be 1-12", apperrors.ErrValidation)
	}
	if req.Year < 2000 {
		return nil, fmt.Errorf("%w: year %d out of range", apperrors.ErrValidation, req.Year)
	}

	report := &models.FolioAuditReport{
		CampusID: req.CampusID,
		Month:    req.Month,
		Year:     req.Year,
		DryRun:   req.DryRun,
		Changes:  []models.FolioChange{},
		Errors:   []string{},
	}

	list, err := uc.repo.ListPaidByMonth(ctx, req.CampusID, req.Year, req.Month)
	if err != nil {
		return nil, err
	}

	counters := map[models.PaymentMethod]int64{}
	cards := map[int64]*models.Card{}

	for i := range list {
		t := &list[i]
		report.TransactionsProcessed++

		if !t.PaymentMethod.Valid() {
			report.Errors = append(report.Errors,
				fmt.Sprintf("transaction %d: unknown payment method %q", t.ID, t.PaymentMethod))
			continue
		}

		var card *models.Card
		if t.CardID != nil {
			cached, ok := cards[*t.CardID]
			if !ok {
				cached, err = uc.cardRepo.GetByID(ctx, *t.CardID)
				if err != nil {
					report.Errors = append(report.Errors,
						fmt.Sprintf("transaction %d: card %d: %v", t.ID, *t.CardID, err))
					continue
				}
				cards[*t.CardID] = cached
			}
			card = cached
		}

		current := t.SpecificFolio()

		// SAT-suppressed and cardless card payments are nulled, not counted.
		if !folio.ShouldGenerateSpecific(t.PaymentMethod, card) {
			if current != nil {
				report.Changes = append(report.Changes, models.FolioChange{
					TransactionID: t.ID,
					Folio:         t.Folio,
					PaymentMethod: t.PaymentMethod,
					Before:        current,
					After:         nil,
				})
			}
			continue
		}

		counters[t.PaymentMethod]++
		expected := counters[t.PaymentMethod]

		if current == nil || *current != expected {
			report.Changes = append(report.Changes, models.FolioChange{
				TransactionID: t.ID,
				Folio:         t.Folio,
				PaymentMethod: t.PaymentMethod,
				Before:        current,
				After:         &expected,
			})
		}
	}

	if !req.DryRun && len(report.Changes) > 0 {
		if err := uc.repo.ApplyFolioFixes(ctx, report.Changes); err != nil {
			return nil, err
		}
		report.FoliosFixed = len(report.Changes)
		logger.Info("Applied folio fixes",
			logger.Int64("campus_id", req.CampusID),
			logger.Int("month", req.Month),
			logger.Int("year", req.Year),
			logger.Int("fixed", report.FoliosFixed))
	}

	return report, nil
}
