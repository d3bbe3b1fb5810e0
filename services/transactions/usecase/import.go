package usecase

import (
	"context"
	"fmt"

	"github.com/edupagos/backoffice/internal/pkg/apperrors"
	"github.com/edupagos/backoffice/internal/pkg/models"
)

// ImportFolioRemap rewrites general folios from already-parsed import rows.
// Row-level problems (campus mismatch, non-positive folios, missing rows)
// are collected as diagnostics; the valid rows are applied in one
// all-or-nothing unit of work.
func (uc *TransactionUC) ImportFolioRemap(ctx context.Context, campusID int64, rows []models.FolioRemapRow) (*models.FolioImportReport, error) {
	if campusID == 0 {
		return nil, fmt.Errorf("%w: campus_id is required", apperrors.ErrValidation)
	}

	rowErrors := []string{}
	valid := make([]models.FolioRemapRow, 0, len(rows))

	for _, row := range rows {
		if row.OldFolio < 1 || row.NewFolio < 1 {
			rowErrors = append(rowErrors,
				fmt.Sprintf("Row %d: folios must be positive integers", row.Row))
			continue
		}
		if row.CampusID != campusID {
			rowErrors = append(rowErrors,
				fmt.Sprintf("Row %d: campus ID %d doesn't match selected campus %d", row.Row, row.CampusID, campusID))
			continue
		}
		valid = append(valid, row)
	}

	report, err := uc.repo.RemapFolios(ctx, campusID, valid)
	if err != nil {
		return nil, err
	}

	report.Errors = append(rowErrors, report.Errors...)
	return report, nil
}
