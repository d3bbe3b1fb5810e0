package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edupagos/backoffice/internal/pkg/apperrors"
	"github.com/edupagos/backoffice/internal/pkg/models"
)

func TestImportFolioRemapRequiresCampus(t *testing.T) {
	uc, _, _, _ := newTestUC(t)

	_, err := uc.ImportFolioRemap(context.Background(), 0, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestImportFolioRemapFiltersBadRows(t *testing.T) {
	uc, repo, _, _ := newTestUC(t)

	rows := []models.FolioRemapRow{
		{Row: 1, OldFolio: 10, CampusID: 1, NewFolio: 100},
		{Row: 2, OldFolio: 0, CampusID: 1, NewFolio: 101},
		{Row: 3, OldFolio: 12, CampusID: 2, NewFolio: 102},
	}

	repo.EXPECT().
		RemapFolios(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, valid []models.FolioRemapRow) (*models.FolioImportReport, error) {
			require.Len(t, valid, 1)
			assert.Equal(t, int64(10), valid[0].OldFolio)
			return &models.FolioImportReport{Updated: 1, Errors: []string{}}, nil
		})

	report, err := uc.ImportFolioRemap(context.Background(), 1, rows)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Updated)
	// Row 2 has a non-positive folio, row 3 belongs to another campus.
	assert.Len(t, report.Errors, 2)
}
