package handler

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/edupagos/backoffice/internal/pkg/models"
	"github.com/edupagos/backoffice/internal/utils"
)

// AuditFolios handles a folio audit run for a campus month
func (h *TransactionHandler) AuditFolios(c echo.Context) error {
	var req models.FolioAuditRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	report, err := h.transactionUC.AuditFolios(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Folio audit completed", report)
}

// ImportFolios handles a CSV folio remap upload. The file carries one row per
// remap: old_folio, campus_id, new_folio. A header row is skipped when the
// first field is not numeric.
func (h *TransactionHandler) ImportFolios(c echo.Context) error {
	campusID, err := strconv.ParseInt(c.FormValue("campus_id"), 10, 64)
	if err != nil || campusID == 0 {
		return utils.BadRequestResponse(c, "Invalid campus ID")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequestResponse(c, "Missing CSV file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.BadRequestResponse(c, "Unable to read CSV file")
	}
	defer file.Close()

	rows, parseErrors := parseRemapCSV(csv.NewReader(file))

	report, err := h.transactionUC.ImportFolioRemap(c.Request().Context(), campusID, rows)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	report.Errors = append(parseErrors, report.Errors...)

	return utils.SuccessResponse(c, http.StatusOK, "Folio import completed", report)
}

func parseRemapCSV(r *csv.Reader) ([]models.FolioRemapRow, []string) {
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	rows := []models.FolioRemapRow{}
	errs := []string{}
	line := 0

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++

		if err != nil {
			errs = append(errs, fmt.Sprintf("Row %d: %v", line, err))
			continue
		}
		if len(record) < 3 {
			errs = append(errs, fmt.Sprintf("Row %d: expected 3 columns, got %d", line, len(record)))
			continue
		}

		oldFolio, err := strconv.ParseInt(strings.TrimSpace(record[0]), 10, 64)
		if err != nil {
			if line == 1 {
				// Header row.
				continue
			}
			errs = append(errs, fmt.Sprintf("Row %d: invalid old folio %q", line, record[0]))
			continue
		}
		rowCampus, err := strconv.ParseInt(strings.TrimSpace(record[1]), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Row %d: invalid campus ID %q", line, record[1]))
			continue
		}
		newFolio, err := strconv.ParseInt(strings.TrimSpace(record[2]), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Sprintf("Row %d: invalid new folio %q", line, record[2]))
			continue
		}

		rows = append(rows, models.FolioRemapRow{
			Row:      line,
			OldFolio: oldFolio,
			CampusID: rowCampus,
			NewFolio: newFolio,
		})
	}

	return rows, errs
}
