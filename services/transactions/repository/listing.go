package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/edupagos/backoffice/internal/pkg/models"
)

var paidSortFields = map[string]string{
	"folio":        "t.folio",
	"created_at":   "t.created_at",
	"payment_date": "t.payment_date",
}

var unpaidSortFields = map[string]string{
	"folio":           "t.folio",
	"created_at":      "t.created_at",
	"expiration_date": "t.expiration_date",
}

// ListPaid returns one page of a campus's paid transactions with the
// listing filters applied.
func (r *TransactionRepository) ListPaid(ctx context.Context, filter models.TransactionFilter) (*models.TransactionPage, error) {
	return r.list(ctx, filter, true)
}

// ListUnpaid returns one page of a campus's outstanding charges.
func (r *TransactionRepository) ListUnpaid(ctx context.Context, filter models.TransactionFilter) (*models.TransactionPage, error) {
	return r.list(ctx, filter, false)
}

func (r *TransactionRepository) list(ctx context.Context, filter models.TransactionFilter, paid bool) (*models.TransactionPage, error) {
	where := []string{"t.campus_id = $1", "t.paid = $2"}
	args := []interface{}{filter.CampusID, paid}

	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Search != "" {
		// Every whitespace-separated term must match some student name part.
		for _, term := range strings.Fields(filter.Search) {
			p := arg("%" + term + "%")
			where = append(where, fmt.Sprintf(
				"(s.firstname ILIKE %s OR s.lastname ILIKE %s OR s.username ILIKE %s)", p, p, p))
		}
	}

	if filter.Folio != "" {
		p := arg(filter.Folio + "%")
		where = append(where, fmt.Sprintf(
			`(t.folio::text LIKE %s OR t.folio_new LIKE %s OR t.folio_cash::text LIKE %s
			OR t.folio_transfer::text LIKE %s OR t.folio_card::text LIKE %s)`, p, p, p, p, p))
	}

	if filter.PaymentMethod != "" {
		where = append(where, "t.payment_method = "+arg(filter.PaymentMethod))
	}
	if filter.CardID != nil {
		where = append(where, "t.card_id = "+arg(*filter.CardID))
	}

	dateColumn := "t.payment_date"
	if !paid {
		dateColumn = "t.created_at"
	}
	if filter.DateFrom != nil {
		where = append(where, dateColumn+"::date >= "+arg(*filter.DateFrom))
	}
	if filter.DateTo != nil {
		where = append(where, dateColumn+"::date <= "+arg(*filter.DateTo))
	}
	if !paid && filter.ExpirationDate != nil {
		where = append(where, "t.expiration_date::date = "+arg(*filter.ExpirationDate))
	}

	from := `FROM transactions t LEFT JOIN students s ON s.id = t.student_id`
	whereClause := "WHERE " + strings.Join(where, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) " + from + " " + whereClause
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, fmt.Errorf("count transactions: %w", err)
	}

	sortFields := paidSortFields
	defaultSort, defaultDir := "folio", "DESC"
	if !paid {
		sortFields = unpaidSortFields
		defaultSort, defaultDir = "expiration_date", "ASC"
	}
	sortColumn, ok := sortFields[filter.SortBy]
	if !ok {
		sortColumn = sortFields[defaultSort]
	}
	direction := strings.ToUpper(filter.SortDirection)
	if direction != "ASC" && direction != "DESC" {
		direction = defaultDir
	}
	orderBy := fmt.Sprintf("ORDER BY %s %s NULLS LAST", sortColumn, direction)
	if sortColumn != "t.folio" {
		orderBy += ", t.folio DESC NULLS LAST"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	perPage := filter.PerPage
	if perPage < 1 {
		perPage = 10
	}
	limit := arg(perPage)
	offset := arg((page - 1) * perPage)

	selectQuery := fmt.Sprintf(
		"SELECT %s %s %s %s LIMIT %s OFFSET %s",
		qualified(transactionColumns), from, whereClause, orderBy, limit, offset,
	)

	data := []models.Transaction{}
	if err := r.db.SelectContext(ctx, &data, selectQuery, args...); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	return &models.TransactionPage{
		Data:     data,
		Total:    total,
		Page:     page,
		PerPage:  perPage,
		LastPage: lastPage,
	}, nil
}

// qualified prefixes each bare transaction column with the t alias.
func qualified(columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = "t." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
