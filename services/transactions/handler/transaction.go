package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/edupagos/backoffice/internal/pkg/models"
	"github.com/edupagos/backoffice/internal/utils"
	"github.com/edupagos/backoffice/services/transactions"
)

// TransactionHandler handles HTTP requests for transaction operations
type TransactionHandler struct {
	transactionUC transactions.TransactionUC
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionUC transactions.TransactionUC) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: transactionUC,
	}
}

// CreateTransaction handles transaction creation requests
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req models.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	created, err := h.transactionUC.CreateTransaction(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Transaction created successfully", created)
}

// UpdateTransaction handles partial transaction updates. The raw body is
// inspected so that an explicit "card_id": null clears the card instead of
// being read as "leave unchanged".
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	var req models.UpdateTransactionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(body, &keys); err == nil {
		_, req.CardSet = keys["card_id"]
	}

	updated, err := h.transactionUC.UpdateTransaction(c.Request().Context(), id, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction updated successfully", updated)
}

// GetTransaction handles transaction retrieval by numeric id
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	t, err := h.transactionUC.GetTransaction(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved successfully", t)
}

// GetTransactionByUUID handles transaction retrieval by external identifier
func (h *TransactionHandler) GetTransactionByUUID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction UUID")
	}

	t, err := h.transactionUC.GetTransactionByUUID(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction retrieved successfully", t)
}

// DeleteTransaction handles transaction deletion requests
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	if err := h.transactionUC.DeleteTransaction(c.Request().Context(), id); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction deleted successfully", nil)
}

// ListPaid handles the paid-transactions listing
func (h *TransactionHandler) ListPaid(c echo.Context) error {
	filter := parseFilter(c)

	page, err := h.transactionUC.ListPaid(c.Request().Context(), filter)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", page)
}

// ListUnpaid handles the outstanding-charges listing
func (h *TransactionHandler) ListUnpaid(c echo.Context) error {
	filter := parseFilter(c)

	page, err := h.transactionUC.ListUnpaid(c.Request().Context(), filter)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transactions retrieved successfully", page)
}

// OverrideFolio handles a manual general-folio assignment
func (h *TransactionHandler) OverrideFolio(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid transaction ID")
	}

	var req struct {
		Folio int64 `json:"folio"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	updated, err := h.transactionUC.OverrideFolio(c.Request().Context(), id, req.Folio)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Folio updated successfully", updated)
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func parseFilter(c echo.Context) models.TransactionFilter {
	campusID, _ := strconv.ParseInt(c.QueryParam("campus_id"), 10, 64)
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	filter := models.TransactionFilter{
		CampusID:      campusID,
		Search:        c.QueryParam("search"),
		Folio:         c.QueryParam("folio"),
		PaymentMethod: models.PaymentMethod(c.QueryParam("payment_method")),
		SortBy:        c.QueryParam("sort_by"),
		SortDirection: c.QueryParam("sort_direction"),
		Page:          page,
		PerPage:       perPage,
	}

	if v := c.QueryParam("card_id"); v != "" {
		if cardID, err := strconv.ParseInt(v, 10, 64); err == nil {
			filter.CardID = &cardID
		}
	}
	if t := parseDate(c.QueryParam("date_from")); t != nil {
		filter.DateFrom = t
	}
	if t := parseDate(c.QueryParam("date_to")); t != nil {
		filter.DateTo = t
	}
	if t := parseDate(c.QueryParam("expiration_date")); t != nil {
		filter.ExpirationDate = t
	}

	return filter
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
