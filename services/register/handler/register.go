package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/edupagos/backoffice/internal/pkg/models"
	"github.com/edupagos/backoffice/internal/utils"
	"github.com/edupagos/backoffice/services/register"
)

// RegisterHandler handles HTTP requests for cash-register operations
type RegisterHandler struct {
	registerUC register.RegisterUC
}

// NewRegisterHandler creates a new register handler
func NewRegisterHandler(registerUC register.RegisterUC) *RegisterHandler {
	return &RegisterHandler{
		registerUC: registerUC,
	}
}

// OpenRegister handles session opening requests
func (h *RegisterHandler) OpenRegister(c echo.Context) error {
	var req models.OpenRegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	reg, err := h.registerUC.OpenRegister(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Cash register opened successfully", reg)
}

// CloseRegister handles session closing requests
func (h *RegisterHandler) CloseRegister(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid register ID")
	}

	var req models.CloseRegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	detail, err := h.registerUC.CloseRegister(c.Request().Context(), id, req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Cash register closed successfully", detail)
}

// GetActiveSession handles the current-open-session lookup for a campus
func (h *RegisterHandler) GetActiveSession(c echo.Context) error {
	campusID, err := strconv.ParseInt(c.QueryParam("campus_id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid campus ID")
	}

	detail, err := h.registerUC.GetActiveSession(c.Request().Context(), campusID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}
	if detail == nil {
		return utils.NotFoundResponse(c, "No open cash register for campus")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Cash register retrieved successfully", detail)
}

// GetRegister handles session detail retrieval
func (h *RegisterHandler) GetRegister(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid register ID")
	}

	detail, err := h.registerUC.GetRegister(c.Request().Context(), id)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Cash register retrieved successfully", detail)
}

// ListRegisters handles the session listing
func (h *RegisterHandler) ListRegisters(c echo.Context) error {
	var campusID *int64
	if v := c.QueryParam("campus_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid campus ID")
		}
		campusID = &id
	}

	list, err := h.registerUC.ListRegisters(c.Request().Context(), campusID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Cash registers retrieved successfully", list)
}

// CreateGasto handles expense posting against an open session
func (h *RegisterHandler) CreateGasto(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid register ID")
	}

	var req models.CreateGastoRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	req.CashRegisterID = id

	gasto, err := h.registerUC.CreateGasto(c.Request().Context(), req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Expense recorded successfully", gasto)
}

func pathID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
