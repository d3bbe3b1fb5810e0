package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the transaction API routes
func (h *TransactionHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/transactions", h.CreateTransaction)
	e.GET("/transactions", h.ListPaid)
	e.GET("/transactions/unpaid", h.ListUnpaid)
	e.GET("/transactions/uuid/:uuid", h.GetTransactionByUUID)
	e.GET("/transactions/:id", h.GetTransaction)
	e.PATCH("/transactions/:id", h.UpdateTransaction)
	e.DELETE("/transactions/:id", h.DeleteTransaction)
	e.PUT("/transactions/:id/folio", h.OverrideFolio)

	e.POST("/folios/audit", h.AuditFolios)
	e.POST("/folios/import", h.ImportFolios)
}
