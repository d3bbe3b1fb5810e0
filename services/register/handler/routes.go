package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the cash-register API routes
func (h *RegisterHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/registers", h.OpenRegister)
	e.GET("/registers", h.ListRegisters)
	e.GET("/registers/current", h.GetActiveSession)
	e.GET("/registers/:id", h.GetRegister)
	e.POST("/registers/:id/close", h.CloseRegister)
	e.POST("/registers/:id/gastos", h.CreateGasto)
}
