package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/edupagos/backoffice/internal/pkg/apperrors"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// UnprocessableResponse sends a 422 Unprocessable Entity response
func UnprocessableResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusUnprocessableEntity, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// DomainErrorResponse maps a domain error to its HTTP status. Infrastructure
// failures are surfaced generically so internal detail does not leak.
func DomainErrorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidCount):
		return BadRequestResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		return NotFoundResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrRegisterAlreadyOpen), errors.Is(err, apperrors.ErrAlreadyClosed):
		return UnprocessableResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrScopeRace):
		return ErrorResponseHandler(c, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrInfrastructure):
		return InternalServerErrorResponse(c, "")
	}
	return InternalServerErrorResponse(c, err.Error())
}
