package helper

import (
	"net/http"

	"taskmanager/internal/adapter/http/validation"
	"taskmanager/internal/core/domain"
	"taskmanager/internal/core/model/response"

	"github.com/gin-gonic/gin"
)

func SendSuccess(c *gin.Context, statusCode int, data any, message ...string) {
	response := response.SuccessResponse{
		Data: data,
	}

	if len(message) > 0 && message[0] != "" {
		response.Message = message[0]
	}

	c.JSON(statusCode, response)
}

func SendError(c *gin.Context, statusCode int, code string, errors []response.FieldError, details ...any) {
	errorResponse := response.ErrorResponse{
		Error: response.ResponseError{
			Code:   code,
			Errors: errors,
		},
	}

	if len(details) > 0 {
		errorResponse.Error.Details = details[0]
	}

	c.JSON(statusCode, errorResponse)
}

func SendValidationError(c *gin.Context, err error) {
	validationErrors := validation.FormatValidationErrors(err)
	SendError(c, http.StatusBadRequest, "VALIDATION_ERROR", validationErrors)
}

func SendInternalError(c *gin.Context, message string, details ...any) {
	errors := []response.FieldError{
		{
			Field:   "server",
			Message: message,
		},
	}

	SendError(c, http.StatusInternalServerError, "INTERNAL_ERROR", errors, details...)
}

func SendUnauthorizedError(c *gin.Context, message string) {
	errors := []response.FieldError{
		{
			Field:   "auth",
			Message: message,
		},
	}

	SendError(c, http.StatusUnauthorized, "UNAUTHORIZED", errors)
}

func SendBadRequestError(c *gin.Context, field string, message string) {
	errors := []response.FieldError{
		{
			Field:   field,
			Message: message,
		},
	}

	SendError(c, http.StatusBadRequest, "BAD_REQUEST", errors)
}

func SendNotFoundError(c *gin.Context, message string) {
	errors := []response.FieldError{
		{
			Field:   "resource",
			Message: message,
		},
	}

	SendError(c, http.StatusNotFound, "NOT_FOUND", errors)
}

func SendConflictError(c *gin.Context, message string) {
	errors := []response.FieldError{
		{
			Field:   "resource",
			Message: message,
		},
	}

	SendError(c, http.StatusConflict, "CONFLICT", errors)
}

// SendDomainError maps the typed domain errors onto HTTP status codes.
// Anything untyped is treated as a server fault.
func SendDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidationError(err):
		SendError(c, http.StatusBadRequest, "VALIDATION_ERROR", []response.FieldError{
			{Field: "request", Message: err.Error()},
		})
	case domain.IsNotFoundError(err):
		SendNotFoundError(c, err.Error())
	case domain.IsConflictError(err):
		SendConflictError(c, err.Error())
	case domain.IsAuthenticationError(err):
		SendUnauthorizedError(c, err.Error())
	default:
		SendInternalError(c, "An unexpected error occurred")
	}
}
