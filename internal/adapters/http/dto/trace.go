package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quoteboard/internal/domain"
)

// GetTraceID extracts the trace ID for the current request. The value set
// by the tracing middleware takes precedence over the inbound request header.
func GetTraceID(c *gin.Context) string {
	if v, exists := c.Get("trace_id"); exists {
		if traceID, ok := v.(string); ok {
			return traceID
		}
	}

	return c.GetHeader("X-Request-ID")
}

// HandleError maps a domain error to an HTTP error response and writes it.
// Unknown errors are reported with a generic message to avoid leaking
// internals to clients.
func HandleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := ErrorCodeInternal
	message := "an internal error occurred"

	var details map[string]string

	switch {
	case domain.IsNotFound(err):
		status = http.StatusNotFound
		code = ErrorCodeNotFound
		message = err.Error()

	case domain.IsConflict(err):
		status = http.StatusConflict
		code = ErrorCodeConflict
		message = err.Error()

	case domain.IsValidation(err):
		status = http.StatusBadRequest
		code = ErrorCodeValidation
		message = err.Error()

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}

	case domain.IsForbidden(err):
		status = http.StatusForbidden
		code = ErrorCodeForbidden
		message = err.Error()

	case domain.IsUnavailable(err):
		status = http.StatusServiceUnavailable
		code = ErrorCodeUnavailable
		message = "service temporarily unavailable"
	}

	resp := NewErrorResponseWithDetails(code, message, details)
	c.JSON(status, resp.WithTraceID(GetTraceID(c)))
}
