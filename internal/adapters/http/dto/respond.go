package dto

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dekman10/stock-lookup/internal/domain"
)

// traceIDKey is the gin context key carrying the request trace ID.
const traceIDKey = "trace_id"

// MapDomainError maps a domain error to an HTTP status code and error response.
// Every domain error carries user-facing text, so the message is passed
// through verbatim. Unknown errors map to 500 with a generic message.
func MapDomainError(err error) (int, *ErrorResponse) {
	if err == nil {
		return http.StatusOK, nil
	}

	switch {
	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())
		// Extract field details if available
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{
				validationErr.Field: validationErr.Message,
			}
		}

		return http.StatusBadRequest, resp

	case domain.IsNoData(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsConnectivity(err):
		return http.StatusServiceUnavailable, NewErrorResponse(ErrorCodeUnavailable, err.Error())

	case domain.IsUpstream(err):
		return http.StatusBadGateway, NewErrorResponse(ErrorCodeBadGateway, err.Error())

	case domain.IsUnknownFetch(err):
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, err.Error())

	default:
		// Unknown errors get a generic message to avoid leaking internals
		return http.StatusInternalServerError, NewErrorResponse(
			ErrorCodeInternal,
			"an internal error occurred",
		)
	}
}

// GetTraceID extracts the trace ID from the gin context, falling back to
// the X-Request-ID header.
func GetTraceID(c *gin.Context) string {
	if v, exists := c.Get(traceIDKey); exists {
		s, ok := v.(string)
		if !ok {
			return ""
		}

		return s
	}

	return c.Request.Header.Get("X-Request-ID")
}

// HandleError maps a domain error to an HTTP response and writes it,
// including the trace ID when one is present.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	resp.TraceID = GetTraceID(c)
	c.JSON(status, resp)
}
