// Package httpx holds the gin middleware shared by both HTTP services:
// request ids, access logging, panic recovery, the JSON error envelope,
// bearer-token authorization and request validation.
package httpx

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/moviecategories/internal/common"
	"github.com/dmitrijs2005/moviecategories/internal/logging"
	"github.com/gin-gonic/gin"
)

const (
	msgUnexpected   = "An unexpected error occurred."
	msgUnauthorized = "Unauthorized"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	StatusCode int                 `json:"statusCode"`
	Message    string              `json:"message"`
	Detailed   string              `json:"detailed"`
	Errors     map[string][]string `json:"errors,omitempty"`
}

// ErrorHandler renders the last error attached to the gin context as an
// ErrorResponse. Details are only included when development is true.
func ErrorHandler(logger logging.Logger, development bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		resp := toResponse(err)

		if resp.StatusCode >= http.StatusInternalServerError {
			logger.Error(c.Request.Context(), "request failed", "error", err.Error(), "path", c.Request.URL.Path)
		} else {
			logger.Warn(c.Request.Context(), "request rejected", "error", err.Error(), "status", resp.StatusCode)
		}

		if !development {
			resp.Detailed = ""
		}
		c.AbortWithStatusJSON(resp.StatusCode, resp)
	}
}

func toResponse(err error) ErrorResponse {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return ErrorResponse{
			StatusCode: http.StatusBadRequest,
			Message:    verr.Message,
			Detailed:   verr.Error(),
			Errors:     verr.Fields,
		}
	}

	var serr *common.StatusError
	if errors.As(err, &serr) {
		return ErrorResponse{StatusCode: serr.Code, Message: serr.Message, Detailed: serr.Details}
	}

	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		return ErrorResponse{StatusCode: http.StatusUnauthorized, Message: msgUnauthorized}
	case errors.Is(err, common.ErrorNotFound):
		return ErrorResponse{StatusCode: http.StatusNotFound, Message: "Not Found"}
	}

	return ErrorResponse{StatusCode: http.StatusInternalServerError, Message: msgUnexpected, Detailed: err.Error()}
}

// Abort writes an ErrorResponse immediately, for middleware that stops the
// chain before any handler runs.
func Abort(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorResponse{StatusCode: code, Message: message})
}
