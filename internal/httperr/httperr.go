package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-api/internal/validators"
)

type HTTPError struct {
	Code       string                 `json:"error_code"`
	Message    string                 `json:"message"`
	Violations []validators.Violation `json:"violations,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

// RouteNotFound answers paths no route matches.
func RouteNotFound(c *gin.Context) {
	NotFound(c, CodeRouteNotFound, "Route not found.")
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Unprocessable reports a payload that broke the schema, one entry per
// violated constraint.
func Unprocessable(c *gin.Context, err *validators.ValidationError) {
	c.JSON(http.StatusUnprocessableEntity, HTTPError{
		Code:       "validation_failed",
		Message:    "Request payload failed validation.",
		Violations: err.Violations,
	})
}

func NotConfigured(c *gin.Context) {
	Internal(c, CodeDatabaseNotConfigured, "Database not configured.")
}
