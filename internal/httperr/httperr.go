package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error envelope shared by every non-2xx response:
// {"error": "...", "issues": [{"path": [...], "message": "..."}]}.
type HTTPError struct {
	Error  string  `json:"error"`
	Issues []Issue `json:"issues,omitempty"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

// Validation is a 400 carrying the field-level issue list verbatim.
func Validation(c *gin.Context, message string, issues []Issue) {
	c.JSON(http.StatusBadRequest, HTTPError{Error: message, Issues: issues})
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Write(c, http.StatusForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func TooManyRequests(c *gin.Context, message string) {
	Write(c, http.StatusTooManyRequests, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}
