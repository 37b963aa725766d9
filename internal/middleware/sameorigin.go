package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webforge-studio/studio-api/internal/httperr"
)

// SameOrigin rejects mutating requests whose Origin header names a host
// outside the allowed list. Requests without an Origin header pass: they
// come from non-browser clients and the cookie guards still apply.
// An empty allowed list disables the check entirely.
func SameOrigin(allowed []string) gin.HandlerFunc {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, origin := range allowed {
		allowedSet[origin] = struct{}{}
	}

	return func(c *gin.Context) {
		if len(allowedSet) == 0 {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		if _, ok := allowedSet[origin]; !ok {
			httperr.Forbidden(c, "Origine non autorisée")
			c.Abort()
			return
		}

		c.Next()
	}
}
