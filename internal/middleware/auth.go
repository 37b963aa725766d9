package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webforge-studio/studio-api/internal/httperr"
	"github.com/webforge-studio/studio-api/internal/token"
)

const (
	ContextAdminEmail = "adminEmail"
	ContextClientID   = "clientID"
)

// RequireAdmin guards /api routes with the admin cookie. Failures answer
// 401 JSON; page routes use RequireAdminPage instead.
func RequireAdmin(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, err := c.Cookie(token.AdminCookie)
		if err != nil || tok == "" {
			httperr.Unauthorized(c, "Authentification requise")
			c.Abort()
			return
		}

		email, err := token.VerifyAdmin(secret, tok)
		if err != nil {
			httperr.Unauthorized(c, "Session invalide ou expirée")
			c.Abort()
			return
		}

		c.Set(ContextAdminEmail, email)
		c.Next()
	}
}

func RequireClient(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, err := c.Cookie(token.ClientCookie)
		if err != nil || tok == "" {
			httperr.Unauthorized(c, "Authentification requise")
			c.Abort()
			return
		}

		clientID, err := token.VerifyClient(secret, tok)
		if err != nil {
			httperr.Unauthorized(c, "Session invalide ou expirée")
			c.Abort()
			return
		}

		c.Set(ContextClientID, clientID)
		c.Next()
	}
}

// RequireAdminPage is the page-route variant: no valid cookie means a
// redirect to the login page rather than a JSON 401.
func RequireAdminPage(secret, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, err := c.Cookie(token.AdminCookie)
		if err == nil && tok != "" {
			if email, verr := token.VerifyAdmin(secret, tok); verr == nil {
				c.Set(ContextAdminEmail, email)
				c.Next()
				return
			}
		}

		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
	}
}

func RequireClientPage(secret, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tok, err := c.Cookie(token.ClientCookie)
		if err == nil && tok != "" {
			if clientID, verr := token.VerifyClient(secret, tok); verr == nil {
				c.Set(ContextClientID, clientID)
				c.Next()
				return
			}
		}

		c.Redirect(http.StatusFound, loginPath)
		c.Abort()
	}
}
