package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webforge-studio/studio-api/internal/token"
)

const testSecret = "test-secret-test-secret-123456"

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdmin(t *testing.T) {
	r := gin.New()
	r.GET("/api/admin/ping", RequireAdmin(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString(ContextAdminEmail)})
	})

	t.Run("no cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
		w := perform(r, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authentification requise")
	})

	t.Run("garbage cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
		req.AddCookie(&http.Cookie{Name: token.AdminCookie, Value: "nope"})
		w := perform(r, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("client cookie does not grant admin", func(t *testing.T) {
		tok, err := token.SignClient(testSecret, "client-1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
		req.AddCookie(&http.Cookie{Name: token.AdminCookie, Value: tok})
		w := perform(r, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid cookie", func(t *testing.T) {
		tok, err := token.SignAdmin(testSecret, "admin@studio.fr")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/ping", nil)
		req.AddCookie(&http.Cookie{Name: token.AdminCookie, Value: tok})
		w := perform(r, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "admin@studio.fr")
	})
}

func TestRequireClient(t *testing.T) {
	r := gin.New()
	r.GET("/api/client/ping", RequireClient(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"clientId": c.GetString(ContextClientID)})
	})

	t.Run("no cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/client/ping", nil)
		w := perform(r, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid cookie", func(t *testing.T) {
		tok, err := token.SignClient(testSecret, "client-42")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/client/ping", nil)
		req.AddCookie(&http.Cookie{Name: token.ClientCookie, Value: tok})
		w := perform(r, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "client-42")
	})
}

func TestRequireAdminPageRedirects(t *testing.T) {
	r := gin.New()
	r.GET("/dashboard-admin", RequireAdminPage(testSecret, "/dashboard-admin/login"), func(c *gin.Context) {
		c.String(http.StatusOK, "dashboard")
	})

	t.Run("unauthenticated redirects to login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard-admin", nil)
		w := perform(r, req)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/dashboard-admin/login", w.Header().Get("Location"))
	})

	t.Run("authenticated passes through", func(t *testing.T) {
		tok, err := token.SignAdmin(testSecret, "admin@studio.fr")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/dashboard-admin", nil)
		req.AddCookie(&http.Cookie{Name: token.AdminCookie, Value: tok})
		w := perform(r, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireClientPageRedirects(t *testing.T) {
	r := gin.New()
	r.GET("/client-area", RequireClientPage(testSecret, "/client-area/login"), func(c *gin.Context) {
		c.String(http.StatusOK, "portal")
	})

	t.Run("no cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/client-area", nil)
		w := perform(r, req)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/client-area/login", w.Header().Get("Location"))
	})

	t.Run("wrong secret redirects", func(t *testing.T) {
		tok, err := token.SignClient("another-secret-another-secret", "client-1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/client-area", nil)
		req.AddCookie(&http.Cookie{Name: token.ClientCookie, Value: tok})
		w := perform(r, req)
		assert.Equal(t, http.StatusFound, w.Code)
	})

	t.Run("valid cookie passes", func(t *testing.T) {
		tok, err := token.SignClient(testSecret, "client-1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/client-area", nil)
		req.AddCookie(&http.Cookie{Name: token.ClientCookie, Value: tok})
		w := perform(r, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestSameOrigin(t *testing.T) {
	newRouter := func(allowed []string) *gin.Engine {
		r := gin.New()
		r.Use(SameOrigin(allowed))
		r.POST("/api/contact", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
		r.GET("/api/blog", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
		return r
	}

	t.Run("foreign origin on POST is rejected", func(t *testing.T) {
		r := newRouter([]string{"https://studio.example"})
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := perform(r, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("allowed origin passes", func(t *testing.T) {
		r := newRouter([]string{"https://studio.example"})
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req.Header.Set("Origin", "https://studio.example")
		w := perform(r, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing origin passes", func(t *testing.T) {
		r := newRouter([]string{"https://studio.example"})
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		w := perform(r, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("GET is never blocked", func(t *testing.T) {
		r := newRouter([]string{"https://studio.example"})
		req := httptest.NewRequest(http.MethodGet, "/api/blog", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := perform(r, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("empty list disables the check", func(t *testing.T) {
		r := newRouter(nil)
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req.Header.Set("Origin", "https://anything.example")
		w := perform(r, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
