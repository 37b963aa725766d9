package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/webforge-studio/studio-api/internal/config"
	"github.com/webforge-studio/studio-api/internal/models"
	"github.com/webforge-studio/studio-api/internal/ratelimit"
	"github.com/webforge-studio/studio-api/internal/token"
)

func newAuthRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	h := NewAuthHandler(db, cfg, ratelimit.NewDisabled())

	r := gin.New()
	r.POST("/api/admin/login", h.AdminLogin)
	r.POST("/api/admin/logout", h.AdminLogout)
	r.POST("/api/client/login", h.ClientLogin)
	r.POST("/api/client/logout", h.ClientLogout)
	return r
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("motdepasse-admin"), bcrypt.MinCost)
	require.NoError(t, err)

	return &config.Config{
		Environment:       "test",
		AdminEmail:        "Admin@Studio.fr",
		AdminPasswordHash: string(hash),
		AdminJWTSecret:    "admin-secret-admin-secret",
		ClientJWTSecret:   "client-secret-client-secret",
	}
}

func cookieNamed(w http.Header, name string) *http.Cookie {
	resp := http.Response{Header: w}
	for _, ck := range resp.Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestAdminLogin(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig(t)
	r := newAuthRouter(db, cfg)

	t.Run("success sets cookie, email case-insensitive", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/admin/login",
			`{"email": "ADMIN@studio.FR", "password": "motdepasse-admin"}`)
		require.Equal(t, http.StatusOK, w.Code)

		ck := cookieNamed(w.Header(), token.AdminCookie)
		require.NotNil(t, ck)
		assert.True(t, ck.HttpOnly)

		email, err := token.VerifyAdmin(cfg.AdminJWTSecret, ck.Value)
		require.NoError(t, err)
		assert.Equal(t, "admin@studio.fr", email)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/admin/login",
			`{"email": "admin@studio.fr", "password": "mauvais-motdepasse"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong email", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/admin/login",
			`{"email": "autre@studio.fr", "password": "motdepasse-admin"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unconfigured admin", func(t *testing.T) {
		bare := newAuthRouter(db, &config.Config{
			AdminJWTSecret:  "admin-secret-admin-secret",
			ClientJWTSecret: "client-secret-client-secret",
		})
		w := doJSON(bare, http.MethodPost, "/api/admin/login",
			`{"email": "admin@studio.fr", "password": "motdepasse-admin"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Admin non configuré")
	})
}

func TestAdminLogoutClearsCookie(t *testing.T) {
	db := setupTestDB(t)
	r := newAuthRouter(db, testConfig(t))

	w := doJSON(r, http.MethodPost, "/api/admin/logout", `{}`)
	require.Equal(t, http.StatusOK, w.Code)

	ck := cookieNamed(w.Header(), token.AdminCookie)
	require.NotNil(t, ck)
	assert.Empty(t, ck.Value)
	assert.Negative(t, ck.MaxAge)
}

func TestClientLogin(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig(t)
	r := newAuthRouter(db, cfg)

	hash, err := bcrypt.GenerateFromPassword([]byte("motdepasse-client"), bcrypt.MinCost)
	require.NoError(t, err)

	client := models.Client{
		Name:              "Claire Dubois",
		Email:             "claire@exemple.fr",
		PasswordHash:      string(hash),
		MustResetPassword: true,
	}
	require.NoError(t, db.Create(&client).Error)

	t.Run("success carries mustResetPassword", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/client/login",
			`{"email": "Claire@Exemple.fr", "password": "motdepasse-client"}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"mustResetPassword":true`)

		ck := cookieNamed(w.Header(), token.ClientCookie)
		require.NotNil(t, ck)

		id, err := token.VerifyClient(cfg.ClientJWTSecret, ck.Value)
		require.NoError(t, err)
		assert.Equal(t, client.ID, id)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/client/login",
			`{"email": "claire@exemple.fr", "password": "mauvais-motdepasse"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown account", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/client/login",
			`{"email": "inconnu@exemple.fr", "password": "motdepasse-client"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("short password rejected by validation", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/client/login",
			`{"email": "claire@exemple.fr", "password": "court"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
