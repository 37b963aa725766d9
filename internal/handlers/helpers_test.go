package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/webforge-studio/studio-api/internal/httperr"
	"github.com/webforge-studio/studio-api/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
	httperr.RegisterJSONTagNames()
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.LeadRequest{},
		&models.SecurityAuditRequest{},
		&models.Client{},
		&models.ClientProject{},
		&models.ClientProjectFile{},
		&models.ClientMessage{},
		&models.BlogPost{},
		&models.WebProject{},
	))

	return db
}

func doJSON(r *gin.Engine, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
