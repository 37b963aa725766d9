package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/webforge-studio/studio-api/internal/config"
	"github.com/webforge-studio/studio-api/internal/httperr"
	"github.com/webforge-studio/studio-api/internal/httpresp"
	"github.com/webforge-studio/studio-api/internal/models"
	"github.com/webforge-studio/studio-api/internal/ratelimit"
	"github.com/webforge-studio/studio-api/internal/token"
)

type AuthHandler struct {
	db      *gorm.DB
	config  *config.Config
	limiter ratelimit.Limiter
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, limiter ratelimit.Limiter) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, limiter: limiter}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=200"`
}

// --------- Helpers ---------

func (h *AuthHandler) gate(c *gin.Context, endpoint string) bool {
	key := endpoint + ":" + ratelimit.ClientIP(c.Request.Header)

	allowed, err := h.limiter.Allow(c.Request.Context(), key)
	if err != nil {
		log.Println("rate limit error:", err)
		return true
	}
	if !allowed {
		httperr.TooManyRequests(c, "Trop de tentatives. Réessayez plus tard.")
		return false
	}
	return true
}

func (h *AuthHandler) writeCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", h.config.IsProduction(), true)
}

// --------- Admin ---------

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	if !h.gate(c, "admin-login") {
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Données invalides", httperr.IssuesFromBinding(err))
		return
	}

	if h.config.AdminEmail == "" || h.config.AdminPasswordHash == "" || h.config.AdminJWTSecret == "" {
		httperr.Internal(c, "Admin non configuré")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != strings.ToLower(h.config.AdminEmail) {
		httperr.Unauthorized(c, "Identifiants invalides")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(h.config.AdminPasswordHash),
		[]byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "Identifiants invalides")
		return
	}

	tok, err := token.SignAdmin(h.config.AdminJWTSecret, email)
	if err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}

	h.writeCookie(c, token.AdminCookie, tok, int(token.AdminTTL.Seconds()))
	httpresp.OK(c, gin.H{"email": email})
}

func (h *AuthHandler) AdminLogout(c *gin.Context) {
	h.writeCookie(c, token.AdminCookie, "", -1)
	httpresp.OK(c, nil)
}

// --------- Client ---------

func (h *AuthHandler) ClientLogin(c *gin.Context) {
	if !h.gate(c, "client-login") {
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Données invalides", httperr.IssuesFromBinding(err))
		return
	}

	if h.config.ClientJWTSecret == "" {
		httperr.Internal(c, "Espace client non configuré")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var client models.Client
	err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", email).
		First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Unauthorized(c, "Identifiants invalides")
		return
	}
	if err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(client.PasswordHash),
		[]byte(req.Password),
	); err != nil {
		httperr.Unauthorized(c, "Identifiants invalides")
		return
	}

	tok, err := token.SignClient(h.config.ClientJWTSecret, client.ID)
	if err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}

	h.writeCookie(c, token.ClientCookie, tok, int(token.ClientTTL.Seconds()))
	httpresp.OK(c, gin.H{
		"clientId":          client.ID,
		"mustResetPassword": client.MustResetPassword,
	})
}

func (h *AuthHandler) ClientLogout(c *gin.Context) {
	h.writeCookie(c, token.ClientCookie, "", -1)
	httpresp.OK(c, nil)
}
