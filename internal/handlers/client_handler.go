package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/webforge-studio/studio-api/internal/httperr"
	"github.com/webforge-studio/studio-api/internal/httpresp"
	"github.com/webforge-studio/studio-api/internal/middleware"
	"github.com/webforge-studio/studio-api/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type PostMessageRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8,max=200"`
}

func (h *ClientHandler) Me(c *gin.Context) {
	clientID := c.GetString(middleware.ContextClientID)

	var client models.Client
	err := h.db.WithContext(c.Request.Context()).
		Where("id = ?", clientID).
		First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Unauthorized(c, "Session invalide ou expirée")
		return
	}
	if err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}

	httpresp.OK(c, gin.H{"client": client})
}

func (h *ClientHandler) Projects(c *gin.Context) {
	clientID := c.GetString(middleware.ContextClientID)

	var projects []models.ClientProject
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Files").
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}

	httpresp.OK(c, gin.H{"projects": projects})
}

func (h *ClientHandler) Messages(c *gin.Context) {
	clientID := c.GetString(middleware.ContextClientID)

	var messages []models.ClientMessage
	if err := h.db.WithContext(c.Request.Context()).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}

	httpresp.OK(c, gin.H{"messages": messages})
}

func (h *ClientHandler) PostMessage(c *gin.Context) {
	clientID := c.GetString(middleware.ContextClientID)

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Données invalides", httperr.IssuesFromBinding(err))
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		httperr.Validation(c, "Données invalides", httperr.FieldIssue("content", "Champ requis"))
		return
	}

	message := models.ClientMessage{
		ClientID: clientID,
		Content:  content,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&message).Error; err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}

	httpresp.Created(c, gin.H{"message": message})
}

func (h *ClientHandler) ResetPassword(c *gin.Context) {
	clientID := c.GetString(middleware.ContextClientID)

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Données invalides", httperr.IssuesFromBinding(err))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}

	result := h.db.WithContext(c.Request.Context()).
		Model(&models.Client{}).
		Where("id = ?", clientID).
		Updates(map[string]interface{}{
			"password_hash":       string(hash),
			"must_reset_password": false,
		})
	if result.Error != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}
	if result.RowsAffected == 0 {
		httperr.Unauthorized(c, "Session invalide ou expirée")
		return
	}

	httpresp.OK(c, nil)
}
