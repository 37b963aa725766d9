package handlers

import (
	"bytes"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gorm.io/gorm"

	"github.com/webforge-studio/studio-api/internal/httperr"
	"github.com/webforge-studio/studio-api/internal/httpresp"
	"github.com/webforge-studio/studio-api/internal/models"
)

type PublicHandler struct {
	db       *gorm.DB
	markdown goldmark.Markdown
}

func NewPublicHandler(db *gorm.DB) *PublicHandler {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return &PublicHandler{db: db, markdown: md}
}

func (h *PublicHandler) ListBlogPosts(c *gin.Context) {
	var posts []models.BlogPost
	if err := h.db.WithContext(c.Request.Context()).
		Select("id", "title", "slug", "excerpt", "created_at").
		Where("published = ?", true).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}

	httpresp.OK(c, gin.H{"posts": posts})
}

func (h *PublicHandler) GetBlogPost(c *gin.Context) {
	var post models.BlogPost
	err := h.db.WithContext(c.Request.Context()).
		Where("slug = ? AND published = ?", c.Param("slug"), true).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "Article introuvable")
		return
	}
	if err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}

	var buf bytes.Buffer
	if err := h.markdown.Convert([]byte(post.Content), &buf); err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}

	httpresp.OK(c, gin.H{
		"post":        post,
		"contentHtml": buf.String(),
	})
}

func (h *PublicHandler) ListWebProjects(c *gin.Context) {
	var projects []models.WebProject
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}

	httpresp.OK(c, gin.H{"projects": projects})
}
