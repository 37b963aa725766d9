package handlers

import (
	"errors"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/webforge-studio/studio-api/internal/httperr"
	"github.com/webforge-studio/studio-api/internal/httpresp"
	"github.com/webforge-studio/studio-api/internal/models"
	leaduc "github.com/webforge-studio/studio-api/internal/usecase/lead"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type AdminHandler struct {
	db      *gorm.DB
	approve *leaduc.ApproveWebDesign
}

func NewAdminHandler(db *gorm.DB, approve *leaduc.ApproveWebDesign) *AdminHandler {
	return &AdminHandler{db: db, approve: approve}
}

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

////////////////////////////////////////////////////////
// REQUESTS
////////////////////////////////////////////////////////

func (h *AdminHandler) ListRequests(c *gin.Context) {
	var requests []models.LeadRequest
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}
	httpresp.OK(c, gin.H{"requests": requests})
}

func (h *AdminHandler) GetRequest(c *gin.Context) {
	var req models.LeadRequest
	err := h.db.WithContext(c.Request.Context()).
		Where("id = ?", c.Param("id")).
		First(&req).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "Demande introuvable")
		return
	}
	if err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}
	httpresp.OK(c, gin.H{"request": req})
}

func (h *AdminHandler) ApproveRequest(c *gin.Context) {
	out, err := h.approve.Execute(c.Request.Context(), leaduc.ApproveWebDesignInput{
		RequestID: c.Param("id"),
	})
	switch {
	case httperr.IsBusiness(err, "request_not_found"):
		httperr.NotFound(c, "Demande introuvable")
		return
	case httperr.IsBusiness(err, "not_approvable"):
		httperr.BadRequest(c, "Seules les demandes Web Design peuvent être approuvées")
		return
	case err != nil:
		httperr.Internal(c, "Erreur interne")
		return
	}

	resp := gin.H{"status": out.Request.Status}
	if out.Client != nil {
		resp["clientId"] = out.Client.ID
	}
	httpresp.OK(c, resp)
}

////////////////////////////////////////////////////////
// SECURITY AUDITS
////////////////////////////////////////////////////////

type UpdateAuditStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Nouveau Terminé"`
}

func (h *AdminHandler) ListAudits(c *gin.Context) {
	var audits []models.SecurityAuditRequest
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&audits).Error; err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}
	httpresp.OK(c, gin.H{"audits": audits})
}

func (h *AdminHandler) UpdateAuditStatus(c *gin.Context) {
	var req UpdateAuditStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Données invalides", httperr.IssuesFromBinding(err))
		return
	}

	result := h.db.WithContext(c.Request.Context()).
		Model(&models.SecurityAuditRequest{}).
		Where("id = ?", c.Param("id")).
		Update("status", req.Status)
	if result.Error != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "Demande introuvable")
		return
	}

	httpresp.OK(c, gin.H{"status": req.Status})
}

////////////////////////////////////////////////////////
// CLIENTS
////////////////////////////////////////////////////////

type CreateClientRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required,min=8,max=200"`
}

func (h *AdminHandler) ListClients(c *gin.Context) {
	var clients []models.Client
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&clients).Error; err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}
	httpresp.OK(c, gin.H{"clients": clients})
}

func (h *AdminHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Données invalides", httperr.IssuesFromBinding(err))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.Client{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "Un client existe déjà avec cet email")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}

	client := models.Client{
		Name:              strings.TrimSpace(req.Name),
		Email:             email,
		PasswordHash:      string(hash),
		MustResetPassword: true,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&client).Error; err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}

	httpresp.Created(c, gin.H{"client": client})
}

////////////////////////////////////////////////////////
// PROJECTS / FILES / MESSAGES
////////////////////////////////////////////////////////

type CreateProjectRequest struct {
	ClientID    string `json:"clientId" binding:"required,uuid"`
	Title       string `json:"title" binding:"required,min=2,max=200"`
	Description string `json:"description" binding:"required,min=2,max=2000"`
	Progress    int    `json:"progress" binding:"min=0,max=100"`
}

type AddProjectFileRequest struct {
	ProjectID string `json:"projectId" binding:"required,uuid"`
	Name      string `json:"name" binding:"required,max=200"`
	URL       string `json:"url" binding:"required,url,max=2000"`
}

func (h *AdminHandler) ListProjects(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Preload("Files")

	if clientID := c.Query("clientId"); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}

	var projects []models.ClientProject
	if err := q.Order("created_at DESC").Find(&projects).Error; err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}
	httpresp.OK(c, gin.H{"projects": projects})
}

func (h *AdminHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Données invalides", httperr.IssuesFromBinding(err))
		return
	}

	var count int64
	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.Client{}).
		Where("id = ?", req.ClientID).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}
	if count == 0 {
		httperr.NotFound(c, "Client introuvable")
		return
	}

	project := models.ClientProject{
		ClientID:    req.ClientID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Progress:    req.Progress,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&project).Error; err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}

	httpresp.Created(c, gin.H{"project": project})
}

func (h *AdminHandler) AddProjectFile(c *gin.Context) {
	var req AddProjectFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Données invalides", httperr.IssuesFromBinding(err))
		return
	}

	var count int64
	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.ClientProject{}).
		Where("id = ?", req.ProjectID).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}
	if count == 0 {
		httperr.NotFound(c, "Projet introuvable")
		return
	}

	file := models.ClientProjectFile{
		ProjectID: req.ProjectID,
		Name:      strings.TrimSpace(req.Name),
		URL:       strings.TrimSpace(req.URL),
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&file).Error; err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}

	httpresp.Created(c, gin.H{"file": file})
}

func (h *AdminHandler) ListClientMessages(c *gin.Context) {
	clientID := c.Query("clientId")
	if clientID == "" {
		httperr.BadRequest(c, "clientId requis")
		return
	}

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

////////////////////////////////////////////////////////
// BLOG
////////////////////////////////////////////////////////

type BlogPostInput struct {
	Title     string `json:"title" binding:"required,min=3,max=200"`
	Slug      string `json:"slug" binding:"required,min=3,max=200"`
	Excerpt   string `json:"excerpt" binding:"required,min=10,max=400"`
	Content   string `json:"content" binding:"required,min=20"`
	Published bool   `json:"published"`
}

type BlogPostPatch struct {
	Title     *string `json:"title" binding:"omitempty,min=3,max=200"`
	Slug      *string `json:"slug" binding:"omitempty,min=3,max=200"`
	Excerpt   *string `json:"excerpt" binding:"omitempty,min=10,max=400"`
	Content   *string `json:"content" binding:"omitempty,min=20"`
	Published *bool   `json:"published"`
}

func (h *AdminHandler) ListBlogPosts(c *gin.Context) {
	var posts []models.BlogPost
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}
	httpresp.OK(c, gin.H{"posts": posts})
}

func (h *AdminHandler) CreateBlogPost(c *gin.Context) {
	var req BlogPostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Données invalides", httperr.IssuesFromBinding(err))
		return
	}

	slug := strings.TrimSpace(req.Slug)
	if !slugPattern.MatchString(slug) {
		httperr.Validation(c, "Données invalides", httperr.FieldIssue("slug", "Valeur invalide"))
		return
	}

	var count int64
	if err := h.db.WithContext(c.Request.Context()).
		Model(&models.BlogPost{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "Un article existe déjà avec ce slug")
		return
	}

	post := models.BlogPost{
		Title:     strings.TrimSpace(req.Title),
		Slug:      slug,
		Excerpt:   strings.TrimSpace(req.Excerpt),
		Content:   req.Content,
		Published: req.Published,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&post).Error; err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}

	httpresp.Created(c, gin.H{"post": post})
}

func (h *AdminHandler) UpdateBlogPost(c *gin.Context) {
	var req BlogPostPatch
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Données invalides", httperr.IssuesFromBinding(err))
		return
	}

	var post models.BlogPost
	err := h.db.WithContext(c.Request.Context()).
		Where("id = ?", c.Param("id")).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "Article introuvable")
		return
	}
	if err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}

	if req.Title != nil {
		post.Title = strings.TrimSpace(*req.Title)
	}
	if req.Slug != nil {
		slug := strings.TrimSpace(*req.Slug)
		if !slugPattern.MatchString(slug) {
			httperr.Validation(c, "Données invalides", httperr.FieldIssue("slug", "Valeur invalide"))
			return
		}
		post.Slug = slug
	}
	if req.Excerpt != nil {
		post.Excerpt = strings.TrimSpace(*req.Excerpt)
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Published != nil {
		post.Published = *req.Published
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&post).Error; err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}

	httpresp.OK(c, gin.H{"post": post})
}

func (h *AdminHandler) DeleteBlogPost(c *gin.Context) {
	result := h.db.WithContext(c.Request.Context()).
		Where("id = ?", c.Param("id")).
		Delete(&models.BlogPost{})
	if result.Error != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "Article introuvable")
		return
	}
	httpresp.OK(c, nil)
}

////////////////////////////////////////////////////////
// WEB PROJECTS (portfolio)
////////////////////////////////////////////////////////

type WebProjectInput struct {
	Title       string `json:"title" binding:"required,min=2,max=200"`
	Slug        string `json:"slug" binding:"required,min=3,max=200"`
	Description string `json:"description" binding:"required,min=10,max=2000"`
	ImageURL    string `json:"imageUrl" binding:"required,url,max=2000"`
	SiteURL     string `json:"siteUrl" binding:"required,url,max=2000"`
	Stack       string `json:"stack" binding:"required,min=3,max=400"`
	Result      string `json:"result" binding:"required,min=3,max=800"`
}

func (h *AdminHandler) ListWebProjects(c *gin.Context) {
	var projects []models.WebProject
	if err := h.db.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&projects).Error; err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}
	httpresp.OK(c, gin.H{"projects": projects})
}

func (h *AdminHandler) CreateWebProject(c *gin.Context) {
	var req WebProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Données invalides", httperr.IssuesFromBinding(err))
		return
	}

	slug := strings.TrimSpace(req.Slug)
	if !slugPattern.MatchString(slug) {
		httperr.Validation(c, "Données invalides", httperr.FieldIssue("slug", "Valeur invalide"))
		return
	}

	project := models.WebProject{
		Title:       strings.TrimSpace(req.Title),
		Slug:        slug,
		Description: strings.TrimSpace(req.Description),
		ImageURL:    strings.TrimSpace(req.ImageURL),
		SiteURL:     strings.TrimSpace(req.SiteURL),
		Stack:       strings.TrimSpace(req.Stack),
		Result:      strings.TrimSpace(req.Result),
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&project).Error; err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}

	httpresp.Created(c, gin.H{"project": project})
}

func (h *AdminHandler) UpdateWebProject(c *gin.Context) {
	var req WebProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Données invalides", httperr.IssuesFromBinding(err))
		return
	}

	slug := strings.TrimSpace(req.Slug)
	if !slugPattern.MatchString(slug) {
		httperr.Validation(c, "Données invalides", httperr.FieldIssue("slug", "Valeur invalide"))
		return
	}

	var project models.WebProject
	err := h.db.WithContext(c.Request.Context()).
		Where("id = ?", c.Param("id")).
		First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "Projet introuvable")
		return
	}
	if err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}

	project.Title = strings.TrimSpace(req.Title)
	project.Slug = slug
	project.Description = strings.TrimSpace(req.Description)
	project.ImageURL = strings.TrimSpace(req.ImageURL)
	project.SiteURL = strings.TrimSpace(req.SiteURL)
	project.Stack = strings.TrimSpace(req.Stack)
	project.Result = strings.TrimSpace(req.Result)

	if err := h.db.WithContext(c.Request.Context()).Save(&project).Error; err != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}

	httpresp.OK(c, gin.H{"project": project})
}

func (h *AdminHandler) DeleteWebProject(c *gin.Context) {
	result := h.db.WithContext(c.Request.Context()).
		Where("id = ?", c.Param("id")).
		Delete(&models.WebProject{})
	if result.Error != nil {
		httperr.Internal(c, "Erreur interne")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "Projet introuvable")
		return
	}
	httpresp.OK(c, nil)
}
