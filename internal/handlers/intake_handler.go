package handlers

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/webforge-studio/studio-api/internal/domain/lead"
	"github.com/webforge-studio/studio-api/internal/httperr"
	"github.com/webforge-studio/studio-api/internal/httpresp"
	"github.com/webforge-studio/studio-api/internal/mail"
	"github.com/webforge-studio/studio-api/internal/models"
	"github.com/webforge-studio/studio-api/internal/quote"
	"github.com/webforge-studio/studio-api/internal/ratelimit"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type IntakeHandler struct {
	db      *gorm.DB
	limiter ratelimit.Limiter
	mail    *mail.Dispatcher
}

func NewIntakeHandler(db *gorm.DB, limiter ratelimit.Limiter, mailer *mail.Dispatcher) *IntakeHandler {
	return &IntakeHandler{
		db:      db,
		limiter: limiter,
		mail:    mailer,
	}
}

// gate applies the per-endpoint rate limit. A limiter failure lets the
// request through: losing a lead to a redis hiccup is worse than letting
// a few extra submissions in.
func (h *IntakeHandler) gate(c *gin.Context, endpoint string) bool {
	key := endpoint + ":" + ratelimit.ClientIP(c.Request.Header)

	allowed, err := h.limiter.Allow(c.Request.Context(), key)
	if err != nil {
		log.Println("rate limit error:", err)
		return true
	}
	if !allowed {
		httperr.TooManyRequests(c, "Trop de demandes. Réessayez plus tard.")
		return false
	}
	return true
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type ContactRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Email       string `json:"email" binding:"required,email,max=200"`
	Phone       string `json:"phone" binding:"omitempty,min=6,max=40"`
	RequestType string `json:"requestType" binding:"required,min=2,max=80"`
	Budget      string `json:"budget" binding:"required,max=80"`
	Description string `json:"description" binding:"required,min=10,max=4000"`
	RGPD        *bool  `json:"rgpd" binding:"required"`
	HP          string `json:"hp"`
}

type QuoteRequest struct {
	Name      string        `json:"name" binding:"required,min=2,max=100"`
	Email     string        `json:"email" binding:"required,email,max=200"`
	SiteType  string        `json:"siteType" binding:"required,oneof=vitrine ecommerce sur-mesure"`
	PageCount int           `json:"pageCount" binding:"required,min=1,max=50"`
	Options   quote.Options `json:"options"`
	RGPD      *bool         `json:"rgpd" binding:"required"`
	HP        string        `json:"hp"`
}

type AuditRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Email       string `json:"email" binding:"required,email,max=200"`
	WebsiteURL  string `json:"websiteUrl" binding:"required,url,max=500"`
	Description string `json:"description" binding:"required,min=10,max=4000"`
	RGPD        *bool  `json:"rgpd" binding:"required"`
	HP          string `json:"hp"`
}

type WebDesignBranding struct {
	PrimaryColor   string `json:"primaryColor" binding:"required,max=30"`
	SecondaryColor string `json:"secondaryColor" binding:"required,max=30"`
	LogoFileName   string `json:"logoFileName" binding:"omitempty,max=200"`
	LogoDataURL    string `json:"logoDataUrl" binding:"omitempty,max=900000"`
}

type WebDesignEstimate struct {
	Min int `json:"min" binding:"min=0,max=5000"`
	Max int `json:"max" binding:"min=0,max=5000"`
}

type WebDesignRequest struct {
	Name        string            `json:"name" binding:"required,min=2,max=100"`
	Email       string            `json:"email" binding:"required,email,max=200"`
	Phone       string            `json:"phone" binding:"omitempty,min=6,max=40"`
	WebsiteType string            `json:"websiteType" binding:"required,oneof=business ecommerce custom"`
	PageCount   int               `json:"pageCount" binding:"required,min=1,max=50"`
	Options     quote.WebOptions  `json:"options"`
	Branding    WebDesignBranding `json:"branding"`
	Stack       string            `json:"stack" binding:"required,max=60"`
	Message     string            `json:"message" binding:"max=4000"`
	Estimate    WebDesignEstimate `json:"estimate"`
	RGPD        *bool             `json:"rgpd" binding:"required"`
	HP          string            `json:"hp"`
}

////////////////////////////////////////////////////////
// CONTACT
////////////////////////////////////////////////////////

func (h *IntakeHandler) Contact(c *gin.Context) {
	if !h.gate(c, "contact") {
		return
	}

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Données invalides", httperr.IssuesFromBinding(err))
		return
	}

	// Bots fill the hidden field. Pretend everything went fine.
	if req.HP != "" {
		httpresp.OK(c, nil)
		return
	}

	if !*req.RGPD {
		httperr.Validation(c, "Consentement requis", httperr.FieldIssue("rgpd", "Consentement requis"))
		return
	}

	lead := models.LeadRequest{
		Name:        strings.TrimSpace(req.Name),
		Email:       normalizeEmail(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Source:      string(domain.SourceContact),
		RequestType: strings.TrimSpace(req.RequestType),
		Budget:      strings.TrimSpace(req.Budget),
		Description: strings.TrimSpace(req.Description),
		Status:      string(domain.StatusNew),
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&lead).Error; err != nil {
		httperr.Internal(c, "Enregistrement impossible")
		return
	}

	httpresp.Created(c, gin.H{"id": lead.ID})
}

////////////////////////////////////////////////////////
// DEVIS
////////////////////////////////////////////////////////

func (h *IntakeHandler) Quote(c *gin.Context) {
	if !h.gate(c, "devis") {
		return
	}

	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Données invalides", httperr.IssuesFromBinding(err))
		return
	}

	if req.HP != "" {
		httpresp.OK(c, nil)
		return
	}

	if !*req.RGPD {
		httperr.Validation(c, "Consentement requis", httperr.FieldIssue("rgpd", "Consentement requis"))
		return
	}

	estimate := quote.EstimateCents(quote.SiteType(req.SiteType), req.PageCount, req.Options)

	opts, err := json.Marshal(req.Options)
	if err != nil {
		httperr.Internal(c, "Enregistrement impossible")
		return
	}

	lead := models.LeadRequest{
		Name:          strings.TrimSpace(req.Name),
		Email:         normalizeEmail(req.Email),
		Source:        string(domain.SourceQuote),
		SiteType:      req.SiteType,
		PageCount:     req.PageCount,
		Options:       string(opts),
		EstimateCents: estimate,
		Status:        string(domain.StatusNew),
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&lead).Error; err != nil {
		httperr.Internal(c, "Enregistrement impossible")
		return
	}

	if h.mail != nil {
		h.mail.Dispatch(mail.QuoteReceipt(lead.Email, lead.Name, quote.FormatEuros(estimate)))
	}

	httpresp.Created(c, gin.H{
		"id":            lead.ID,
		"estimateCents": estimate,
		"estimateEuros": quote.FormatEuros(estimate),
	})
}

////////////////////////////////////////////////////////
// AUDIT SÉCURITÉ
////////////////////////////////////////////////////////

func (h *IntakeHandler) Audit(c *gin.Context) {
	if !h.gate(c, "audit-security") {
		return
	}

	var req AuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Données invalides", httperr.IssuesFromBinding(err))
		return
	}

	if req.HP != "" {
		httpresp.OK(c, nil)
		return
	}

	if !*req.RGPD {
		httperr.Validation(c, "Consentement requis", httperr.FieldIssue("rgpd", "Consentement requis"))
		return
	}

	audit := models.SecurityAuditRequest{
		Name:        strings.TrimSpace(req.Name),
		Email:       normalizeEmail(req.Email),
		WebsiteURL:  strings.TrimSpace(req.WebsiteURL),
		Description: strings.TrimSpace(req.Description),
		Status:      string(domain.StatusNew),
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&audit).Error; err != nil {
		httperr.Internal(c, "Enregistrement impossible")
		return
	}

	if h.mail != nil {
		h.mail.Dispatch(mail.AuditReceipt(audit.Email, audit.Name, audit.WebsiteURL))
	}

	httpresp.Created(c, gin.H{"id": audit.ID})
}

////////////////////////////////////////////////////////
// WEB DESIGN
////////////////////////////////////////////////////////

func (h *IntakeHandler) WebDesign(c *gin.Context) {
	if !h.gate(c, "web-design") {
		return
	}

	var req WebDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "Données invalides", httperr.IssuesFromBinding(err))
		return
	}

	if req.HP != "" {
		httpresp.OK(c, nil)
		return
	}

	if !*req.RGPD {
		httperr.Validation(c, "Consentement requis", httperr.FieldIssue("rgpd", "Consentement requis"))
		return
	}

	// The form sends its own estimate for display. Recompute here and store
	// only the server-side figure.
	estimate := quote.EstimateRangeEuros(
		quote.WebsiteType(req.WebsiteType),
		req.PageCount,
		req.Options,
		strings.TrimSpace(req.Stack),
		req.Message,
	)

	details := models.WebDesignDetails{
		Options: req.Options,
		Branding: models.Branding{
			PrimaryColor:   strings.TrimSpace(req.Branding.PrimaryColor),
			SecondaryColor: strings.TrimSpace(req.Branding.SecondaryColor),
			LogoFileName:   strings.TrimSpace(req.Branding.LogoFileName),
			LogoDataURL:    req.Branding.LogoDataURL,
		},
		Stack:    strings.TrimSpace(req.Stack),
		Estimate: models.EstimateRange{Min: estimate.Min, Max: estimate.Max},
	}

	blob, err := json.Marshal(details)
	if err != nil {
		httperr.Internal(c, "Enregistrement impossible")
		return
	}

	lead := models.LeadRequest{
		Name:          strings.TrimSpace(req.Name),
		Email:         normalizeEmail(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Source:        string(domain.SourceWebDesign),
		SiteType:      req.WebsiteType,
		PageCount:     req.PageCount,
		Options:       string(blob),
		EstimateCents: estimate.Max * 100,
		Description:   strings.TrimSpace(req.Message),
		Status:        string(domain.StatusNew),
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&lead).Error; err != nil {
		httperr.Internal(c, "Enregistrement impossible")
		return
	}

	httpresp.Created(c, gin.H{
		"id":       lead.ID,
		"estimate": estimate,
	})
}
