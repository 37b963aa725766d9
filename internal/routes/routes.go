package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/webforge-studio/studio-api/internal/config"
	"github.com/webforge-studio/studio-api/internal/handlers"
	infraRepo "github.com/webforge-studio/studio-api/internal/infra/repository"
	"github.com/webforge-studio/studio-api/internal/mail"
	"github.com/webforge-studio/studio-api/internal/middleware"
	"github.com/webforge-studio/studio-api/internal/ratelimit"
	ucLead "github.com/webforge-studio/studio-api/internal/usecase/lead"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	limiter ratelimit.Limiter,
	mailer *mail.Dispatcher,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	leadRepo := infraRepo.NewLeadGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	approveUC := ucLead.NewApproveWebDesign(leadRepo, mailer, cfg.SiteURL)

	// ======================================================
	// HANDLERS
	// ======================================================
	intakeHandler := handlers.NewIntakeHandler(db, limiter, mailer)
	authHandler := handlers.NewAuthHandler(db, cfg, limiter)
	adminHandler := handlers.NewAdminHandler(db, approveUC)
	clientHandler := handlers.NewClientHandler(db)
	publicHandler := handlers.NewPublicHandler(db)

	// ======================================================
	// PAGES (redirect guard only, the front lives elsewhere)
	// ======================================================
	r.GET("/dashboard-admin/login", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Connexion admin</h1>"))
	})
	r.GET("/dashboard-admin",
		middleware.RequireAdminPage(cfg.AdminJWTSecret, "/dashboard-admin/login"),
		func(c *gin.Context) {
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Dashboard admin</h1>"))
		})

	r.GET("/client-area/login", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Connexion espace client</h1>"))
	})
	r.GET("/client-area",
		middleware.RequireClientPage(cfg.ClientJWTSecret, "/client-area/login"),
		func(c *gin.Context) {
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Espace client</h1>"))
		})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.SameOrigin(cfg.AllowedOrigins()))
	{
		// ------------------------------
		// INTAKE (public forms)
		// ------------------------------
		api.POST("/contact", intakeHandler.Contact)
		api.POST("/devis", intakeHandler.Quote)
		api.POST("/audit-security", intakeHandler.Audit)
		api.POST("/web-design/request", intakeHandler.WebDesign)

		// ------------------------------
		// PUBLIC READS
		// ------------------------------
		api.GET("/blog", publicHandler.ListBlogPosts)
		api.GET("/blog/:slug", publicHandler.GetBlogPost)
		api.GET("/web-projects", publicHandler.ListWebProjects)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/admin/login", authHandler.AdminLogin)
		api.POST("/admin/logout", authHandler.AdminLogout)
		api.POST("/client/login", authHandler.ClientLogin)
		api.POST("/client/logout", authHandler.ClientLogout)

		// ------------------------------
		// ADMIN (cookie guard)
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin(cfg.AdminJWTSecret))
		{
			admin.GET("/requests", adminHandler.ListRequests)
			admin.GET("/requests/:id", adminHandler.GetRequest)
			admin.POST("/requests/:id/approve", adminHandler.ApproveRequest)

			admin.GET("/audits", adminHandler.ListAudits)
			admin.PATCH("/audits/:id", adminHandler.UpdateAuditStatus)

			admin.GET("/clients", adminHandler.ListClients)
			admin.POST("/clients", adminHandler.CreateClient)

			admin.GET("/projects", adminHandler.ListProjects)
			admin.POST("/projects", adminHandler.CreateProject)
			admin.POST("/project-files", adminHandler.AddProjectFile)

			admin.GET("/messages", adminHandler.ListClientMessages)

			admin.GET("/blog", adminHandler.ListBlogPosts)
			admin.POST("/blog", adminHandler.CreateBlogPost)
			admin.PATCH("/blog/:id", adminHandler.UpdateBlogPost)
			admin.DELETE("/blog/:id", adminHandler.DeleteBlogPost)

			admin.GET("/web-projects", adminHandler.ListWebProjects)
			admin.POST("/web-projects", adminHandler.CreateWebProject)
			admin.PATCH("/web-projects/:id", adminHandler.UpdateWebProject)
			admin.DELETE("/web-projects/:id", adminHandler.DeleteWebProject)
		}

		// ------------------------------
		// CLIENT (cookie guard)
		// ------------------------------
		client := api.Group("/client")
		client.Use(middleware.RequireClient(cfg.ClientJWTSecret))
		{
			client.GET("/me", clientHandler.Me)
			client.GET("/projects", clientHandler.Projects)
			client.GET("/messages", clientHandler.Messages)
			client.POST("/messages", clientHandler.PostMessage)
			client.POST("/reset-password", clientHandler.ResetPassword)
		}
	}
}
