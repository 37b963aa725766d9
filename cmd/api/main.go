package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/webforge-studio/studio-api/internal/config"
	dbpkg "github.com/webforge-studio/studio-api/internal/db"
	"github.com/webforge-studio/studio-api/internal/httperr"
	"github.com/webforge-studio/studio-api/internal/mail"
	"github.com/webforge-studio/studio-api/internal/middleware"
	"github.com/webforge-studio/studio-api/internal/ratelimit"
	"github.com/webforge-studio/studio-api/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	httperr.RegisterJSONTagNames()

	db := dbpkg.NewDB(cfg)

	var limiter ratelimit.Limiter
	if cfg.RedisURL != "" {
		rl, err := ratelimit.NewRedisFromURL(cfg.RedisURL, ratelimit.DefaultLimit, ratelimit.DefaultWindow)
		if err != nil {
			log.Fatalf("failed to connect redis: %v", err)
		}
		limiter = rl
		log.Println("rate limiting enabled (redis)")
	} else {
		limiter = ratelimit.NewDisabled()
		log.Println("REDIS_URL not set, rate limiting disabled")
	}

	mailer := mail.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	if !mailer.Enabled() {
		log.Println("SMTP not configured, mail disabled")
	}
	dispatcher := mail.NewDispatcher(mailer)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, limiter, dispatcher)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
