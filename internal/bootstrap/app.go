package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-site/portfolio-backend/config"
	httpapi "github.com/portfolio-site/portfolio-backend/internal/api/http"
	contactrepo "github.com/portfolio-site/portfolio-backend/internal/contact/repository"
	contactservice "github.com/portfolio-site/portfolio-backend/internal/contact/service"
	"github.com/portfolio-site/portfolio-backend/internal/contact/mailer"
	projectrepo "github.com/portfolio-site/portfolio-backend/internal/projects/repository"
	projectservice "github.com/portfolio-site/portfolio-backend/internal/projects/service"
	"github.com/portfolio-site/portfolio-backend/internal/users"
)

// App holds the constructed stores and router for one process.
type App struct {
	Router   *gin.Engine
	Projects *projectrepo.MemRepo
	Messages *contactrepo.MemRepo
	Relay    *mailer.Relay
	Users    *users.MemRepo
}

// MailerConfig converts the email section of cfg.
func MailerConfig(cfg config.EmailConfig) mailer.Config {
	return mailer.Config{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.User,
		Password: cfg.Pass,
		To:       cfg.To,
		Secure:   cfg.Secure,
		Timeout:  cfg.Timeout,
	}
}

// NewApp seeds the stores, checks the mailer and builds the router. A nil
// transport means SMTP.
func NewApp(ctx context.Context, cfg *config.Config, transport mailer.Transport) (*App, error) {
	projects := projectrepo.NewMemRepo()
	projectSvc := projectservice.NewProjectService(projects)
	if err := projectrepo.Seed(ctx, projectSvc, projectrepo.DefaultProjects()); err != nil {
		return nil, fmt.Errorf("seed projects: %w", err)
	}
	log.Printf("[boot] seeded %d projects", projects.Len())

	messages := contactrepo.NewMemRepo()

	mcfg := MailerConfig(cfg.Email)
	relay := mailer.NewRelay(mcfg, transport)
	mailStatus := CheckMailer(ctx, mcfg, relay)

	var spa *httpapi.SPAHandler
	if cfg.App.IsProduction() {
		h, err := httpapi.NewSPAHandler(cfg.Server.StaticDir)
		if err != nil {
			return nil, err
		}
		spa = h
	}

	router := BuildRouter(RouterDeps{
		ServiceName:    cfg.App.ServiceName,
		Version:        cfg.App.Version,
		MailStatus:     mailStatus,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Projects:       projectSvc,
		Contact:        contactservice.NewContactService(messages, relay),
		SPA:            spa,
	})

	return &App{
		Router:   router,
		Projects: projects,
		Messages: messages,
		Relay:    relay,
		Users:    users.NewMemRepo(),
	}, nil
}
