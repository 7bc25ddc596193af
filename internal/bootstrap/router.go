package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/portfolio-site/portfolio-backend/internal/api/http"
	"github.com/portfolio-site/portfolio-backend/internal/api/http/middleware"
	contacthttp "github.com/portfolio-site/portfolio-backend/internal/contact/http"
	contactservice "github.com/portfolio-site/portfolio-backend/internal/contact/service"
	projecthttp "github.com/portfolio-site/portfolio-backend/internal/projects/http"
	projectservice "github.com/portfolio-site/portfolio-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	MailStatus     string
	AllowedOrigins []string

	Projects *projectservice.ProjectService
	Contact  *contactservice.ContactService

	// SPA serves the built client for unmatched routes. Nil in development.
	SPA *httpapi.SPAHandler
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())

	if len(dep.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  dep.AllowedOrigins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-Id"},
			ExposeHeaders: []string{"X-Request-Id"},
			MaxAge:        12 * time.Hour,
		}))
	}

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.MailStatus)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")

	projecthttp.New(dep.Projects).Register(api.Group("/projects"))
	contacthttp.New(dep.Contact).Register(api)

	if dep.SPA != nil {
		r.NoRoute(dep.SPA.Serve)
	} else {
		r.NoRoute(func(c *gin.Context) { httpapi.NotFound(c, nil) })
	}

	return r
}
