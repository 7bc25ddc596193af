package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Mail relay states reported by the health endpoint.
const (
	MailVerified      = "verified"
	MailNotConfigured = "not_configured"
	MailUnverified    = "unverified"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Mail      string    `json:"mail,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	mailStatus  string
}

// NewHealthHandler builds the handler. mailStatus is the startup email check
// result, left empty when unknown.
func NewHealthHandler(serviceName, version, mailStatus string) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		mailStatus:  mailStatus,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Mail:      h.mailStatus,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
