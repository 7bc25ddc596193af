package http

import (
	"github.com/portfolio-site/portfolio-backend/internal/contact/service"
	"github.com/portfolio-site/portfolio-backend/internal/contact/validation"
)

// Handler bundles the dependencies for the contact endpoint.
type Handler struct {
	svc *service.ContactService
}

func New(svc *service.ContactService) *Handler {
	return &Handler{svc: svc}
}

type invalidFormResponse struct {
	Message string             `json:"message"`
	Errors  []validation.Issue `json:"errors"`
}
