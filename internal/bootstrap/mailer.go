package bootstrap

import (
	"context"
	"log"

	httpapi "github.com/portfolio-site/portfolio-backend/internal/api/http"
	"github.com/portfolio-site/portfolio-backend/internal/contact/mailer"
)

// MailVerifier is satisfied by *mailer.Relay.
type MailVerifier interface {
	Verify(ctx context.Context) error
}

// CheckMailer runs the startup email check once and returns the status the
// health endpoint reports. Submissions are accepted whatever the result.
func CheckMailer(ctx context.Context, cfg mailer.Config, v MailVerifier) string {
	pass := "undefined"
	if cfg.Password != "" {
		pass = "[HIDDEN]"
	}
	log.Printf("[boot] email config: host=%s port=%d user=%q pass=%s to=%s", cfg.Host, cfg.Port, cfg.Username, pass, cfg.To)

	if !cfg.Configured() {
		log.Printf("[boot] email configuration not set up - contact form emails will not be sent")
		log.Printf("[boot] set EMAIL_USER and EMAIL_PASS environment variables to enable email functionality")
		return httpapi.MailNotConfigured
	}

	if err := v.Verify(ctx); err != nil {
		log.Printf("[boot] email configuration error: %v", err)
		return httpapi.MailUnverified
	}

	log.Printf("[boot] email configuration verified successfully")
	return httpapi.MailVerified
}
