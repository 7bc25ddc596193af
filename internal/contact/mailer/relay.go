// Package mailer relays validated contact messages to the site owner by email.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/portfolio-site/portfolio-backend/internal/contact/domain"
)

const (
	// SubjectPrefix is prepended to the submitter's subject.
	SubjectPrefix = "Portfolio Contact: "

	DefaultTimeout = 10 * time.Second
)

var (
	ErrNotConfigured = errors.New("email credentials not configured")
	ErrSendFailed    = errors.New("failed to send email")
)

// Config holds the outbound mail settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	To       string
	Secure   bool
	Timeout  time.Duration
}

// Configured reports whether credentials are present.
func (c Config) Configured() bool {
	return c.Username != "" && c.Password != ""
}

// Envelope is what a Transport delivers: SMTP sender, recipients and the
// full RFC 5322 message.
type Envelope struct {
	From string
	To   []string
	Data []byte
}

// Transport delivers one composed message.
type Transport interface {
	Send(ctx context.Context, env Envelope) error
	Verify(ctx context.Context) error
}

// Receipt identifies a delivered message.
type Receipt struct {
	MessageID string
}

// Relay composes contact emails and hands them to a Transport.
type Relay struct {
	cfg       Config
	transport Transport
	now       func() time.Time
}

// NewRelay creates a Relay. A nil transport means SMTP built from cfg.
func NewRelay(cfg Config, transport Transport) *Relay {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if transport == nil {
		transport = NewSMTPTransport(cfg)
	}
	return &Relay{
		cfg:       cfg,
		transport: transport,
		now:       time.Now,
	}
}

func (r *Relay) Configured() bool {
	return r.cfg.Configured()
}

// Send makes exactly one delivery attempt for msg.
func (r *Relay) Send(ctx context.Context, msg domain.ContactMessage) (Receipt, error) {
	if !r.cfg.Configured() {
		return Receipt{}, ErrNotConfigured
	}

	data, messageID, err := compose(r.cfg, msg, r.now())
	if err != nil {
		return Receipt{}, fmt.Errorf("compose contact email: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	env := Envelope{
		From: r.cfg.Username,
		To:   []string{r.cfg.To},
		Data: data,
	}
	if err := r.transport.Send(ctx, env); err != nil {
		return Receipt{}, fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	log.Printf("[mailer] email sent successfully: %s", messageID)
	return Receipt{MessageID: messageID}, nil
}

// Verify checks that the server accepts the configured credentials.
func (r *Relay) Verify(ctx context.Context) error {
	if !r.cfg.Configured() {
		return ErrNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	if err := r.transport.Verify(ctx); err != nil {
		return fmt.Errorf("verify email config: %w", err)
	}
	return nil
}
