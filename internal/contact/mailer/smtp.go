package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"strconv"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

// SMTPTransport delivers mail over SMTP with PLAIN auth. Port 465 or Secure
// means implicit TLS; otherwise STARTTLS is required.
type SMTPTransport struct {
	addr        string
	username    string
	password    string
	implicitTLS bool
	tlsConfig   *tls.Config
}

func NewSMTPTransport(cfg Config) *SMTPTransport {
	return &SMTPTransport{
		addr:        net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		username:    cfg.Username,
		password:    cfg.Password,
		implicitTLS: cfg.Secure || cfg.Port == 465,
		tlsConfig: &tls.Config{
			ServerName: cfg.Host,
			MinVersion: tls.VersionTLS12,
		},
	}
}

func (t *SMTPTransport) Send(ctx context.Context, env Envelope) error {
	c, err := t.connect(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.SendMail(env.From, env.To, bytes.NewReader(env.Data)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	if err := c.Quit(); err != nil {
		return fmt.Errorf("smtp quit: %w", err)
	}
	return nil
}

func (t *SMTPTransport) Verify(ctx context.Context) error {
	c, err := t.connect(ctx)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Quit(); err != nil {
		return fmt.Errorf("smtp quit: %w", err)
	}
	return nil
}

// connect dials, upgrades to TLS and authenticates. The
// connection deadline follows ctx.
func (t *SMTPTransport) connect(ctx context.Context) (*smtp.Client, error) {
	var (
		dialer net.Dialer
		conn   net.Conn
		err    error
	)
	if t.implicitTLS {
		conn, err = (&tls.Dialer{NetDialer: &dialer, Config: t.tlsConfig}).DialContext(ctx, "tcp", t.addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", t.addr)
	}
	if err != nil {
		return nil, fmt.Errorf("smtp dial %s: %w", t.addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	var c *smtp.Client
	if t.implicitTLS {
		c = smtp.NewClient(conn)
	} else {
		// errors out if the server does not offer STARTTLS
		c, err = smtp.NewClientStartTLS(conn, t.tlsConfig)
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("smtp starttls: %w", err)
		}
	}

	if err := c.Auth(sasl.NewPlainClient("", t.username, t.password)); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("smtp auth: %w", err)
	}

	return c, nil
}
