package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/portfolio-site/portfolio-backend/internal/contact/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	sendErr   error
	verifyErr error
	sent      []Envelope
	deadline  time.Time
}

func (f *fakeTransport) Send(ctx context.Context, env Envelope) error {
	f.deadline, _ = ctx.Deadline()
	f.sent = append(f.sent, env)
	return f.sendErr
}

func (f *fakeTransport) Verify(context.Context) error {
	return f.verifyErr
}

func testConfig() Config {
	return Config{
		Host:     "smtp.example.dev",
		Port:     587,
		Username: "bot@example.dev",
		Password: "secret",
		To:       "owner@example.dev",
		Timeout:  2 * time.Second,
	}
}

func testMessage() domain.ContactMessage {
	return domain.ContactMessage{
		ID:      1,
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Project inquiry",
		Message: "Would love to work together on something.",
	}
}

func TestRelay_NotConfigured(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"missing user": func(c *Config) { c.Username = "" },
		"missing pass": func(c *Config) { c.Password = "" },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig()
			mutate(&cfg)
			ft := &fakeTransport{}
			relay := NewRelay(cfg, ft)

			assert.False(t, relay.Configured())
			_, err := relay.Send(context.Background(), testMessage())
			assert.ErrorIs(t, err, ErrNotConfigured)
			assert.NotErrorIs(t, err, ErrSendFailed)
			assert.Empty(t, ft.sent, "transport must not be touched")

			assert.ErrorIs(t, relay.Verify(context.Background()), ErrNotConfigured)
		})
	}
}

func TestRelay_Send(t *testing.T) {
	ft := &fakeTransport{}
	relay := NewRelay(testConfig(), ft)
	require.True(t, relay.Configured())

	start := time.Now()
	receipt, err := relay.Send(context.Background(), testMessage())
	require.NoError(t, err)
	assert.NotEmpty(t, receipt.MessageID)

	require.Len(t, ft.sent, 1)
	env := ft.sent[0]
	assert.Equal(t, "bot@example.dev", env.From)
	assert.Equal(t, []string{"owner@example.dev"}, env.To)
	assert.Contains(t, string(env.Data), receipt.MessageID)

	assert.False(t, ft.deadline.IsZero(), "send must be bounded by a deadline")
	assert.WithinDuration(t, start.Add(2*time.Second), ft.deadline, time.Second)
}

func TestRelay_SendFailure(t *testing.T) {
	cause := errors.New("535 authentication failed")
	ft := &fakeTransport{sendErr: cause}
	relay := NewRelay(testConfig(), ft)

	_, err := relay.Send(context.Background(), testMessage())
	assert.ErrorIs(t, err, ErrSendFailed)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotConfigured)
	assert.Len(t, ft.sent, 1, "exactly one attempt, no retry")
}

func TestRelay_Verify(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		relay := NewRelay(testConfig(), &fakeTransport{})
		assert.NoError(t, relay.Verify(context.Background()))
	})

	t.Run("transport error", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		relay := NewRelay(testConfig(), &fakeTransport{verifyErr: cause})
		assert.ErrorIs(t, relay.Verify(context.Background()), cause)
	})
}

func TestNewRelay_DefaultTimeout(t *testing.T) {
	cfg := testConfig()
	cfg.Timeout = 0
	relay := NewRelay(cfg, &fakeTransport{})
	assert.Equal(t, DefaultTimeout, relay.cfg.Timeout)
}
