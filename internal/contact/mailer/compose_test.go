package mailer

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/emersion/go-message/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parsedMail struct {
	header mail.Header
	parts  map[string]string
}

func parseMail(t *testing.T, raw []byte) parsedMail {
	t.Helper()

	mr, err := mail.CreateReader(bytes.NewReader(raw))
	require.NoError(t, err)
	defer mr.Close()

	out := parsedMail{header: mr.Header, parts: map[string]string{}}
	for {
		p, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)

		h, ok := p.Header.(*mail.InlineHeader)
		require.True(t, ok, "expected only inline parts")
		ct, _, err := h.ContentType()
		require.NoError(t, err)

		body, err := io.ReadAll(p.Body)
		require.NoError(t, err)
		out.parts[ct] = string(body)
	}
	return out
}

func TestCompose_Headers(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	raw, id, err := compose(testConfig(), testMessage(), now)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	m := parseMail(t, raw)

	subject, err := m.header.Subject()
	require.NoError(t, err)
	assert.Equal(t, "Portfolio Contact: Project inquiry", subject)

	from, err := m.header.AddressList("From")
	require.NoError(t, err)
	require.Len(t, from, 1)
	assert.Equal(t, "Jane Doe", from[0].Name)
	assert.Equal(t, "bot@example.dev", from[0].Address)

	to, err := m.header.AddressList("To")
	require.NoError(t, err)
	require.Len(t, to, 1)
	assert.Equal(t, "owner@example.dev", to[0].Address)

	replyTo, err := m.header.AddressList("Reply-To")
	require.NoError(t, err)
	require.Len(t, replyTo, 1)
	assert.Equal(t, "jane@example.com", replyTo[0].Address)

	date, err := m.header.Date()
	require.NoError(t, err)
	assert.True(t, now.Equal(date))

	gotID, err := m.header.MessageID()
	require.NoError(t, err)
	assert.Equal(t, id, gotID)

	ct, _, err := m.header.ContentType()
	require.NoError(t, err)
	assert.Equal(t, "multipart/alternative", ct)
}

func TestCompose_Bodies(t *testing.T) {
	raw, _, err := compose(testConfig(), testMessage(), time.Now())
	require.NoError(t, err)

	m := parseMail(t, raw)
	require.Len(t, m.parts, 2)

	text := m.parts["text/plain"]
	assert.Contains(t, text, "New Contact Form Submission")
	assert.Contains(t, text, "Name: Jane Doe")
	assert.Contains(t, text, "Email: jane@example.com")
	assert.Contains(t, text, "Subject: Project inquiry")
	assert.Contains(t, text, "Would love to work together on something.")

	html := m.parts["text/html"]
	assert.Contains(t, html, "<strong>Name:</strong> Jane Doe")
	assert.Contains(t, html, "Would love to work together on something.")
}

func TestCompose_EscapesHTML(t *testing.T) {
	msg := testMessage()
	msg.Name = `<b>Mallory</b>`
	msg.Message = `<script>alert("x")</script> hello there`

	raw, _, err := compose(testConfig(), msg, time.Now())
	require.NoError(t, err)

	m := parseMail(t, raw)
	html := m.parts["text/html"]
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<b>Mallory</b>")
	assert.Contains(t, html, "&lt;script&gt;")

	// plain text is left as typed
	assert.Contains(t, m.parts["text/plain"], `<script>alert("x")</script>`)
}

func TestCompose_NonASCIISubject(t *testing.T) {
	msg := testMessage()
	msg.Subject = "Café collaboration"

	raw, _, err := compose(testConfig(), msg, time.Now())
	require.NoError(t, err)

	m := parseMail(t, raw)
	subject, err := m.header.Subject()
	require.NoError(t, err)
	assert.Equal(t, "Portfolio Contact: Café collaboration", subject)
}
