package mailer

import (
	"bytes"
	htmltemplate "html/template"
	"io"
	texttemplate "text/template"
	"time"

	"github.com/emersion/go-message/mail"
	"github.com/portfolio-site/portfolio-backend/internal/contact/domain"
)

var textBody = texttemplate.Must(texttemplate.New("text").Parse(`New Contact Form Submission

Name: {{.Name}}
Email: {{.Email}}
Subject: {{.Subject}}

Message:
{{.Message}}

---
This message was sent from your portfolio contact form.
`))

var htmlBody = htmltemplate.Must(htmltemplate.New("html").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px; line-height: 1.6;">
  <h2 style="color: #333; border-bottom: 2px solid #4f46e5; padding-bottom: 10px;">
    New Contact Form Submission
  </h2>

  <div style="background-color: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="margin-top: 0; color: #4f46e5;">Contact Details</h3>
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Subject:</strong> {{.Subject}}</p>
  </div>

  <div style="background-color: #ffffff; padding: 20px; border-left: 4px solid #4f46e5; margin: 20px 0;">
    <h3 style="margin-top: 0; color: #333;">Message</h3>
    <p style="white-space: pre-wrap;">{{.Message}}</p>
  </div>

  <div style="margin-top: 30px; padding-top: 20px; border-top: 1px solid #e2e8f0; font-size: 14px; color: #64748b;">
    <p>This message was sent from your portfolio contact form.</p>
  </div>
</div>
`))

// compose renders msg as a multipart/alternative email and returns the raw
// message along with its generated Message-Id.
func compose(cfg Config, msg domain.ContactMessage, now time.Time) ([]byte, string, error) {
	var h mail.Header
	h.SetDate(now)
	h.SetAddressList("From", []*mail.Address{{Name: msg.Name, Address: cfg.Username}})
	h.SetAddressList("To", []*mail.Address{{Address: cfg.To}})
	h.SetAddressList("Reply-To", []*mail.Address{{Address: msg.Email}})
	h.SetSubject(SubjectPrefix + msg.Subject)
	if err := h.GenerateMessageID(); err != nil {
		return nil, "", err
	}
	messageID, err := h.MessageID()
	if err != nil {
		return nil, "", err
	}

	var text, html bytes.Buffer
	if err := textBody.Execute(&text, msg); err != nil {
		return nil, "", err
	}
	if err := htmlBody.Execute(&html, msg); err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	w, err := mail.CreateInlineWriter(&buf, h)
	if err != nil {
		return nil, "", err
	}
	if err := writePart(w, "text/plain", text.Bytes()); err != nil {
		return nil, "", err
	}
	if err := writePart(w, "text/html", html.Bytes()); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), messageID, nil
}

func writePart(w *mail.InlineWriter, contentType string, body []byte) error {
	var ph mail.InlineHeader
	ph.SetContentType(contentType, map[string]string{"charset": "utf-8"})

	pw, err := w.CreatePart(ph)
	if err != nil {
		return err
	}
	if _, err := io.Copy(pw, bytes.NewReader(body)); err != nil {
		_ = pw.Close()
		return err
	}
	return pw.Close()
}
