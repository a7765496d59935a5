// Package email dispatches transactional mail through the Brevo SMTP relay.
package email

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/kavinkharthik/proforma-api/internal/application/invoicing"
	"github.com/kavinkharthik/proforma-api/internal/domain"
	"github.com/kavinkharthik/proforma-api/pkg/config"
)

var _ invoicing.Mailer = (*BrevoMailer)(nil)

// BrevoMailer sends one message per call over SMTP. Brevo authenticates with
// the account login and the API key as the password.
type BrevoMailer struct {
	cfg config.MailConfig
}

func NewBrevoMailer(cfg config.MailConfig) *BrevoMailer {
	return &BrevoMailer{cfg: cfg}
}

// Send builds and dispatches the message. Without an API key the service can
// still render documents, so the missing credential is reported as a distinct
// error instead of a connection failure.
func (b *BrevoMailer) Send(ctx context.Context, m invoicing.OutboundMail) error {
	if b.cfg.APIKey == "" {
		return domain.ErrEmailNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", b.cfg.SenderEmail, b.cfg.SenderName)
	msg.SetHeader("To", m.To)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/plain", m.Body)
	msg.AddAlternative("text/html", htmlBody(m.Body))
	if len(m.Attachment) > 0 {
		msg.Attach(m.AttachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := io.Copy(w, bytes.NewReader(m.Attachment))
			return err
		}))
	}

	login := b.cfg.SMTPLogin
	if login == "" {
		login = b.cfg.SenderEmail
	}
	dialer := gomail.NewDialer(b.cfg.SMTPHost, b.cfg.SMTPPort, login, b.cfg.APIKey)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// htmlBody wraps the plain-text body in a minimal HTML document, preserving
// line breaks.
func htmlBody(body string) string {
	escaped := html.EscapeString(body)
	return "<html><body><p>" + strings.ReplaceAll(escaped, "\n", "<br>") + "</p></body></html>"
}
