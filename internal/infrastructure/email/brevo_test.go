package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kavinkharthik/proforma-api/internal/application/invoicing"
	"github.com/kavinkharthik/proforma-api/internal/domain"
	"github.com/kavinkharthik/proforma-api/pkg/config"
)

func TestSendWithoutAPIKey(t *testing.T) {
	m := NewBrevoMailer(config.MailConfig{})
	err := m.Send(context.Background(), invoicing.OutboundMail{To: "x@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailNotConfigured)
}

func TestHTMLBodyEscapesAndBreaks(t *testing.T) {
	got := htmlBody("Dear <buyer>,\nfind attached")
	assert.Equal(t, "<html><body><p>Dear &lt;buyer&gt;,<br>find attached</p></body></html>", got)
}
