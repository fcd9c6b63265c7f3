package mailer

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/resend/resend-go/v2"
)

// Send dispatches a single email through Resend. At-most-once: no retry on
// failure.
func (m *implMailer) Send(ctx context.Context, msg Message) (string, error) {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
		Html:    msg.HTML,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("send email: %w", err)
	}

	m.logger.Info(ctx, "Email sent to %s (id: %s)", msg.To, sent.Id)
	return sent.Id, nil
}

// HTMLBody renders plain text as a minimal HTML paragraph. The text is
// HTML-escaped before line breaks become <br>, so model output containing
// markup cannot inject into the email body.
func HTMLBody(text string) string {
	escaped := html.EscapeString(text)
	return "<p>" + strings.ReplaceAll(escaped, "\n", "<br>") + "</p>"
}
