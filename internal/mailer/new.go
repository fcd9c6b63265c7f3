package mailer

import (
	"github.com/resend/resend-go/v2"

	"github.com/sashishekhar/Meeting-Notes-Summarizer/internal/logger"
)

type implMailer struct {
	client *resend.Client
	from   string
	logger logger.Logger
}

// New creates a Mailer backed by Resend. The from address must be a
// pre-verified sender.
func New(apiKey, from string, log logger.Logger) Mailer {
	return &implMailer{
		client: resend.NewClient(apiKey),
		from:   from,
		logger: log,
	}
}
