package mailer

import "context"

// Message is a provider-agnostic email payload.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer abstracts the transactional-email provider. Send returns the
// provider-assigned message id on success.
type Mailer interface {
	Send(ctx context.Context, msg Message) (string, error)
}
