package mailer

import (
	"context"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

// Mailer sends transactional email. Implementations must not block the
// request path beyond their own timeout.
type Mailer interface {
	Send(ctx context.Context, to, subject, text string) error
}

type Mailgun struct {
	domain string
	apiKey string
	sender string
}

func NewMailgun(domain, apiKey, sender string) *Mailgun {
	return &Mailgun{domain: domain, apiKey: apiKey, sender: sender}
}

func (m *Mailgun) Send(ctx context.Context, to, subject, text string) error {
	client := mg.NewMailgun(m.domain, m.apiKey)
	msg := client.NewMessage(m.sender, subject, text, to)

	c, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, _, err := client.Send(c, msg)
	return err
}

// Noop is used when Mailgun credentials are not configured, and in tests.
type Noop struct{}

func (Noop) Send(ctx context.Context, to, subject, text string) error { return nil }
