// Package mailer sends notification emails. A Sender is chosen once at
// startup: the Resend-backed sender when an API key is configured, otherwise
// a NoopSender that only logs.
package mailer

import (
	"context"
	"log/slog"

	"github.com/DevanshuTiwaskar/portfolio/pkg/resend"
)

// Message is one outbound HTML email.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Result describes an accepted send.
type Result struct {
	// ID is the provider message ID, or "skipped" for a NoopSender.
	ID string `json:"id"`
	// Skipped is true when nothing was actually sent.
	Skipped bool `json:"skipped,omitempty"`
}

// Sender delivers a Message. Implementations are safe for concurrent use.
type Sender interface {
	Send(ctx context.Context, msg Message) (Result, error)
}

// New returns a ResendSender when apiKey is set and a NoopSender otherwise.
func New(apiKey string) Sender {
	if apiKey == "" {
		return NoopSender{}
	}
	return NewResendSender(resend.NewClient(apiKey))
}

// ResendSender sends through the Resend API.
type ResendSender struct {
	client resend.Client
}

// NewResendSender wraps a Resend client.
func NewResendSender(client resend.Client) *ResendSender {
	return &ResendSender{client: client}
}

// Send implements Sender.
func (s *ResendSender) Send(ctx context.Context, msg Message) (Result, error) {
	resp, err := s.client.SendEmail(ctx, resend.SendEmailParams{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	})
	if err != nil {
		return Result{}, err
	}
	return Result{ID: resp.ID}, nil
}

// NoopSender logs each intended send and reports it as accepted but skipped.
type NoopSender struct{}

// Send implements Sender.
func (NoopSender) Send(ctx context.Context, msg Message) (Result, error) {
	slog.InfoContext(ctx, "email skipped: no provider configured",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return Result{ID: "skipped", Skipped: true}, nil
}
