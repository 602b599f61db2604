package mailer

import (
	"context"
	"fmt"
	"strings"
)

// Transport delivers composed mail messages.
type Transport interface {
	// Verify checks that the transport can open and authenticate a session
	// without sending anything.
	Verify(ctx context.Context) error

	// Send delivers a message and returns the delivery identifier.
	Send(ctx context.Context, msg Message) (Result, error)
}

// Message represents a fully-prepared mail message ready for sending.
type Message struct {
	From     string // Sender address
	To       string // Recipient address
	ReplyTo  string // Optional reply-to address
	Subject  string // Message subject
	TextBody string // Plain-text body
	HTMLBody string // HTML body, sent as an alternative part
}

// Validate checks that the message carries everything a transport needs.
func (m Message) Validate() error {
	if strings.TrimSpace(m.From) == "" {
		return fmt.Errorf("%w: From is required", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.To) == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.TextBody) == "" && strings.TrimSpace(m.HTMLBody) == "" {
		return fmt.Errorf("%w: a text or HTML body is required", ErrInvalidMessage)
	}
	return nil
}

// Result is the outcome of a successful send.
type Result struct {
	MessageID string // Delivery identifier, angle-bracketed Message-ID form
}
