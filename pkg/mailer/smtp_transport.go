package mailer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/textproto"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	mail "github.com/wneessen/go-mail"

	"github.com/dmitrymomot/contactrelay/pkg/ratelimiter"
)

// throttleKey is the single rate limiter key; the throttle is per-process,
// not per-caller.
const throttleKey = "smtp"

// SMTPTransport delivers messages over SMTP. At most one connection is open
// at a time and dispatch is throttled to cfg.RateLimit sends per
// cfg.RatePeriod; sends past the rate wait instead of failing.
type SMTPTransport struct {
	client  *mail.Client
	limiter *ratelimiter.Bucket
	domain  string
	mu      sync.Mutex
}

// NewSMTPTransport creates an SMTP-backed transport. Credentials may be
// empty (their presence is the caller's configuration concern) but the
// host, port and throttle settings must be valid.
func NewSMTPTransport(cfg Config) (*SMTPTransport, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: Host is required", ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: Port must be in 1..65535, got %d", ErrInvalidConfig, cfg.Port)
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	limiter, err := ratelimiter.NewBucket(ratelimiter.NewMemoryStore(), ratelimiter.Config{
		Capacity:       cfg.RateLimit,
		RefillRate:     cfg.RateLimit,
		RefillInterval: cfg.RatePeriod,
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	return &SMTPTransport{
		client:  client,
		limiter: limiter,
		domain:  messageIDDomain(cfg),
	}, nil
}

// Verify opens, authenticates and closes an SMTP session without sending.
// Failures are classified the same way delivery failures are.
func (t *SMTPTransport) Verify(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.client.DialWithContext(ctx); err != nil {
		return classify(err)
	}
	if err := t.client.Close(); err != nil {
		return classify(err)
	}
	return nil
}

// Send delivers the message, waiting for the throttle first. The returned
// Result carries the generated Message-ID; SMTP itself reports no
// provider-side identifier.
func (t *SMTPTransport) Send(ctx context.Context, msg Message) (Result, error) {
	if err := msg.Validate(); err != nil {
		return Result{}, err
	}

	m, id, err := t.buildMsg(msg)
	if err != nil {
		return Result{}, err
	}

	if err := t.limiter.Wait(ctx, throttleKey); err != nil {
		return Result{}, errors.Join(ErrSendFailed, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.client.DialAndSendWithContext(ctx, m); err != nil {
		return Result{}, classify(err)
	}

	return Result{MessageID: "<" + id + ">"}, nil
}

func (t *SMTPTransport) buildMsg(msg Message) (*mail.Msg, string, error) {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrInvalidMessage, err)
		}
	}
	m.Subject(msg.Subject)
	if msg.TextBody != "" {
		m.SetBodyString(mail.TypeTextPlain, msg.TextBody)
	}
	if msg.HTMLBody != "" {
		if msg.TextBody != "" {
			m.AddAlternativeString(mail.TypeTextHTML, msg.HTMLBody)
		} else {
			m.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)
		}
	}

	id := uuid.NewString() + "@" + t.domain
	m.SetMessageIDWithValue(id)

	return m, id, nil
}

// messageIDDomain derives the Message-ID domain from the account identity,
// falling back to the SMTP host.
func messageIDDomain(cfg Config) string {
	if _, domain, ok := strings.Cut(cfg.Username, "@"); ok && domain != "" {
		return domain
	}
	return cfg.Host
}

// classify maps transport failures onto the package's error categories.
// DNS resolution failures become ErrHostNotFound, SMTP auth rejections
// become ErrAuthFailed, dial and timeout problems become
// ErrConnectionFailed, anything else ErrSendFailed. The root cause stays
// attached for logging and for development-mode responses.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return errors.Join(ErrHostNotFound, err)
	}

	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch protoErr.Code {
		case 530, 534, 535:
			return errors.Join(ErrAuthFailed, err)
		}
	}

	// Some servers report auth rejections only in the response text.
	lower := strings.ToLower(err.Error())
	if strings.Contains(lower, "username and password not accepted") ||
		strings.Contains(lower, "authentication failed") ||
		strings.Contains(lower, "535") {
		return errors.Join(ErrAuthFailed, err)
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Join(ErrConnectionFailed, err)
	}
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return errors.Join(ErrConnectionFailed, err)
	}

	return errors.Join(ErrSendFailed, err)
}
