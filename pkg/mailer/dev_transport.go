package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DevTransport implements Transport for local development. It writes
// messages as HTML and JSON files to a directory instead of delivering
// them over SMTP.
type DevTransport struct {
	dir string
}

// NewDevTransport creates a development transport that saves messages to
// disk. The directory is created on first use.
func NewDevTransport(dir string) *DevTransport {
	return &DevTransport{dir: dir}
}

// Verify ensures the target directory is writable.
func (d *DevTransport) Verify(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrSendFailed, err)
	}
	return nil
}

// messageMetadata is the message data saved to JSON (excluding bodies).
type messageMetadata struct {
	Timestamp string `json:"timestamp"`
	MessageID string `json:"message_id"`
	From      string `json:"from"`
	To        string `json:"to"`
	ReplyTo   string `json:"reply_to,omitempty"`
	Subject   string `json:"subject"`
}

// Send writes the message as an HTML file plus a JSON metadata file and
// returns a generated delivery identifier, mirroring what the SMTP
// transport reports.
func (d *DevTransport) Send(ctx context.Context, msg Message) (Result, error) {
	if err := msg.Validate(); err != nil {
		return Result{}, err
	}
	if err := d.Verify(ctx); err != nil {
		return Result{}, err
	}

	now := time.Now()
	id := uuid.NewString() + "@localdev"
	baseFilename := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405"), sanitizeFilename(msg.Subject))

	body := msg.HTMLBody
	if body == "" {
		body = msg.TextBody
	}
	htmlPath := filepath.Join(d.dir, baseFilename+".html")
	if err := os.WriteFile(htmlPath, []byte(body), 0o644); err != nil {
		return Result{}, fmt.Errorf("%w: failed to write HTML file: %v", ErrSendFailed, err)
	}

	metadata := messageMetadata{
		Timestamp: now.Format(time.RFC3339),
		MessageID: "<" + id + ">",
		From:      msg.From,
		To:        msg.To,
		ReplyTo:   msg.ReplyTo,
		Subject:   msg.Subject,
	}
	jsonData, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return Result{}, fmt.Errorf("%w: failed to marshal metadata: %v", ErrSendFailed, err)
	}
	jsonPath := filepath.Join(d.dir, baseFilename+".json")
	if err := os.WriteFile(jsonPath, jsonData, 0o644); err != nil {
		return Result{}, fmt.Errorf("%w: failed to write JSON file: %v", ErrSendFailed, err)
	}

	return Result{MessageID: "<" + id + ">"}, nil
}

// sanitizeRegex matches characters that are not alphanumeric, dash, underscore, or dot.
var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

// sanitizeFilename converts a string into a safe lowercase filename.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = sanitizeRegex.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "message"
	}
	return strings.ToLower(s)
}
