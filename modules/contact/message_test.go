package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/contactrelay/pkg/mailer"
)

func TestComposeMessage(t *testing.T) {
	t.Parallel()

	cfg := mailer.Config{Username: "operator@example.com"}
	req := SendMessageRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "First line\nSecond line",
	}

	msg := composeMessage(cfg, req)

	assert.Equal(t, "operator@example.com", msg.From)
	assert.Equal(t, "operator@example.com", msg.To)
	assert.Equal(t, "jane@example.com", msg.ReplyTo)
	assert.Equal(t, "New contact form message from Jane Doe", msg.Subject)

	assert.Contains(t, msg.TextBody, "Name: Jane Doe")
	assert.Contains(t, msg.TextBody, "Email: jane@example.com")
	assert.Contains(t, msg.TextBody, "First line\nSecond line")

	assert.Contains(t, msg.HTMLBody, "Jane Doe")
	assert.Contains(t, msg.HTMLBody, "First line<br>Second line")
}

func TestComposeMessageEscapesHTML(t *testing.T) {
	t.Parallel()

	cfg := mailer.Config{Username: "operator@example.com"}
	req := SendMessageRequest{
		Name:    `<script>alert("x")</script>`,
		Email:   "jane@example.com",
		Message: `<b>bold</b> & "quoted"`,
	}

	msg := composeMessage(cfg, req)

	assert.NotContains(t, msg.HTMLBody, "<script>")
	assert.NotContains(t, msg.HTMLBody, "<b>bold</b>")
	assert.Contains(t, msg.HTMLBody, "&lt;script&gt;")
	assert.Contains(t, msg.HTMLBody, "&lt;b&gt;bold&lt;/b&gt; &amp;")

	// The text body carries the raw submission.
	assert.Contains(t, msg.TextBody, `<b>bold</b> & "quoted"`)
}

func TestHTMLMessageBody(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"unix newlines", "a\nb", "a<br>b"},
		{"windows newlines", "a\r\nb", "a<br>b"},
		{"escaping before break conversion", "1 < 2\nnext", "1 &lt; 2<br>next"},
		{"no newlines", "plain", "plain"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, htmlMessageBody(tt.message))
		})
	}
}
