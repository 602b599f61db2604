package contact

import (
	"fmt"
	"html"
	"strings"

	"github.com/dmitrymomot/contactrelay/pkg/mailer"
)

// composeMessage builds the mail message for a submission. The operator
// both sends and receives it; Reply-To points at the visitor so a reply
// from the inbox reaches them directly.
//
// All three fields are HTML-escaped before interpolation into the HTML
// body; a crafted name or message must render as text, not markup.
// Newlines in the message become <br> so formatting survives.
func composeMessage(cfg mailer.Config, req SendMessageRequest) mailer.Message {
	textBody := fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s\n", req.Name, req.Email, req.Message)

	htmlBody := fmt.Sprintf(
		`<h2>New contact form message</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		html.EscapeString(req.Name),
		html.EscapeString(req.Email),
		htmlMessageBody(req.Message),
	)

	return mailer.Message{
		From:     cfg.Username,
		To:       cfg.Username,
		ReplyTo:  req.Email,
		Subject:  fmt.Sprintf("New contact form message from %s", req.Name),
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// htmlMessageBody escapes the message and converts newlines to <br>.
// Escaping happens first so the inserted tags survive.
func htmlMessageBody(message string) string {
	escaped := html.EscapeString(message)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return strings.ReplaceAll(escaped, "\n", "<br>")
}
