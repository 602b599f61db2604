package contact

import (
	"regexp"
	"strings"
)

// SendMessageRequest is the contact form payload.
type SendMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// emailPattern is deliberately permissive: anything of the shape
// local@domain.tld without whitespace passes. Real deliverability is the
// mail server's problem; this only catches obvious typos.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MissingFields returns the names of required fields that are empty or
// whitespace-only, in a stable order.
func (r SendMessageRequest) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(r.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(r.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(r.Message) == "" {
		missing = append(missing, "message")
	}
	return missing
}

// ValidEmail reports whether the email matches the accepted pattern.
func (r SendMessageRequest) ValidEmail() bool {
	return emailPattern.MatchString(r.Email)
}
