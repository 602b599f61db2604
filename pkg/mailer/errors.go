package mailer

import "errors"

var (
	// ErrInvalidConfig indicates the transport configuration is unusable.
	ErrInvalidConfig = errors.New("mailer: invalid configuration")

	// ErrInvalidMessage indicates the message is missing required parts.
	ErrInvalidMessage = errors.New("mailer: invalid message")

	// ErrAuthFailed indicates the mail server rejected the credentials.
	ErrAuthFailed = errors.New("mailer: smtp authentication failed")

	// ErrHostNotFound indicates the mail server hostname did not resolve.
	ErrHostNotFound = errors.New("mailer: smtp host not found")

	// ErrConnectionFailed indicates the connection to the mail server failed.
	ErrConnectionFailed = errors.New("mailer: connection to smtp host failed")

	// ErrSendFailed indicates delivery failed for an uncategorized reason.
	ErrSendFailed = errors.New("mailer: failed to send message")
)
