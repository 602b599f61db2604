package contact

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/contactrelay/binder"
	"github.com/dmitrymomot/contactrelay/handler"
	"github.com/dmitrymomot/contactrelay/pkg/logger"
	"github.com/dmitrymomot/contactrelay/pkg/mailer"
)

// User-facing message texts. Delivery failures map to a category-specific
// message; the raw cause is appended only in development.
const (
	msgSent             = "Message sent successfully!"
	msgMissingFields    = "All fields are required"
	msgInvalidEmail     = "Please provide a valid email address"
	msgConfigError      = "Server configuration error"
	msgAuthFailed       = "Email authentication failed. Please check server credentials."
	msgHostNotFound     = "Could not reach the mail server. Please try again later."
	msgConnectionFailed = "Connection to the mail server failed. Please try again later."
	msgSendFailed       = "Failed to send message. Please try again later."
	msgRouteNotFound    = "Route not found"
	msgInvalidBody      = "Invalid request body"
	msgInternalError    = "Internal server error"
)

// Service relays contact form submissions to the operator's inbox.
type Service struct {
	cfg       Config
	mailCfg   mailer.Config
	transport mailer.Transport
	log       *slog.Logger
}

// NewService creates the contact service. The transport is only touched
// after the credential check passes, so an unconfigured deployment can
// still serve requests (and report its state on /test).
func NewService(cfg Config, mailCfg mailer.Config, transport mailer.Transport, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		cfg:       cfg,
		mailCfg:   mailCfg,
		transport: transport,
		log:       log.With(logger.Component("contact")),
	}
}

// SendMessage handles POST /send-message: validate, check configuration,
// verify the mail session, send, map the outcome. Every failure is
// terminal; nothing retries.
func (s *Service) SendMessage() handler.HandlerFunc[handler.Context, SendMessageRequest] {
	return func(ctx handler.Context, req SendMessageRequest) handler.Response {
		if missing := req.MissingFields(); len(missing) > 0 {
			return handler.JSON(map[string]any{
				"error":   msgMissingFields,
				"missing": missing,
			}, handler.WithStatus(http.StatusBadRequest))
		}

		if !req.ValidEmail() {
			return handler.JSON(map[string]any{
				"error": msgInvalidEmail,
			}, handler.WithStatus(http.StatusBadRequest))
		}

		if !s.mailCfg.Configured() {
			s.log.ErrorContext(ctx, "mail credentials are not configured")
			return handler.JSON(map[string]any{
				"error": msgConfigError,
			}, handler.WithStatus(http.StatusInternalServerError))
		}

		if err := s.transport.Verify(ctx); err != nil {
			return s.deliveryFailure(ctx, err)
		}

		res, err := s.transport.Send(ctx, composeMessage(s.mailCfg, req))
		if err != nil {
			return s.deliveryFailure(ctx, err)
		}

		s.log.InfoContext(ctx, "contact message delivered",
			logger.Event("message_delivered"),
			logger.MessageID(res.MessageID),
		)
		return handler.JSON(map[string]any{
			"message":   msgSent,
			"messageId": res.MessageID,
		})
	}
}

// Health handles GET /: a liveness probe that also documents the API.
func (s *Service) Health() handler.HandlerFunc[handler.Context, struct{}] {
	return func(ctx handler.Context, _ struct{}) handler.Response {
		return handler.JSON(map[string]any{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"endpoints": map[string]string{
				"health":      "GET /",
				"configCheck": "GET /test",
				"sendMessage": "POST /send-message",
			},
		})
	}
}

// ConfigCheck handles GET /test: reports whether mail credentials are
// present. Presence flags only; the values themselves never leave the
// process.
func (s *Service) ConfigCheck() handler.HandlerFunc[handler.Context, struct{}] {
	return func(ctx handler.Context, _ struct{}) handler.Response {
		return handler.JSON(map[string]any{
			"emailConfigured": s.mailCfg.Configured(),
			"emailUser":       s.mailCfg.Username != "",
			"emailPass":       s.mailCfg.Password != "",
		})
	}
}

// deliveryFailure logs the cause and maps it to a category-specific 500
// response. The raw error is exposed only in development.
func (s *Service) deliveryFailure(ctx handler.Context, err error) handler.Response {
	s.log.ErrorContext(ctx, "contact message delivery failed",
		logger.Event("delivery_failed"),
		logger.Error(err),
	)

	body := map[string]any{"error": deliveryErrorMessage(err)}
	if s.cfg.Environment.IsDevelopment() {
		body["details"] = err.Error()
	}
	return handler.JSON(body, handler.WithStatus(http.StatusInternalServerError))
}

// deliveryErrorMessage translates transport error categories into
// user-facing text.
func deliveryErrorMessage(err error) string {
	switch {
	case errors.Is(err, mailer.ErrAuthFailed):
		return msgAuthFailed
	case errors.Is(err, mailer.ErrHostNotFound):
		return msgHostNotFound
	case errors.Is(err, mailer.ErrConnectionFailed):
		return msgConnectionFailed
	default:
		return msgSendFailed
	}
}

// errorHandler is the boundary for binding and rendering failures:
// malformed input maps to 400, anything else to a generic 500. Both are
// logged; neither leaks internals.
func (s *Service) errorHandler(ctx handler.Context, err error) {
	w := ctx.ResponseWriter()

	if binder.IsBindError(err) {
		s.log.WarnContext(ctx, "rejected malformed request body", logger.Error(err))
		renderJSON(w, http.StatusBadRequest, map[string]any{"error": msgInvalidBody})
		return
	}

	s.log.ErrorContext(ctx, "unhandled request error", logger.Error(err))
	renderJSON(w, http.StatusInternalServerError, map[string]any{"error": msgInternalError})
}
