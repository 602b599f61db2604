package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/dmitrymomot/contactrelay/modules/contact"
	"github.com/dmitrymomot/contactrelay/pkg/config"
	"github.com/dmitrymomot/contactrelay/pkg/cors"
	"github.com/dmitrymomot/contactrelay/pkg/httpserver"
	"github.com/dmitrymomot/contactrelay/pkg/logger"
	"github.com/dmitrymomot/contactrelay/pkg/mailer"
)

type corsConfig struct {
	// AllowedOrigins restricts cross-origin access to the listed origins.
	// Empty means any origin may post the form.
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

func main() {
	var (
		appCfg  contact.Config
		mailCfg mailer.Config
		srvCfg  httpserver.Config
		corsCfg corsConfig
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&mailCfg)
	config.MustLoad(&srvCfg)
	config.MustLoad(&corsCfg)

	log := logger.New(logger.WithEnvironment(appCfg.Environment, "contactrelay"))
	logger.SetAsDefault(log)

	transport, err := newTransport(mailCfg, log)
	if err != nil {
		log.Error("failed to initialize mail transport", logger.Error(err))
		os.Exit(1)
	}

	svc := contact.NewService(appCfg, mailCfg, transport, log)
	h := corsMiddleware(corsCfg)(svc.Router())

	srv := httpserver.NewFromConfig(srvCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("server listening",
				slog.String("addr", srvCfg.Addr()),
				slog.Bool("email_configured", mailCfg.Configured()),
			)
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("server stopped")
		}),
	)

	if err := srv.Run(context.Background(), h); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

// corsMiddleware builds the CORS layer. Credentials mode is always on,
// so allowed origins are echoed back rather than wildcarded.
func corsMiddleware(cfg corsConfig) func(http.Handler) http.Handler {
	opts := []cors.Option{
		cors.WithAllowCredentials(),
		cors.WithAllowMethods(http.MethodGet, http.MethodPost, http.MethodOptions),
	}
	if len(cfg.AllowedOrigins) > 0 {
		opts = append(opts, cors.WithAllowOrigins(cfg.AllowedOrigins...))
	}
	return cors.New(opts...)
}

// newTransport picks the mail transport: a directory-backed transport when
// MAIL_DEV_DIR is set, otherwise real SMTP. Missing credentials do not block
// startup; the service reports them per request and on /test.
func newTransport(cfg mailer.Config, log *slog.Logger) (mailer.Transport, error) {
	if cfg.DevDir != "" {
		log.Info("using local mail transport", slog.String("dir", cfg.DevDir))
		return mailer.NewDevTransport(cfg.DevDir), nil
	}
	return mailer.NewSMTPTransport(cfg)
}
