package mailer

import "time"

// Config holds mail transport configuration. Username and Password are
// optional so unconfigured environments can still start; senders gate on
// Configured before attempting delivery.
type Config struct {
	Host       string        `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port       int           `env:"SMTP_PORT" envDefault:"587"`
	Username   string        `env:"EMAIL_USER"`
	Password   string        `env:"EMAIL_PASS"`
	RateLimit  int           `env:"SMTP_RATE_LIMIT" envDefault:"5"`
	RatePeriod time.Duration `env:"SMTP_RATE_PERIOD" envDefault:"20s"`
	DevDir     string        `env:"MAIL_DEV_DIR"`
}

// Configured reports whether mail credentials are fully present.
func (c Config) Configured() bool {
	return c.Username != "" && c.Password != ""
}
