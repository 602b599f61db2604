package contact

import "github.com/dmitrymomot/contactrelay/pkg/environment"

// Config holds contact module configuration.
type Config struct {
	// Environment controls error detail exposure: development includes the
	// underlying delivery error in responses, anything else suppresses it.
	Environment environment.Environment `env:"APP_ENV" envDefault:"development"`
}
