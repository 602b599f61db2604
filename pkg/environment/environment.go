package environment

// Environment represents the application runtime environment.
type Environment string

const (
	// Development for local development.
	Development Environment = "development"
	// Staging for pre-production environments.
	Staging Environment = "staging"
	// Production for production deployments.
	Production Environment = "production"
)

// Parse normalizes an environment name, accepting common short forms.
// Unknown values fall back to Development so a misconfigured process
// never silently behaves like production.
func Parse(s string) Environment {
	switch s {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

// IsDevelopment reports whether the environment is development.
func (e Environment) IsDevelopment() bool {
	return e == Development || e == "dev"
}

// IsStaging reports whether the environment is staging.
func (e Environment) IsStaging() bool {
	return e == Staging || e == "stage"
}

// IsProduction reports whether the environment is production.
func (e Environment) IsProduction() bool {
	return e == Production || e == "prod"
}

// String implements fmt.Stringer.
func (e Environment) String() string {
	return string(e)
}

// UnmarshalText implements encoding.TextUnmarshaler so configuration
// loaders normalize environment names through Parse.
func (e *Environment) UnmarshalText(text []byte) error {
	*e = Parse(string(text))
	return nil
}
