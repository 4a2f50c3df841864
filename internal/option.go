package internal

import "github.com/eazyservice/sitekeeper/internal/geo"

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config   *Config
	resolver geo.Resolver
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithResolver overrides the area resolver built from configuration.
// Used by tests to inject a deterministic implementation.
func WithResolver(r geo.Resolver) Option {
	return func(a *application) {
		a.resolver = r
	}
}
