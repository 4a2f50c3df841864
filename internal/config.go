package internal

import (
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Content ContentConfig     `yaml:"content"`
	Admin   AdminConfig       `yaml:"admin"`
	Session SessionConfig     `yaml:"session"`
	Geo     GeoConfig         `yaml:"geo"`
	Static  StaticConfig      `yaml:"static"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Content.Validate(); err != nil {
		return err
	}
	if err := c.Admin.Validate(); err != nil {
		return err
	}
	return c.Session.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns HTTP server address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// ContentConfig holds the path to the content document file.
type ContentConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the content configuration.
func (c *ContentConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// AdminConfig holds the single operator identity.
//
// PasswordHash is a bcrypt hash and takes precedence over Password when
// both are set. Exactly one of the two must be configured; there are no
// built-in fallback credentials.
type AdminConfig struct {
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
}

// Validate validates the admin configuration.
func (c *AdminConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Username, validation.Required),
	); err != nil {
		return err
	}
	if c.Password == "" && c.PasswordHash == "" {
		return fmt.Errorf("admin: password or password_hash must be set")
	}
	return nil
}

// SessionConfig holds session token configuration. The signing secret has
// no default; startup fails without one.
type SessionConfig struct {
	Secret   string `yaml:"secret"`
	TTLHours int    `yaml:"ttl_hours"`
}

// TTL returns the session lifetime.
func (c *SessionConfig) TTL() time.Duration {
	return time.Duration(c.TTLHours) * time.Hour
}

// Validate validates the session configuration.
func (c *SessionConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Secret, validation.Required, validation.Length(16, 0)),
		validation.Field(&c.TTLHours, validation.Required, validation.Min(1)),
	)
}

// GeoConfig holds the external area-resolution endpoint. An empty endpoint
// disables resolution; the booking form then always uses manual selection.
type GeoConfig struct {
	Endpoint       string `yaml:"endpoint"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the resolver request timeout.
func (c *GeoConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// StaticConfig holds optional directories for the public site and admin
// UI assets. Empty values leave the respective routes unmounted.
type StaticConfig struct {
	PublicDir string `yaml:"public_dir"`
	AdminDir  string `yaml:"admin_dir"`
}

// NewDefaultConfig returns a new Config with sensible default values.
// Admin credentials and the session secret have no defaults on purpose.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 8080,
			},
		},
		Content: ContentConfig{
			Path: "data/site-content.json",
		},
		Session: SessionConfig{
			TTLHours: 24,
		},
		Geo: GeoConfig{
			TimeoutSeconds: 5,
		},
	}
}
