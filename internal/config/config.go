// Package config defines the application's typed configuration and its
// loader. Values come from the environment (TASKMASTER_ prefix), an
// optional config file, and defaults, in that order of precedence.
package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Mail     MailConfig     `mapstructure:"mail"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains token issuing and validation settings.
type AuthConfig struct {
	// JWTSecret signs bearer tokens; 32 bytes minimum.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeMinutes is how long an issued token stays valid
	// (absent revocation).
	TokenLifetimeMinutes int `mapstructure:"token_lifetime_minutes" validate:"required"`
}

// MailConfig contains SMTP transport settings for assignment emails.
// Mail is optional: with an empty Host the application falls back to a
// no-op sender and only the notification rows are written.
type MailConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from" validate:"omitempty,email"`
}

// Enabled reports whether an SMTP transport is configured.
func (c MailConfig) Enabled() bool {
	return c.Host != ""
}
