package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server       ServerConfig       `mapstructure:"server" validate:"required"`
	Auth         AuthConfig         `mapstructure:"auth" validate:"required"`
	ExchangeRate ExchangeRateConfig `mapstructure:"exchange_rate" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel        string        `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	// AllowedRoles lists the roles that may call the conversion endpoint.
	AllowedRoles []string `mapstructure:"allowed_roles" validate:"required,min=1,dive,oneof=CUSTOMER SPONSOR OWNER"`
}

// ExchangeRateConfig contains the settings for the external rate provider.
type ExchangeRateConfig struct {
	// BaseURL is the provider root, e.g. https://v6.exchangerate-api.com/v6.
	// Requests go to <BaseURL>/<APIKey>/latest/<base>.
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	APIKey  string        `mapstructure:"api_key" validate:"required"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}
