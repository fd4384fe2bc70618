package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "FXCONVERT"

// ConfigDirEnv names an optional directory searched for config.yaml.
const ConfigDirEnv = EnvPrefix + "_CONFIG_DIR"

// legacyEnv lists unprefixed variable names accepted as fallbacks.
var legacyEnv = map[string]string{
	"exchange_rate.api_key":  "API_KEY",
	"exchange_rate.base_url": "EXCHANGE_RATE_API_URL",
}

var defaults = map[string]interface{}{
	"server.port":                 8080,
	"server.log_level":            "info",
	"server.read_timeout":         15 * time.Second,
	"server.write_timeout":        30 * time.Second,
	"server.shutdown_timeout":     10 * time.Second,
	"auth.token_lifetime_minutes": 60,
	"auth.allowed_roles":          []string{"CUSTOMER", "SPONSOR", "OWNER"},
	"exchange_rate.base_url":      "https://v6.exchangerate-api.com/v6",
	"exchange_rate.timeout":       10 * time.Second,
}

// keys without a default that must still be bound to the environment
var requiredKeys = []string{
	"auth.jwt_secret",
	"exchange_rate.api_key",
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files, and a
// .env file in the working directory is loaded first when present.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	cfg, err := read()
	if err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// LoadAuth reads configuration from the same sources as Load but validates
// only the auth group, for tools that sign tokens and never call the provider.
func LoadAuth() (*AuthConfig, error) {
	cfg, err := read()
	if err != nil {
		return nil, err
	}

	if err := validator.New().Struct(&cfg.Auth); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &cfg.Auth, nil
}

// read merges .env, config file, environment and defaults without validating.
func read() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	for i, role := range cfg.Auth.AllowedRoles {
		cfg.Auth.AllowedRoles[i] = strings.ToUpper(strings.TrimSpace(role))
	}

	return &cfg, nil
}

// bindEnv binds every known key to its prefixed variable, plus the legacy
// fallback where one exists.
func bindEnv(v *viper.Viper) error {
	keys := make([]string, 0, len(defaults)+len(requiredKeys))
	for key := range defaults {
		keys = append(keys, key)
	}
	keys = append(keys, requiredKeys...)

	for _, key := range keys {
		names := []string{key, envName(key)}
		if legacy, ok := legacyEnv[key]; ok {
			names = append(names, legacy)
		}
		if err := v.BindEnv(names...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	return nil
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
