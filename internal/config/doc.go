// Package config handles configuration loading, parsing, and validation
// from environment variables, an optional .env file and an optional
// config.yaml. It provides type-safe access to the settings needed by the
// server, the authentication layer and the exchange-rate client while
// keeping configuration details separate from business logic.
package config
