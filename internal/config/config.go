// Package config loads the application configuration from the environment.
// Every variable carries the SOLSWEEP_ prefix.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/solsweep/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "solsweep"

// Config materializes the full application configuration.
type Config struct {
	// HTTPAddress is the listen address of the HTTP API.
	HTTPAddress string `envconfig:"HTTP_ADDRESS" default:":8080" validate:"required"`

	// Networks lists the Solana clusters to expose, resolved to their
	// public endpoints unless overridden below.
	Networks []string `envconfig:"NETWORKS" default:"devnet" validate:"required,min=1,dive,required"`

	// RPCEndpoint and WSEndpoint override the public endpoints of every
	// configured network, for private RPC providers or local validators.
	// Both must be set together and limit Networks to a single entry.
	RPCEndpoint string `envconfig:"RPC_ENDPOINT" validate:"required_with=WSEndpoint"`
	WSEndpoint  string `envconfig:"WS_ENDPOINT" validate:"required_with=RPCEndpoint"`

	// FeeReserveLamports is left on a watched account to cover the sweep
	// transaction fee.
	FeeReserveLamports uint64 `envconfig:"FEE_RESERVE_LAMPORTS" default:"5000"`

	// ConfirmationAttempts and ConfirmationTimeout bound confirmation
	// polling per submitted transaction.
	ConfirmationAttempts uint          `envconfig:"CONFIRMATION_ATTEMPTS" default:"3" validate:"min=1"`
	ConfirmationTimeout  time.Duration `envconfig:"CONFIRMATION_TIMEOUT" default:"60s" validate:"min=1s"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// TelemetryEnabled turns on the OTLP exporters. ServiceName tags every
	// exported signal.
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"solsweep"`
}

// Load reads and validates the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("processing environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	if cfg.RPCEndpoint != "" && len(cfg.Networks) != 1 {
		return Config{}, fmt.Errorf("endpoint overrides require exactly one configured network, got %d", len(cfg.Networks))
	}

	return cfg, nil
}
