// Package config loads the process configuration from environment
// variables and validates it before anything else starts.
package config

import (
	"time"

	"github.com/gabapcia/paysim/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every runtime setting, loaded from PAYSIM_* environment
// variables.
type Config struct {
	// LogLevel controls the minimum level emitted by the logger.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	// OtelServiceName, when set, enables OpenTelemetry export under the
	// given service name.
	OtelServiceName string `envconfig:"OTEL_SERVICE_NAME"`

	// FeeRate is the simulated network fee charged per transaction byte.
	FeeRate int64 `envconfig:"FEE_RATE" default:"1" validate:"gte=0"`

	// MasterPublicKey switches address derivation from the sequential
	// scheme to deterministic derivation off this key material.
	MasterPublicKey string `envconfig:"MASTER_PUBLIC_KEY"`

	// AddressPrefix is used by the sequential derivation scheme when no
	// master key is configured.
	AddressPrefix string `envconfig:"ADDRESS_PREFIX" default:"tb1sim"`

	// InvoiceTTL is how long a new invoice stays payable.
	InvoiceTTL time.Duration `envconfig:"INVOICE_TTL" default:"1h" validate:"gt=0"`

	// SweepInterval is how often the background sweeper expires stale
	// invoices.
	SweepInterval time.Duration `envconfig:"SWEEP_INTERVAL" default:"30s" validate:"gt=0"`

	// WebhookURL is the merchant endpoint that receives invoice
	// status-change events.
	WebhookURL string `envconfig:"WEBHOOK_URL" validate:"omitempty,url"`

	// WebhookMaxAttempts bounds delivery attempts per event before it is
	// dead-lettered.
	WebhookMaxAttempts uint `envconfig:"WEBHOOK_MAX_ATTEMPTS" default:"5" validate:"gte=1"`

	// WebhookRetryDelay is the base backoff between delivery attempts.
	WebhookRetryDelay time.Duration `envconfig:"WEBHOOK_RETRY_DELAY" default:"1s" validate:"gt=0"`

	// RedisAddr, when set, stores webhook dead letters in Redis instead of
	// memory.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("paysim", &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
