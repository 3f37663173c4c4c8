package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Database  DatabaseConfig
	JWT       JWTConfig
	Telemetry TelemetryConfig
}

type DatabaseConfig struct {
	// Driver selects the adapter: "sqlite" or "postgres".
	Driver         string `env:"DATABASE_DRIVER,  default=sqlite"`
	Path           string `env:"DATABASE_PATH,    default=database.db"`
	URL            string `env:"DATABASE_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH,  default=db/migrations"`
}

type JWTConfig struct {
	Secret          string `env:"JWT_SECRET"`
	Issuer          string `env:"JWT_ISSUER,           default=taskmanager"`
	Audience        string `env:"JWT_AUDIENCE,         default=taskmanager-clients"`
	ExpirationHours int    `env:"JWT_EXPIRATION_HOURS, default=24"`
}

type TelemetryConfig struct {
	MetricsPort  string `env:"METRICS_PORT,  default=9091"`
	OTLPEndpoint string `env:"OTLP_ENDPOINT, default=localhost:4317"`
}

// Load reads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config

	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
