package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// insecureDefaultSecret is the value older deployments silently fell back to.
const insecureDefaultSecret = "changeme"

var ErrInsecureSecret = errors.New("config: JWT_SECRET must be set to a non-default value")

type Config struct {
	Port            string        `env:"PORT,             default=4000"`
	Env             string        `env:"ENV,              default=development"`
	JWTSecret       string        `env:"JWT_SECRET"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	// BootstrapAdminEmail, when set, is promoted to admin at startup.
	BootstrapAdminEmail string `env:"BOOTSTRAP_ADMIN_EMAIL"`

	Mongo MongoConfig
	CORS  CORSConfig
}

type MongoConfig struct {
	URI      string        `env:"DB_URL,     default=mongodb://localhost:27017"`
	Database string        `env:"DB_NAME,    default=bazarxpress"`
	Timeout  time.Duration `env:"DB_TIMEOUT, default=10s"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS, default=http://localhost:3000,https://bazarxpress-server.onrender.com"`
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration from l. It fails when no usable signing secret
// is configured instead of falling back to a known constant.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == insecureDefaultSecret {
		return nil, ErrInsecureSecret
	}
	return &cfg, nil
}
