package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Upstream UpstreamConfig
	Session  SessionConfig
	Redis    RedisConfig
}

// UpstreamConfig points at the atlas-auth backend every call is proxied to.
type UpstreamConfig struct {
	BaseURL           string        `env:"API_BASE_URL, default=http://localhost:9000"`
	ProviderSignature string        `env:"PROVIDER_SIGNATURE"`
	Timeout           time.Duration `env:"UPSTREAM_TIMEOUT, default=120s"`
}

type SessionConfig struct {
	// Secret signs the session cookie; JWTSecret verifies bearer tokens.
	Secret    string `env:"SESSION_SECRET"`
	JWTSecret string `env:"JWT_SECRET"`

	Audience string `env:"TOKEN_AUDIENCE, default=web"`
	Issuer   string `env:"TOKEN_ISSUER,   default=wplex-atlas-auth"`

	// VerifySignature may be disabled only when a gateway in front of this
	// service already verifies token signatures.
	VerifySignature bool `env:"SESSION_VERIFY_SIGNATURE, default=true"`

	TTL   time.Duration `env:"SESSION_TTL,   default=240h"`
	Store string        `env:"SESSION_STORE, default=memory"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
