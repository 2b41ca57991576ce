package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config is loaded once in main and passed by reference into every component
// that needs it. Nothing here mutates after startup.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SecretKey signs the session cookie. The default exists only so local
	// development boots; any real deployment must override it.
	SecretKey    string `env:"SECRET_KEY,    default=change-me-in-production"`
	CookieSecure bool   `env:"COOKIE_SECURE, default=false"`

	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:8080"`

	Mongo MongoConfig
	Admin AdminConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=financeflow"`
}

// AdminConfig drives the startup ensure-admin routine.
type AdminConfig struct {
	Email       string `env:"ADMIN_EMAIL"`
	Password    string `env:"ADMIN_PASSWORD"`
	InitOnStart bool   `env:"INIT_ADMIN_ON_START, default=true"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
