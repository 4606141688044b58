package config

import (
	"fmt"
	"log"
	"os"
	"slices"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Settings is the full runtime configuration, decoded from the environment.
type Settings struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`
	Port   string `envconfig:"PORT" default:"8080"`

	DBDriver          string        `envconfig:"DB_DRIVER" default:"sqlite"`
	DBDSN             string        `envconfig:"DB_DSN" default:"social.db"`
	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	// runtime tunables
	RateLimitWindow   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"10s"`
	RateLimitCapacity int           `envconfig:"RATE_LIMIT_CAPACITY" default:"20"`
	RateLimitMaxKeys  int           `envconfig:"RATE_LIMIT_MAX_KEYS" default:"10000"`

	CORSAllowOrigins []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173,http://127.0.0.1:5173"`
	ShutdownTimeout  time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

func (s Settings) IsProduction() bool { return s.AppEnv == "production" }

// Addr is the listen address for the HTTP server.
func (s Settings) Addr() string { return ":" + s.Port }

// loadAppEnv loads .env unless APP_ENV is production. A missing file is not fatal.
func loadAppEnv() {
	if os.Getenv("APP_ENV") == "production" {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Printf("[config] no .env loaded: %v", err)
	}
}

// Load reads .env (outside production) and decodes the environment into Settings.
func Load() (Settings, error) {
	loadAppEnv()
	return FromEnv()
}

// FromEnv decodes the current environment without touching .env.
func FromEnv() (Settings, error) {
	var s Settings
	if err := envconfig.Process("", &s); err != nil {
		return Settings{}, fmt.Errorf("config: %w", err)
	}
	if !slices.Contains([]string{"development", "staging", "production"}, s.AppEnv) {
		return Settings{}, fmt.Errorf("config: APP_ENV must be 'development', 'staging' or 'production', got %q", s.AppEnv)
	}
	if !slices.Contains([]string{"sqlite", "mysql"}, s.DBDriver) {
		return Settings{}, fmt.Errorf("config: DB_DRIVER must be 'sqlite' or 'mysql', got %q", s.DBDriver)
	}
	if s.RateLimitCapacity < 0 {
		s.RateLimitCapacity = 0
	}
	return s, nil
}
