package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort   string `env:"HTTP_PORT" envDefault:"8080"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"salesdesk"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	AppEnv    string `env:"APP_ENV" envDefault:"development"`

	// NotifyChannel is the Postgres LISTEN/NOTIFY channel shared by all
	// instances. Empty keeps notifications inside this process.
	NotifyChannel     string   `env:"NOTIFY_CHANNEL"`
	HeartbeatSchedule string   `env:"HEARTBEAT_SCHEDULE" envDefault:"*/30 * * * * *"`
	AllowedOrigins    []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	ListenerQueueSize int      `env:"LISTENER_QUEUE_SIZE" envDefault:"64"`
}

// LoadConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// DSN is the Postgres connection URL used by both GORM and the notification
// listener.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// HTTPAddr is the listen address of the API server.
func (c Config) HTTPAddr() string {
	return net.JoinHostPort("0.0.0.0", c.HTTPPort)
}
