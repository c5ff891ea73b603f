package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	GinMode  string
	TZ       string
	HTTPAddr string

	DBDriver          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPass            string
	DBName            string
	DBSSLMode         string
	SQLitePath        string
	DBConnectAttempts int

	LogLevel  string
	LogFormat string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	EventsChannel string

	RetryMaxAttempts int
	RetryBaseDelay   time.Duration
}

// Load reads the environment. In debug mode a .env file in the working
// directory is loaded first; variables already set in the environment win.
func Load() *Config {
	if getenv("GIN_MODE", "debug") == "debug" {
		if _, err := os.Stat(".env"); err == nil {
			if err := godotenv.Load(".env"); err != nil {
				log.Printf("warning: could not load .env: %v", err)
			}
		}
	}

	cfg := &Config{
		GinMode:  getenv("GIN_MODE", "debug"),
		TZ:       getenv("TZ", "UTC"),
		HTTPAddr: getenv("HTTP_ADDR", ":8080"),

		DBDriver:          getenv("DB_DRIVER", DriverPostgres),
		DBHost:            getenv("DB_HOST", "localhost"),
		DBPort:            getenv("DB_PORT", "5432"),
		DBUser:            getenv("DB_USER", "postgres"),
		DBPass:            getenv("DB_PASS", ""),
		DBName:            getenv("DB_NAME", "postgres"),
		DBSSLMode:         os.Getenv("DB_SSLMODE"),
		SQLitePath:        getenv("SQLITE_PATH", "shelfshare.db"),
		DBConnectAttempts: parseInt("DB_CONNECT_ATTEMPTS", 10),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "text"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       parseInt("REDIS_DB", 0),
		EventsChannel: getenv("EVENTS_CHANNEL", "shelfshare.circulation"),

		RetryMaxAttempts: parseInt("RETRY_MAX_ATTEMPTS", 5),
		RetryBaseDelay:   parseDuration("RETRY_BASE_DELAY", 10*time.Millisecond),
	}

	if cfg.DBSSLMode == "" {
		if cfg.GinMode == "release" {
			cfg.DBSSLMode = "require"
		} else {
			cfg.DBSSLMode = "disable"
		}
	}

	if cfg.DBConnectAttempts <= 0 {
		cfg.DBConnectAttempts = 1
	}
	if cfg.RetryMaxAttempts <= 0 {
		cfg.RetryMaxAttempts = 1
	}

	return cfg
}

func (c *Config) DSN() string {
	if c.DBDriver == DriverSQLite {
		return fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=1", c.SQLitePath)
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost,
		c.DBUser,
		c.DBPass,
		c.DBName,
		c.DBPort,
		c.DBSSLMode,
		c.TZ,
	)
}

// EventsEnabled reports whether transition events should be published.
func (c *Config) EventsEnabled() bool {
	return c.RedisAddr != ""
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func parseDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
