package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type DB struct {
	Driver       string
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

type Log struct {
	Level  string
	Format string
	App    string
}

type Config struct {
	Port string
	DB   DB
	Log  Log

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Load lee .env (si existe) y luego el entorno. El entorno gana sobre .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	dsn := getEnv("DB_DSN", "")
	// Sin driver explícito: DSN => postgres, si no in-memory (modo dev).
	driver := DriverMemory
	if dsn != "" {
		driver = DriverPostgres
	}

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		DB: DB{
			Driver:       strings.ToLower(getEnv("DB_DRIVER", driver)),
			DSN:          dsn,
			MaxOpenConns: getInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: getInt("DB_MAX_IDLE_CONNS", 5),
		},
		Log: Log{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
			App:    getEnv("APP_NAME", "bird-sightings-api"),
		},
		ReadTimeout:     getDuration("HTTP_READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DB.Driver {
	case DriverMemory:
	case DriverPostgres, DriverMySQL, DriverSQLite:
		if strings.TrimSpace(c.DB.DSN) == "" {
			return fmt.Errorf("DB_DSN is required when DB_DRIVER=%s", c.DB.Driver)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %q", c.DB.Driver)
	}
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("PORT must not be empty")
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return defaultVal
	}
	return v
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return defaultVal
	}
	return v
}
