package database

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// Config holds database connection settings.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DSN returns a pgx-compatible keyword/value connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// URL returns a postgres:// URL form of the DSN, as required by the
// NOTIFY listener's pgx.Connect.
func (c Config) URL() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.Database,
	}
	q := u.Query()
	q.Set("sslmode", c.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// LoadConfigFromEnv loads database configuration from the environment.
// DATABASE_URL, when set, takes precedence over the individual DB_* vars.
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		Host:            getEnvOrDefault("DB_HOST", "localhost"),
		User:            getEnvOrDefault("DB_USER", "headspace"),
		Password:        os.Getenv("DB_PASSWORD"),
		Database:        getEnvOrDefault("DB_NAME", "headspace"),
		SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}

	port, err := strconv.Atoi(getEnvOrDefault("DB_PORT", "5432"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	cfg.Port = port

	cfg.MaxOpenConns, _ = strconv.Atoi(getEnvOrDefault("DB_MAX_OPEN_CONNS", "10"))
	cfg.MaxIdleConns, _ = strconv.Atoi(getEnvOrDefault("DB_MAX_IDLE_CONNS", "5"))

	if rawURL := os.Getenv("DATABASE_URL"); rawURL != "" {
		if err := cfg.applyURL(rawURL); err != nil {
			return Config{}, fmt.Errorf("invalid DATABASE_URL: %w", err)
		}
	}

	return cfg, nil
}

// ApplyURL overwrites connection fields from a postgres:// URL, keeping
// pool settings untouched. Used when the config file carries an explicit
// database.url.
func (c *Config) ApplyURL(rawURL string) error {
	return c.applyURL(rawURL)
}

// applyURL overwrites connection fields from a postgres:// URL, keeping
// pool settings untouched.
func (c *Config) applyURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	c.Host = u.Hostname()
	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("invalid port: %w", err)
		}
		c.Port = port
	}
	if u.User != nil {
		c.User = u.User.Username()
		if pw, ok := u.User.Password(); ok {
			c.Password = pw
		}
	}
	if len(u.Path) > 1 {
		c.Database = u.Path[1:]
	}
	if mode := u.Query().Get("sslmode"); mode != "" {
		c.SSLMode = mode
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
