package database

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// DriverPostgres selects PostgreSQL through lib/pq.
	DriverPostgres = "postgres"
	// DriverSQLite selects SQLite through mattn/go-sqlite3.
	DriverSQLite = "sqlite3"
)

// Config holds database connection settings. The database is optional: when
// Enabled is false nothing is opened.
type Config struct {
	Enabled        bool   `yaml:"enabled" envconfig:"DB_ENABLED"`
	Driver         string `yaml:"driver" envconfig:"DB_DRIVER"`
	Host           string `yaml:"host" envconfig:"DB_HOST"`
	Port           string `yaml:"port" envconfig:"DB_PORT"`
	User           string `yaml:"user" envconfig:"DB_USER"`
	Password       string `yaml:"password" envconfig:"DB_PASSWORD"`
	Name           string `yaml:"name" envconfig:"DB_NAME"`
	SSLMode        string `yaml:"sslmode" envconfig:"DB_SSLMODE"`
	Path           string `yaml:"path" envconfig:"DB_PATH"`
	MaxConnections int    `yaml:"max_connections" envconfig:"DB_MAX_CONNECTIONS"`
}

// Normalize validates the settings and fills defaults. A disabled config is
// always valid.
func (c *Config) Normalize() error {
	if !c.Enabled {
		return nil
	}
	c.Driver = strings.ToLower(strings.TrimSpace(c.Driver))
	if c.Driver == "" || c.Driver == "postgresql" {
		c.Driver = DriverPostgres
	}
	if c.Driver == "sqlite" {
		c.Driver = DriverSQLite
	}
	switch c.Driver {
	case DriverPostgres:
		if strings.TrimSpace(c.Host) == "" {
			return fmt.Errorf("database.host is required for driver postgres")
		}
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("database.name is required for driver postgres")
		}
		if c.Port == "" {
			c.Port = "5432"
		}
		if c.SSLMode == "" {
			c.SSLMode = "disable"
		}
	case DriverSQLite:
		if strings.TrimSpace(c.Path) == "" {
			return fmt.Errorf("database.path is required for driver sqlite3")
		}
	default:
		return fmt.Errorf("invalid database.driver %q; allowed: postgres, sqlite3", c.Driver)
	}
	if c.MaxConnections <= 0 {
		c.MaxConnections = 4
	}
	if c.Driver == DriverSQLite && c.Path == ":memory:" {
		// every connection to :memory: opens a fresh database
		c.MaxConnections = 1
	}
	return nil
}

// DSN returns the driver-specific connection string used by sqlx.
func (c Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Path
	}
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// URL returns the postgres connection URL used by golang-migrate.
func (c Config) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

// Target is a log-safe description of the database location.
func (c Config) Target() string {
	if c.Driver == DriverSQLite {
		return c.Path
	}
	return c.Host + ":" + c.Port + "/" + c.Name
}
