package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Auth struct {
		TokenSecret     string `yaml:"token_secret" env:"AUTH_TOKEN_SECRET"`
		TokenExpiration string `yaml:"token_expiration" env:"AUTH_TOKEN_EXPIRATION"`
		TokenIssuer     string `yaml:"token_issuer" env:"AUTH_TOKEN_ISSUER"`
		// Legacy bootstrap administrator. Authenticates against configuration
		// when no matching user row exists; tokens issued this way carry no
		// user id and skip the live directory re-check.
		BootstrapAdminUsername string `yaml:"bootstrap_admin_username" env:"AUTH_BOOTSTRAP_ADMIN_USERNAME"`
		BootstrapAdminPassword string `yaml:"bootstrap_admin_password" env:"AUTH_BOOTSTRAP_ADMIN_PASSWORD"`
	} `yaml:"auth"`

	SMTP struct {
		Host             string `yaml:"host" env:"SMTP_HOST"`
		Port             int    `yaml:"port" env:"SMTP_PORT"`
		Username         string `yaml:"username" env:"SMTP_USERNAME"`
		Password         string `yaml:"password" env:"SMTP_PASSWORD"`
		FromName         string `yaml:"from_name" env:"SMTP_FROM_NAME"`
		FromEmail        string `yaml:"from_email" env:"SMTP_FROM_EMAIL"`
		ContactRecipient string `yaml:"contact_recipient" env:"SMTP_CONTACT_RECIPIENT"`
	} `yaml:"smtp"`

	Jobs struct {
		// Cron expression for the stale teacher-assignment sweep.
		AssignmentSweepSchedule string `yaml:"assignment_sweep_schedule" env:"JOBS_ASSIGNMENT_SWEEP_SCHEDULE"`
	} `yaml:"jobs"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a yaml file and environment variables.
// A .env file in the working directory is loaded first when present.
func LoadConfig(configPath string) (*Config, error) {
	// .env is optional; ignore the error when the file is absent
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "hexadigitall"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.Auth.TokenExpiration = "24h"
	config.Auth.TokenIssuer = "hexadigitall.com"
	config.Auth.BootstrapAdminUsername = "admin"

	config.SMTP.Port = 587
	config.SMTP.FromName = "Hexadigitall"

	config.Jobs.AssignmentSweepSchedule = "0 3 * * *"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is usable
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if config.Auth.TokenSecret == "" {
		return fmt.Errorf("auth token secret is required")
	}
	if _, err := time.ParseDuration(config.Auth.TokenExpiration); err != nil {
		return fmt.Errorf("invalid token expiration format: %w", err)
	}
	return nil
}

// GetPostgresConnectionString returns the postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
