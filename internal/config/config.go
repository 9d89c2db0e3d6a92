package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string `yaml:"port" env:"SERVER_PORT"`
		Mode            string `yaml:"mode" env:"APP_ENV"`
		ReadTimeout     string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout    string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		MaxUploadSizeMB int    `yaml:"max_upload_size_mb" env:"MAX_UPLOAD_SIZE_MB"`
		StoragePath     string `yaml:"storage_path" env:"UPLOAD_STORAGE_PATH"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DATABASE_HOST"`
		Port            string `yaml:"port" env:"DATABASE_PORT"`
		User            string `yaml:"user" env:"DATABASE_USER"`
		Password        string `yaml:"password" env:"DATABASE_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DATABASE_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DATABASE_SSLMODE"`
		MaxConns        int    `yaml:"max_conns" env:"DATABASE_MAX_CONNS"`
		MinConns        int    `yaml:"min_conns" env:"DATABASE_MIN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DATABASE_CONN_MAX_LIFETIME"`
		LogQueries      bool   `yaml:"log_queries" env:"SQL_ECHO"`
		SeedDevData     bool   `yaml:"seed_dev_data" env:"SEED_DEV_DATA"`
	} `yaml:"database"`

	Security struct {
		AuthEnabled     bool   `yaml:"auth_enabled" env:"AUTH_ENABLED"`
		Secret          string `yaml:"secret" env:"SECRET_KEY"`
		APIKeyHash      string `yaml:"api_key_hash" env:"API_KEY_HASH"`
		TokenExpiration string `yaml:"token_expiration" env:"TOKEN_EXPIRATION"`
		Issuer          string `yaml:"issuer" env:"TOKEN_ISSUER"`
	} `yaml:"security"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The config file is optional, env vars alone can carry a deployment
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "15s"
	config.Server.WriteTimeout = "15s"
	config.Server.MaxUploadSizeMB = 10
	config.Server.StoragePath = "storage/uploads"

	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "globant_data_eng"
	config.Database.SSLMode = "disable"
	config.Database.MaxConns = 20
	config.Database.MinConns = 5
	config.Database.ConnMaxLifetime = "1h"

	// Security defaults: the API ships open, token auth is opt-in
	config.Security.AuthEnabled = false
	config.Security.TokenExpiration = "1h"
	config.Security.Issuer = "globant-data-eng"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Database.Port == "" {
		return fmt.Errorf("database port is required")
	}

	if config.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.Server.MaxUploadSizeMB <= 0 {
		return fmt.Errorf("max upload size must be positive")
	}

	if _, err := time.ParseDuration(config.Server.ReadTimeout); err != nil {
		return fmt.Errorf("invalid server read timeout format: %w", err)
	}

	if _, err := time.ParseDuration(config.Server.WriteTimeout); err != nil {
		return fmt.Errorf("invalid server write timeout format: %w", err)
	}

	if _, err := time.ParseDuration(config.Security.TokenExpiration); err != nil {
		return fmt.Errorf("invalid token expiration format: %w", err)
	}

	if config.Security.AuthEnabled {
		if config.Security.Secret == "" {
			return fmt.Errorf("SECRET_KEY is required when auth is enabled")
		}
		if config.Security.APIKeyHash == "" {
			return fmt.Errorf("API_KEY_HASH is required when auth is enabled")
		}
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
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

// MaxUploadSizeBytes returns the upload size limit in bytes.
func (c *Config) MaxUploadSizeBytes() int64 {
	return int64(c.Server.MaxUploadSizeMB) << 20
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsBool gets an environment variable as a boolean or returns a default value
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	valueLower := strings.ToLower(valueStr)
	if valueLower == "true" || valueLower == "1" || valueLower == "yes" {
		return true
	}
	if valueLower == "false" || valueLower == "0" || valueLower == "no" {
		return false
	}

	return defaultValue
}

// GetEnvAsInt gets an environment variable as an integer or returns a default value
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
