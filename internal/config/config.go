package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port          string `yaml:"port" env:"SERVER_PORT"`
		Mode          string `yaml:"mode" env:"SERVER_MODE"`
		StoragePath   string `yaml:"storage_path" env:"STORAGE_PATH"`
		PublicBaseURL string `yaml:"public_base_url" env:"PUBLIC_BASE_URL"`
		CookieSecure  bool   `yaml:"cookie_secure" env:"COOKIE_SECURE"`
		// AllowedOrigins is a comma separated list in the environment
		AllowedOrigins []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS"`
	} `yaml:"server"`

	Mongo struct {
		URI             string `yaml:"uri" env:"MONGODB_URI"`
		Database        string `yaml:"database" env:"MONGODB_DATABASE"`
		NoticesURI      string `yaml:"notices_uri" env:"NOTICES_MONGODB_URI"`
		NoticesDatabase string `yaml:"notices_database" env:"NOTICES_MONGODB_DATABASE"`
		Timeout         string `yaml:"timeout" env:"MONGODB_TIMEOUT"`
	} `yaml:"mongo"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	JWT struct {
		Secret               string `yaml:"secret" env:"JWT_SECRET"`
		AdminTokenExpiration string `yaml:"admin_token_expiration" env:"JWT_ADMIN_TOKEN_EXPIRATION"`
		Issuer               string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Admin struct {
		Email        string `yaml:"email" env:"ADMIN_EMAIL"`
		Password     string `yaml:"password" env:"ADMIN_PASSWORD"`
		PasswordHash string `yaml:"password_hash" env:"ADMIN_PASSWORD_HASH"`
	} `yaml:"admin"`

	Cloudinary struct {
		CloudName string `yaml:"cloud_name" env:"CLOUDINARY_CLOUD_NAME"`
		APIKey    string `yaml:"api_key" env:"CLOUDINARY_API_KEY"`
		APISecret string `yaml:"api_secret" env:"CLOUDINARY_API_SECRET"`
		Folder    string `yaml:"folder" env:"CLOUDINARY_FOLDER"`
	} `yaml:"cloudinary"`

	SMTP struct {
		Host      string `yaml:"host" env:"SMTP_HOST"`
		Port      int    `yaml:"port" env:"SMTP_PORT"`
		Username  string `yaml:"username" env:"SMTP_USERNAME"`
		Password  string `yaml:"password" env:"SMTP_PASSWORD"`
		FromName  string `yaml:"from_name" env:"SMTP_FROM_NAME"`
		FromEmail string `yaml:"from_email" env:"SMTP_FROM_EMAIL"`
		UseTLS    bool   `yaml:"use_tls" env:"SMTP_USE_TLS"`
	} `yaml:"smtp"`

	Notify struct {
		OperatorEmail string `yaml:"operator_email" env:"NOTIFY_OPERATOR_EMAIL"`
		SendTimeout   string `yaml:"send_timeout" env:"NOTIFY_SEND_TIMEOUT"`
	} `yaml:"notify"`

	OTP struct {
		TTL    string `yaml:"ttl" env:"OTP_TTL"`
		Length int    `yaml:"length" env:"OTP_LENGTH"`
	} `yaml:"otp"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Seed struct {
		Enabled bool `yaml:"enabled" env:"SEED_ENABLED"`
	} `yaml:"seed"`
}

// LoadConfig loads configuration from a file, an optional .env file and
// environment variables, in increasing order of precedence.
func LoadConfig(configPath string) (*Config, error) {
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

	// .env never overrides variables already present in the process
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
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
	config.Server.StoragePath = "./uploads"
	config.Server.AllowedOrigins = []string{"http://localhost:3000"}

	config.Mongo.URI = "mongodb://localhost:27017"
	config.Mongo.Database = "gcett_directory"
	config.Mongo.Timeout = "10s"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "gcett_submissions"
	config.Database.SSLMode = "disable"
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"

	config.JWT.AdminTokenExpiration = "24h"
	config.JWT.Issuer = "gcett-directory"

	config.SMTP.Host = "smtp.gmail.com"
	config.SMTP.Port = 587
	config.SMTP.FromName = "GCETT Student Directory"

	config.Notify.SendTimeout = "30s"

	config.OTP.TTL = "10m"
	config.OTP.Length = 6

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Mongo.URI == "" {
		return fmt.Errorf("mongo uri is required")
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	durations := map[string]string{
		"JWT admin token expiration": config.JWT.AdminTokenExpiration,
		"mongo timeout":              config.Mongo.Timeout,
		"OTP ttl":                    config.OTP.TTL,
		"notify send timeout":        config.Notify.SendTimeout,
		"database conn max lifetime": config.Database.ConnMaxLifetime,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	for _, origin := range config.Server.AllowedOrigins {
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("allowed origin %q must be an explicit http(s) origin", origin)
		}
	}

	if config.OTP.Length < 4 || config.OTP.Length > 9 {
		return fmt.Errorf("OTP length must be between 4 and 9")
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

// NoticesMongo returns the URI and database name of the notices store,
// falling back to the primary store when none is configured.
func (c *Config) NoticesMongo() (uri, database string) {
	uri, database = c.Mongo.NoticesURI, c.Mongo.NoticesDatabase
	if uri == "" {
		uri = c.Mongo.URI
	}
	if database == "" {
		database = c.Mongo.Database
	}
	return uri, database
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Mode == "production" || c.Server.Mode == "release"
}
