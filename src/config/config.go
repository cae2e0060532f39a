package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// envPrefix is accepted as a fallback prefix for every variable (QUANTI_DB_DSN, ...)
const envPrefix = "QUANTI_"

// Config holds all application configuration
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Auth          AuthConfig          `yaml:"auth"`
	Logging       LoggingConfig       `yaml:"logging"`
	Tracing       TracingConfig       `yaml:"tracing"`
	Sequencescape SequencescapeConfig `yaml:"sequencescape"`
	I18n          I18nConfig          `yaml:"i18n"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host           string   `yaml:"host"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	DSN  string `yaml:"dsn"`
	Seed bool   `yaml:"seed"`
}

// AuthConfig holds JWT configuration
type AuthConfig struct {
	JWTSecret     string        `yaml:"jwt_secret"`
	TokenLifetime time.Duration `yaml:"token_lifetime"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level            string `yaml:"level"`
	IsDev            bool   `yaml:"is_dev"`
	LogDir           string `yaml:"log_dir"`
	MaxAgeDays       int    `yaml:"max_age_days"`
	MaxSizeMB        int    `yaml:"max_size_mb"`
	MaxBackups       int    `yaml:"max_backups"`
	AlsoLogToConsole bool   `yaml:"also_log_to_console"`
}

// TracingConfig holds OpenTelemetry configuration
type TracingConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Exporter     string  `yaml:"exporter"`
	OTLPEndpoint string  `yaml:"otlp_endpoint"`
	SampleRate   float64 `yaml:"sample_rate"`
	ServiceName  string  `yaml:"service_name"`
}

// SequencescapeConfig describes the remote inventory API used for user and plate lookups
type SequencescapeConfig struct {
	// APIRoot is the base URL of the Sequencescape API. Empty disables remote lookups.
	APIRoot            string        `yaml:"api_root"`
	ClientID           string        `yaml:"client_id"`
	SearchesCollection string        `yaml:"searches_collection"`
	Timeout            time.Duration `yaml:"timeout"`
	// UUIDCacheTTL caches resolved search UUIDs. Zero resolves the UUID on every search.
	UUIDCacheTTL time.Duration `yaml:"uuid_cache_ttl"`
}

// I18nConfig holds locale configuration
type I18nConfig struct {
	DefaultLocale string `yaml:"default_locale"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:           ":8080",
			AllowedOrigins: []string{"http://localhost:8081", "http://127.0.0.1:8081"},
		},
		Auth: AuthConfig{
			TokenLifetime: 12 * time.Hour,
		},
		Logging: LoggingConfig{
			Level:            "info",
			LogDir:           "logs",
			MaxAgeDays:       7,
			MaxSizeMB:        100,
			MaxBackups:       10,
			AlsoLogToConsole: true,
		},
		Tracing: TracingConfig{
			Exporter:     "stdout",
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
			ServiceName:  "quanti",
		},
		Sequencescape: SequencescapeConfig{
			SearchesCollection: "searches",
			Timeout:            10 * time.Second,
		},
		I18n: I18nConfig{
			DefaultLocale: "en",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and the environment.
// A missing .env file is not an error.
func Load(yamlPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := Default()

	if yamlPath != "" {
		data, err := os.ReadFile(yamlPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Server.Host = getString("SERVER_HOST", c.Server.Host)
	if origins := getString("ALLOWED_ORIGINS", ""); origins != "" {
		c.Server.AllowedOrigins = splitList(origins)
	}

	c.Database.DSN = getString("DB_DSN", c.Database.DSN)
	c.Auth.JWTSecret = getString("JWT_SECRET", c.Auth.JWTSecret)
	c.Logging.Level = getString("LOG_LEVEL", c.Logging.Level)
	c.Logging.LogDir = getString("LOG_DIR", c.Logging.LogDir)
	c.Tracing.Exporter = getString("TRACING_EXPORTER", c.Tracing.Exporter)
	c.Tracing.OTLPEndpoint = getString("TRACING_OTLP_ENDPOINT", c.Tracing.OTLPEndpoint)
	c.Sequencescape.APIRoot = getString("SEQUENCESCAPE_API_ROOT", c.Sequencescape.APIRoot)
	c.Sequencescape.ClientID = getString("SEQUENCESCAPE_CLIENT_ID", c.Sequencescape.ClientID)
	c.Sequencescape.SearchesCollection = getString("SEQUENCESCAPE_SEARCHES", c.Sequencescape.SearchesCollection)
	c.I18n.DefaultLocale = getString("DEFAULT_LOCALE", c.I18n.DefaultLocale)

	var err error
	if c.Database.Seed, err = getBool("DB_SEED", c.Database.Seed); err != nil {
		return err
	}
	if c.Logging.IsDev, err = getBool("LOG_IS_DEV", c.Logging.IsDev); err != nil {
		return err
	}
	if c.Tracing.Enabled, err = getBool("TRACING_ENABLED", c.Tracing.Enabled); err != nil {
		return err
	}
	if c.Auth.TokenLifetime, err = getDuration("TOKEN_LIFETIME", c.Auth.TokenLifetime); err != nil {
		return err
	}
	if c.Sequencescape.Timeout, err = getDuration("SEQUENCESCAPE_TIMEOUT", c.Sequencescape.Timeout); err != nil {
		return err
	}
	if c.Sequencescape.UUIDCacheTTL, err = getDuration("SEQUENCESCAPE_UUID_CACHE_TTL", c.Sequencescape.UUIDCacheTTL); err != nil {
		return err
	}
	return nil
}

// Validate checks that required settings are present
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Auth.TokenLifetime <= 0 {
		return fmt.Errorf("token lifetime must be positive, got %s", c.Auth.TokenLifetime)
	}
	if c.Sequencescape.APIRoot != "" && c.Sequencescape.SearchesCollection == "" {
		return fmt.Errorf("SEQUENCESCAPE_SEARCHES must not be empty when SEQUENCESCAPE_API_ROOT is set")
	}
	if c.Sequencescape.UUIDCacheTTL < 0 {
		return fmt.Errorf("SEQUENCESCAPE_UUID_CACHE_TTL must not be negative")
	}
	return nil
}

// lookupEnv checks the exact key first, then the QUANTI_ prefixed one
func lookupEnv(key string) (string, bool) {
	if value, ok := os.LookupEnv(key); ok {
		return value, true
	}
	return os.LookupEnv(envPrefix + key)
}

func getString(key, fallback string) string {
	if value, ok := lookupEnv(key); ok {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	value, ok := lookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid boolean for %s: %w", key, err)
	}
	return parsed, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value, ok := lookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return parsed, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
