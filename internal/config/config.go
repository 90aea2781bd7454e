package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherlookup.app/pkg/errors"
)

const (
	maxRedisDB              = 15
	maxSessionTTLMinutes    = 10080
	maxRequestTimeout       = 60
	maxRetentionDays        = 3650
	maxPruneIntervalMinutes = 10080
	maxPortNumber           = 65535
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Log      LogConfig      `split_words:"true"`
	Weather  WeatherConfig  `split_words:"true"`
	Session  SessionConfig  `split_words:"true"`
	History  HistoryConfig  `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// WeatherConfig configures the OpenWeatherMap client. APIKey is intentionally not
// required here: a missing key is reported on every search instead of at startup.
type WeatherConfig struct {
	APIKey                string `envconfig:"OPENWEATHERMAP_API_KEY"`
	BaseURL               string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	IconBaseURL           string `envconfig:"OPENWEATHERMAP_ICON_BASE_URL" default:"https://openweathermap.org/img/wn"`
	RequestTimeoutSeconds int    `envconfig:"WEATHER_REQUEST_TIMEOUT_SECONDS" default:"10"`
	EnableLogging         bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath           string `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_client.log"`
}

// RequestTimeout returns the per-request timeout as a duration
func (w WeatherConfig) RequestTimeout() time.Duration {
	return time.Duration(w.RequestTimeoutSeconds) * time.Second
}

// StoreType represents the backend holding per-session search state
type StoreType int

const (
	StoreTypeUnknown StoreType = iota
	StoreTypeMemory
	StoreTypeRedis
)

// String returns the string representation of store type
func (s StoreType) String() string {
	switch s {
	case StoreTypeMemory:
		return "memory"
	case StoreTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the store type is valid
func (s StoreType) IsValid() bool {
	return s == StoreTypeMemory || s == StoreTypeRedis
}

// StoreTypeFromString converts string to StoreType enum
func StoreTypeFromString(s string) StoreType {
	switch s {
	case "memory":
		return StoreTypeMemory
	case "redis":
		return StoreTypeRedis
	default:
		return StoreTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *StoreType) UnmarshalText(text []byte) error {
	*s = StoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s StoreType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type SessionConfig struct {
	StoreType  StoreType   `envconfig:"SESSION_STORE_TYPE" default:"memory"`
	TTLMinutes int         `envconfig:"SESSION_TTL_MINUTES" default:"60"`
	Redis      RedisConfig `split_words:"true"`
}

// TTL returns how long a session's search state is kept
func (s SessionConfig) TTL() time.Duration {
	return time.Duration(s.TTLMinutes) * time.Minute
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

// HistoryConfig controls the optional search history
type HistoryConfig struct {
	Enabled              bool   `envconfig:"HISTORY_ENABLED" default:"false"`
	Driver               string `envconfig:"HISTORY_DRIVER" default:"postgres"`
	SQLitePath           string `envconfig:"HISTORY_SQLITE_PATH" default:"history.db"`
	RetentionDays        int    `envconfig:"HISTORY_RETENTION_DAYS" default:"30"`
	PruneIntervalMinutes int    `envconfig:"HISTORY_PRUNE_INTERVAL_MINUTES" default:"60"`
}

// Retention returns the age after which history records are pruned
func (h HistoryConfig) Retention() time.Duration {
	return time.Duration(h.RetentionDays) * 24 * time.Hour
}

// PruneInterval returns how often expired history records are removed
func (h HistoryConfig) PruneInterval() time.Duration {
	return time.Duration(h.PruneIntervalMinutes) * time.Minute
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"weatherlookup"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Session.Validate(); err != nil {
		return err
	}
	if err := c.History.Validate(); err != nil {
		return err
	}
	if c.History.Enabled && c.History.Driver == "postgres" {
		if err := c.Database.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if err := validateHTTPURL("OPENWEATHERMAP_API_BASE_URL", w.BaseURL); err != nil {
		return err
	}
	if err := validateHTTPURL("OPENWEATHERMAP_ICON_BASE_URL", w.IconBaseURL); err != nil {
		return err
	}
	if w.RequestTimeoutSeconds < 1 || w.RequestTimeoutSeconds > maxRequestTimeout {
		return errors.NewConfigurationError("WEATHER_REQUEST_TIMEOUT_SECONDS must be between 1 and 60 seconds", nil)
	}
	if w.EnableLogging && w.LogFilePath == "" {
		return errors.NewConfigurationError("WEATHER_LOG_FILE_PATH cannot be empty when WEATHER_ENABLE_LOGGING is set", nil)
	}
	return nil
}

// HasAPIKey reports whether a provider credential is configured
func (w *WeatherConfig) HasAPIKey() bool {
	return strings.TrimSpace(w.APIKey) != ""
}

func validateHTTPURL(key, value string) error {
	if value == "" {
		return errors.NewConfigurationError(key+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(key+" must start with http:// or https://", nil)
	}
	return nil
}

func (s *SessionConfig) Validate() error {
	if !s.StoreType.IsValid() {
		return errors.NewConfigurationError("SESSION_STORE_TYPE must be one of: memory, redis", nil)
	}
	if s.TTLMinutes < 1 || s.TTLMinutes > maxSessionTTLMinutes {
		return errors.NewConfigurationError("SESSION_TTL_MINUTES must be between 1 and 10080 minutes", nil)
	}
	if s.StoreType == StoreTypeRedis {
		return s.Redis.Validate()
	}
	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis session store", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (h *HistoryConfig) Validate() error {
	if !h.Enabled {
		return nil
	}
	switch h.Driver {
	case "postgres":
	case "sqlite":
		if h.SQLitePath == "" {
			return errors.NewConfigurationError("HISTORY_SQLITE_PATH cannot be empty when HISTORY_DRIVER is sqlite", nil)
		}
	default:
		return errors.NewConfigurationError("HISTORY_DRIVER must be one of: postgres, sqlite", nil)
	}
	if h.RetentionDays < 1 || h.RetentionDays > maxRetentionDays {
		return errors.NewConfigurationError("HISTORY_RETENTION_DAYS must be between 1 and 3650", nil)
	}
	if h.PruneIntervalMinutes < 1 || h.PruneIntervalMinutes > maxPruneIntervalMinutes {
		return errors.NewConfigurationError("HISTORY_PRUNE_INTERVAL_MINUTES must be between 1 and 10080", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}
