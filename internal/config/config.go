package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Session backends understood by the application.
const (
	SessionBackendMemory  = "memory"
	SessionBackendSurreal = "surreal"
	SessionBackendRedis   = "redis"
)

// Provider is the read-only view of the configuration that the rest of the
// application depends on. Tests substitute their own implementation.
type Provider interface {
	GetServerAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetSessionTTL() time.Duration
	GetSessionBackend() string
	GetDBURL() string
	GetDBNs() string
	GetDBDb() string
	GetDBUser() string
	GetDBPass() string
	GetDBQueryTimeout() time.Duration
	GetRedisAddr() string
	GetRedisPassword() string
	GetEmailProvider() string
	GetEmailSender() string
	GetEmailAPIKey() string
	GetStaticMode() string
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr     string
	AppBaseURL     string
	SessionSecret  string
	SessionTTL     time.Duration
	SessionBackend string

	DBUrl          string
	DBNs           string
	DBDb           string
	DBUser         string
	DBPass         string
	DBQueryTimeout time.Duration

	RedisAddr     string
	RedisPassword string

	EmailProvider string
	EmailSender   string
	EmailAPIKey   string

	StaticMode string
}

// New loads configuration from a .env file (if any) and the environment.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		ServerAddr:     getEnv("SERVER_ADDR", ":8080"),
		AppBaseURL:     getEnv("APP_BASE_URL", "http://localhost:8080"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		SessionTTL:     getDuration("SESSION_TTL", 24*time.Hour),
		SessionBackend: strings.ToLower(getEnv("SESSION_BACKEND", SessionBackendMemory)),

		DBUrl:          os.Getenv("SURREAL_URL"),
		DBNs:           os.Getenv("SURREAL_NS"),
		DBDb:           os.Getenv("SURREAL_DB"),
		DBUser:         os.Getenv("SURREAL_USER"),
		DBPass:         os.Getenv("SURREAL_PASS"),
		DBQueryTimeout: getDuration("DB_QUERY_TIMEOUT", 5*time.Second),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		EmailProvider: getEnv("EMAIL_PROVIDER", "log"),
		EmailSender:   os.Getenv("EMAIL_SENDER"),
		EmailAPIKey:   os.Getenv("EMAIL_API_KEY"),

		StaticMode: getEnv("APP_STATIC", "embed"),
	}
}

// Validate reports every required setting that is missing for the selected
// backends.
func (c *Config) Validate() error {
	var errs []error
	if len(c.SessionSecret) < 16 {
		errs = append(errs, errors.New("SESSION_SECRET must be at least 16 characters"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be a positive duration"))
	}
	switch c.SessionBackend {
	case SessionBackendMemory:
	case SessionBackendSurreal:
		if c.DBUrl == "" || c.DBNs == "" || c.DBDb == "" {
			errs = append(errs, errors.New("SURREAL_URL, SURREAL_NS and SURREAL_DB are required for the surreal session backend"))
		}
		if c.DBQueryTimeout <= 0 {
			errs = append(errs, errors.New("DB_QUERY_TIMEOUT must be a positive duration"))
		}
	case SessionBackendRedis:
		if c.RedisAddr == "" {
			errs = append(errs, errors.New("REDIS_ADDR is required for the redis session backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown SESSION_BACKEND %q", c.SessionBackend))
	}
	if c.EmailProvider == "resend" && c.EmailAPIKey == "" {
		errs = append(errs, errors.New("EMAIL_API_KEY is required when EMAIL_PROVIDER is resend"))
	}
	return errors.Join(errs...)
}

func (c *Config) GetServerAddr() string            { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string            { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string         { return c.SessionSecret }
func (c *Config) GetSessionTTL() time.Duration     { return c.SessionTTL }
func (c *Config) GetSessionBackend() string        { return c.SessionBackend }
func (c *Config) GetDBURL() string                 { return c.DBUrl }
func (c *Config) GetDBNs() string                  { return c.DBNs }
func (c *Config) GetDBDb() string                  { return c.DBDb }
func (c *Config) GetDBUser() string                { return c.DBUser }
func (c *Config) GetDBPass() string                { return c.DBPass }
func (c *Config) GetDBQueryTimeout() time.Duration { return c.DBQueryTimeout }
func (c *Config) GetRedisAddr() string             { return c.RedisAddr }
func (c *Config) GetRedisPassword() string         { return c.RedisPassword }
func (c *Config) GetEmailProvider() string         { return c.EmailProvider }
func (c *Config) GetEmailSender() string           { return c.EmailSender }
func (c *Config) GetEmailAPIKey() string           { return c.EmailAPIKey }
func (c *Config) GetStaticMode() string            { return c.StaticMode }

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// getDuration parses a Go duration, falling back on a missing or malformed value.
func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("invalid duration for %s (%q), using %s", key, raw, fallback)
		return fallback
	}
	return d
}
