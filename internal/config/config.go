package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	Session  SessionConfig
	App      AppConfig
	Maps     MapsConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// SessionConfig holds the verification settings for access tokens issued by
// the hosted auth backend. This service never mints login tokens itself.
type SessionConfig struct {
	Secret        string
	AcceptableSkew string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// MapsConfig holds settings for the external directions/geocoding service.
// The route estimator works without it; leaving APIKey empty disables the
// exact-duration tier.
type MapsConfig struct {
	APIKey      string
	BaseURL     string
	DefaultCity string
	Country     string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "asistia-homecare"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	config.Session = SessionConfig{
		Secret:        getEnv("SESSION_JWT_SECRET", ""),
		AcceptableSkew: getEnv("SESSION_ACCEPTABLE_SKEW", "30s"),
	}

	config.Maps = MapsConfig{
		APIKey:      getEnv("MAPS_API_KEY", ""),
		BaseURL:     getEnv("MAPS_BASE_URL", "https://maps.googleapis.com"),
		DefaultCity: getEnv("MAPS_DEFAULT_CITY", "Mataró"),
		Country:     getEnv("MAPS_COUNTRY", "España"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_JWT_SECRET is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	return strings.Split(value, ",")
}
