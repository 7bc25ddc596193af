package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Email  EmailConfig
	App    AppConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	StaticDir      string
}

// EmailConfig drives the contact relay. User and Pass left empty means the
// relay is not configured and submissions are only stored.
type EmailConfig struct {
	Host    string
	Port    int
	User    string
	Pass    string
	To      string
	Secure  bool
	Timeout time.Duration
}

type AppConfig struct {
	Environment string
	Version     string
	ServiceName string
}

func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "5000"),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),
			StaticDir:      getEnv("STATIC_DIR", "dist/public"),
		},
		Email: EmailConfig{
			Host:    getEnv("EMAIL_HOST", "smtp.gmail.com"),
			Port:    getEnvAsInt("EMAIL_PORT", 587),
			User:    os.Getenv("EMAIL_USER"),
			Pass:    os.Getenv("EMAIL_PASS"),
			To:      getEnv("TO_EMAIL", "hello@example.com"),
			Secure:  getEnvAsBool("EMAIL_SECURE", false),
			Timeout: getEnvAsDuration("EMAIL_TIMEOUT", 10*time.Second),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", getEnv("NODE_ENV", "development")),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			ServiceName: getEnv("SERVICE_NAME", "portfolio-api"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Email.Port < 1 || c.Email.Port > 65535 {
		return fmt.Errorf("EMAIL_PORT must be between 1 and 65535, got %d", c.Email.Port)
	}

	if c.Email.To == "" {
		return fmt.Errorf("TO_EMAIL is required")
	}

	if c.Email.Timeout <= 0 {
		return fmt.Errorf("EMAIL_TIMEOUT must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvAsList splits a comma separated variable, dropping blank entries.
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
