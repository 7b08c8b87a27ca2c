package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Env        string
	Port       string
	LogLevel   string
	CORSOrigin string

	// Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Session
	JWTSecret    string
	SessionTTL   time.Duration
	CookieSecure bool

	// Role gate. Each password may be plain text or a bcrypt hash.
	HusbandPassword string
	WifePassword    string
	HusbandName     string
	WifeName        string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		CORSOrigin: os.Getenv("CORS_ORIGIN"),

		DBDriver:   getEnv("DB_DRIVER", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "twofold"),
		DBPassword: getEnv("DB_PASSWORD", "twofold"),
		DBName:     getEnv("DB_NAME", "twofold"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "twofold.db"),

		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		HusbandPassword: os.Getenv("HUSBAND_PASSWORD"),
		WifePassword:    os.Getenv("WIFE_PASSWORD"),
		HusbandName:     getEnv("HUSBAND_NAME", "Moon"),
		WifeName:        getEnv("WIFE_NAME", "Lovely"),
	}

	ttlStr := getEnv("SESSION_TTL", "720h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		log.Printf("Warning: invalid SESSION_TTL value '%s', falling back to 720h\n", ttlStr)
		ttl = 720 * time.Hour
	}
	config.SessionTTL = ttl

	secure, err := strconv.ParseBool(getEnv("COOKIE_SECURE", "false"))
	if err != nil {
		log.Printf("Warning: invalid COOKIE_SECURE value, falling back to false\n")
	}
	config.CookieSecure = secure

	return config, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
