package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ipede/user-directory-service/internal/domain"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds the application configuration
type Config struct {
	// Database configuration
	DBHost        string
	DBPort        int
	DBUser        string
	DBPassword    string
	DBName        string
	DBAutoMigrate bool
	MigrationsDir string

	// JWT configuration
	JWTSecretKey     string
	JWTIssuer        string
	JWTAudience      string
	JWTSubject       string
	JWTTokenDuration time.Duration

	// Server configuration
	ServerPort     int
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewConfig creates a new configuration with default values
func NewConfig() *Config {
	return &Config{
		// Database defaults
		DBHost:        "localhost",
		DBPort:        5432,
		DBUser:        "owner",
		DBPassword:    "ownerTest",
		DBName:        "users",
		DBAutoMigrate: false,
		MigrationsDir: "migrations",

		// JWT defaults
		JWTIssuer:        "user-directory-service",
		JWTAudience:      "user-directory-clients",
		JWTSubject:       domain.DefaultTokenSubject,
		JWTTokenDuration: domain.DefaultTokenDuration,

		// Server defaults
		ServerPort:     8080,
		RateLimitRPS:   5,
		RateLimitBurst: 10,
	}
}

// LoadConfig loads configuration from environment variables
func LoadConfig(logger *zap.Logger) (*Config, error) {
	// Load .env from project root
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", zap.Error(err))
	}

	cfg := NewConfig()

	var err error
	if cfg.DBPort, err = getEnvInt("DB_PORT", cfg.DBPort); err != nil {
		return nil, err
	}
	if cfg.DBAutoMigrate, err = getEnvBool("DB_AUTO_MIGRATE", cfg.DBAutoMigrate); err != nil {
		return nil, err
	}
	if cfg.JWTTokenDuration, err = getEnvDuration("JWT_TOKEN_DURATION", cfg.JWTTokenDuration); err != nil {
		return nil, err
	}
	if cfg.ServerPort, err = getEnvInt("PORT", cfg.ServerPort); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = getEnvFloat("RATE_LIMIT_RPS", cfg.RateLimitRPS); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", cfg.RateLimitBurst); err != nil {
		return nil, err
	}

	cfg.DBHost = getEnv("DB_HOST", cfg.DBHost)
	cfg.DBUser = getEnv("DB_USER", cfg.DBUser)
	cfg.DBPassword = getEnv("DB_PASSWORD", cfg.DBPassword)
	cfg.DBName = getEnv("DB_NAME", cfg.DBName)
	cfg.MigrationsDir = getEnv("MIGRATIONS_DIR", cfg.MigrationsDir)

	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "")
	cfg.JWTIssuer = getEnv("JWT_ISSUER", cfg.JWTIssuer)
	cfg.JWTAudience = getEnv("JWT_AUDIENCE", cfg.JWTAudience)
	cfg.JWTSubject = getEnv("JWT_SUBJECT", cfg.JWTSubject)

	if cfg.JWTSecretKey == "" {
		logger.Warn("JWT_SECRET_KEY is not set, token issuance will fail")
	}

	return cfg, nil
}

// TokenConfig returns the token issuer and verifier settings
func (c *Config) TokenConfig() domain.TokenConfig {
	return domain.TokenConfig{
		SecretKey: []byte(c.JWTSecretKey),
		Issuer:    c.JWTIssuer,
		Audience:  c.JWTAudience,
		Subject:   c.JWTSubject,
		Duration:  c.JWTTokenDuration,
	}
}

// DatabaseURL returns the connection URL used by migrations
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return intValue, nil
}

func getEnvFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
