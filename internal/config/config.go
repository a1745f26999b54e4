package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shiftwise/timecard-backend-go/internal/domain/timecard"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	Timecard TimecardConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// SMTPConfig holds outbound email configuration. An empty Host disables
// delivery; notifications are still recorded.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// TimecardConfig holds the business rules for entry validation and
// period aggregation.
type TimecardConfig struct {
	FutureGraceDays int
	WorkingDays     timecard.Workweek
	DailyHoursCap   float64
}

func Load() (*Config, error) {
	// A missing .env file is fine in deployed environments where the
	// variables come from the process environment.
	_ = godotenv.Load()

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
		Name:     getEnv("DB_NAME", "timecard"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", ""),
		FromName: getEnv("SMTP_FROM_NAME", "Timecard"),
	}

	graceDays, err := strconv.Atoi(getEnv("TIMECARD_FUTURE_GRACE_DAYS", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMECARD_FUTURE_GRACE_DAYS: %w", err)
	}

	workingDays, err := timecard.ParseWorkweek(getEnv("TIMECARD_WORKING_DAYS", "Mon,Tue,Wed,Thu,Fri"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMECARD_WORKING_DAYS: %w", err)
	}

	hoursCap, err := strconv.ParseFloat(getEnv("TIMECARD_DAILY_HOURS_CAP", "12"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMECARD_DAILY_HOURS_CAP: %w", err)
	}

	config.Timecard = TimecardConfig{
		FutureGraceDays: graceDays,
		WorkingDays:     workingDays,
		DailyHoursCap:   hoursCap,
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
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Timecard.DailyHoursCap <= 0 {
		return fmt.Errorf("TIMECARD_DAILY_HOURS_CAP must be positive")
	}
	if c.Timecard.FutureGraceDays < 0 {
		return fmt.Errorf("TIMECARD_FUTURE_GRACE_DAYS must not be negative")
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

// Rules returns the timecard configuration as domain validation and
// aggregation rules.
func (c *Config) Rules() timecard.Rules {
	return timecard.Rules{
		FutureGraceDays: c.Timecard.FutureGraceDays,
		WorkingDays:     c.Timecard.WorkingDays,
		DailyHoursCap:   c.Timecard.DailyHoursCap,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
