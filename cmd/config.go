package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"trippy/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort               = "8080"
	defaultDBHost                 = "localhost"
	defaultDBPort                 = "5432"
	defaultDBUser                 = "postgres"
	defaultDBName                 = "trippy"
	defaultDBSslMode              = "disable"
	defaultJWTTTL                 = 24 * time.Hour
	defaultIntegrityAuditSchedule = "@every 5m"
	defaultLogLevel               = "info"
)

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	JWTSecret              string
	JWTTTL                 time.Duration
	CORSAllowedOrigins     []string
	IntegrityAuditSchedule string
	LogLevel               string
}

// LoadConfig reads the configuration from the environment. Values found in
// the optional .env files do not override variables that are already set.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	ttl := defaultJWTTTL
	if raw := os.Getenv("JWT_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, errs.NewValueIsInvalidErrorWithCause("JWT_TTL", err)
		}
		ttl = parsed
	}

	config := Config{
		HTTPPort:               envOrDefault("HTTP_PORT", defaultHTTPPort),
		DBHost:                 envOrDefault("DB_HOST", defaultDBHost),
		DBPort:                 envOrDefault("DB_PORT", defaultDBPort),
		DBUser:                 envOrDefault("DB_USER", defaultDBUser),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 envOrDefault("DB_NAME", defaultDBName),
		DBSslMode:              envOrDefault("DB_SSLMODE", defaultDBSslMode),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		JWTTTL:                 ttl,
		CORSAllowedOrigins:     splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		IntegrityAuditSchedule: envOrDefault("INTEGRITY_AUDIT_SCHEDULE", defaultIntegrityAuditSchedule),
		LogLevel:               envOrDefault("LOG_LEVEL", defaultLogLevel),
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate reports every required setting that is missing.
func (c Config) Validate() error {
	var problems []error
	if c.DBPassword == "" {
		problems = append(problems, errs.NewValueIsRequiredError("DB_PASSWORD"))
	}
	if c.JWTSecret == "" {
		problems = append(problems, errs.NewValueIsRequiredError("JWT_SECRET"))
	}
	if c.JWTTTL <= 0 {
		problems = append(problems, errs.NewValueIsInvalidError("JWT_TTL"))
	}
	return errors.Join(problems...)
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
