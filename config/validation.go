package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration is complete enough to start
func ValidateConfig(cfg *Config) error {
	var errs []string

	switch cfg.DBDriver {
	case "sqlite":
		if cfg.SQLitePath == "" {
			errs = append(errs, "SQLITE_PATH is required when DB_DRIVER is sqlite")
		}
	case "postgres":
		if cfg.DBHost == "" || cfg.DBName == "" || cfg.DBUser == "" {
			errs = append(errs, "DB_HOST, DB_NAME and DB_USER are required when DB_DRIVER is postgres")
		}
	default:
		errs = append(errs, fmt.Sprintf("unknown DB_DRIVER %q (expected sqlite or postgres)", cfg.DBDriver))
	}

	if cfg.ServerPort == "" {
		errs = append(errs, "SERVER_PORT must not be empty")
	}

	if IsProduction() && (cfg.JWTSecret == "" || cfg.JWTSecret == "dev-only-secret") {
		errs = append(errs, "JWT_SECRET must be set explicitly in production")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errs, "\n"))
	}

	return nil
}
