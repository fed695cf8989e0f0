// Package config provides configuration management for the Lay Scout application.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	// Register custom validation functions
	v.RegisterValidation("environment", validateEnvironment)
	v.RegisterValidation("loglevel", validateLogLevel)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	// Additional cross-field validations
	if err := validateCrossField(cfg); err != nil {
		return err
	}

	return nil
}

// validateEnvironment validates the environment field
func validateEnvironment(fl validator.FieldLevel) bool {
	env := fl.Field().String()
	switch env {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

// validateLogLevel validates the log level field
func validateLogLevel(fl validator.FieldLevel) bool {
	level := fl.Field().String()
	switch level {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateCrossField performs cross-field validations
func validateCrossField(cfg *Config) error {
	// The data source needs its location
	switch cfg.Data.Source {
	case "file":
		if cfg.Data.Path == "" {
			return fmt.Errorf("data source 'file' requires data.path")
		}
	case "remote":
		if cfg.Data.URL == "" {
			return fmt.Errorf("data source 'remote' requires data.url")
		}
	}

	// Window caps must cover the windows they report under
	if cfg.Mining.SmallCap < cfg.Mining.SmallWindow {
		return fmt.Errorf("mining small_cap must be at least small_window")
	}
	if cfg.Mining.LargeCap < cfg.Mining.LargeWindow {
		return fmt.Errorf("mining large_cap must be at least large_window")
	}
	if cfg.Mining.LargeCap < cfg.Mining.SmallCap {
		return fmt.Errorf("mining large_cap must be at least small_cap")
	}

	// Validate the cron expression before handing it to the scheduler
	if cfg.Scheduler.Enabled {
		if cfg.Scheduler.CronSpec == "" {
			return fmt.Errorf("scheduler requires cron_spec when enabled")
		}
		if _, err := cron.ParseStandard(cfg.Scheduler.CronSpec); err != nil {
			return fmt.Errorf("invalid scheduler cron_spec: %w", err)
		}
	}

	// Database settings only matter when persistence is on
	if cfg.Database.Enabled {
		if cfg.Database.Host == "" || cfg.Database.Name == "" || cfg.Database.User == "" {
			return fmt.Errorf("database persistence requires host, name and user")
		}
		if cfg.Database.MaxIdleConnections > cfg.Database.MaxConnections {
			return fmt.Errorf("max_idle_connections cannot exceed max_connections")
		}
		if cfg.IsProduction() && cfg.Database.SSLMode == "disable" {
			return fmt.Errorf("production environment requires SSL mode to be 'require' or 'verify-full'")
		}
	}

	return nil
}

// formatValidationErrors formats validation errors into a readable string
func formatValidationErrors(validationErrors validator.ValidationErrors) error {
	var errMsg string
	for _, fieldError := range validationErrors {
		field := fieldError.StructField()
		tag := fieldError.Tag()
		value := fieldError.Value()

		switch tag {
		case "required":
			errMsg += fmt.Sprintf("- Field '%s' is required\n", field)
		case "url":
			errMsg += fmt.Sprintf("- Field '%s' must be a valid URL, got '%v'\n", field, value)
		case "min", "max":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: %s constraint violated\n", field, tag)
		case "gt", "gte", "lt", "lte":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: numeric constraint %s violated\n", field, tag)
		case "environment":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: development, staging, production\n", field)
		case "loglevel":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: debug, info, warn, error\n", field)
		case "oneof":
			errMsg += fmt.Sprintf("- Field '%s' has invalid value '%v'\n", field, value)
		default:
			errMsg += fmt.Sprintf("- Field '%s' failed validation: %s\n", field, tag)
		}
	}
	return fmt.Errorf("configuration validation failed:\n%s", errMsg)
}
