// Package config provides configuration management for the Lay Scout application.
package config

import (
	"fmt"
	"time"
)

// Config represents the complete application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	Data      DataConfig      `mapstructure:"data" validate:"required"`
	Mining    MiningConfig    `mapstructure:"mining" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Metrics   MetricsConfig   `mapstructure:"metrics" validate:"required"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Output    OutputConfig    `mapstructure:"output" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DataConfig represents where the match table comes from
type DataConfig struct {
	Source            string   `mapstructure:"source" validate:"required,oneof=file remote"`
	Path              string   `mapstructure:"path"`
	URL               string   `mapstructure:"url" validate:"omitempty,url"`
	CacheTTLSeconds   int      `mapstructure:"cache_ttl_seconds" validate:"gte=0"`
	Leagues           []string `mapstructure:"leagues"`
	UseDefaultLeagues bool     `mapstructure:"use_default_leagues"`
}

// MiningConfig represents the cross-product evaluation configuration
type MiningConfig struct {
	Workers     int      `mapstructure:"workers" validate:"gte=0"`
	RulesPath   string   `mapstructure:"rules_path"`
	Contexts    []string `mapstructure:"contexts"`
	Outcomes    []string `mapstructure:"outcomes"`
	WinProfit   float64  `mapstructure:"win_profit" validate:"required,gt=0"`
	LossAmount  float64  `mapstructure:"loss_amount" validate:"required,lt=0"`
	SmallWindow int      `mapstructure:"small_window" validate:"required,gt=0"`
	SmallCap    int      `mapstructure:"small_cap" validate:"required,gt=0"`
	LargeWindow int      `mapstructure:"large_window" validate:"required,gt=0"`
	LargeCap    int      `mapstructure:"large_cap" validate:"required,gt=0"`
	MinHitRate  float64  `mapstructure:"min_hit_rate" validate:"required,gt=0,lt=1"`
}

// DatabaseConfig represents the optional run-persistence database
type DatabaseConfig struct {
	Enabled            bool   `mapstructure:"enabled"`
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name               string `mapstructure:"name"`
	User               string `mapstructure:"user"`
	Password           string `mapstructure:"password"`
	SSLMode            string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections     int    `mapstructure:"max_connections" validate:"omitempty,gt=0"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections" validate:"omitempty,gt=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// SchedulerConfig represents the periodic re-mining schedule
type SchedulerConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	CronSpec string `mapstructure:"cron_spec"`
}

// OutputConfig represents where reports and exports land
type OutputConfig struct {
	Dir                string `mapstructure:"dir" validate:"required"`
	RunCSV             string `mapstructure:"run_csv"`
	RecommendationsCSV string `mapstructure:"recommendations_csv"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsStaging checks if the application is running in staging mode
func (c *Config) IsStaging() bool {
	return c.App.Environment == "staging"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// CacheTTL returns the table cache TTL as a duration
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Data.CacheTTLSeconds) * time.Second
}
