// Package config provides centralized configuration for the sales report.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import "strconv"

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Sales   SalesConfig
	Logging LoggingConfig
}

// SalesConfig holds input and report settings.
type SalesConfig struct {
	// File is the sales file to load, CSV or XLSX (default: sales_data.csv)
	File string `env:"SALES_FILE" envAlt:"SALES_DATA_FILE" default:"sales_data.csv"`

	// Year is the calendar year used by the year filter section (default: 2023)
	Year int `env:"SALES_YEAR" default:"2023"`

	// TopN is how many products the revenue ranking returns (default: 3)
	TopN int `env:"SALES_TOP_N" default:"3"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// YearLabel returns the configured year as a string for report headings.
func (c *SalesConfig) YearLabel() string {
	return strconv.Itoa(c.Year)
}
