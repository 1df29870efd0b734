// Package config provides Viper-based hierarchical configuration management.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter      string `mapstructure:"delimiter" yaml:"delimiter"`
		IncludeHeaders bool   `mapstructure:"include_headers" yaml:"include_headers"`
	} `mapstructure:"csv" yaml:"csv"`

	OCR struct {
		Model          string `mapstructure:"model" yaml:"model"`
		Language       string `mapstructure:"language" yaml:"language"`
		TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		APIKey         string `mapstructure:"api_key" yaml:"-"` // Never serialize API key
	} `mapstructure:"ocr" yaml:"ocr"`

	Files struct {
		Categories string `mapstructure:"categories" yaml:"categories"`
		Vendors    string `mapstructure:"vendors" yaml:"vendors"`
	} `mapstructure:"files" yaml:"files"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config.yaml, then BILLSNAP_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.billsnap")
	v.AddConfigPath(".billsnap")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BILLSNAP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// The API key is only ever read from the environment
	if cfg.OCR.APIKey == "" {
		cfg.OCR.APIKey = GetOCRAPIKey()
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("csv.include_headers", true)

	v.SetDefault("ocr.model", "gemini-1.5-flash")
	v.SetDefault("ocr.language", "eng")
	v.SetDefault("ocr.timeout_seconds", 30)

	v.SetDefault("files.categories", "categories.yaml")
	v.SetDefault("files.vendors", "vendors.yaml")
}

// ConfigureLoggingFromConfig configures the global logger from a Config value.
func ConfigureLoggingFromConfig(cfg *Config) *logrus.Logger {
	if cfg == nil {
		return ConfigureLogging()
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil {
		Logger.Warnf("Invalid log level '%s', using 'info'", cfg.Log.Level)
		logLevel = logrus.InfoLevel
	}
	Logger.SetLevel(logLevel)

	if strings.ToLower(cfg.Log.Format) == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return Logger
}
