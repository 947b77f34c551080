package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Output  OutputConfig
	Runner  RunnerConfig
	History HistoryConfig
	Log     LogConfig
}

// OutputConfig holds artifact storage configuration.
type OutputConfig struct {
	StorageType string // "local" or "s3"
	BaseDir     string // For local: artifact root directory
	SpecDir     string // Subdirectory generated spec files are written to
	S3Bucket    string // For S3: bucket name
	S3Region    string // For S3: AWS region
}

// RunnerConfig holds external runner configuration.
type RunnerConfig struct {
	WorkDir string
	Browser string
}

// HistoryConfig holds run-history database configuration.
type HistoryConfig struct {
	Path string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("e2egen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("E2EGEN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("output.storage_type", "local")
	v.SetDefault("output.base_dir", "./e2e-output")
	v.SetDefault("output.spec_dir", "generated")
	v.SetDefault("output.s3_bucket", "")
	v.SetDefault("output.s3_region", "us-east-1")

	v.SetDefault("runner.work_dir", ".")
	v.SetDefault("runner.browser", "chrome")

	v.SetDefault("history.path", "./e2e-output/history.db")

	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found; using defaults
	}

	var config Config
	config.Output.StorageType = v.GetString("output.storage_type")
	config.Output.BaseDir = v.GetString("output.base_dir")
	config.Output.SpecDir = v.GetString("output.spec_dir")
	config.Output.S3Bucket = v.GetString("output.s3_bucket")
	config.Output.S3Region = v.GetString("output.s3_region")

	config.Runner.WorkDir = v.GetString("runner.work_dir")
	config.Runner.Browser = v.GetString("runner.browser")

	config.History.Path = v.GetString("history.path")

	config.Log.Level = v.GetString("log.level")

	return &config, nil
}
