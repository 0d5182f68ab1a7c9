package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig represents the YAML configuration structure
type AppConfig struct {
	Version   string          `yaml:"version"`
	General   GeneralConfig   `yaml:"general"`
	Auth      AuthConfig      `yaml:"auth"`
	Collector CollectorConfig `yaml:"collector"`
	Server    ServerConfig    `yaml:"server"`
	Output    OutputConfig    `yaml:"output"`
}

// GeneralConfig holds general execution settings
type GeneralConfig struct {
	LogLevel string `yaml:"log_level"` // Log level: silent, normal, verbose, debug
	Timeout  int    `yaml:"timeout"`   // Overall collection timeout in seconds
}

// AuthConfig selects how the provider credentials are resolved.
// "api_key" reads the SDK configuration file (optionally a named
// profile); "instance_principal" uses the host identity.
type AuthConfig struct {
	Method  string `yaml:"method"`
	Profile string `yaml:"profile"`
}

// CollectorConfig holds the tunables of the parallel collector and the
// resilient remote caller. The defaults mirror the observed production
// values; nothing else depends on their exact numbers.
type CollectorConfig struct {
	Workers       int `yaml:"workers"`         // Concurrent per-instance fetches
	RetryAttempts int `yaml:"retry_attempts"`  // Attempt ceiling per remote call
	RetryMaxWait  int `yaml:"retry_max_wait"`  // Backoff cap per attempt, seconds
}

// ServerConfig holds HTTP façade settings
type ServerConfig struct {
	Listen      string   `yaml:"listen"`       // Bind address, e.g. ":8000"
	CORSOrigins []string `yaml:"cors_origins"` // Allowed browser origins
}

// OutputConfig holds output settings for the one-shot collect mode
type OutputConfig struct {
	Format string `yaml:"format"` // json or yaml
	File   string `yaml:"file"`   // Output file path (empty = stdout)
}

func getDefaultConfig() *AppConfig {
	return &AppConfig{
		Version: "1.0",
		General: GeneralConfig{
			LogLevel: "normal",
			Timeout:  1800,
		},
		Auth: AuthConfig{
			Method:  "api_key",
			Profile: "",
		},
		Collector: CollectorConfig{
			Workers:       15,
			RetryAttempts: 8,
			RetryMaxWait:  60,
		},
		Server: ServerConfig{
			Listen: ":8000",
			CORSOrigins: []string{
				"http://localhost",
				"http://localhost:5500",
				"http://127.0.0.1:5500",
			},
		},
		Output: OutputConfig{
			Format: "json",
			File:   "",
		},
	}
}

// Configuration file search paths in priority order
func getConfigPaths() []string {
	paths := []string{}

	// 1. Environment variable
	if configFile := os.Getenv("OCI_DOCGEN_CONFIG_FILE"); configFile != "" {
		paths = append(paths, configFile)
	}

	// 2. Current directory
	paths = append(paths, "./oci-docgen.yaml")

	// 3. Home directory
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".oci-docgen.yaml"))
	}

	// 4. System directory
	paths = append(paths, "/etc/oci-docgen.yaml")

	return paths
}

// LoadConfig loads configuration from YAML file with fallback to defaults
func LoadConfig() (*AppConfig, error) {
	config := getDefaultConfig()

	for _, path := range getConfigPaths() {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse configuration file %s: %w", path, err)
			}
			break // Use first found configuration file
		}
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// validateConfig validates the loaded configuration
func validateConfig(config *AppConfig) error {
	validLogLevels := []string{"silent", "normal", "verbose", "debug"}
	if !contains(validLogLevels, config.General.LogLevel) {
		return fmt.Errorf("invalid log_level '%s', must be one of: %v", config.General.LogLevel, validLogLevels)
	}

	validAuthMethods := []string{"api_key", "instance_principal"}
	if !contains(validAuthMethods, config.Auth.Method) {
		return fmt.Errorf("invalid auth method '%s', must be one of: %v", config.Auth.Method, validAuthMethods)
	}

	validFormats := []string{"json", "yaml"}
	if !contains(validFormats, config.Output.Format) {
		return fmt.Errorf("invalid output format '%s', must be one of: %v", config.Output.Format, validFormats)
	}

	if config.General.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got: %d", config.General.Timeout)
	}
	if config.Collector.Workers <= 0 {
		return fmt.Errorf("collector workers must be positive, got: %d", config.Collector.Workers)
	}
	if config.Collector.RetryAttempts <= 0 {
		return fmt.Errorf("retry_attempts must be positive, got: %d", config.Collector.RetryAttempts)
	}
	if config.Collector.RetryMaxWait <= 0 {
		return fmt.Errorf("retry_max_wait must be positive, got: %d", config.Collector.RetryMaxWait)
	}

	return nil
}

// RetryPolicy returns the resilient caller settings derived from config.
func (c *AppConfig) RetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: c.Collector.RetryAttempts,
		MaxWait:     time.Duration(c.Collector.RetryMaxWait) * time.Second,
	}
}

// contains checks if a string slice contains a specific string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// SaveConfig saves the current configuration to a YAML file
func SaveConfig(config *AppConfig, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// GenerateDefaultConfigFile creates a default configuration file
func GenerateDefaultConfigFile(filename string) error {
	return SaveConfig(getDefaultConfig(), filename)
}

// MergeWithCLIArgs merges configuration file settings with CLI arguments.
// CLI arguments have higher priority than the configuration file.
func MergeWithCLIArgs(config *AppConfig, cliLogLevel, cliFormat, cliOutputFile string, cliWorkers int) {
	if cliLogLevel != "" {
		config.General.LogLevel = cliLogLevel
	}
	if cliFormat != "" {
		config.Output.Format = cliFormat
	}
	if cliOutputFile != "" {
		config.Output.File = cliOutputFile
	}
	if cliWorkers > 0 {
		config.Collector.Workers = cliWorkers
	}
}
