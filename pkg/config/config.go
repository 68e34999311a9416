// Package config loads the evalpool driver configuration from YAML or
// JSON files, with environment variable overrides and validation.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/evalio/evalpool/pkg/retry"
)

// File is the on-disk configuration for the evalpool demo driver
type File struct {
	Pool        PoolConfig        `yaml:"pool" json:"pool"`
	Driver      DriverConfig      `yaml:"driver" json:"driver"`
	Retry       RetryConfig       `yaml:"retry" json:"retry"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics" json:"diagnostics"`
}

// PoolConfig configures the worker pool
type PoolConfig struct {
	// Workers is the number of persistent worker goroutines to start
	Workers int `yaml:"workers" json:"workers"`
}

// DriverConfig configures the demo driver
type DriverConfig struct {
	// Evaluations is how many sample evaluations the driver schedules
	Evaluations int `yaml:"evaluations" json:"evaluations"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// RetryConfig configures the submission backoff policy
type RetryConfig struct {
	InitialDelay string  `yaml:"initial_delay" json:"initial_delay"`
	MaxDelay     string  `yaml:"max_delay" json:"max_delay"`
	Multiplier   float64 `yaml:"multiplier" json:"multiplier"`
	MaxAttempts  int     `yaml:"max_attempts" json:"max_attempts"`
}

// DiagnosticsConfig configures the optional HTTP diagnostics server
type DiagnosticsConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Addr    string `yaml:"addr" json:"addr"`
}

// Default returns the built-in configuration: four workers, eleven
// evaluations, default backoff, diagnostics disabled
func Default() File {
	def := retry.DefaultPolicy()
	return File{
		Pool:   PoolConfig{Workers: 4},
		Driver: DriverConfig{Evaluations: 11, LogLevel: "info"},
		Retry: RetryConfig{
			InitialDelay: def.InitialDelay.String(),
			MaxDelay:     def.MaxDelay.String(),
			Multiplier:   def.Multiplier,
			MaxAttempts:  def.MaxAttempts,
		},
		Diagnostics: DiagnosticsConfig{Enabled: false, Addr: ":9090"},
	}
}

// Load loads configuration from a file (YAML or JSON)
// Automatically detects file type by extension, defaulting to YAML
func Load(path string, target *File) error {
	if strings.HasSuffix(path, ".json") {
		return LoadJSON(path, target)
	}
	return LoadYAML(path, target)
}

// LoadWithEnv loads configuration from a file and applies environment
// variable overrides. Path may be empty, in which case only the
// environment is applied on top of target.
func LoadWithEnv(path string, target *File) error {
	if path != "" {
		if err := Load(path, target); err != nil {
			return fmt.Errorf("failed to load config file: %w", err)
		}
	}
	if err := applyEnv(target); err != nil {
		return fmt.Errorf("failed to apply env overrides: %w", err)
	}
	return nil
}

// applyEnv applies EVALPOOL_* environment overrides
func applyEnv(target *File) error {
	if v := os.Getenv("EVALPOOL_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("EVALPOOL_WORKERS: %w", err)
		}
		target.Pool.Workers = n
	}
	if v := os.Getenv("EVALPOOL_EVALUATIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("EVALPOOL_EVALUATIONS: %w", err)
		}
		target.Driver.Evaluations = n
	}
	if v := os.Getenv("EVALPOOL_LOG_LEVEL"); v != "" {
		target.Driver.LogLevel = v
	}
	if v := os.Getenv("EVALPOOL_DIAG_ADDR"); v != "" {
		target.Diagnostics.Enabled = true
		target.Diagnostics.Addr = v
	}
	return nil
}

// Validate checks the configuration for values the pool or driver would
// reject at startup
func (f *File) Validate() error {
	if f.Pool.Workers < 1 {
		return fmt.Errorf("pool.workers must be positive, got %d", f.Pool.Workers)
	}
	if f.Driver.Evaluations < 0 {
		return fmt.Errorf("driver.evaluations must not be negative, got %d", f.Driver.Evaluations)
	}
	if _, err := f.RetryPolicy(); err != nil {
		return err
	}
	if f.Diagnostics.Enabled && f.Diagnostics.Addr == "" {
		return fmt.Errorf("diagnostics.addr is required when diagnostics are enabled")
	}
	return nil
}

// RetryPolicy converts the retry section into a retry.Policy, filling
// unset fields from the default policy
func (f *File) RetryPolicy() (retry.Policy, error) {
	policy := retry.DefaultPolicy()
	if f.Retry.InitialDelay != "" {
		d, err := time.ParseDuration(f.Retry.InitialDelay)
		if err != nil {
			return policy, fmt.Errorf("retry.initial_delay: %w", err)
		}
		policy.InitialDelay = d
	}
	if f.Retry.MaxDelay != "" {
		d, err := time.ParseDuration(f.Retry.MaxDelay)
		if err != nil {
			return policy, fmt.Errorf("retry.max_delay: %w", err)
		}
		policy.MaxDelay = d
	}
	if f.Retry.Multiplier != 0 {
		policy.Multiplier = f.Retry.Multiplier
	}
	if f.Retry.MaxAttempts != 0 {
		policy.MaxAttempts = f.Retry.MaxAttempts
	}
	return policy, nil
}
