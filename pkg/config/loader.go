package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// dispatchYAML mirrors the dispatch.yaml file structure.
type dispatchYAML struct {
	Server    *ServerConfig    `yaml:"server"`
	Agent     *AgentConfig     `yaml:"agent"`
	LLM       *LLMConfig       `yaml:"llm"`
	OCR       *OCRConfig       `yaml:"ocr"`
	Retention *RetentionConfig `yaml:"retention"`
}

// Initialize loads, validates and returns ready-to-use configuration.
//
// Steps performed:
//  1. Read dispatch.yaml from configDir (missing file means all defaults)
//  2. Expand environment variables
//  3. Parse YAML, parse duration strings
//  4. Apply defaults, validate
func Initialize(_ context.Context, configDir string) (*Config, error) {
	cfg := &Config{configDir: configDir}

	path := filepath.Join(configDir, "dispatch.yaml")
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Warn("No dispatch.yaml found, using defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	default:
		var raw dispatchYAML
		if err := yaml.Unmarshal(ExpandEnv(data), &raw); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		cfg.Server = raw.Server
		cfg.Agent = raw.Agent
		cfg.LLM = raw.LLM
		cfg.OCR = raw.OCR
		cfg.Retention = raw.Retention
	}

	if cfg.Retention != nil && cfg.Retention.CleanupIntervalRaw != "" {
		d, err := time.ParseDuration(cfg.Retention.CleanupIntervalRaw)
		if err != nil {
			return nil, fmt.Errorf("invalid retention.cleanup_interval %q: %w", cfg.Retention.CleanupIntervalRaw, err)
		}
		cfg.Retention.CleanupInterval = d
	}

	if cfg.Agent != nil {
		if cfg.Agent.SessionTTLRaw != "" {
			d, err := time.ParseDuration(cfg.Agent.SessionTTLRaw)
			if err != nil {
				return nil, fmt.Errorf("invalid agent.session_ttl %q: %w", cfg.Agent.SessionTTLRaw, err)
			}
			cfg.Agent.SessionTTL = d
		}
		if cfg.Agent.AvailabilityRaw != "" {
			d, err := time.ParseDuration(cfg.Agent.AvailabilityRaw)
			if err != nil {
				return nil, fmt.Errorf("invalid agent.availability_window %q: %w", cfg.Agent.AvailabilityRaw, err)
			}
			cfg.Agent.AvailabilityWindow = d
		}
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	slog.Info("Configuration loaded",
		"config_dir", configDir,
		"max_iterations", cfg.Agent.MaxIterations,
		"session_ttl", cfg.Agent.SessionTTL,
		"llm_model", cfg.LLM.Primary.Model)

	return cfg, nil
}
