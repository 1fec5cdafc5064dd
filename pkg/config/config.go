// Package config loads and validates the dispatch.yaml configuration.
package config

import (
	"fmt"
	"time"
)

// Config is the fully loaded, validated runtime configuration.
type Config struct {
	configDir string

	Server    *ServerConfig
	Agent     *AgentConfig
	LLM       *LLMConfig
	OCR       *OCRConfig
	Retention *RetentionConfig
}

// ServerConfig groups HTTP surface settings.
type ServerConfig struct {
	APIKeyEnv      string   `yaml:"api_key_env"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// AgentConfig groups graph and policy knobs. None of the values are
// load-bearing for correctness; they bound runaway flows and size defaults.
type AgentConfig struct {
	MaxIterations      int           `yaml:"max_iterations"`
	SessionTTL         time.Duration `yaml:"-"`
	SessionTTLRaw      string        `yaml:"session_ttl"`
	DefaultCapacity    int           `yaml:"default_capacity"`
	AvailabilityWindow time.Duration `yaml:"-"`
	AvailabilityRaw    string        `yaml:"availability_window"`
}

// RetentionConfig bounds how long settled sessions and audit records are
// kept, and how often the cleanup loop runs.
type RetentionConfig struct {
	SessionRetentionDays int           `yaml:"session_retention_days"`
	AuditRetentionDays   int           `yaml:"audit_retention_days"`
	CleanupInterval      time.Duration `yaml:"-"`
	CleanupIntervalRaw   string        `yaml:"cleanup_interval"`
}

// LLMConfig describes the primary and secondary intent-parsing providers.
type LLMConfig struct {
	Primary   ProviderConfig `yaml:"primary"`
	Secondary ProviderConfig `yaml:"secondary"`
	TimeoutMS int            `yaml:"timeout_ms"`
}

// ProviderConfig is one OpenAI-compatible endpoint.
type ProviderConfig struct {
	BaseURL   string `yaml:"base_url"`
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"`
}

// OCRConfig points at the OCR extractor sidecar.
type OCRConfig struct {
	Address   string `yaml:"address"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

// Timeout returns the per-provider LLM call deadline.
func (c *LLMConfig) Timeout() time.Duration {
	if c.TimeoutMS <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// Timeout returns the OCR call deadline.
func (c *OCRConfig) Timeout() time.Duration {
	if c.TimeoutMS <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

func (c *Config) applyDefaults() {
	if c.Server == nil {
		c.Server = &ServerConfig{}
	}
	if c.Server.APIKeyEnv == "" {
		c.Server.APIKeyEnv = "DISPATCH_API_KEY"
	}
	if c.Agent == nil {
		c.Agent = &AgentConfig{}
	}
	if c.Agent.MaxIterations <= 0 {
		c.Agent.MaxIterations = 20
	}
	if c.Agent.SessionTTL <= 0 {
		c.Agent.SessionTTL = time.Hour
	}
	if c.Agent.DefaultCapacity <= 0 {
		c.Agent.DefaultCapacity = 40
	}
	if c.Agent.AvailabilityWindow <= 0 {
		c.Agent.AvailabilityWindow = 60 * time.Minute
	}
	if c.LLM == nil {
		c.LLM = &LLMConfig{}
	}
	if c.LLM.Primary.Model == "" {
		c.LLM.Primary.Model = "gpt-4o-mini"
	}
	if c.LLM.Primary.APIKeyEnv == "" {
		c.LLM.Primary.APIKeyEnv = "OPENAI_API_KEY"
	}
	if c.OCR == nil {
		c.OCR = &OCRConfig{Address: "localhost:50051"}
	}
	if c.Retention == nil {
		c.Retention = &RetentionConfig{}
	}
	if c.Retention.SessionRetentionDays <= 0 {
		c.Retention.SessionRetentionDays = 30
	}
	if c.Retention.AuditRetentionDays <= 0 {
		c.Retention.AuditRetentionDays = 365
	}
	if c.Retention.CleanupInterval <= 0 {
		c.Retention.CleanupInterval = 5 * time.Minute
	}
}

func (c *Config) validate() error {
	if c.Agent.MaxIterations < 2 {
		return fmt.Errorf("agent.max_iterations must be at least 2, got %d", c.Agent.MaxIterations)
	}
	if c.LLM.Primary.Model == "" {
		return fmt.Errorf("llm.primary.model is required")
	}
	return nil
}

// ConfigDir returns the directory the configuration was loaded from.
func (c *Config) ConfigDir() string {
	return c.configDir
}
