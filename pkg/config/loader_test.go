package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDefaults(t *testing.T) {
	cfg, err := Initialize(context.Background(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Agent.MaxIterations)
	assert.Equal(t, time.Hour, cfg.Agent.SessionTTL)
	assert.Equal(t, 40, cfg.Agent.DefaultCapacity)
	assert.Equal(t, 60*time.Minute, cfg.Agent.AvailabilityWindow)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Primary.Model)
	assert.Equal(t, "DISPATCH_API_KEY", cfg.Server.APIKeyEnv)
}

func TestInitializeFromYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := `
agent:
  max_iterations: 12
  session_ttl: 30m
  default_capacity: 55
llm:
  primary:
    model: gpt-4o
  timeout_ms: 5000
ocr:
  address: ocr:50051
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dispatch.yaml"), []byte(yaml), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Agent.MaxIterations)
	assert.Equal(t, 30*time.Minute, cfg.Agent.SessionTTL)
	assert.Equal(t, 55, cfg.Agent.DefaultCapacity)
	assert.Equal(t, "gpt-4o", cfg.LLM.Primary.Model)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout())
	assert.Equal(t, "ocr:50051", cfg.OCR.Address)
}

func TestInitializeRejectsBadDuration(t *testing.T) {
	dir := t.TempDir()
	yaml := "agent:\n  session_ttl: not-a-duration\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dispatch.yaml"), []byte(yaml), 0o644))

	_, err := Initialize(context.Background(), dir)
	assert.Error(t, err)
}

func TestExpandEnv(t *testing.T) {
	t.Setenv("DISPATCH_TEST_MODEL", "gpt-4o")

	out := ExpandEnv([]byte("model: {{.DISPATCH_TEST_MODEL}}"))
	assert.Equal(t, "model: gpt-4o", string(out))

	// Literal $ untouched
	out = ExpandEnv([]byte(`pattern: "^trip.*$"`))
	assert.Equal(t, `pattern: "^trip.*$"`, string(out))
}
