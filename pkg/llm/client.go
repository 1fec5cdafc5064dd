package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/fleetops/dispatch/pkg/actions"
	"github.com/fleetops/dispatch/pkg/config"
	openai "github.com/sashabaranov/go-openai"
)

// provider is one OpenAI-compatible endpoint plus its model name.
type provider struct {
	client *openai.Client
	model  string
	name   string
}

// Client parses operator text into intents. Provider order is fixed:
// primary, then secondary, then the regex fallback — the agent never
// blocks on an unavailable model for the common command surface.
type Client struct {
	providers []provider
	cfg       *config.LLMConfig
}

// NewClient builds a client from configuration. A provider with no model
// configured is skipped; with zero providers every parse goes straight
// to the regex fallback.
func NewClient(cfg *config.LLMConfig) *Client {
	c := &Client{cfg: cfg}
	for _, p := range []struct {
		pc   config.ProviderConfig
		name string
	}{
		{cfg.Primary, "primary"},
		{cfg.Secondary, "secondary"},
	} {
		if p.pc.Model == "" {
			continue
		}
		apiKey := os.Getenv(p.pc.APIKeyEnv)
		ocfg := openai.DefaultConfig(apiKey)
		if p.pc.BaseURL != "" {
			ocfg.BaseURL = p.pc.BaseURL
		}
		c.providers = append(c.providers, provider{
			client: openai.NewClientWithConfig(ocfg),
			model:  p.pc.Model,
			name:   p.name,
		})
	}
	slog.Info("LLM client configured", "providers", len(c.providers))
	return c
}

// Parse turns text into an Intent. It never returns nil: on total
// provider failure the regex fallback answers, and on unparseable output
// the intent is unknown with confidence 0.
func (c *Client) Parse(ctx context.Context, text string, pctx Context) *Intent {
	prompt := buildUserPrompt(text, pctx)

	for _, p := range c.providers {
		intent, err := c.callProvider(ctx, p, prompt)
		if err != nil {
			slog.Warn("LLM provider failed, falling back",
				"provider", p.name, "model", p.model, "error", err)
			continue
		}
		return intent
	}

	intent := ParseFallback(text)
	intent.Degraded = len(c.providers) > 0
	return intent
}

func (c *Client) callProvider(ctx context.Context, p provider, prompt string) (*Intent, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout())
	defer cancel()

	resp, err := p.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("provider returned no choices")
	}

	return NormalizeResponse(resp.Choices[0].Message.Content), nil
}

// NormalizeResponse extracts, repairs and validates the provider output.
// Any output that does not yield a registered action becomes an unknown
// intent with confidence 0 — prose, hallucinated action names and broken
// JSON are all parse failures, never errors.
func NormalizeResponse(raw string) *Intent {
	jsonText, ok := ExtractJSON(raw)
	if !ok {
		return &Intent{Action: actions.Unknown, Confidence: 0}
	}

	var intent Intent
	if err := json.Unmarshal([]byte(jsonText), &intent); err != nil {
		return &Intent{Action: actions.Unknown, Confidence: 0}
	}

	canonical, ok := actions.Normalize(intent.Action)
	if !ok {
		return &Intent{Action: actions.Unknown, Confidence: 0, Explanation: intent.Explanation}
	}
	intent.Action = canonical

	if intent.Confidence < 0 {
		intent.Confidence = 0
	}
	if intent.Confidence > 1 {
		intent.Confidence = 1
	}

	return &intent
}
