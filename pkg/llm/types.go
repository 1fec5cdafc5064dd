// Package llm parses free-form operator text into typed intents using an
// OpenAI-compatible provider, with a secondary provider and a regex
// parser as fallbacks.
package llm

// Intent is the normalised output of intent parsing.
type Intent struct {
	Action         string         `json:"action"`
	TargetLabel    string         `json:"target_label,omitempty"`
	TargetEntityID *int           `json:"target_entity_id,omitempty"`
	TargetTime     string         `json:"target_time,omitempty"`
	Parameters     map[string]any `json:"parameters,omitempty"`
	Confidence     float64        `json:"confidence"`
	Clarify        bool           `json:"clarify,omitempty"`
	ClarifyOptions []string       `json:"clarify_options,omitempty"`
	Explanation    string         `json:"explanation,omitempty"`

	// Degraded is set when both providers failed and the regex fallback
	// produced this intent.
	Degraded bool `json:"-"`
}

// Context carries the request context the prompt builder folds in.
type Context struct {
	SelectedEntityID *int
	CurrentPage      string
	RecentHistory    []string
}
