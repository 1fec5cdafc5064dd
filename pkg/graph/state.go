// Package graph implements the state-machine runtime that drives every
// agent request through a fixed pipeline of typed processing nodes.
package graph

// Well-known State keys the runtime itself reads and writes. Node-specific
// keys live with the nodes that own them.
const (
	KeyError       = "error"
	KeyMessage     = "message"
	KeyNextNode    = "next_node"
	KeyFinalOutput = "final_output"
)

// State is the per-request key/value mapping threaded through the graph.
// It is shallow-copied from the caller's input at runtime start; nested
// values are shared by reference and nodes must not mutate nested
// structures they did not produce.
type State map[string]any

// NewState shallow-copies the input into a fresh State.
func NewState(input map[string]any) State {
	s := make(State, len(input)+16)
	for k, v := range input {
		s[k] = v
	}
	return s
}

// GetString returns the string at key, or "" when absent or not a string.
func (s State) GetString(key string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return ""
}

// GetBool returns the bool at key, or false when absent or not a bool.
func (s State) GetBool(key string) bool {
	if v, ok := s[key].(bool); ok {
		return v
	}
	return false
}

// GetInt returns the int at key. JSON round-trips store numbers as
// float64, so both representations are accepted.
func (s State) GetInt(key string) (int, bool) {
	switch v := s[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

// GetFloat returns the float64 at key.
func (s State) GetFloat(key string) (float64, bool) {
	switch v := s[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

// GetMap returns the map at key, or nil.
func (s State) GetMap(key string) map[string]any {
	if v, ok := s[key].(map[string]any); ok {
		return v
	}
	return nil
}

// Has reports whether key is present with a non-nil value.
func (s State) Has(key string) bool {
	v, ok := s[key]
	return ok && v != nil
}
