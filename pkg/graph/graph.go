package graph

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
)

// NodeFunc is a single processing stage. It reads and writes its
// documented subset of State keys and returns an error only for failures
// the node cannot translate into an error kind itself.
type NodeFunc func(ctx context.Context, s State) error

// Edge is one outgoing transition. A nil When matches unconditionally.
type Edge struct {
	Target string
	When   func(s State) bool
}

// Graph holds the node registry and edges. Immutable after Build; a
// single Graph is shared across concurrent requests, each owning its
// State.
type Graph struct {
	nodes         map[string]NodeFunc
	edges         map[string][]Edge
	entry         string
	terminals     map[string]bool
	fallback      string
	maxIterations int
	built         bool
}

// New creates an empty graph with the given entry node name.
func New(entry string, maxIterations int) *Graph {
	if maxIterations <= 0 {
		maxIterations = 20
	}
	return &Graph{
		nodes:         make(map[string]NodeFunc),
		edges:         make(map[string][]Edge),
		entry:         entry,
		terminals:     make(map[string]bool),
		maxIterations: maxIterations,
	}
}

// AddNode registers a node. Panics on duplicates or after Build; wiring
// mistakes are programmer errors, not runtime conditions.
func (g *Graph) AddNode(name string, fn NodeFunc) *Graph {
	g.mustMutable()
	if _, dup := g.nodes[name]; dup {
		panic(fmt.Sprintf("graph: duplicate node %q", name))
	}
	g.nodes[name] = fn
	return g
}

// AddTerminal registers a terminal node. Terminals produce final_output
// and have no outgoing edges.
func (g *Graph) AddTerminal(name string, fn NodeFunc) *Graph {
	g.AddNode(name, fn)
	g.terminals[name] = true
	return g
}

// SetFallback names the terminal that absorbs crashes and unroutable
// states. It must already be registered as a terminal.
func (g *Graph) SetFallback(name string) *Graph {
	g.mustMutable()
	if !g.terminals[name] {
		panic(fmt.Sprintf("graph: fallback %q is not a terminal", name))
	}
	g.fallback = name
	return g
}

// AddEdge appends an outgoing edge. Edge order is the match order: more
// specific predicates first, an unconditional edge (nil When) last.
func (g *Graph) AddEdge(source, target string, when func(s State) bool) *Graph {
	g.mustMutable()
	g.edges[source] = append(g.edges[source], Edge{Target: target, When: when})
	return g
}

// Build validates the wiring and freezes the graph.
func (g *Graph) Build() (*Graph, error) {
	if _, ok := g.nodes[g.entry]; !ok {
		return nil, fmt.Errorf("graph: entry node %q not registered", g.entry)
	}
	if g.fallback == "" {
		return nil, fmt.Errorf("graph: no fallback terminal set")
	}
	for source, edges := range g.edges {
		if _, ok := g.nodes[source]; !ok {
			return nil, fmt.Errorf("graph: edge from unknown node %q", source)
		}
		for i, e := range edges {
			if _, ok := g.nodes[e.Target]; !ok {
				return nil, fmt.Errorf("graph: edge %q -> unknown node %q", source, e.Target)
			}
			if e.When == nil && i != len(edges)-1 {
				return nil, fmt.Errorf("graph: unconditional edge from %q must be last", source)
			}
		}
	}
	for name := range g.nodes {
		if g.terminals[name] {
			continue
		}
		if len(g.edges[name]) == 0 {
			return nil, fmt.Errorf("graph: non-terminal node %q has no outgoing edges", name)
		}
	}
	g.built = true
	return g, nil
}

func (g *Graph) mustMutable() {
	if g.built {
		panic("graph: mutation after Build")
	}
}

// Run drives one request through the graph. It never returns a partial
// state: any node panic or error is converted into an internal_error and
// absorbed by the fallback terminal, and the iteration bound caps
// pathological flows.
func (g *Graph) Run(ctx context.Context, input map[string]any) State {
	state := NewState(input)
	current := g.entry

	for i := 0; i < g.maxIterations; i++ {
		if err := g.invoke(ctx, current, state); err != nil {
			slog.Error("Graph node failed", "node", current, "error", err)
			if current == g.fallback {
				break
			}
			state[KeyError] = "internal_error"
			state[KeyMessage] = "Something went wrong while handling your request."
			current = g.fallback
			continue
		}

		if g.terminals[current] {
			return state
		}

		next := g.selectEdge(current, state)
		if next == "" {
			slog.Error("Graph has no matching edge", "node", current)
			state[KeyError] = "internal_error"
			state[KeyMessage] = "Something went wrong while handling your request."
			current = g.fallback
			continue
		}
		current = next
	}

	// Iteration bound reached or the fallback itself failed. Guarantee a
	// well-formed final output either way.
	if !state.Has(KeyFinalOutput) {
		if state.GetString(KeyError) == "" {
			state[KeyError] = "internal_error"
			state[KeyMessage] = "The request could not be completed."
		}
		state[KeyFinalOutput] = map[string]any{
			"action":             state.GetString("action"),
			"status":             "failed",
			"error":              state.GetString(KeyError),
			"message":            state.GetString(KeyMessage),
			"needs_confirmation": false,
		}
	}
	return state
}

// invoke runs one node behind the crash barrier.
func (g *Graph) invoke(ctx context.Context, name string, state State) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Graph node panicked",
				"node", name, "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("node %q panicked: %v", name, r)
		}
	}()

	fn, ok := g.nodes[name]
	if !ok {
		return fmt.Errorf("unknown node %q", name)
	}
	return fn(ctx, state)
}

// selectEdge returns the first matching edge target, or "".
func (g *Graph) selectEdge(current string, state State) string {
	for _, e := range g.edges[current] {
		if e.When == nil || e.When(state) {
			return e.Target
		}
	}
	return ""
}
