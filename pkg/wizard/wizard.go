// Package wizard implements the multi-turn guided flows that collect
// entity fields one question at a time. Flows are declarative step
// tables; the engine owns prompting, validation, re-prompting and
// cancellation, and its state round-trips through the session store
// between turns.
package wizard

import (
	"fmt"
	"strings"
)

// Step is one question of a flow. OptionsProvider, when set, names a
// selection list the caller should fetch from the tool layer and show
// alongside the prompt ("vehicles", "drivers", "routes", "stops").
type Step struct {
	Key             string
	Prompt          string
	Hint            string
	OptionsProvider string
	Validate        Validator
}

// Flow is an ordered list of steps producing one entity.
type Flow struct {
	Type  string
	Title string
	Steps []Step
}

// Status reports where a flow stands after one input.
type Status string

const (
	// StatusContinue means the answer was accepted and the next prompt
	// is ready.
	StatusContinue Status = "continue"
	// StatusInvalid means the answer was rejected; the same step asks
	// again.
	StatusInvalid Status = "invalid"
	// StatusComplete means every step is answered.
	StatusComplete Status = "complete"
	// StatusCancelled means the operator backed out.
	StatusCancelled Status = "cancelled"
)

// Outcome is the engine's answer to one operator input.
type Outcome struct {
	Status          Status
	Prompt          string
	Hint            string
	OptionsProvider string
	Message         string
	// Answers holds the collected values once Status is StatusComplete.
	Answers map[string]any
}

// cancelWords back out of a flow at any step.
var cancelWords = map[string]bool{
	"cancel":    true,
	"abort":     true,
	"stop":      true,
	"quit":      true,
	"nevermind": true,
}

// State is the serialisable position inside a flow. It is stored in the
// session's pending action between turns, so every field must survive a
// JSON round trip.
type State struct {
	FlowType string         `json:"wizard"`
	Step     int            `json:"step"`
	Answers  map[string]any `json:"answers"`
}

// Engine runs declarative flows.
type Engine struct {
	flows map[string]Flow
}

// NewEngine creates an engine over the built-in flows.
func NewEngine() *Engine {
	e := &Engine{flows: make(map[string]Flow)}
	for _, f := range builtinFlows() {
		e.flows[f.Type] = f
	}
	return e
}

// Known reports whether a flow type exists.
func (e *Engine) Known(flowType string) bool {
	_, ok := e.flows[flowType]
	return ok
}

// StepsTotal returns the number of steps in a flow, or 0 for unknown
// flows.
func (e *Engine) StepsTotal(flowType string) int {
	return len(e.flows[flowType].Steps)
}

// Start begins a flow and returns the initial state with the first
// prompt.
func (e *Engine) Start(flowType string) (State, Outcome, error) {
	flow, ok := e.flows[flowType]
	if !ok {
		return State{}, Outcome{}, fmt.Errorf("unknown wizard flow %q", flowType)
	}
	state := State{FlowType: flowType, Step: 0, Answers: map[string]any{}}
	first := flow.Steps[0]
	return state, Outcome{
		Status:          StatusContinue,
		Prompt:          first.Prompt,
		Hint:            first.Hint,
		OptionsProvider: first.OptionsProvider,
		Message:         fmt.Sprintf("Starting %s. Say cancel at any point to stop.", flow.Title),
	}, nil
}

// Advance feeds one operator input into the flow.
func (e *Engine) Advance(state State, input string) (State, Outcome, error) {
	flow, ok := e.flows[state.FlowType]
	if !ok {
		return state, Outcome{}, fmt.Errorf("unknown wizard flow %q", state.FlowType)
	}
	if state.Step < 0 || state.Step >= len(flow.Steps) {
		return state, Outcome{}, fmt.Errorf("wizard step %d out of range for %q", state.Step, state.FlowType)
	}
	if state.Answers == nil {
		state.Answers = map[string]any{}
	}

	trimmed := strings.TrimSpace(input)
	if cancelWords[strings.ToLower(trimmed)] {
		return state, Outcome{
			Status:  StatusCancelled,
			Message: fmt.Sprintf("Cancelled %s. Nothing was created.", flow.Title),
		}, nil
	}

	step := flow.Steps[state.Step]
	value, err := step.Validate(trimmed)
	if err != nil {
		return state, Outcome{
			Status:          StatusInvalid,
			Prompt:          step.Prompt,
			Hint:            step.Hint,
			OptionsProvider: step.OptionsProvider,
			Message:         err.Error(),
		}, nil
	}

	state.Answers[step.Key] = value
	state.Step++

	if state.Step >= len(flow.Steps) {
		return state, Outcome{
			Status:  StatusComplete,
			Message: fmt.Sprintf("%s: all details collected.", flow.Title),
			Answers: state.Answers,
		}, nil
	}
	next := flow.Steps[state.Step]
	return state, Outcome{
		Status:          StatusContinue,
		Prompt:          next.Prompt,
		Hint:            next.Hint,
		OptionsProvider: next.OptionsProvider,
	}, nil
}

// StateFromMap rebuilds engine state from a stored pending action.
// JSON numbers arrive as float64.
func StateFromMap(m map[string]any) (State, bool) {
	flowType, _ := m["wizard"].(string)
	if flowType == "" {
		return State{}, false
	}
	step := 0
	switch v := m["step"].(type) {
	case int:
		step = v
	case float64:
		step = int(v)
	}
	answers, _ := m["answers"].(map[string]any)
	if answers == nil {
		answers = map[string]any{}
	}
	return State{FlowType: flowType, Step: step, Answers: answers}, true
}

// ToMap serialises state for session storage.
func (s State) ToMap() map[string]any {
	return map[string]any{
		"wizard":  s.FlowType,
		"step":    s.Step,
		"answers": s.Answers,
	}
}
