package graph

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportNode(_ context.Context, s State) error {
	s[KeyFinalOutput] = map[string]any{
		"status":  "executed",
		"message": s.GetString(KeyMessage),
	}
	return nil
}

func fallbackNode(_ context.Context, s State) error {
	s[KeyFinalOutput] = map[string]any{
		"status":  "failed",
		"error":   s.GetString(KeyError),
		"message": s.GetString(KeyMessage),
	}
	return nil
}

func buildLinear(t *testing.T, middle NodeFunc) *Graph {
	t.Helper()
	g, err := New("start", 20).
		AddNode("start", func(_ context.Context, s State) error {
			s["visited_start"] = true
			return nil
		}).
		AddNode("middle", middle).
		AddTerminal("report_result", reportNode).
		AddTerminal("fallback", fallbackNode).
		SetFallback("fallback").
		AddEdge("start", "middle", nil).
		AddEdge("middle", "report_result", nil).
		Build()
	require.NoError(t, err)
	return g
}

func TestRunLinearFlow(t *testing.T) {
	g := buildLinear(t, func(_ context.Context, s State) error {
		s[KeyMessage] = "ok"
		return nil
	})

	final := g.Run(context.Background(), map[string]any{"text": "hello"})

	out := final.GetMap(KeyFinalOutput)
	require.NotNil(t, out)
	assert.Equal(t, "executed", out["status"])
	assert.Equal(t, "ok", out["message"])
}

func TestCrashBarrierOnPanic(t *testing.T) {
	g := buildLinear(t, func(_ context.Context, _ State) error {
		panic("boom")
	})

	final := g.Run(context.Background(), map[string]any{})

	out := final.GetMap(KeyFinalOutput)
	require.NotNil(t, out, "crash must still produce final_output")
	assert.Equal(t, "failed", out["status"])
	assert.Equal(t, "internal_error", out["error"])
	assert.NotEmpty(t, out["message"])
}

func TestCrashBarrierOnError(t *testing.T) {
	g := buildLinear(t, func(_ context.Context, _ State) error {
		return errors.New("db unreachable")
	})

	final := g.Run(context.Background(), map[string]any{})

	out := final.GetMap(KeyFinalOutput)
	require.NotNil(t, out)
	assert.Equal(t, "internal_error", out["error"])
	// Internal detail must not leak
	assert.NotContains(t, out["message"], "db unreachable")
}

func TestIterationBound(t *testing.T) {
	visits := 0
	g, err := New("loop", 5).
		AddNode("loop", func(_ context.Context, s State) error {
			visits++
			return nil
		}).
		AddTerminal("fallback", fallbackNode).
		SetFallback("fallback").
		AddEdge("loop", "loop", nil).
		Build()
	require.NoError(t, err)

	final := g.Run(context.Background(), map[string]any{})

	assert.LessOrEqual(t, visits, 5)
	require.NotNil(t, final.GetMap(KeyFinalOutput), "bound hit must still produce final_output")
}

func TestEdgeOrderFirstMatchWins(t *testing.T) {
	var took string
	g, err := New("router", 20).
		AddNode("router", func(_ context.Context, _ State) error { return nil }).
		AddTerminal("a", func(_ context.Context, s State) error {
			took = "a"
			s[KeyFinalOutput] = map[string]any{}
			return nil
		}).
		AddTerminal("b", func(_ context.Context, s State) error {
			took = "b"
			s[KeyFinalOutput] = map[string]any{}
			return nil
		}).
		AddTerminal("fallback", fallbackNode).
		SetFallback("fallback").
		AddEdge("router", "a", func(s State) bool { return s.GetBool("cond") }).
		AddEdge("router", "b", nil).
		Build()
	require.NoError(t, err)

	g.Run(context.Background(), map[string]any{"cond": true})
	assert.Equal(t, "a", took)

	g.Run(context.Background(), map[string]any{})
	assert.Equal(t, "b", took)
}

func TestBuildRejectsMisplacedUnconditionalEdge(t *testing.T) {
	_, err := New("n", 20).
		AddNode("n", func(_ context.Context, _ State) error { return nil }).
		AddTerminal("t", reportNode).
		AddTerminal("fallback", fallbackNode).
		SetFallback("fallback").
		AddEdge("n", "t", nil).
		AddEdge("n", "fallback", func(_ State) bool { return true }).
		Build()
	assert.Error(t, err)
}

func TestStateIsolationAcrossConcurrentRuns(t *testing.T) {
	g := buildLinear(t, func(_ context.Context, s State) error {
		s[KeyMessage] = s.GetString("text")
		return nil
	})

	var wg sync.WaitGroup
	for _, text := range []string{"one", "two", "three", "four"} {
		wg.Add(1)
		go func(text string) {
			defer wg.Done()
			input := map[string]any{"text": text}
			final := g.Run(context.Background(), input)
			assert.Equal(t, text, final.GetMap(KeyFinalOutput)["message"])
			// Writes never leak back into the caller's input
			assert.NotContains(t, input, "visited_start")
		}(text)
	}
	wg.Wait()
}

func TestGetIntAcceptsJSONNumbers(t *testing.T) {
	s := State{"a": 7, "b": float64(9), "c": "nope"}

	a, ok := s.GetInt("a")
	assert.True(t, ok)
	assert.Equal(t, 7, a)

	b, ok := s.GetInt("b")
	assert.True(t, ok)
	assert.Equal(t, 9, b)

	_, ok = s.GetInt("c")
	assert.False(t, ok)
}
