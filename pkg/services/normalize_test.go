package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeForStorage(t *testing.T) {
	t.Run("date-only time becomes YYYY-MM-DD", func(t *testing.T) {
		d := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "2026-03-10", NormalizeForStorage(d))
	})

	t.Run("timestamp becomes RFC3339", func(t *testing.T) {
		d := time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)
		assert.Equal(t, "2026-03-10T08:30:00Z", NormalizeForStorage(d))
	})

	t.Run("nil time pointer stays nil", func(t *testing.T) {
		var p *time.Time
		assert.Nil(t, NormalizeForStorage(p))
	})

	t.Run("duration becomes string", func(t *testing.T) {
		assert.Equal(t, "1h0m0s", NormalizeForStorage(time.Hour))
	})

	t.Run("scalars pass through", func(t *testing.T) {
		assert.Equal(t, 42, NormalizeForStorage(42))
		assert.Equal(t, "x", NormalizeForStorage("x"))
		assert.Equal(t, true, NormalizeForStorage(true))
		assert.Equal(t, 0.5, NormalizeForStorage(0.5))
	})

	t.Run("nested maps and slices normalise recursively", func(t *testing.T) {
		d := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		in := map[string]any{
			"action": "cancel_trip",
			"params": map[string]any{
				"trip_date": d,
				"ids":       []any{1, d},
			},
		}
		out, ok := NormalizeForStorage(in).(map[string]any)
		assert.True(t, ok)
		params := out["params"].(map[string]any)
		assert.Equal(t, "2026-03-10", params["trip_date"])
		assert.Equal(t, []any{1, "2026-03-10"}, params["ids"])
	})

	t.Run("errors become their message", func(t *testing.T) {
		assert.Equal(t, "boom", NormalizeForStorage(errors.New("boom")))
	})
}

func TestNormalizeMap(t *testing.T) {
	assert.Nil(t, NormalizeMap(nil))

	out := NormalizeMap(map[string]any{"when": time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)})
	assert.Equal(t, map[string]any{"when": "2026-01-02"}, out)
}
