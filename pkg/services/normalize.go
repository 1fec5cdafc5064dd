package services

import (
	"fmt"
	"time"
)

// NormalizeForStorage walks an arbitrary value and returns a copy that
// is safe to store as JSON: time values become strings, maps and slices
// are normalised recursively, and anything without a JSON shape falls
// back to its string form. Pending actions pass through here before the
// session insert, so a snapshot never fails to serialise after the
// operator has already been asked to confirm.
func NormalizeForStorage(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case time.Time:
		if val.Hour() == 0 && val.Minute() == 0 && val.Second() == 0 && val.Nanosecond() == 0 {
			return val.Format("2006-01-02")
		}
		return val.Format(time.RFC3339)
	case *time.Time:
		if val == nil {
			return nil
		}
		return NormalizeForStorage(*val)
	case time.Duration:
		return val.String()
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return val
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = NormalizeForStorage(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = NormalizeForStorage(item)
		}
		return out
	case []string:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = item
		}
		return out
	case []int:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = item
		}
		return out
	case error:
		return val.Error()
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// NormalizeMap applies NormalizeForStorage to every value of a map.
func NormalizeMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out, _ := NormalizeForStorage(m).(map[string]any)
	return out
}
