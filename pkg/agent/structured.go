package agent

import (
	"strconv"
	"strings"

	"github.com/fleetops/dispatch/pkg/actions"
)

// StructuredPrefix is the sentinel UI buttons prepend to their commands.
const StructuredPrefix = "STRUCTURED_CMD:"

// StructuredCommand is a parsed UI button command:
// STRUCTURED_CMD:<action>|<key>:<value>|...
// Unknown keys are tolerated and ignored; id-valued keys are parsed as
// integers.
type StructuredCommand struct {
	Action          string
	Params          map[string]any
	FromSelectionUI bool
}

var structuredIDKeys = map[string]bool{
	"trip_id":    true,
	"vehicle_id": true,
	"driver_id":  true,
	"route_id":   true,
	"path_id":    true,
	"stop_id":    true,
}

// ParseStructuredCommand parses text as a structured command. The
// second return is false when text does not carry the sentinel or names
// an unregistered action.
func ParseStructuredCommand(text string) (*StructuredCommand, bool) {
	if !strings.HasPrefix(text, StructuredPrefix) {
		return nil, false
	}
	body := strings.TrimPrefix(text, StructuredPrefix)
	fields := strings.Split(body, "|")

	action, ok := actions.Normalize(fields[0])
	if !ok || action == actions.Unknown {
		return nil, false
	}

	cmd := &StructuredCommand{Action: action, Params: map[string]any{}}
	for _, field := range fields[1:] {
		key, value, found := strings.Cut(field, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch {
		case key == "context":
			if value == "selection_ui" {
				cmd.FromSelectionUI = true
			}
		case structuredIDKeys[key]:
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return nil, false
			}
			cmd.Params[key] = n
		default:
			cmd.Params[key] = value
		}
	}
	return cmd, true
}

// FormatStructuredCommand renders the command text a UI button should
// emit. Selection providers use this so their buttons round-trip
// through ParseStructuredCommand.
func FormatStructuredCommand(action string, params map[string]any, fromSelectionUI bool) string {
	var b strings.Builder
	b.WriteString(StructuredPrefix)
	b.WriteString(action)
	// Stable key order keeps commands deterministic for tests and logs.
	for _, key := range []string{"trip_id", "vehicle_id", "driver_id", "route_id", "path_id", "stop_id", "vehicle_name", "driver_name", "new_time", "new_date"} {
		if v, ok := params[key]; ok {
			b.WriteString("|")
			b.WriteString(key)
			b.WriteString(":")
			b.WriteString(strings.ReplaceAll(toString(v), "|", " "))
		}
	}
	if fromSelectionUI {
		b.WriteString("|context:selection_ui")
	}
	return b.String()
}

func toString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	}
	return ""
}
