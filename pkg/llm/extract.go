package llm

import (
	"regexp"
	"strings"
)

var trailingComma = regexp.MustCompile(`,\s*([}\]])`)

// ExtractJSON returns the first JSON object found in raw, repaired for
// the malformations providers commonly produce: markdown fences around
// the object and trailing commas inside it. Returns false when no
// balanced object is present.
func ExtractJSON(raw string) (string, bool) {
	text := strings.TrimSpace(raw)

	// Strip markdown fences; the object may sit inside ```json ... ```
	if i := strings.Index(text, "```"); i >= 0 {
		text = strings.ReplaceAll(text, "```json", "")
		text = strings.ReplaceAll(text, "```", "")
	}

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	// Scan for the matching close brace, honouring strings and escapes.
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		switch {
		case escaped:
			escaped = false
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case inString:
		case ch == '{':
			depth++
		case ch == '}':
			depth--
			if depth == 0 {
				obj := text[start : i+1]
				return trailingComma.ReplaceAllString(obj, "$1"), true
			}
		}
	}

	return "", false
}
