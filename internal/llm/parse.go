package llm

import (
	"encoding/json"
	"strings"
)

// ParseResponse parses a model response into a field map. JSON is tried
// first (tolerating markdown code fences); otherwise the response is read
// as "key: value" lines. Keys are lowercased with spaces collapsed to
// underscores. Empty values are dropped here; sentinel filtering is the
// accumulator's job.
func ParseResponse(response string) map[string]string {
	text := strings.TrimSpace(response)
	if strings.HasPrefix(text, "```") {
		text = extractFromCodeBlock(text)
	}

	if fields := parseJSONFields(text); fields != nil {
		return fields
	}
	return parseKeyValueLines(text)
}

// parseJSONFields decodes a JSON object of string-ish values. Returns nil
// when text is not a JSON object.
func parseJSONFields(text string) map[string]string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return nil
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(text[start:end+1]), &raw); err != nil {
		return nil
	}

	fields := make(map[string]string)
	for key, value := range raw {
		var s string
		switch v := value.(type) {
		case string:
			s = v
		case float64:
			s = jsonNumber(v)
		default:
			continue
		}
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		fields[normalizeKey(key)] = s
	}
	return fields
}

// jsonNumber formats a float64 the way encoding/json would.
func jsonNumber(v float64) string {
	b, _ := json.Marshal(v)
	return string(b)
}

// parseKeyValueLines reads "key: value" lines, the fallback format models
// produce when they ignore the JSON instruction.
func parseKeyValueLines(text string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		idx := strings.Index(line, ":")
		if idx <= 0 {
			continue
		}
		key := normalizeKey(line[:idx])
		value := strings.TrimSpace(line[idx+1:])
		if key == "" || value == "" {
			continue
		}
		fields[key] = value
	}
	return fields
}

// normalizeKey lowercases a key and converts spaces and dashes to
// underscores, so "Container Title" and "container-title" both land on
// "container_title".
func normalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	return key
}

// extractFromCodeBlock strips a surrounding markdown code fence.
func extractFromCodeBlock(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return text
	}

	// Drop the opening ```json line, and the closing ``` if present.
	end := len(lines)
	if strings.TrimSpace(lines[end-1]) == "```" {
		end--
	}
	return strings.Join(lines[1:end], "\n")
}
