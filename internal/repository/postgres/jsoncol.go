package postgres

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// decodeSkills normalizes the skills column. NULL and blank give an empty
// list, a JSON array is returned as strings, anything else is kept as a
// single raw entry.
func decodeSkills(raw *string) []string {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return []string{}
	}
	var values []any
	if err := json.Unmarshal([]byte(*raw), &values); err != nil {
		var single string
		if json.Unmarshal([]byte(*raw), &single) == nil {
			return []string{single}
		}
		return []string{*raw}
	}
	if values == nil {
		return []string{}
	}
	return lo.Map(values, func(v any, _ int) string {
		if s, ok := v.(string); ok {
			return s
		}
		return fmt.Sprint(v)
	})
}

func encodeSkills(skills []string) string {
	if skills == nil {
		skills = []string{}
	}
	b, _ := json.Marshal(skills)
	return string(b)
}

// decodeList reads a JSON-encoded list column. Malformed content degrades to
// an empty list.
func decodeList(raw *string) []json.RawMessage {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return []json.RawMessage{}
	}
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(*raw), &items); err != nil || items == nil {
		return []json.RawMessage{}
	}
	return items
}
