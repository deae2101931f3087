package store

import "time"

// Field coercion helpers. Documents arrive as loosely typed JSON maps;
// all shape branching happens here, never in business logic.

func FieldString(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

func FieldFloat(fields map[string]any, key string) float64 {
	switch v := fields[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

// FieldFloatPtr distinguishes an absent numeric field from zero.
func FieldFloatPtr(fields map[string]any, key string) *float64 {
	if _, ok := fields[key]; !ok {
		return nil
	}
	f := FieldFloat(fields, key)
	return &f
}

func FieldBool(fields map[string]any, key string) bool {
	if v, ok := fields[key].(bool); ok {
		return v
	}
	return false
}

// FieldTime parses RFC3339 or plain dates; absent or malformed values
// read as nil.
func FieldTime(fields map[string]any, key string) *time.Time {
	s, ok := fields[key].(string)
	if !ok || s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// FieldNameList normalizes a member list whose entries are historically
// either plain name strings or objects carrying a "name" field.
func FieldNameList(fields map[string]any, key string) []string {
	raw, ok := fields[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		switch v := entry.(type) {
		case string:
			out = append(out, v)
		case map[string]any:
			if name, ok := v["name"].(string); ok {
				out = append(out, name)
			}
		}
	}
	return out
}

func FieldMap(fields map[string]any, key string) map[string]any {
	if v, ok := fields[key].(map[string]any); ok {
		return v
	}
	return nil
}

func FieldMapList(fields map[string]any, key string) []map[string]any {
	raw, ok := fields[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		if m, ok := entry.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

func FieldStringMap(fields map[string]any, key string) map[string]string {
	raw := FieldMap(fields, key)
	if raw == nil {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}
