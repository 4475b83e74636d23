// models/record.go
package models

import (
	"fmt"
	"strings"
)

// Record is one decoded result object from an upstream API. Field names
// vary between APIs, so values are kept as decoded JSON.
type Record map[string]interface{}

// First returns the first non-empty value among the given keys, or fallback
// when none is present. Non-string JSON values are rendered with %v.
func (r Record) First(fallback string, keys ...string) string {
	for _, key := range keys {
		v, ok := r[key]
		if !ok || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			s = fmt.Sprintf("%v", v)
		}
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return fallback
}

// Strings returns the value under key as a list of strings, or nil when the
// key is absent or not an array.
func (r Record) Strings(key string) []string {
	raw, ok := r[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
