package script

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Separator joins array elements in generated literals.
const Separator = ",\n\t"

// FormatStringArray renders items as double-quoted strings joined by
// Separator, without the surrounding brackets. Elements are not escaped.
func FormatStringArray(items []string) string {
	return `"` + strings.Join(items, `"`+Separator+`"`) + `"`
}

// FormatJSONArray renders items as individually JSON-encoded values joined by
// Separator, without the surrounding brackets.
func FormatJSONArray(items []string) string {
	encoded := make([]string, 0, len(items))
	for _, item := range items {
		encoded = append(encoded, jsonString(item))
	}
	return strings.Join(encoded, Separator)
}

// jsonString encodes s the way JSON.stringify does, leaving <, > and &
// unescaped.
func jsonString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string value cannot fail.
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
