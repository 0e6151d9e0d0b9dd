package manifest

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// SectionKey is the manifest key holding the service worker configuration.
const SectionKey = "serviceWorker"

// Section is the raw, undefaulted service worker object exactly as decoded
// from the manifest.
type Section map[string]any

// Manifest is the subset of a site manifest the generator reads.
type Manifest struct {
	Location      string
	ServiceWorker Section
}

// HasServiceWorker reports whether the manifest carries a service worker
// section.
func (m Manifest) HasServiceWorker() bool {
	return m.ServiceWorker != nil
}

// Decode parses a manifest document. JSON is tried first, YAML second. A
// missing section, or one set to null, false, 0 or "", is not an error;
// callers check HasServiceWorker.
func Decode(doc Document) (Manifest, error) {
	data := doc.Raw()
	if len(strings.TrimSpace(string(data))) == 0 {
		return Manifest{}, fmt.Errorf("manifest: %s is empty", doc.Location())
	}

	var top map[string]any
	if err := json.Unmarshal(data, &top); err != nil {
		top = nil
		if yerr := yaml.Unmarshal(data, &top); yerr != nil {
			return Manifest{}, fmt.Errorf("manifest: parse %s: invalid JSON or YAML", doc.Location())
		}
	}

	out := Manifest{Location: doc.Location()}
	raw, ok := top[SectionKey]
	if !ok || isUnset(raw) {
		return out, nil
	}
	section, ok := asObject(raw)
	if !ok {
		return Manifest{}, &ConfigError{Field: SectionKey, Reason: "must be an object"}
	}
	out.ServiceWorker = section
	return out, nil
}

// isUnset reports scalar values that switch the section off.
func isUnset(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == ""
	case float64:
		return v == 0
	case int:
		return v == 0
	case int64:
		return v == 0
	case uint64:
		return v == 0
	default:
		return false
	}
}

func asObject(value any) (Section, bool) {
	switch v := value.(type) {
	case map[string]any:
		return Section(v), true
	case Section:
		return v, true
	case map[any]any:
		out := make(Section, len(v))
		for key, item := range v {
			name, ok := key.(string)
			if !ok {
				return nil, false
			}
			out[name] = item
		}
		return out, true
	default:
		return nil, false
	}
}
