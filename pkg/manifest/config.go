package manifest

import (
	"fmt"
)

const (
	// CurrentVersion is the service worker runtime version used when the
	// manifest does not pin one.
	CurrentVersion = "1.0"

	// DefaultOrigin is the origin assumed when neither origin nor origins is
	// configured.
	DefaultOrigin = "."
)

// Config is the fully populated service worker configuration produced by
// Normalize. Consumers never see missing fields.
type Config struct {
	Version string   `json:"version" yaml:"version"`
	Origin  string   `json:"origin" yaml:"origin"`
	Origins []string `json:"origins" yaml:"origins"`
	Plugins []string `json:"plugins" yaml:"plugins" validate:"dive,required"`
	Cache   Cache    `json:"cache" yaml:"cache"`
}

// Cache holds cache priming settings.
type Cache struct {
	Static []string `json:"static" yaml:"static" validate:"dive,jsquoted"`
}

// ConfigError reports a malformed service worker setting.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("setting '%s' %s", e.Field, e.Reason)
}

// Normalize applies defaults to a raw section and validates the result. A key
// that is present must have the right shape; only missing keys receive
// defaults.
func Normalize(section Section) (Config, error) {
	version, err := stringSetting(section, "version", CurrentVersion)
	if err != nil {
		return Config{}, err
	}
	origin, err := stringSetting(section, "origin", DefaultOrigin)
	if err != nil {
		return Config{}, err
	}
	origins, err := listSetting(section, "origins", []string{origin})
	if err != nil {
		return Config{}, err
	}
	plugins, err := listSetting(section, "plugins", []string{})
	if err != nil {
		return Config{}, err
	}
	cache, err := cacheSetting(section)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Version: version,
		Origin:  origin,
		Origins: origins,
		Plugins: plugins,
		Cache:   cache,
	}
	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func stringSetting(section Section, key, fallback string) (string, error) {
	raw, ok := section[key]
	if !ok {
		return fallback, nil
	}
	value, ok := raw.(string)
	if !ok {
		return "", &ConfigError{Field: settingPath(key), Reason: "must be a string"}
	}
	return value, nil
}

func listSetting(section Section, key string, fallback []string) ([]string, error) {
	raw, ok := section[key]
	if !ok {
		return fallback, nil
	}
	return stringList(raw, settingPath(key))
}

func cacheSetting(section Section) (Cache, error) {
	raw, ok := section["cache"]
	if !ok {
		return Cache{Static: []string{}}, nil
	}
	obj, ok := asObject(raw)
	if !ok {
		return Cache{}, &ConfigError{Field: settingPath("cache"), Reason: "must be an object"}
	}

	staticRaw, ok := obj["static"]
	if !ok || staticRaw == nil {
		return Cache{Static: []string{}}, nil
	}
	static, err := stringList(staticRaw, settingPath("cache.static"))
	if err != nil {
		return Cache{}, err
	}
	return Cache{Static: static}, nil
}

func stringList(raw any, field string) ([]string, error) {
	switch v := raw.(type) {
	case []string:
		return append([]string{}, v...), nil
	case []any:
		out := make([]string, 0, len(v))
		for idx, item := range v {
			str, ok := item.(string)
			if !ok {
				return nil, &ConfigError{
					Field:  fmt.Sprintf("%s[%d]", field, idx),
					Reason: "must be a string",
				}
			}
			out = append(out, str)
		}
		return out, nil
	default:
		return nil, &ConfigError{Field: field, Reason: "must be an array"}
	}
}

func settingPath(key string) string {
	return SectionKey + "." + key
}
