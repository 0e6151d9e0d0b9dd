// Package scaffold builds a service worker manifest section interactively.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-swgen/pkg/manifest"
	"github.com/goliatone/go-swgen/pkg/plugins"
)

// DefaultFilename is written by Write when the destination is a directory.
const DefaultFilename = "manifest.yaml"

// Section is the scaffolded service worker configuration in the order it is
// written to disk.
type Section struct {
	Version string   `yaml:"version"`
	Origins []string `yaml:"origins"`
	Plugins []string `yaml:"plugins,omitempty"`
	Cache   *Cache   `yaml:"cache,omitempty"`
}

// Cache mirrors manifest.Cache for output.
type Cache struct {
	Static []string `yaml:"static"`
}

type document struct {
	ServiceWorker Section `yaml:"serviceWorker"`
}

// Ask walks the user through the service worker settings. Registry names are
// offered as a multi-select; additional https: plugin URLs can be typed in.
func Ask(ctx context.Context, driver PromptDriver, registry *plugins.Registry) (Section, error) {
	if driver == nil {
		return Section{}, errors.New("scaffold: prompt driver is required")
	}

	version, err := driver.Input(ctx, InputConfig{
		Message:   "Service worker version",
		Default:   manifest.CurrentVersion,
		Validator: requireValue,
	})
	if err != nil {
		return Section{}, err
	}

	originsRaw, err := driver.Input(ctx, InputConfig{
		Message: "Content origins (comma separated)",
		Default: manifest.DefaultOrigin,
		Help:    "Origins the service worker may manage content for.",
	})
	if err != nil {
		return Section{}, err
	}

	var selected []string
	if names := registry.List(); len(names) > 0 {
		indices, err := driver.MultiSelect(ctx, SelectConfig{
			Message: "Plugins",
			Options: names,
		})
		if err != nil {
			return Section{}, err
		}
		for _, idx := range indices {
			if idx >= 0 && idx < len(names) {
				selected = append(selected, names[idx])
			}
		}
	}

	urlsRaw, err := driver.Input(ctx, InputConfig{
		Message:   "Additional plugin URLs (comma separated)",
		Help:      "Each entry must start with " + plugins.URLPrefix,
		Validator: validatePluginURLs,
	})
	if err != nil {
		return Section{}, err
	}

	staticRaw, err := driver.TextArea(ctx, TextAreaConfig{
		Message:   "Static cache paths (one per line)",
		Validator: validateStaticPaths,
	})
	if err != nil {
		return Section{}, err
	}

	section := Section{
		Version: strings.TrimSpace(version),
		Origins: splitList(originsRaw, ","),
		Plugins: append(selected, splitList(urlsRaw, ",")...),
	}
	if static := splitList(staticRaw, "\n"); len(static) > 0 {
		section.Cache = &Cache{Static: static}
	}

	if _, err := manifest.Normalize(section.Raw()); err != nil {
		return Section{}, fmt.Errorf("scaffold: %w", err)
	}
	return section, nil
}

// Raw converts s into the undecoded manifest form accepted by
// manifest.Normalize.
func (s Section) Raw() manifest.Section {
	raw := manifest.Section{
		"version": s.Version,
		"origins": toAny(s.Origins),
		"plugins": toAny(s.Plugins),
	}
	if s.Cache != nil {
		raw["cache"] = map[string]any{"static": toAny(s.Cache.Static)}
	}
	return raw
}

// Write stores s as a YAML manifest. dest may be a directory, in which case
// DefaultFilename is used. Existing files are only replaced when force is
// set. It returns the written path.
func Write(dest string, s Section, force bool) (string, error) {
	path := dest
	if info, err := os.Stat(dest); err == nil && info.IsDir() {
		path = filepath.Join(dest, DefaultFilename)
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("scaffold: %s already exists", path)
		}
	}

	data, err := yaml.Marshal(document{ServiceWorker: s})
	if err != nil {
		return "", fmt.Errorf("scaffold: encode manifest: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("scaffold: create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("scaffold: write %s: %w", path, err)
	}
	return path, nil
}

func requireValue(value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("a value is required")
	}
	return nil
}

func validatePluginURLs(value string) error {
	for _, entry := range splitList(value, ",") {
		if !strings.HasPrefix(entry, plugins.URLPrefix) {
			return fmt.Errorf("%q does not start with %s", entry, plugins.URLPrefix)
		}
	}
	return nil
}

func validateStaticPaths(value string) error {
	for _, entry := range splitList(value, "\n") {
		if !manifest.IsPlainQuotable(entry) {
			return fmt.Errorf("%q must not contain quotes or backslashes", entry)
		}
	}
	return nil
}

func splitList(raw, sep string) []string {
	var out []string
	for _, part := range strings.Split(raw, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func toAny(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}
