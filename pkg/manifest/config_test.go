package manifest_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-swgen/pkg/manifest"
)

func TestNormalize_Defaults(t *testing.T) {
	cfg, err := manifest.Normalize(manifest.Section{})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	want := manifest.Config{
		Version: manifest.CurrentVersion,
		Origin:  ".",
		Origins: []string{"."},
		Plugins: []string{},
		Cache:   manifest.Cache{Static: []string{}},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_OriginFeedsOrigins(t *testing.T) {
	cfg, err := manifest.Normalize(manifest.Section{"origin": "https://content.example.com"})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if diff := cmp.Diff([]string{"https://content.example.com"}, cfg.Origins); diff != "" {
		t.Fatalf("origins mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_ExplicitValues(t *testing.T) {
	section := manifest.Section{
		"version": "3.1",
		"origin":  "ignored",
		"origins": []any{"a", "b"},
		"plugins": []any{"offline", "https://x/p.js"},
		"cache":   map[string]any{"static": []any{"/index.html"}},
	}

	cfg, err := manifest.Normalize(section)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	want := manifest.Config{
		Version: "3.1",
		Origin:  "ignored",
		Origins: []string{"a", "b"},
		Plugins: []string{"offline", "https://x/p.js"},
		Cache:   manifest.Cache{Static: []string{"/index.html"}},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_EmptyStringsAccepted(t *testing.T) {
	cases := []struct {
		name    string
		section manifest.Section
		want    manifest.Config
	}{
		{
			name:    "empty origin",
			section: manifest.Section{"origin": ""},
			want: manifest.Config{
				Version: manifest.CurrentVersion,
				Origin:  "",
				Origins: []string{""},
				Plugins: []string{},
				Cache:   manifest.Cache{Static: []string{}},
			},
		},
		{
			name:    "empty origins element",
			section: manifest.Section{"origins": []any{""}},
			want: manifest.Config{
				Version: manifest.CurrentVersion,
				Origin:  manifest.DefaultOrigin,
				Origins: []string{""},
				Plugins: []string{},
				Cache:   manifest.Cache{Static: []string{}},
			},
		},
		{
			name:    "empty version",
			section: manifest.Section{"version": ""},
			want: manifest.Config{
				Version: "",
				Origin:  manifest.DefaultOrigin,
				Origins: []string{manifest.DefaultOrigin},
				Plugins: []string{},
				Cache:   manifest.Cache{Static: []string{}},
			},
		},
		{
			name:    "empty static path",
			section: manifest.Section{"cache": map[string]any{"static": []any{""}}},
			want: manifest.Config{
				Version: manifest.CurrentVersion,
				Origin:  manifest.DefaultOrigin,
				Origins: []string{manifest.DefaultOrigin},
				Plugins: []string{},
				Cache:   manifest.Cache{Static: []string{""}},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := manifest.Normalize(tc.section)
			if err != nil {
				t.Fatalf("normalize: %v", err)
			}
			if diff := cmp.Diff(tc.want, cfg); diff != "" {
				t.Fatalf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalize_EmptyOriginsStayEmpty(t *testing.T) {
	cfg, err := manifest.Normalize(manifest.Section{"origins": []any{}})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if len(cfg.Origins) != 0 {
		t.Fatalf("origins = %v, want empty", cfg.Origins)
	}
}

func TestNormalize_CacheWithoutStatic(t *testing.T) {
	for name, cache := range map[string]any{
		"no static":   map[string]any{},
		"null static": map[string]any{"static": nil},
	} {
		t.Run(name, func(t *testing.T) {
			cfg, err := manifest.Normalize(manifest.Section{"cache": cache})
			if err != nil {
				t.Fatalf("normalize: %v", err)
			}
			if len(cfg.Cache.Static) != 0 {
				t.Fatalf("static = %v, want empty", cfg.Cache.Static)
			}
		})
	}
}

func TestNormalize_Errors(t *testing.T) {
	cases := []struct {
		name    string
		section manifest.Section
		field   string
		message string
	}{
		{
			name:    "origins string",
			section: manifest.Section{"origins": "https://a"},
			field:   "serviceWorker.origins",
			message: "setting 'serviceWorker.origins' must be an array",
		},
		{
			name:    "plugins string",
			section: manifest.Section{"plugins": "offline"},
			field:   "serviceWorker.plugins",
			message: "setting 'serviceWorker.plugins' must be an array",
		},
		{
			name:    "plugins null",
			section: manifest.Section{"plugins": nil},
			field:   "serviceWorker.plugins",
		},
		{
			name:    "plugin element not string",
			section: manifest.Section{"plugins": []any{"a", 7}},
			field:   "serviceWorker.plugins[1]",
		},
		{
			name:    "version number",
			section: manifest.Section{"version": 2},
			field:   "serviceWorker.version",
		},
		{
			name:    "cache scalar",
			section: manifest.Section{"cache": "all"},
			field:   "serviceWorker.cache",
		},
		{
			name:    "static scalar",
			section: manifest.Section{"cache": map[string]any{"static": "/index.html"}},
			field:   "serviceWorker.cache.static",
		},
		{
			name:    "empty plugin name",
			section: manifest.Section{"plugins": []any{""}},
			field:   "serviceWorker.plugins[0]",
		},
		{
			name:    "static with quote",
			section: manifest.Section{"cache": map[string]any{"static": []any{"/ok", `/a"b`}}},
			field:   "serviceWorker.cache.static[1]",
			message: "setting 'serviceWorker.cache.static[1]' must not contain double quotes, backslashes or line breaks",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := manifest.Normalize(tc.section)
			var cfgErr *manifest.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if cfgErr.Field != tc.field {
				t.Fatalf("field = %q, want %q", cfgErr.Field, tc.field)
			}
			if tc.message != "" && err.Error() != tc.message {
				t.Fatalf("message = %q, want %q", err.Error(), tc.message)
			}
		})
	}
}

func TestIsPlainQuotable(t *testing.T) {
	cases := map[string]bool{
		"/index.html":        true,
		"/path with spaces/": true,
		"<a>&'":              true,
		`a"b`:                false,
		`a\b`:                false,
		"a\nb":               false,
		"a\rb":               false,
		"a\u2028b":         false,
		"a\u2029b":         false,
	}
	for value, want := range cases {
		if got := manifest.IsPlainQuotable(value); got != want {
			t.Errorf("IsPlainQuotable(%q) = %v, want %v", value, got, want)
		}
	}
}
