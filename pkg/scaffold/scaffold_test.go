package scaffold_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-swgen/pkg/manifest"
	"github.com/goliatone/go-swgen/pkg/plugins"
	"github.com/goliatone/go-swgen/pkg/scaffold"
	"github.com/goliatone/go-swgen/pkg/testsupport"
)

type fakeDriver struct {
	inputs   []string
	selected []int
	text     string
	prompts  []string
	err      error
}

func (f *fakeDriver) Input(_ context.Context, cfg scaffold.InputConfig) (string, error) {
	f.prompts = append(f.prompts, cfg.Message)
	if f.err != nil {
		return "", f.err
	}
	value := cfg.Default
	if len(f.inputs) > 0 {
		value, f.inputs = f.inputs[0], f.inputs[1:]
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(value); err != nil {
			return "", err
		}
	}
	return value, nil
}

func (f *fakeDriver) MultiSelect(_ context.Context, cfg scaffold.SelectConfig) ([]int, error) {
	f.prompts = append(f.prompts, cfg.Message)
	return f.selected, nil
}

func (f *fakeDriver) TextArea(_ context.Context, cfg scaffold.TextAreaConfig) (string, error) {
	f.prompts = append(f.prompts, cfg.Message)
	if cfg.Validator != nil {
		if err := cfg.Validator(f.text); err != nil {
			return "", err
		}
	}
	return f.text, nil
}

func registry() *plugins.Registry {
	reg := plugins.NewRegistry()
	reg.MustRegister("offline", plugins.Template("https://p/{version}/offline.js"))
	reg.MustRegister("push", plugins.Template("https://p/{version}/push.js"))
	return reg
}

func TestAsk(t *testing.T) {
	driver := &fakeDriver{
		inputs:   []string{"2.0", ". , https://content.example.com", "https://cdn.example.com/x.js"},
		selected: []int{1},
		text:     "/index.html\n\n/app.css\n",
	}

	section, err := scaffold.Ask(testsupport.Context(), driver, registry())
	if err != nil {
		t.Fatalf("ask: %v", err)
	}

	want := scaffold.Section{
		Version: "2.0",
		Origins: []string{".", "https://content.example.com"},
		Plugins: []string{"push", "https://cdn.example.com/x.js"},
		Cache:   &scaffold.Cache{Static: []string{"/index.html", "/app.css"}},
	}
	if diff := cmp.Diff(want, section); diff != "" {
		t.Fatalf("section mismatch (-want +got):\n%s", diff)
	}
}

func TestAsk_EmptyRegistrySkipsSelect(t *testing.T) {
	driver := &fakeDriver{inputs: []string{"1.0", ".", ""}}

	section, err := scaffold.Ask(testsupport.Context(), driver, plugins.NewRegistry())
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	for _, prompt := range driver.prompts {
		if prompt == "Plugins" {
			t.Fatal("plugin select shown for empty registry")
		}
	}
	if section.Cache != nil || len(section.Plugins) != 0 {
		t.Fatalf("unexpected section: %+v", section)
	}
}

func TestAsk_RejectsNonHTTPSPlugin(t *testing.T) {
	driver := &fakeDriver{inputs: []string{"1.0", ".", "http://insecure/p.js"}}
	if _, err := scaffold.Ask(testsupport.Context(), driver, nil); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestAsk_Aborted(t *testing.T) {
	driver := &fakeDriver{err: scaffold.ErrAborted}
	if _, err := scaffold.Ask(testsupport.Context(), driver, nil); !errors.Is(err, scaffold.ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestWrite_RoundTripsThroughNormalize(t *testing.T) {
	dir := t.TempDir()
	section := scaffold.Section{
		Version: "1.0",
		Origins: []string{"."},
		Plugins: []string{"https://cdn.example.com/x.js"},
		Cache:   &scaffold.Cache{Static: []string{"/index.html"}},
	}

	path, err := scaffold.Write(dir, section, false)
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if path != filepath.Join(dir, scaffold.DefaultFilename) {
		t.Fatalf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	parsed, err := manifest.Decode(manifest.MustNewDocument(manifest.SourceFromFile(path), data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	cfg, err := manifest.Normalize(parsed.ServiceWorker)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if diff := cmp.Diff(section.Plugins, cfg.Plugins); diff != "" {
		t.Fatalf("plugins mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(section.Cache.Static, cfg.Cache.Static); diff != "" {
		t.Fatalf("static mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	section := scaffold.Section{Version: "1.0", Origins: []string{"."}}

	if _, err := scaffold.Write(dir, section, false); err != nil {
		t.Fatalf("first write: %v", err)
	}
	_, err := scaffold.Write(dir, section, false)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected exists error, got %v", err)
	}
	if _, err := scaffold.Write(dir, section, true); err != nil {
		t.Fatalf("forced write: %v", err)
	}
}
