package script_test

import (
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-swgen/pkg/script"
)

func TestAssembler_Render(t *testing.T) {
	assembler := script.MustNewAssembler()

	got, err := assembler.Render(script.Script{
		Tool:      "swgen",
		Timestamp: "Mon Oct 19 2026 10:00:00 GMT+0000 (UTC)",
		Imports:   `"https://unpkg.com/@locomote.sh/sw@1.0/sw.js"`,
		Origins:   `self.addOrigins(["."]);`,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := strings.Join([]string{
		"// Auto-generated by swgen / Mon Oct 19 2026 10:00:00 GMT+0000 (UTC)",
		`self.importScripts("https://unpkg.com/@locomote.sh/sw@1.0/sw.js");`,
		`self.addOrigins(["."]);`,
		"",
		"",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembler_RenderDoesNotEscape(t *testing.T) {
	assembler := script.MustNewAssembler()

	got, err := assembler.Render(script.Script{
		Tool:    "a<b>&c",
		Imports: `"x"`,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(got, "a<b>&c") {
		t.Fatalf("tool name was escaped: %q", got)
	}
}

func TestAssembler_CustomTemplate(t *testing.T) {
	files := fstest.MapFS{
		"custom.tpl": &fstest.MapFile{Data: []byte("{{ tool|safe }}|{{ imports|safe }}")},
	}

	assembler, err := script.NewAssembler(
		script.WithTemplatesFS(files),
		script.WithTemplateName("custom.tpl"),
	)
	if err != nil {
		t.Fatalf("new assembler: %v", err)
	}

	got, err := assembler.Render(script.Script{Tool: "t", Imports: `"u"`})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != `t|"u"` {
		t.Fatalf("custom render = %q", got)
	}
}

func TestNewAssembler_MissingTemplate(t *testing.T) {
	_, err := script.NewAssembler(script.WithTemplateName("missing.tpl"))
	if err == nil {
		t.Fatal("expected error for missing template")
	}
}

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)
	if got, want := script.FormatTimestamp(ts), "Mon Oct 19 2026 10:00:00 GMT+0000 (UTC)"; got != want {
		t.Fatalf("FormatTimestamp = %q, want %q", got, want)
	}
}
