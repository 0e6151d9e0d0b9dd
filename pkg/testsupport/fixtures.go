// Package testsupport holds helpers shared by swgen tests: golden files,
// fixed clocks and manifest fixtures.
package testsupport

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-swgen/pkg/manifest"
)

// FixedTime is the timestamp used by FixedClock.
var FixedTime = time.Date(2026, time.October, 19, 10, 0, 0, 0, time.UTC)

// FixedClock returns FixedTime on every call.
type FixedClock struct{}

// Now returns FixedTime.
func (FixedClock) Now() time.Time {
	return FixedTime
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// Document wraps an inline manifest body in a Document with a file source.
func Document(t *testing.T, body string) manifest.Document {
	t.Helper()

	doc, err := manifest.NewDocument(manifest.SourceFromFile("manifest.json"), []byte(body))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return doc
}

// WriteManifest writes body to dir/name and returns the file path.
func WriteManifest(t *testing.T, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir manifest dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}
