package output_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-swgen/pkg/output"
)

func TestPath(t *testing.T) {
	if got, want := output.Path("build"), filepath.Join("build", "sw.js"); got != want {
		t.Fatalf("Path = %q, want %q", got, want)
	}
}

func TestFileWriter_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "public", "nested", output.Filename)

	if err := (output.FileWriter{}).Write(context.Background(), path, []byte("one")); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "one" {
		t.Fatalf("content = %q", data)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Fatalf("perm = %v, want 0644", info.Mode().Perm())
	}
}

func TestFileWriter_Overwrites(t *testing.T) {
	dir := t.TempDir()
	path := output.Path(dir)
	w := output.FileWriter{Perm: 0o600}

	for _, content := range []string{"first version", "second"} {
		if err := w.Write(context.Background(), path, []byte(content)); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	data, _ := os.ReadFile(path)
	if string(data) != "second" {
		t.Fatalf("content = %q", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("temporary files left behind: %v", entries)
	}
}

func TestFileWriter_Errors(t *testing.T) {
	if err := (output.FileWriter{}).Write(context.Background(), "", nil); err == nil {
		t.Fatal("expected error for empty path")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := (output.FileWriter{}).Write(ctx, output.Path(t.TempDir()), nil); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestWriterFunc(t *testing.T) {
	var got string
	w := output.WriterFunc(func(_ context.Context, path string, _ []byte) error {
		got = path
		return nil
	})
	if err := w.Write(context.Background(), "x/sw.js", nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got != "x/sw.js" {
		t.Fatalf("path = %q", got)
	}
}
