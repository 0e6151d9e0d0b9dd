// Package output persists generated service worker scripts.
package output

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Filename is the fixed name of the generated script below a build target.
const Filename = "sw.js"

// Path returns the destination of the generated script for target.
func Path(target string) string {
	return filepath.Join(target, Filename)
}

// Writer stores generated content, creating or overwriting the destination.
type Writer interface {
	Write(ctx context.Context, path string, data []byte) error
}

// WriterFunc adapts a function to the Writer interface.
type WriterFunc func(ctx context.Context, path string, data []byte) error

// Write calls f.
func (f WriterFunc) Write(ctx context.Context, path string, data []byte) error {
	return f(ctx, path, data)
}

// FileWriter writes to the local filesystem.
type FileWriter struct {
	// Perm applies to newly created files; zero means 0o644.
	Perm os.FileMode
}

var _ Writer = FileWriter{}

// Write creates missing parent directories, then writes data to a sibling
// temporary file and renames it over path so readers never observe a partial
// script.
func (w FileWriter) Write(ctx context.Context, path string, data []byte) error {
	if path == "" {
		return errors.New("output: path is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	perm := w.Perm
	if perm == 0 {
		perm = 0o644
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("output: create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("output: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("output: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("output: close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("output: chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("output: replace %s: %w", path, err)
	}
	return nil
}
