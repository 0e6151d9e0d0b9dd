package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func loadFile(ctx context.Context, path string, names []string) (string, []byte, error) {
	if path == "" {
		return "", nil, errors.New("manifest loader: file path is required")
	}
	select {
	case <-ctx.Done():
		return "", nil, ctx.Err()
	default:
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", nil, err
	}
	if info.IsDir() {
		abs, err = findInDir(abs, names)
		if err != nil {
			return "", nil, err
		}
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return "", nil, err
	}
	return abs, data, nil
}

func findInDir(dir string, names []string) (string, error) {
	for _, name := range names {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("manifest loader: no manifest found in %s (tried %s)", dir, strings.Join(names, ", "))
}
