package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

func loadFromFS(ctx context.Context, files fs.FS, name string, names []string) (string, []byte, error) {
	if files == nil {
		return "", nil, errors.New("manifest loader: filesystem is not configured")
	}
	if name == "" {
		return "", nil, errors.New("manifest loader: fs path is required")
	}
	select {
	case <-ctx.Done():
		return "", nil, ctx.Err()
	default:
	}

	info, err := fs.Stat(files, name)
	if err != nil {
		return "", nil, err
	}
	if info.IsDir() {
		name, err = findInFS(files, name, names)
		if err != nil {
			return "", nil, err
		}
	}

	data, err := fs.ReadFile(files, name)
	if err != nil {
		return "", nil, err
	}
	return name, data, nil
}

func findInFS(files fs.FS, dir string, names []string) (string, error) {
	for _, candidate := range names {
		full := path.Join(dir, candidate)
		info, err := fs.Stat(files, full)
		if err == nil && !info.IsDir() {
			return full, nil
		}
	}
	return "", fmt.Errorf("manifest loader: no manifest found in %s (tried %s)", dir, strings.Join(names, ", "))
}
