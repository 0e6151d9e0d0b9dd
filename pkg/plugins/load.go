package plugins

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type registryFile struct {
	Plugins map[string]string `json:"plugins" yaml:"plugins"`
}

// LoadFile reads a registry document from disk.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("plugins: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// LoadFS reads a registry document from an fs.FS.
func LoadFS(fsys fs.FS, name string) (*Registry, error) {
	if fsys == nil {
		return nil, fmt.Errorf("plugins: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("plugins: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// Parse decodes a JSON or YAML registry document of the form
//
//	plugins:
//	  analytics: https://cdn.example.com/sw-analytics/{version}/plugin.js
//
// Every pattern must be an https: URL.
func Parse(data []byte, source string) (*Registry, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("plugins: file %s is empty", source)
	}

	var doc registryFile
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = registryFile{}
		if yerr := yaml.Unmarshal(data, &doc); yerr != nil {
			return nil, fmt.Errorf("plugins: parse %s: invalid JSON or YAML", source)
		}
	}

	reg := NewRegistry()
	for name, pattern := range doc.Plugins {
		pattern = strings.TrimSpace(pattern)
		if !strings.HasPrefix(pattern, URLPrefix) {
			return nil, fmt.Errorf("plugins: file %s plugin %q must map to an %s URL", source, name, URLPrefix)
		}
		if err := reg.Register(name, Template(pattern)); err != nil {
			return nil, fmt.Errorf("plugins: file %s: %w", source, err)
		}
	}
	return reg, nil
}
