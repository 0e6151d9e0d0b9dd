package manifest

import (
	"context"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// DefaultNames lists the manifest file names probed, in order, when a file or
// fs source points at a directory.
var DefaultNames = []string{"manifest.json", "manifest.yaml", "manifest.yml"}

// Loader fetches manifest documents from different sources (filesystem, fs.FS,
// HTTP). The default implementation lives under internal/manifest/loader.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem backs SourceKindFS sources.
	FileSystem fs.FS

	// HTTPClient allows callers to inject custom HTTP behaviour. Nil means URL
	// sources are rejected unless AllowHTTPFallback is true.
	HTTPClient *http.Client

	// AllowHTTPFallback enables URL sources with a default client when no
	// HTTPClient is supplied.
	AllowHTTPFallback bool

	// RequestTimeout caps remote fetch durations.
	RequestTimeout time.Duration

	// Names overrides DefaultNames for directory sources.
	Names []string
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS implementation for SourceKindFS sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for remote manifests.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables HTTP loading with a default client and an optional
// timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// WithManifestNames replaces the candidate names probed for directory sources.
func WithManifestNames(names ...string) LoaderOption {
	return func(opts *LoaderOptions) {
		if len(names) == 0 {
			return
		}
		opts.Names = append([]string(nil), names...)
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if len(cfg.Names) == 0 {
		cfg.Names = append([]string(nil), DefaultNames...)
	}
	return cfg
}

// WithName narrows src to a named manifest file below its location. Empty
// names return src unchanged.
func WithName(src Source, name string) Source {
	name = strings.TrimSpace(name)
	if src == nil || name == "" {
		return src
	}
	switch src.Kind() {
	case SourceKindFile:
		return SourceFromFile(filepath.Join(src.Location(), name))
	case SourceKindFS:
		return SourceFromFS(path.Join(src.Location(), name))
	case SourceKindURL:
		joined, err := url.JoinPath(src.Location(), name)
		if err != nil {
			return src
		}
		return location{kind: SourceKindURL, at: joined}
	default:
		return src
	}
}
