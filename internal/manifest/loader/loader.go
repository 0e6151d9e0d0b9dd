package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	pkgmanifest "github.com/goliatone/go-swgen/pkg/manifest"
)

// Loader implements pkgmanifest.Loader by delegating to file, fs.FS, or HTTP
// strategies. Construction helpers live in the top-level swgen package.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
	names     []string
}

var _ pkgmanifest.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgmanifest.LoaderOptions) pkgmanifest.Loader {
	timeout := options.RequestTimeout

	var httpClient *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		httpClient = &clone
	case options.AllowHTTPFallback:
		httpClient = &http.Client{Timeout: timeout}
	}

	names := options.Names
	if len(names) == 0 {
		names = pkgmanifest.DefaultNames
	}

	return &Loader{
		fs:        options.FileSystem,
		http:      httpClient,
		allowHTTP: httpClient != nil,
		timeout:   timeout,
		names:     append([]string(nil), names...),
	}
}

// Load fetches a manifest from the provided source and wraps it in a Document.
// Directory sources resolve to the first candidate manifest name present.
func (l *Loader) Load(ctx context.Context, src pkgmanifest.Source) (pkgmanifest.Document, error) {
	if src == nil {
		return pkgmanifest.Document{}, errors.New("manifest loader: source is nil")
	}

	var (
		data     []byte
		resolved = src
		err      error
	)

	switch src.Kind() {
	case pkgmanifest.SourceKindFile:
		var path string
		path, data, err = loadFile(ctx, src.Location(), l.names)
		if err == nil {
			resolved = pkgmanifest.SourceFromFile(path)
		}
	case pkgmanifest.SourceKindFS:
		var name string
		name, data, err = loadFromFS(ctx, l.fs, src.Location(), l.names)
		if err == nil {
			resolved = pkgmanifest.SourceFromFS(name)
		}
	case pkgmanifest.SourceKindURL:
		if !l.allowHTTP {
			return pkgmanifest.Document{}, errors.New("manifest loader: http support disabled")
		}
		data, err = loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		err = errors.New("manifest loader: unsupported source kind")
	}
	if err != nil {
		return pkgmanifest.Document{}, err
	}

	return pkgmanifest.NewDocument(resolved, data)
}
