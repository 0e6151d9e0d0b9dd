package manifest

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// Source names where a manifest lives. File and FS locations may point at the
// manifest itself or at the build source directory holding it.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind selects the loader strategy.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

type location struct {
	kind SourceKind
	at   string
}

func (l location) Kind() SourceKind { return l.kind }

func (l location) Location() string { return l.at }

// SourceFromFile points at a manifest file or source directory on disk.
func SourceFromFile(path string) Source {
	return location{kind: SourceKindFile, at: filepath.Clean(path)}
}

// SourceFromFS points at a name inside the loader's fs.FS.
func SourceFromFS(name string) Source {
	return location{kind: SourceKindFS, at: name}
}

// SourceFromURL panics on an empty or unparsable URL so bad wiring fails at
// startup.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("manifest: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("manifest: invalid URL %q: %v", raw, err))
	}
	return location{kind: SourceKindURL, at: raw}
}
