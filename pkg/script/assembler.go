package script

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/flosch/pongo2/v6"
)

const (
	// DefaultTemplate names the embedded service worker template.
	DefaultTemplate = "sw.js.tpl"

	// TimestampLayout mirrors the JavaScript Date string format.
	TimestampLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the built-in templates so callers can copy or extend
// them.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// FormatTimestamp renders t with TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Script carries the pre-rendered fragments of a service worker file.
type Script struct {
	Tool      string
	Timestamp string
	Imports   string
	Origins   string
	Cache     string
}

// AssemblerOption configures an Assembler before construction.
type AssemblerOption func(*assemblerConfig)

type assemblerConfig struct {
	templates fs.FS
	name      string
}

// WithTemplatesFS loads templates from files instead of the embedded set.
func WithTemplatesFS(files fs.FS) AssemblerOption {
	return func(cfg *assemblerConfig) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// WithTemplateName selects the template file rendered by the Assembler.
func WithTemplateName(name string) AssemblerOption {
	return func(cfg *assemblerConfig) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.name = trimmed
		}
	}
}

// Assembler renders Script values through a pongo2 template.
type Assembler struct {
	tmpl *pongo2.Template
}

// NewAssembler parses the configured template once; Render can then be called
// concurrently.
func NewAssembler(options ...AssemblerOption) (*Assembler, error) {
	cfg := &assemblerConfig{
		templates: TemplatesFS(),
		name:      DefaultTemplate,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	set := pongo2.NewSet("swgen", pongo2.NewFSLoader(cfg.templates))
	tmpl, err := set.FromFile(cfg.name)
	if err != nil {
		return nil, fmt.Errorf("script: load template %q: %w", cfg.name, err)
	}
	return &Assembler{tmpl: tmpl}, nil
}

// MustNewAssembler panics when the template cannot be loaded.
func MustNewAssembler(options ...AssemblerOption) *Assembler {
	a, err := NewAssembler(options...)
	if err != nil {
		panic(err)
	}
	return a
}

// Render executes the template for s.
func (a *Assembler) Render(s Script) (string, error) {
	if a == nil || a.tmpl == nil {
		return "", errors.New("script: assembler is not initialised")
	}
	out, err := a.tmpl.Execute(pongo2.Context{
		"tool":      s.Tool,
		"timestamp": s.Timestamp,
		"imports":   s.Imports,
		"origins":   s.Origins,
		"cache":     s.Cache,
	})
	if err != nil {
		return "", fmt.Errorf("script: render: %w", err)
	}
	return out, nil
}
