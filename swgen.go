package swgen

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	internalLoader "github.com/goliatone/go-swgen/internal/manifest/loader"
	"github.com/goliatone/go-swgen/pkg/manifest"
	"github.com/goliatone/go-swgen/pkg/orchestrator"
)

// DefaultRequestTimeout bounds remote manifest fetches made through Make and
// ParseSource-driven builds.
const DefaultRequestTimeout = 30 * time.Second

// BuildOptions aliases orchestrator.BuildOptions for callers of the root
// package.
type BuildOptions = orchestrator.BuildOptions

// Result aliases orchestrator.Result.
type Result = orchestrator.Result

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewLoader constructs a manifest loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...manifest.LoaderOption) manifest.Loader {
	cfg := manifest.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// ParseSource turns a CLI style location into a manifest Source. http(s)
// locations become URL sources, everything else a file or directory source.
// Empty input yields nil.
func ParseSource(raw string) manifest.Source {
	location := strings.TrimSpace(raw)
	if location == "" {
		return nil
	}
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return manifest.SourceFromURL(location)
	}
	return manifest.SourceFromFile(location)
}

// Generate runs a single build and returns the tagged result. It is the entry
// point for callers that want to tell success, absence and failure apart.
func Generate(ctx context.Context, opts BuildOptions, source, target string, save bool, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(append(defaultOptions(), options...)...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:  ParseSource(source),
		Options: opts,
		Target:  target,
		Save:    save,
	})
}

// Make generates a service worker from the manifest found at source and, when
// save is true, writes it to <target>/sw.js. Every failure, as well as a
// manifest without a service worker section, is logged through the global
// zerolog logger and reported as ("", false).
func Make(ctx context.Context, opts BuildOptions, source, target string, save bool, options ...orchestrator.Option) (string, bool) {
	result, err := Generate(ctx, opts, source, target, save, options...)
	if err != nil {
		log.Error().Err(err).Str("source", source).Msg("Service worker generation failed")
		return "", false
	}
	if !result.Generated() {
		log.Error().Str("source", source).Msg("No service worker configuration")
		return "", false
	}
	return result.Script, true
}

func defaultOptions() []orchestrator.Option {
	return []orchestrator.Option{
		orchestrator.WithLoader(NewLoader(manifest.WithHTTPFallback(DefaultRequestTimeout))),
		orchestrator.WithLogger(log.Logger),
	}
}
