package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	internalLoader "github.com/goliatone/go-swgen/internal/manifest/loader"
	"github.com/goliatone/go-swgen/pkg/manifest"
	"github.com/goliatone/go-swgen/pkg/output"
	"github.com/goliatone/go-swgen/pkg/plugins"
	"github.com/goliatone/go-swgen/pkg/script"
)

// DefaultTool is written into the generated header when no tool name is set.
const DefaultTool = "swgen"

// Clock supplies the generation timestamp.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom manifest loader.
func WithLoader(loader manifest.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry sets the plugin registry used by the default resolver.
func WithRegistry(registry *plugins.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithResolver injects a preconfigured resolver; it takes precedence over
// WithRegistry.
func WithResolver(resolver *plugins.Resolver) Option {
	return func(o *Orchestrator) {
		o.resolver = resolver
	}
}

// WithAssembler injects a script assembler, e.g. one using custom templates.
func WithAssembler(assembler *script.Assembler) Option {
	return func(o *Orchestrator) {
		o.assembler = assembler
	}
}

// WithWriter injects the persistence collaborator.
func WithWriter(writer output.Writer) Option {
	return func(o *Orchestrator) {
		o.writer = writer
	}
}

// WithClock fixes the clock used for the header timestamp.
func WithClock(clock Clock) Option {
	return func(o *Orchestrator) {
		o.clock = clock
	}
}

// WithTool overrides the tool name written into the header.
func WithTool(name string) Option {
	return func(o *Orchestrator) {
		o.tool = name
	}
}

// WithLogger routes diagnostics to logger. The default discards them.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// Orchestrator coordinates generation from manifest to script text. Missing
// dependencies are initialised with the built-in implementations.
type Orchestrator struct {
	loader        manifest.Loader
	registry      *plugins.Registry
	resolver      *plugins.Resolver
	assembler     *script.Assembler
	writer        output.Writer
	clock         Clock
	tool          string
	logger        zerolog.Logger
	initialiseErr error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		tool:   DefaultTool,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// BuildOptions carries per-build knobs.
type BuildOptions struct {
	// ManifestName selects a manifest file below a directory Source instead
	// of probing manifest.DefaultNames.
	ManifestName string

	// Tool overrides the header tool name for this build.
	Tool string
}

// Request describes one generation.
type Request struct {
	// Source identifies the manifest or the build source directory. Optional
	// when Document is supplied.
	Source manifest.Source

	// Document bypasses the loader when the manifest is already in memory.
	Document *manifest.Document

	Options BuildOptions

	// Target is the build target directory; required when Save is set.
	Target string

	// Save writes the script to output.Path(Target).
	Save bool
}

// Status tags a successful Generate outcome.
type Status string

const (
	// StatusGenerated means Script holds the generated text.
	StatusGenerated Status = "generated"

	// StatusAbsent means the manifest has no service worker section.
	StatusAbsent Status = "absent"
)

// Result is the outcome of a Generate call that did not fail.
type Result struct {
	Status Status
	Script string
	// Path is set when the script was persisted.
	Path string
}

// Generated reports whether r carries script text.
func (r Result) Generated() bool {
	return r.Status == StatusGenerated
}

// Generate loads the manifest, applies defaults, resolves plugins, assembles
// the script and optionally persists it. Errors are *Error values classified
// by Kind; a missing service worker section yields StatusAbsent and no error.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, newError(KindLoad, "", errors.New("context is required"))
	}
	if err := ctx.Err(); err != nil {
		return Result{}, newError(KindLoad, "", err)
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, newError(KindRender, "", err)
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return Result{}, err
	}

	parsed, err := manifest.Decode(doc)
	if err != nil {
		var cfgErr *manifest.ConfigError
		if errors.As(err, &cfgErr) {
			return Result{}, newError(KindConfig, "", err)
		}
		return Result{}, newError(KindLoad, "decode manifest", err)
	}
	if !parsed.HasServiceWorker() {
		o.logger.Debug().Str("manifest", parsed.Location).Msg("no service worker configuration")
		return Result{Status: StatusAbsent}, nil
	}

	cfg, err := manifest.Normalize(parsed.ServiceWorker)
	if err != nil {
		return Result{}, newError(KindConfig, "", err)
	}

	urls, err := o.resolver.Resolve(cfg.Plugins, cfg.Version)
	if err != nil {
		return Result{}, newError(KindResolve, "", err)
	}

	text, err := o.assembler.Render(script.Script{
		Tool:      o.toolFor(req),
		Timestamp: script.FormatTimestamp(o.clock.Now()),
		Imports:   script.ImportList(urls),
		Origins:   script.OriginsStatement(cfg.Origins),
		Cache:     script.StaticCacheStatement(cfg.Cache),
	})
	if err != nil {
		return Result{}, newError(KindRender, "", err)
	}

	result := Result{Status: StatusGenerated, Script: text}
	if !req.Save {
		return result, nil
	}

	path, err := o.persist(ctx, req.Target, text)
	if err != nil {
		return Result{}, err
	}
	result.Path = path
	return result, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (manifest.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return manifest.Document{}, newError(KindLoad, "", errors.New("source or document is required"))
	}
	src := manifest.WithName(req.Source, req.Options.ManifestName)
	doc, err := o.loader.Load(ctx, src)
	if err != nil {
		return manifest.Document{}, newError(KindLoad, "load manifest", err)
	}
	return doc, nil
}

func (o *Orchestrator) persist(ctx context.Context, target, text string) (string, error) {
	if target == "" {
		return "", newError(KindWrite, "", errors.New("target directory is required to save"))
	}
	if err := ctx.Err(); err != nil {
		return "", newError(KindWrite, "", err)
	}

	path := output.Path(target)
	o.logger.Info().Str("path", path).Msg("writing service worker")
	if err := o.writer.Write(ctx, path, []byte(text)); err != nil {
		return "", newError(KindWrite, fmt.Sprintf("write %s", path), err)
	}
	return path, nil
}

func (o *Orchestrator) toolFor(req Request) string {
	if req.Options.Tool != "" {
		return req.Options.Tool
	}
	return o.tool
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = internalLoader.New(manifest.NewLoaderOptions())
	}
	if o.resolver == nil {
		if o.registry == nil {
			o.registry = plugins.NewRegistry()
		}
		o.resolver = plugins.NewResolver(o.registry)
	}
	if o.assembler == nil {
		assembler, err := script.NewAssembler()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default assembler: %w", err)
		} else {
			o.assembler = assembler
		}
	}
	if o.writer == nil {
		o.writer = output.FileWriter{}
	}
	if o.clock == nil {
		o.clock = ClockFunc(time.Now)
	}
	if o.tool == "" {
		o.tool = DefaultTool
	}
}
