// Package preview serves a freshly generated service worker over HTTP so a
// manifest can be tried in a browser without a build step.
package preview

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-swgen/pkg/orchestrator"
)

// Generator is satisfied by *orchestrator.Orchestrator.
type Generator interface {
	Generate(ctx context.Context, req orchestrator.Request) (orchestrator.Result, error)
}

// Handler regenerates the script on every request.
type Handler struct {
	gen    Generator
	req    orchestrator.Request
	logger zerolog.Logger
}

// NewHandler builds a Handler for req. req.Save is ignored; previews never
// write to disk.
func NewHandler(gen Generator, req orchestrator.Request, logger zerolog.Logger) *Handler {
	req.Save = false
	return &Handler{gen: gen, req: req, logger: logger}
}

// ServeHTTP writes the generated script with the headers browsers need to
// register it for the whole origin.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	result, err := h.gen.Generate(r.Context(), h.req)
	if err != nil {
		h.logger.Error().Err(err).Msg("preview generation failed")
		status := http.StatusInternalServerError
		if errors.Is(err, orchestrator.ErrConfig) || errors.Is(err, orchestrator.ErrResolve) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}
	if !result.Generated() {
		http.Error(w, "no service worker configuration", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/javascript")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Service-Worker-Allowed", "/")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write([]byte(result.Script)); err != nil {
		h.logger.Debug().Err(err).Msg("preview write failed")
	}
}
