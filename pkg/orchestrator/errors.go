package orchestrator

import (
	"fmt"
)

// Kind classifies generation failures.
type Kind string

const (
	// KindConfig marks a malformed service worker section.
	KindConfig Kind = "config"

	// KindResolve marks a plugin reference that could not be resolved.
	KindResolve Kind = "resolve"

	// KindLoad marks a manifest that could not be loaded or parsed.
	KindLoad Kind = "load"

	// KindRender marks a template failure while assembling the script.
	KindRender Kind = "render"

	// KindWrite marks a failure persisting the generated script.
	KindWrite Kind = "write"
)

// Sentinels for errors.Is checks against a failure kind.
var (
	ErrConfig  = &Error{Kind: KindConfig}
	ErrResolve = &Error{Kind: KindResolve}
	ErrLoad    = &Error{Kind: KindLoad}
	ErrRender  = &Error{Kind: KindRender}
	ErrWrite   = &Error{Kind: KindWrite}
)

// Error is a classified generation failure.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return fmt.Sprintf("orchestrator: %s error", e.Kind)
	case e.Op == "":
		return fmt.Sprintf("orchestrator: %v", e.Err)
	default:
		return fmt.Sprintf("orchestrator: %s: %v", e.Op, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches sentinel errors of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Err == nil && t.Kind == e.Kind
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}
