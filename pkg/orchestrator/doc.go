// Package orchestrator wires the manifest loader → configuration defaults →
// plugin resolver → script assembler → writer pipeline behind a single
// Generate call. Failures are returned as classified *Error values and an
// absent service worker section is reported as StatusAbsent, so callers
// decide how to log or fail.
package orchestrator
