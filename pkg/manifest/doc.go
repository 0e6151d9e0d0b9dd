// Package manifest exposes the contracts for loading site manifests (Source,
// Document, Loader) and the service worker configuration read from them.
// Decode extracts the raw `serviceWorker` section; Normalize turns it into a
// fully defaulted Config, rejecting settings of the wrong shape instead of
// coercing them. Loader implementations live under internal/manifest.
package manifest
