// Package plugins maps service worker plugin references to script URLs.
//
// A Registry is an explicit name → URLBuilder table; it can be assembled in
// code or loaded from a YAML/JSON document whose URL patterns carry a
// `{version}` placeholder. A Resolver turns the ordered plugin list of a
// manifest into the ordered import list, always placing the runtime script
// (RuntimeName) first and passing `https:` references through untouched.
package plugins
