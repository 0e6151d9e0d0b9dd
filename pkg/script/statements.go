package script

import (
	"github.com/goliatone/go-swgen/pkg/manifest"
)

// ImportList renders the argument list of self.importScripts.
func ImportList(urls []string) string {
	return FormatStringArray(urls)
}

// OriginsStatement registers additional content origins. It returns an empty
// string when origins is empty.
func OriginsStatement(origins []string) string {
	if len(origins) == 0 {
		return ""
	}
	return "self.addOrigins([" + FormatJSONArray(origins) + "]);"
}

// StaticCacheStatement primes the static cache. It returns an empty string
// when no static paths are configured.
func StaticCacheStatement(cache manifest.Cache) string {
	if len(cache.Static) == 0 {
		return ""
	}
	return "self.staticCache([" + FormatStringArray(cache.Static) + "]);"
}
