// Package script produces the text of a generated service worker. Format*
// helpers build array literal bodies, the statement builders emit zero or one
// line each, and Assembler renders the final file from an embedded pongo2
// template.
//
// The two array formatters escape differently on purpose. FormatJSONArray
// JSON-encodes every element and is safe for arbitrary strings.
// FormatStringArray only wraps elements in double quotes; it is used for
// script URLs and static cache paths, which manifest validation restricts to
// values that need no escaping (see manifest.IsPlainQuotable).
package script
