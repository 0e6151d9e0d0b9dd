// Package swgen generates browser service worker scripts from the
// `serviceWorker` section of a site manifest.
//
// The generated file imports the service worker runtime followed by the
// configured plugins, registers additional content origins and primes a
// static cache:
//
//	// Auto-generated by swgen / Mon Oct 19 2026 10:00:00 GMT+0000 (UTC)
//	self.importScripts("https://unpkg.com/@locomote.sh/sw@1.0/sw.js",
//		"https://cdn.example.com/analytics.js");
//	self.addOrigins([".",
//		"https://media.example.com"]);
//	self.staticCache(["/index.html",
//		"/app.css"]);
//
// Generate returns a tagged result; Make keeps the log-and-continue contract
// used by build scripts.
package swgen
