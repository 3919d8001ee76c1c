package core

import (
	"net/http"
)

// HeadersJson are set on every JSON body.
var HeadersJson = map[string]string{
	"Content-Type": "application/json; charset=utf-8",

	// browsers must not sniff a different type out of the body
	"X-Content-Type-Options": "nosniff",

	// error answers are never cached
	"Cache-Control": "no-store, no-cache, must-revalidate",

	"X-Frame-Options":         "DENY",
	"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
}

// HeadersImage are set on proxied and generated images. Cache-Control comes
// from the favicon config.
var HeadersImage = map[string]string{
	"X-Content-Type-Options": "nosniff",

	// an SVG opened directly must not run scripts
	"Content-Security-Policy": "default-src 'none'; style-src 'unsafe-inline'; sandbox",
}

// HeadersFavicon is for the service's own /favicon.ico.
var HeadersFavicon = map[string]string{
	"Cache-Control": "public, max-age=86400",
}

// HeadersMaintenance tell clients and proxies to come back later.
var HeadersMaintenance = map[string]string{
	"Retry-After":   "300",
	"Cache-Control": "no-store",
}

// setHeaders applies the maps in order; later maps win on conflicts.
func setHeaders(w http.ResponseWriter, headers ...map[string]string) {
	for _, headerMap := range headers {
		for key, value := range headerMap {
			w.Header().Set(key, value)
		}
	}
}
