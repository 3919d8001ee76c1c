package router

import (
	"net/http"
	"strings"
)

// Router is what the application registers its routes on. Patterns have the
// form "METHOD /path"; a pattern without method registers GET.
type Router interface {
	http.Handler
	Handle(pattern string, handler http.Handler)
	HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request))
	// Param returns the named path parameter of req, or "" when absent.
	Param(req *http.Request, key string) string
	// NotFound sets the handler for unmatched paths.
	NotFound(handler http.Handler)
}

// SplitPattern splits "GET /path" into its method and path.
func SplitPattern(pattern string) (method, path string) {
	pattern = strings.TrimSpace(pattern)
	method, path, found := strings.Cut(pattern, " ")
	if !found {
		return http.MethodGet, pattern
	}
	return strings.ToUpper(method), strings.TrimSpace(path)
}
