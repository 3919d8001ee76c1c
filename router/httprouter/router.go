// Package httprouter adapts github.com/julienschmidt/httprouter to
// router.Router.
package httprouter

import (
	"net/http"

	"github.com/caasmo/iconfetch/router"
	jshttprouter "github.com/julienschmidt/httprouter"
)

type Router struct {
	rt *jshttprouter.Router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.rt.ServeHTTP(w, req)
}

// Handle panics, like httprouter, when the path conflicts with a
// registered one.
func (r *Router) Handle(pattern string, handler http.Handler) {
	method, path := router.SplitPattern(pattern)
	r.rt.Handler(method, path, handler)
}

func (r *Router) HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	r.Handle(pattern, http.HandlerFunc(handler))
}

// Param reads the parameters httprouter stores in the request context. A
// catch-all value keeps its leading slash.
func (r *Router) Param(req *http.Request, key string) string {
	return jshttprouter.ParamsFromContext(req.Context()).ByName(key)
}

func (r *Router) NotFound(handler http.Handler) {
	r.rt.NotFound = handler
}

// New returns a router that does not rewrite paths: a catch-all value may
// itself hold a URL with "//".
func New() router.Router {
	rt := jshttprouter.New()
	rt.RedirectFixedPath = false
	return &Router{rt: rt}
}
