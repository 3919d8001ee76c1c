package router

import (
	"net/http"
	"sort"
)

// Middleware wraps a handler.
type Middleware func(http.Handler) http.Handler

// Chain is a handler with the middlewares that run before it.
type Chain struct {
	handler     http.Handler
	middlewares []Middleware
}

// Chains maps route patterns to their chains.
type Chains map[string]*Chain

// NewChain panics on a nil handler: routes are wired at startup and a
// missing handler is a programming error.
func NewChain(h http.Handler) *Chain {
	if h == nil {
		panic("router: chain handler cannot be nil")
	}
	return &Chain{handler: h}
}

// WithMiddleware appends middlewares. They run in the order given, across
// calls, so
//
//	NewChain(h).WithMiddleware(mw1, mw2).WithMiddleware(mw3)
//
// serves a request as mw1, mw2, mw3, h.
func (c *Chain) WithMiddleware(middlewares ...Middleware) *Chain {
	for _, mw := range middlewares {
		if mw != nil {
			c.middlewares = append(c.middlewares, mw)
		}
	}
	return c
}

// Handler builds the wrapped handler. The first middleware is the outermost.
func (c *Chain) Handler() http.Handler {
	h := c.handler
	for i := len(c.middlewares) - 1; i >= 0; i-- {
		h = c.middlewares[i](h)
	}
	return h
}

// Register adds every chain to r in pattern order.
func (cs Chains) Register(r Router) {
	patterns := make([]string, 0, len(cs))
	for p := range cs {
		patterns = append(patterns, p)
	}
	sort.Strings(patterns)
	for _, p := range patterns {
		r.Handle(p, cs[p].Handler())
	}
}
