package middleware

import "net/http"

// Middleware wraps the dictionary router.
type Middleware func(http.Handler) http.Handler

// Chain builds the request stack in the order given: Chain(a, b)(h) is
// a(b(h)). A nil entry stands for a layer switched off in config, such as
// rate limiting, and is skipped.
func Chain(mws ...Middleware) Middleware {
	return func(router http.Handler) http.Handler {
		h := router
		for i := len(mws) - 1; i >= 0; i-- {
			if mw := mws[i]; mw != nil {
				h = mw(h)
			}
		}
		return h
	}
}
