package middleware

import (
	"io"
	"net/http"
)

// request bodies can be large (a full workout snapshot); drain at most
// this much before closing so a half-read body never pins the connection
const drainLimitBytes = 1 << 20

// DrainAndCloseRequest drains and closes the request body after the
// handler runs, so keep-alive connections stay reusable.
func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.Copy(io.Discard, io.LimitReader(r.Body, drainLimitBytes))
				_ = r.Body.Close()
			}
		})
	}
}
