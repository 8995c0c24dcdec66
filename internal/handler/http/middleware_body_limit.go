package http

import "net/http"

// MaxBodyBytes bounds every request body (1 MiB).
const MaxBodyBytes = 1 << 20

// withBodyLimit makes reads past MaxBodyBytes fail, which surfaces as an
// invalid JSON body in the handlers.
func withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}
