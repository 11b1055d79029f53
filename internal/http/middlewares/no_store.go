package middlewares

import "net/http"

// WithNoStore agrega Cache-Control: no-store y Pragma: no-cache.
// Se usa en las rutas de callback, cuyas respuestas llevan el authorization code.
func WithNoStore() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-store")
			w.Header().Set("Pragma", "no-cache")
			next.ServeHTTP(w, r)
		})
	}
}
