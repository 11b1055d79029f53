package middlewares

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// WithRoutePath normaliza el path que chi usa para rutear: sin distinguir mayúsculas
// y tolerando una "/" final (/Callback/ == /callback). r.URL no se modifica, así
// los 404 reportan la URI original.
func WithRoutePath() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				path := r.URL.Path
				if r.URL.RawPath != "" {
					path = r.URL.RawPath
				}
				if len(path) > 1 {
					path = strings.TrimSuffix(path, "/")
				}
				rctx.RoutePath = strings.ToLower(path)
			}
			next.ServeHTTP(w, r)
		})
	}
}
