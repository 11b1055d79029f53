package middlewares

import (
	"fmt"
	"net/http"
	"runtime/debug"

	httperrors "github.com/dropDatabas3/qbrelay/internal/http/errors"
	"github.com/dropDatabas3/qbrelay/internal/observability/logger"
)

// WithRecover captura panics y devuelve 500 server_error en lugar de crashear.
// http.ErrAbortHandler se re-lanza para que net/http corte la conexión.
func WithRecover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.From(r.Context()).Error("panic recovered",
					logger.Op("recover"),
					logger.Any("panic", rec),
					logger.String("stack", string(debug.Stack())),
				)
				httperrors.WriteError(w, httperrors.ErrServerError.WithCause(fmt.Errorf("panic: %v", rec)))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
