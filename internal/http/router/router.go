// Package router registra las rutas del relay sobre un chi.Router.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dropDatabas3/qbrelay/internal/http/controllers"
	mw "github.com/dropDatabas3/qbrelay/internal/http/middlewares"
)

// Deps contiene las dependencias del router.
type Deps struct {
	Controllers *controllers.Controllers

	// Metrics instrumenta requests si no es nil (metrics.Metrics.Middleware).
	Metrics mw.Middleware
}

// New arma el router completo: middlewares base, rutas y fallbacks.
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.WithRequestID(), mw.WithLogging())
	if deps.Metrics != nil {
		r.Use(deps.Metrics)
	}
	r.Use(mw.WithRecover(), mw.WithSecurityHeaders(), mw.WithRoutePath())

	// 404 también para método no permitido: no exponemos qué métodos existen
	r.NotFound(deps.Controllers.Fallback.NotFound)
	r.MethodNotAllowed(deps.Controllers.Fallback.NotFound)

	RegisterHealthRoutes(r, HealthRouterDeps{Controllers: deps.Controllers.Health})
	RegisterCallbackRoutes(r, CallbackRouterDeps{Controllers: deps.Controllers.Relay})

	return r
}
