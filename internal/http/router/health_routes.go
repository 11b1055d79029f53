package router

import (
	"github.com/go-chi/chi/v5"

	ctrl "github.com/dropDatabas3/qbrelay/internal/http/controllers/health"
)

// HealthRouterDeps contiene las dependencias para el router de health.
type HealthRouterDeps struct {
	Controllers *ctrl.Controllers
}

// RegisterHealthRoutes registra GET /.
func RegisterHealthRoutes(r chi.Router, deps HealthRouterDeps) {
	r.Get("/", deps.Controllers.Health.Root)
}
