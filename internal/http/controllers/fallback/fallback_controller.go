// Package fallback contiene los handlers de último recurso: rutas inexistentes.
package fallback

import (
	"net/http"

	httperrors "github.com/dropDatabas3/qbrelay/internal/http/errors"
	"github.com/dropDatabas3/qbrelay/internal/observability/logger"
)

// Controllers agrupa los handlers fallback.
type Controllers struct{}

// NewControllers crea el controller fallback.
func NewControllers() *Controllers {
	return &Controllers{}
}

// NotFound responde 404 para rutas o métodos no registrados.
// path es la URI original, con query incluida si vino.
func (c *Controllers) NotFound(w http.ResponseWriter, r *http.Request) {
	logger.From(r.Context()).Debug("route not found",
		logger.Layer("controller"),
		logger.Op("Fallback.NotFound"),
	)
	httperrors.WriteError(w, httperrors.ErrNotFound.WithPath(r.URL.RequestURI()))
}
