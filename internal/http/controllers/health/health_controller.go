package health

import (
	"net/http"

	"github.com/dropDatabas3/qbrelay/internal/http/helpers"
	svc "github.com/dropDatabas3/qbrelay/internal/http/services/health"
)

// HealthController maneja GET /.
type HealthController struct {
	service svc.HealthService
}

// NewHealthController crea un nuevo controller de health check.
func NewHealthController(service svc.HealthService) *HealthController {
	return &HealthController{service: service}
}

// Root maneja GET /
func (c *HealthController) Root(w http.ResponseWriter, r *http.Request) {
	resp := c.service.Check(r.Context())
	if resp.Version != "" {
		w.Header().Set("X-Service-Version", resp.Version)
	}
	helpers.WriteJSON(w, http.StatusOK, resp)
}
