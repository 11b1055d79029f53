package health

import (
	"context"

	dto "github.com/dropDatabas3/qbrelay/internal/http/dto/health"
)

const (
	serviceMessage = "QuickBooks OAuth Callback Server"
	statusRunning  = "running"
)

// HealthService define las operaciones de health check.
type HealthService interface {
	Check(ctx context.Context) dto.HealthResponse
}

// Deps contiene las dependencias inyectables para el health service.
type Deps struct {
	Version string
}

type healthService struct {
	version string
}

// NewHealthService crea un nuevo service de health check.
func NewHealthService(deps Deps) HealthService {
	v := deps.Version
	if v == "" {
		v = "1.0.0"
	}
	return &healthService{version: v}
}

// Check devuelve siempre el mismo documento: el relay no tiene dependencias que chequear.
func (s *healthService) Check(ctx context.Context) dto.HealthResponse {
	return dto.HealthResponse{
		Message: serviceMessage,
		Version: s.version,
		Status:  statusRunning,
		Endpoints: dto.Endpoints{
			Callback: "/callback",
			Health:   "/",
			Redirect: "/redirect",
		},
	}
}
