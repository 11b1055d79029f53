// Package services agrupa todos los services HTTP del relay.
// Es el "composition root" de services: server/wiring.go arma Deps y llama New.
package services

import (
	"github.com/dropDatabas3/qbrelay/internal/http/services/health"
	"github.com/dropDatabas3/qbrelay/internal/http/services/relay"
)

// Deps contiene las dependencias externas de todos los services.
type Deps struct {
	Target   *relay.Target
	Recorder relay.Recorder // opcional (métricas)
	Version  string
}

// Services agrupa los services por dominio.
type Services struct {
	Health health.Services
	Relay  relay.Services
}

// New crea todos los services.
func New(d Deps) *Services {
	return &Services{
		Health: health.NewServices(health.Deps{Version: d.Version}),
		Relay: relay.NewServices(relay.Deps{
			Target:   d.Target,
			Recorder: d.Recorder,
		}),
	}
}
