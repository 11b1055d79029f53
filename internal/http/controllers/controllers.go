// Package controllers agrupa todos los controllers HTTP del relay.
//
// Flujo de inicialización (ver server/wiring.go):
//
//	svcs := services.New(deps)      // 1. services
//	ctrls := controllers.New(svcs)  // 2. controllers con services inyectados
//	h := router.New(router.Deps{...Controllers: ctrls})  // 3. rutas
package controllers

import (
	"github.com/dropDatabas3/qbrelay/internal/http/controllers/fallback"
	"github.com/dropDatabas3/qbrelay/internal/http/controllers/health"
	"github.com/dropDatabas3/qbrelay/internal/http/controllers/relay"
	"github.com/dropDatabas3/qbrelay/internal/http/services"
)

// Controllers agrupa los controllers por dominio.
type Controllers struct {
	Health   *health.Controllers
	Relay    *relay.Controllers
	Fallback *fallback.Controllers
}

// New crea todos los controllers a partir de los services.
func New(s *services.Services) *Controllers {
	return &Controllers{
		Health:   health.NewControllers(s.Health),
		Relay:    relay.NewControllers(s.Relay),
		Fallback: fallback.NewControllers(),
	}
}
