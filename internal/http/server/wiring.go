package server

import (
	"fmt"
	"net/http"

	"github.com/dropDatabas3/qbrelay/internal/config"
	"github.com/dropDatabas3/qbrelay/internal/http/controllers"
	mw "github.com/dropDatabas3/qbrelay/internal/http/middlewares"
	"github.com/dropDatabas3/qbrelay/internal/http/router"
	"github.com/dropDatabas3/qbrelay/internal/http/services"
	"github.com/dropDatabas3/qbrelay/internal/http/services/relay"
	"github.com/dropDatabas3/qbrelay/internal/metrics"
)

// App es el resultado del wiring: handler del relay y, opcionalmente, métricas.
type App struct {
	Handler http.Handler
	Target  *relay.Target

	// Metrics es nil si metrics.enabled=false.
	Metrics *metrics.Metrics
}

// Build arma services, controllers y router a partir de la config.
func Build(cfg *config.Config) (*App, error) {
	target, err := relay.NewTarget(cfg.Relay.TargetURL)
	if err != nil {
		return nil, fmt.Errorf("wiring: target: %w", err)
	}

	var (
		m        *metrics.Metrics
		recorder relay.Recorder
		instr    mw.Middleware
	)
	if cfg.Metrics.Enabled {
		m, err = metrics.New()
		if err != nil {
			return nil, fmt.Errorf("wiring: metrics: %w", err)
		}
		recorder = m
		instr = m.Middleware
	}

	svcs := services.New(services.Deps{
		Target:   target,
		Recorder: recorder,
		Version:  cfg.App.Version,
	})
	ctrls := controllers.New(svcs)

	h := router.New(router.Deps{
		Controllers: ctrls,
		Metrics:     instr,
	})

	return &App{Handler: h, Target: target, Metrics: m}, nil
}
