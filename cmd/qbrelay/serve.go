package main

import (
	"github.com/spf13/cobra"

	"github.com/dropDatabas3/qbrelay/internal/config"
	"github.com/dropDatabas3/qbrelay/internal/http/server"
	"github.com/dropDatabas3/qbrelay/internal/observability/logger"
)

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Levanta el servidor de callbacks (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := server.Build(cfg)
			if err != nil {
				return err
			}

			log := logger.S()
			log.Infof("🚀 QuickBooks OAuth callback server running on port %d", cfg.Server.Port)
			log.Infof("📍 Callback URL: http://localhost:%d/callback", cfg.Server.Port)
			log.Infof("🔄 Will redirect to: %s", app.Target.String())
			if app.Metrics != nil {
				log.Infof("📈 Metrics: http://%s/metrics", cfg.Metrics.Addr)
			}

			return server.Run(cmd.Context(), cfg, app)
		},
	}
}
