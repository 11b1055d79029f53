package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dropDatabas3/qbrelay/internal/config"
	"github.com/dropDatabas3/qbrelay/internal/observability/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		envFile string
		cfg     = config.Default()
	)

	root := &cobra.Command{
		Use:           "qbrelay",
		Short:         "Relay de callbacks OAuth de QuickBooks hacia la app principal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEnvFile(envFile); err != nil {
				return err
			}
			c, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			*cfg = *c
			logger.Init(logger.Config{
				Env:         cfg.App.Env,
				Level:       cfg.Log.Level,
				ServiceName: cfg.App.Name,
				Version:     cfg.App.Version,
			})
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "Archivo YAML de configuración (env CONFIG_PATH)")
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "Archivo .env a cargar antes de leer la config (default: .env si existe)")

	serveCmd := newServeCmd(cfg)
	// sin subcomando => serve
	root.RunE = serveCmd.RunE

	root.AddCommand(serveCmd, newURLCmd(cfg))
	return root
}

// loadEnvFile carga el .env indicado; sin flag intenta ./.env y lo ignora si no existe.
func loadEnvFile(path string) error {
	if strings.TrimSpace(path) != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("env-file %s: %w", path, err)
		}
		return nil
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("env-file .env: %w", err)
	}
	return nil
}
