package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/qbrelay/internal/config"
	dto "github.com/dropDatabas3/qbrelay/internal/http/dto/relay"
	"github.com/dropDatabas3/qbrelay/internal/http/services/relay"
)

func newURLCmd(cfg *config.Config) *cobra.Command {
	var (
		code, state, realmID string
		asJSON               bool
	)
	cmd := &cobra.Command{
		Use:   "url",
		Short: "Imprime la URL a la que se reenviarían los parámetros (igual que GET /redirect)",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := relay.ParamsOf(relay.ParamCode, code)
			// sólo los flags usados, igual que una query sin state/realmId
			if cmd.Flags().Changed("state") {
				p.Set(relay.ParamState, state)
			}
			if cmd.Flags().Changed("realm-id") {
				p.Set(relay.ParamRealmID, realmID)
			}
			resp, err := forwardURL(cmd.Context(), cfg, p)
			if err != nil {
				return err
			}
			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), resp.RedirectURL)
				return nil
			}
			b, _ := json.MarshalIndent(resp, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
	cmd.Flags().StringVar(&code, "code", "", "Authorization code (requerido)")
	cmd.Flags().StringVar(&state, "state", "", "State OAuth")
	cmd.Flags().StringVar(&realmID, "realm-id", "", "Company ID (realmId)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Imprime la respuesta completa de /redirect en JSON")
	return cmd
}

func forwardURL(ctx context.Context, cfg *config.Config, p *relay.Params) (dto.RedirectResponse, error) {
	target, err := relay.NewTarget(cfg.Relay.TargetURL)
	if err != nil {
		return dto.RedirectResponse{}, err
	}
	svc := relay.NewRelayService(relay.Deps{Target: target})

	resp, err := svc.Redirect(ctx, p)
	if errors.Is(err, relay.ErrMissingParameters) {
		return dto.RedirectResponse{}, errors.New("--code es requerido")
	}
	return resp, err
}
