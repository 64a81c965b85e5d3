package cli

import (
	"github.com/spf13/cobra"

	"github.com/basecoat/seoimg/internal/check"
	"github.com/basecoat/seoimg/internal/config"
	"github.com/basecoat/seoimg/internal/gemini"
	"github.com/basecoat/seoimg/internal/logging"
)

func newCheckCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the environment: API key, decoders, service reachability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyGlobals(&cfg)

			key, err := config.LoadAPIKey()
			if err != nil {
				return err
			}
			cfg.APIKey = key

			log, closeLog, err := logging.New(&cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			ctx := cmd.Context()
			var pinger check.Pinger
			if cfg.APIKey != "" {
				client, err := gemini.NewClient(ctx, cfg.APIKey, cfg.Model)
				if err != nil {
					log.Warn().Err(err).Msg("could not build analysis client")
				} else {
					pinger = client
				}
			}
			return check.Run(ctx, &cfg, pinger, log)
		},
	}

	cmd.Flags().StringVar(&cfg.Model, "model", config.DefaultModel, "analysis model name")
	return cmd
}
