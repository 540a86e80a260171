package cli

import (
	"github.com/spf13/cobra"

	"github.com/AlexJMohr/svelte-vs-vue/internal/server"
	"github.com/AlexJMohr/svelte-vs-vue/internal/wire"
)

func newServeCmd() *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the comparison page over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if listen != "" {
				v.Set("http_addr", listen)
			}
			log, err := newLogger(v)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			app, err := wire.BuildApp(cmd.Context(), v, log)
			if err != nil {
				return err
			}
			srv, err := server.New(v, log, app.Page)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (override config http_addr)")
	return cmd
}
