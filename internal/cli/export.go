package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlexJMohr/svelte-vs-vue/internal/export"
	"github.com/AlexJMohr/svelte-vs-vue/internal/wire"
)

func newExportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the comparison page to disk as a static site",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if out != "" {
				v.Set("export.dir", out)
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
			dir := v.GetString("export.dir")
			if err := export.Write(dir, app.Page); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d entries to %s\n", len(app.Page.Entries), dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output directory (override config export.dir)")
	return cmd
}
