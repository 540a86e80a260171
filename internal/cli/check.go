package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlexJMohr/svelte-vs-vue/internal/content"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a comparisons YAML file",
		Long: `Loads and validates a content file without rendering it.
With no argument the embedded default content is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				set *content.Set
				err error
			)
			if len(args) == 1 {
				set, err = content.Load(args[0])
			} else {
				set, err = content.Default()
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %q, %d entries\n", set.Title, len(set.Entries))
			return nil
		},
	}
}
