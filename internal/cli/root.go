package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/AlexJMohr/svelte-vs-vue/internal/config"
)

// Execute is the entrypoint: it builds the root cobra.Command
// and calls its Execute() method to run the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "sidebyside",
		Short:         "sidebyside — side-by-side Svelte and Vue idiom comparisons",
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
	}

	cmd.PersistentFlags().String("config", "", "path to config file (yaml|toml)")
	cmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newConfigCmd())

	cmd.Run = func(cmd *cobra.Command, args []string) { _ = cmd.Help() }

	return cmd
}

// loadConfig builds a Viper instance honoring the persistent --config flag
// and validates the result.
func loadConfig(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	if cfgPath, _ := cmd.Flags().GetString("config"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	}
	if err := config.Load(cmd.Context(), v); err != nil {
		return nil, err
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		v.Set("log.verbose", true)
	}
	if err := config.CheckConfigValidity(v); err != nil {
		return nil, err
	}
	return v, nil
}

// newLogger builds the zap logger used by serve and export.
func newLogger(v *viper.Viper) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if v.GetBool("log.verbose") {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}
	return log, nil
}
