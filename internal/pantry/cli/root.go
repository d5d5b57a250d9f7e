package cli

import (
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/pantry/internal/pantry/app"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	EnvFile      string
	DatabaseFile string
}

// NewRootCommand creates the root command for the pantry CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "pantry",
		Short: "Household grocery inventory service",
		Long:  "Tracks what a family has at home, where it is kept and what needs buying.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.LoadEnvFile(opts.EnvFile)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "dotenv file loaded before reading configuration")
	cmd.PersistentFlags().StringVar(&opts.DatabaseFile, "db", "", "database file (overrides PANTRY_DATABASE_FILE)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// config reads the environment and applies flag overrides.
func (o *RootOptions) config() app.Config {
	cfg := app.LoadConfig()
	if o.DatabaseFile != "" {
		cfg.DatabaseFile = o.DatabaseFile
	}
	return cfg
}
