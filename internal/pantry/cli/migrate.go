package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/pantry/internal/pantry/app"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:          "migrate",
		Short:        "Apply pending database migrations",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.config()

			db, err := app.OpenStore(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if !status {
				if err := db.ApplyMigrations(); err != nil {
					return fmt.Errorf("failed to apply database migrations: %w", err)
				}
			}

			version, dirty, err := db.MigrationVersion()
			if err != nil {
				return fmt.Errorf("failed to read schema version: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "database: %s\n", cfg.DatabaseFile)
			fmt.Fprintf(out, "schema version: %d\n", version)
			if dirty {
				fmt.Fprintln(out, "WARNING: schema is dirty, a migration failed part way")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&status, "status", false, "report the schema version without migrating")

	return cmd
}
