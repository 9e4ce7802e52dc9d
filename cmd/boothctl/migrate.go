package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phambaophuc/ai-photobooth/internal/config"
	"github.com/phambaophuc/ai-photobooth/internal/services/records"
)

// migrateCmd applies the record store schema
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the photo and feedback tables",
	Long: `Applies the schema to DATABASE_URL using DATABASE_DRIVER (sqlite or postgres).
Existing tables are left alone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		db, err := records.Open(cmd.Context(), cfg.Database)
		if err != nil {
			return err
		}

		store := records.NewStore(db, cfg.Database.Driver, logger)
		defer store.Close()

		if err := store.Migrate(cmd.Context()); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "schema applied (%s)\n", cfg.Database.Driver)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
