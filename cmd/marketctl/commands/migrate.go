package commands

import (
	"context"
	"fmt"

	"market/config"
	"market/internal/domain/constants"
	"market/internal/errors"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the relational schema",
		Long: `Create or update every table of the relational store (postgres or sqlite).

The Firestore store is schemaless and has nothing to migrate.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}

			if cfg.Store.Driver == constants.StoreDriverFirestore {
				return errors.New("migrate requires a relational store driver")
			}

			// Opening the database migrates the schema on start.
			var db *gorm.DB

			return runWithStore(cmd.Context(), cfg, func(context.Context) error {
				fmt.Fprintf(cmd.OutOrStdout(), "Schema migrated (%s)\n", cfg.Store.Driver)

				return nil
			}, &db)
		},
	}
}
