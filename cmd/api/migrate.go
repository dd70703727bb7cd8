package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pet-health-tracker/internal/adapters/storage/sqlrepo"
	"pet-health-tracker/internal/config"
	"pet-health-tracker/internal/platform/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Aplica el esquema SQL (DB_DRIVER=postgres|sqlite) y sale",
	RunE: func(cmd *cobra.Command, args []string) error {
		// todavía sin config: el logger sale directo de LOG_LEVEL/LOG_FORMAT/APP_NAME
		log := logger.NewFromEnv()

		cfg, err := config.Load()
		if err != nil {
			log.Error().Err(err).Msg("invalid configuration")
			return err
		}

		db, err := openDB(cfg)
		if err != nil {
			log.Error().Stack().Err(logger.WithStack(err)).Str("db_driver", string(cfg.DBDriver)).Msg("storage unavailable")
			return err
		}
		if db == nil {
			return fmt.Errorf("migrate requires DB_DRIVER=postgres or sqlite, got %s", cfg.DBDriver)
		}
		defer db.Close()

		if err := sqlrepo.Migrate(cmd.Context(), db); err != nil {
			log.Error().Stack().Err(logger.WithStack(err)).Msg("migration failed")
			return err
		}
		log.Info().Str("db_driver", string(cfg.DBDriver)).Int("schema_version", sqlrepo.SchemaVersion).Msg("schema migrated")
		fmt.Fprintf(cmd.OutOrStdout(), "schema at version %d\n", sqlrepo.SchemaVersion)
		return nil
	},
}
