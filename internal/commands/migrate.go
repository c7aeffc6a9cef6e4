package commands

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"max.ks1230/home-ledger/internal/config"
	"max.ks1230/home-ledger/internal/model/storage"
)

func newMigrateCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the schema to the configured database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := config.New(config.File(*configPath))
			if err != nil {
				return errors.Wrap(err, "init config")
			}

			switch conf.Storage().Backend() {
			case config.BackendSQLite:
				err = storage.RunMigrations(storage.DriverSQLite, storage.SQLiteDSN(conf.SQLite()))
			case config.BackendPostgres:
				err = storage.RunMigrations(storage.DriverPostgres, storage.PostgresDSN(conf.Postgres()))
			default:
				return errors.Errorf("storage backend %s has no schema", conf.Storage().Backend())
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s schema is up to date\n", conf.Storage().Backend())
			return nil
		},
	}
}
