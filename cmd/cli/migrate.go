package main

import (
	"fmt"

	"profitcalc/internal/repository"
	"profitcalc/internal/util"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the sqlite schema, or print the postgres DDL",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.StorageDriver == util.StorageDriverPostgres {
		_, err = fmt.Fprint(cmd.OutOrStdout(), repository.PostgresSchemaSQL)
		return err
	}

	db, err := repository.OpenSqlite(cfg.SqlitePath)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "schema ready in %s\n", cfg.SqlitePath)
	return err
}
