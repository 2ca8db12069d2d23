package main

import (
	"github.com/spf13/cobra"

	"memberhub/pkg/config"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and member tiers",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			sqlDB, st, err := openStore(cmd.Context(), config.LoadService(), logger)
			if err != nil {
				return err
			}
			defer func() { _ = sqlDB.Close() }()

			return migrateStore(cmd.Context(), st, logger)
		},
	}
}
