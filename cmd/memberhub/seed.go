package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"memberhub/internal/store"
	"memberhub/pkg/config"
)

func newSeedCmd() *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the member tiers and, optionally, demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			sqlDB, st, err := openStore(cmd.Context(), config.LoadService(), logger)
			if err != nil {
				return err
			}
			defer func() { _ = sqlDB.Close() }()

			return seed(cmd.Context(), cmd.OutOrStdout(), st, demo)
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "also insert demo users, profiles, posts and subscriptions")
	return cmd
}

// seed inserts reference data, then demo data when asked, and prints row counts.
func seed(ctx context.Context, out io.Writer, st *store.GormStore, demo bool) error {
	inserted, err := st.SeedMemberTypes(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "member types inserted: %d\n", inserted)

	if demo {
		if err := st.SeedDemo(ctx); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
		fmt.Fprintln(out, "demo data inserted")
	}

	counts, err := st.Counts(ctx)
	if err != nil {
		return err
	}
	tables := make([]string, 0, len(counts))
	for table := range counts {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	for _, table := range tables {
		fmt.Fprintf(out, " - %s: %d\n", table, counts[table])
	}
	return nil
}
