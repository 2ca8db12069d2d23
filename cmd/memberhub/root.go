package main

import (
	"github.com/spf13/cobra"

	"memberhub/pkg/config"
	"memberhub/pkg/logging"
)

const serviceName = "memberhub"

var verbose bool

// newRootCmd returns the root command of the memberhub binary.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           serviceName,
		Short:         "GraphQL API for members, profiles, posts and subscriptions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newLogger builds the service logger and loads the local env files.
func newLogger() logging.Logger {
	logger := logging.NewLoggerWithService(serviceName)
	config.LoadEnv(logger)
	if verbose {
		logger.SetLevel(logging.DebugLevel)
	}
	return logger
}
