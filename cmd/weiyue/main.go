package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"weiyue/internal/interfaces/cli/migrate"
	"weiyue/internal/interfaces/cli/seed"
	"weiyue/internal/interfaces/cli/server"
	"weiyue/internal/shared/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "weiyue",
		Short: "Weiyue - default and recovery tracking service",
		Long:  `Weiyue records corporate default applications and their recoveries, with an HTTP API, migration tools and a seed loader.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		&cobra.Command{
			Use:   "version",
			Short: "Print build information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
			},
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
