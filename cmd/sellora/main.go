package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sellora-inc/sellora/internal/interfaces/cli/migrate"
	"github.com/sellora-inc/sellora/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sellora",
		Short: "Sellora - multi-tenant plan and entitlement service",
		Long:  `Sellora manages tenant plan assignment, entitlements, and subscription lifecycle for multi-tenant deployments.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
