package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pricing/internal/domain/entity"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pricingctl",
		Short: "Operator tooling for the pricing service",
		Long: `pricingctl reads the same config.yaml as the pricing service.

Commands:
  token    - Issue an operator access token
  migrate  - Create or update the pricing tables
  seed     - Load products from a YAML file`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newTokenCmd(), newMigrateCmd(), newSeedCmd())

	return rootCmd
}

func newTokenCmd() *cobra.Command {
	var (
		operator string
		roles    string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an operator access token",
		Long: `Issue an HS256 access token signed with secretKey.access.

Examples:
  pricingctl token                                   # admin token for a random operator
  pricingctl token --roles pricing_viewer --ttl 15m  # short-lived read-only token`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToken(cmd.OutOrStdout(), operator, roles, ttl)
		},
	}

	cmd.Flags().StringVar(&operator, "operator", "", "Operator UUID (random when empty)")
	cmd.Flags().StringVar(&roles, "roles", entity.RolePricingAdmin.String(), "Comma separated roles")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")

	return cmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the pricing tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), cmd.OutOrStdout())
		},
	}
}

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load products from a YAML file",
		Long: `Insert the products listed in a YAML file. Products whose id already exists are skipped.

Examples:
  pricingctl seed --file data/seed_products.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), cmd.OutOrStdout(), file)
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "YAML file listing products")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
