// Package main is the entry point of the order manager assignment service.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "insert-manager",
	Short: "Assign responsible managers to freshly created orders",
	Long: `Finds orders created during the lookback window that still have no manager
and assigns one: franchise customers by the franchise directory, regular customers
by the author of the "original order" note or the default manager.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(runCmd, serveCmd, franchisesCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
