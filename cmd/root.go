package cmd

import (
	"fmt"
	"os"

	"inventory-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// envDir is the directory searched for the optional .env file.
var envDir string

// RootCmd is the inventory-manager command; every subcommand registers on it.
var RootCmd = &cobra.Command{
	Use:   "inventory-manager",
	Short: "Inventory Manager Service",
	Long: `Inventory Manager tracks products and suppliers and ranks the products
that need restocking from their demand, lead time and stock on hand.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&envDir, "env-dir", ".", "directory containing the .env file")
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}

	// Errors are reported before any configured logger exists, so use a
	// console logger at debug level.
	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	l.Error("command failed", zap.Error(err))
	_ = l.Sync()
	os.Exit(1)
}
