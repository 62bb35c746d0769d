package cmd

import (
	"fmt"
	"os"
	"time"

	"inventory-manager/core/snapshot"
	"inventory-manager/core/storage"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/reorder"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// reorderCmd represents the reorder command
var reorderCmd = &cobra.Command{
	Use:   "reorder",
	Short: "List products that need restocking",
	Long: `Ranks the products at or below their reorder point, most urgent first.
Products without demand data fall back to their reorder level and are listed last.

Examples:
  # Default service level (1.65) and lead time (7 days)
  reorder

  # Higher service level, 10 day default lead time, JSON output
  reorder --z 2.05 --lead-time 10 --json

  # Store the report in object storage
  reorder --export`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		jsonOutput, _ := cmd.Flags().GetBool("json")
		export, _ := cmd.Flags().GetBool("export")

		var o reorder.Overrides
		if cmd.Flags().Changed("z") {
			z, _ := cmd.Flags().GetFloat64("z")
			o.ServiceLevel = &z
		}
		if cmd.Flags().Changed("lead-time") {
			lead, _ := cmd.Flags().GetFloat64("lead-time")
			o.LeadTime = &lead
		}

		rt, err := setup()
		if err != nil {
			return err
		}
		defer rt.log.Sync()

		client, err := storage.NewClient(rt.cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		products := inventory.NewService(rt.db, snapshot.New(0), rt.log)
		svc := reorder.NewService(products, rt.db, client, rt.cfg.Storage.Bucket, rt.cfg.Reorder, rt.log)

		report, err := svc.Report(ctx, o)
		if err != nil {
			return fmt.Errorf("reorder report failed: %w", err)
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(report); err != nil {
				return fmt.Errorf("failed to encode report: %w", err)
			}
		} else {
			fmt.Printf("\n=== Reorder Candidates (z=%g, lead=%gd) ===\n", report.ServiceLevel, report.DefaultLeadTime)
			fmt.Printf("%-20s %-30s %8s %10s %10s %10s  %s\n", "SKU", "NAME", "QTY", "SAFETY", "ROP", "DAYS", "MODE")
			for _, e := range report.Candidates {
				days := "-"
				if e.DaysToStockout != nil {
					days = fmt.Sprintf("%.2f", *e.DaysToStockout)
				}
				fmt.Printf("%-20s %-30s %8d %10.2f %10.2f %10s  %s\n", e.SKU, e.Name, e.Quantity, e.SafetyStock, e.ReorderPoint, days, e.Mode)
			}
			fmt.Printf("\nCandidates: %d\n", len(report.Candidates))
		}

		if export {
			res, err := svc.Store(ctx, report)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Report exported to %s/%s\n", rt.cfg.Storage.Bucket, res.Key)
		}

		rt.log.Info("Reorder report completed",
			zap.Int("candidates", len(report.Candidates)),
			zap.Duration("execution_time", time.Since(startTime)),
		)
		return nil
	},
}

func init() {
	reorderCmd.Flags().Float64("z", 0, "Service level factor (default from REORDER_SERVICE_LEVEL)")
	reorderCmd.Flags().Float64("lead-time", 0, "Lead time in days for products without their own (default from REORDER_DEFAULT_LEAD_TIME)")
	reorderCmd.Flags().Bool("json", false, "Print the report as JSON")
	reorderCmd.Flags().Bool("export", false, "Store the report in object storage")
	RootCmd.AddCommand(reorderCmd)
}
