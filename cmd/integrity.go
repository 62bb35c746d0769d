package cmd

import (
	"context"
	"fmt"
	"os"

	"inventory-manager/core/snapshot"
	"inventory-manager/core/storage"
	"inventory-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the storage layout, database schema and inventory data",
	Long: `Runs every integrity check. Use a subcommand to run a single check,
and --fix on the storage or data subcommand to repair what it finds.

Examples:
  integrity
  integrity storage --fix
  integrity data --fix`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true, true)
	},
}

// storageCmd represents the integrity storage command
var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Check that the bucket and report folders exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false, false)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the database schema against the models",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true, false)
	},
}

// dataCmd represents the integrity data command
var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Check for orphaned references and invalid values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(storageCmd, schemaCmd, dataCmd)

	storageCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the missing bucket and folders")
	dataCmd.Flags().BoolVar(&fixFlag, "fix", false, "Detach orphan products and delete orphan alerts")
}

func runIntegrityChecks(ctx context.Context, runStorage, runSchema, runData bool) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.log.Sync()
	logg := rt.log

	store, err := storage.NewClient(rt.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	svc := integrity.NewService(store, rt.cfg.Storage.Bucket, logg, rt.db, snapshot.New(0))
	healthy := true

	if runStorage {
		logg.Info("Checking storage layout...", zap.String("bucket", rt.cfg.Storage.Bucket))
		report, err := svc.CheckStorage(ctx)
		if err != nil {
			return fmt.Errorf("storage check failed: %w", err)
		}

		if report.OK() {
			logg.Info("Storage layout is intact.")
		} else {
			logg.Warn("Storage layout incomplete",
				zap.Bool("bucket_exists", report.BucketExists), zap.Strings("missing", report.Missing))
			if fixFlag {
				logg.Info("Fixing storage layout...")
				if err := svc.FixStorage(ctx, report); err != nil {
					return fmt.Errorf("failed to fix storage: %w", err)
				}
				logg.Info("Storage fixed successfully.")
			} else {
				healthy = false
				logg.Info("Run 'integrity storage --fix' to create them.")
			}
		}
	}

	if runSchema {
		logg.Info("Checking database schema...", zap.String("driver", rt.db.Dialector.Name()))
		report, err := svc.CheckSchema()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}

		if report.Matched {
			logg.Info("Schema matches the models.")
		} else {
			healthy = false
			logg.Warn("Schema mismatches found")
			for table, tbl := range report.Tables {
				if tbl.Status == "ok" {
					continue
				}
				if len(tbl.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
				if len(tbl.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tbl.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
			logg.Info("Run 'migrate' to add missing columns.")
		}
	}

	if runData {
		logg.Info("Checking inventory data...")
		report, err := svc.CheckData(ctx)
		if err != nil {
			return fmt.Errorf("data check failed: %w", err)
		}

		if report.OK() {
			logg.Info("Inventory data is consistent.")
		} else {
			logg.Warn("Data problems detected",
				zap.Strings("orphan_products", report.OrphanProducts),
				zap.Uints("orphan_alerts", report.OrphanAlerts),
				zap.Strings("negative_stock", report.NegativeStock),
				zap.Strings("invalid_demand", report.InvalidDemand),
			)
			if fixFlag && report.Fixable() {
				logg.Info("Fixing orphaned references...")
				if report, err = svc.FixData(ctx, report); err != nil {
					return fmt.Errorf("failed to fix data: %w", err)
				}
				logg.Info("Orphans fixed.")
			} else if report.Fixable() {
				logg.Info("Run 'integrity data --fix' to repair orphaned references.")
			}
			if !report.OK() {
				healthy = false
			}
		}
	}

	if !healthy {
		_ = logg.Sync()
		fmt.Fprintln(os.Stderr, "Integrity problems found.")
		os.Exit(2)
	}
	return nil
}
