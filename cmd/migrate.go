package cmd

import (
	"fmt"
	"sort"

	"inventory-manager/core/database"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long:  `Auto-migrates the supplier, product and reorder alert tables and prints the resulting columns.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup()
		if err != nil {
			return err
		}
		defer rt.log.Sync()

		if err := inventory.Migrate(rt.db); err != nil {
			return err
		}
		rt.log.Info("Schema migrated", zap.String("driver", rt.db.Dialector.Name()))

		tables := make([]string, 0, len(models.Columns))
		for table := range models.Columns {
			tables = append(tables, table)
		}
		sort.Strings(tables)

		for _, table := range tables {
			columns, err := database.GetTableColumns(rt.db, table)
			if err != nil {
				return fmt.Errorf("failed to inspect %s: %w", table, err)
			}
			fmt.Printf("\n=== %s ===\n", table)
			for _, col := range columns {
				fmt.Printf("  %-18s %-16s null=%-3s key=%s\n", col.Field, col.Type, col.Null, col.Key)
			}

			missing, err := database.MissingColumns(rt.db, table, models.Columns[table])
			if err != nil {
				return err
			}
			if len(missing) > 0 {
				rt.log.Warn("Columns missing after migration", zap.String("table", table), zap.Strings("missing", missing))
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
