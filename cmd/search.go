package cmd

import (
	"fmt"

	"inventory-manager/core/snapshot"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/supplier"

	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "List products or suppliers sorted and filtered by a field",
	Long: `Sorts products (or suppliers with --suppliers) by --sort and, when --query is
given, keeps only those whose --field equals it (case-insensitive).

Product fields: sku, name, category, supplier, quantity, reorder_level, unit_price
Supplier fields: name, contact_person

Examples:
  search --sort quantity
  search --field category --query tools
  search --suppliers --field contact_person --query "jane doe"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		q := inventory.ListQuery{}
		q.Sort, _ = cmd.Flags().GetString("sort")
		q.SearchField, _ = cmd.Flags().GetString("field")
		q.SearchQuery, _ = cmd.Flags().GetString("query")
		suppliers, _ := cmd.Flags().GetBool("suppliers")

		rt, err := setup()
		if err != nil {
			return err
		}
		defer rt.log.Sync()

		cache := snapshot.New(0)

		if suppliers {
			list, err := supplier.NewService(rt.db, cache, rt.log).List(ctx, q)
			if err != nil {
				return err
			}
			fmt.Printf("%-6s %-30s %-25s %-20s %s\n", "ID", "NAME", "CONTACT", "PHONE", "EMAIL")
			for _, s := range list {
				fmt.Printf("%-6d %-30s %-25s %-20s %s\n", s.ID, s.Name, s.ContactPerson, s.Phone, s.Email)
			}
			fmt.Printf("\nSuppliers: %d\n", len(list))
			return nil
		}

		list, err := inventory.NewService(rt.db, cache, rt.log).List(ctx, q)
		if err != nil {
			return err
		}
		fmt.Printf("%-20s %-30s %-15s %-20s %8s %8s %10s\n", "SKU", "NAME", "CATEGORY", "SUPPLIER", "QTY", "REORDER", "PRICE")
		for _, p := range list {
			supplierName := "-"
			if p.Supplier != nil {
				supplierName = p.Supplier.Name
			}
			fmt.Printf("%-20s %-30s %-15s %-20s %8d %8d %10s\n",
				p.SKU, p.Name, p.Category, supplierName, p.Quantity, p.ReorderLevel, p.UnitPrice.StringFixed(2))
		}
		fmt.Printf("\nProducts: %d\n", len(list))
		return nil
	},
}

func init() {
	searchCmd.Flags().String("sort", "name", "Field to sort by")
	searchCmd.Flags().String("field", "name", "Field to search")
	searchCmd.Flags().String("query", "", "Exact value to search for")
	searchCmd.Flags().Bool("suppliers", false, "List suppliers instead of products")
	RootCmd.AddCommand(searchCmd)
}
