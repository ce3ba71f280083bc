package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hhyeonhee/ULTRA/config"
	"github.com/hhyeonhee/ULTRA/model"
	"github.com/hhyeonhee/ULTRA/service/warehouse"
)

var reportCmd = &cobra.Command{
	Use:   "warehouse:report",
	Short: "Print an occupancy report for every warehouse",
	Run: func(cmd *cobra.Command, args []string) {
		start := time.Now()
		session := warehouse.NewSession(config.ResolveCSVFiles())
		if err := session.Load(); err != nil {
			fmt.Printf("Load failed: %v\n", err)
			return
		}

		fmt.Println("=== Warehouse Report ===")
		for _, info := range session.Warehouses() {
			view, err := session.ViewOf(info.Name)
			if err != nil {
				fmt.Printf("  [warn] %s: %v\n", info.Name, err)
				continue
			}
			occupied, totalQty := 0, 0
			products := make(map[string]bool)
			for _, col := range view.Columns {
				for _, slot := range col.Slots {
					if slot.Empty {
						continue
					}
					occupied++
					totalQty += slot.Qty
					if slot.ProductNo != "" {
						products[slot.ProductNo] = true
					}
				}
			}
			capacity := info.Columns * model.SlotsPerColumn
			fmt.Printf(`
%s
  Columns:    %d
  Slots:      %d/%d occupied
  Products:   %d distinct
  Total qty:  %d
`, info.Name, info.Columns, occupied, capacity, len(products), totalQty)
		}
		fmt.Printf("\nTotal time: %s\n", time.Since(start).Round(time.Millisecond))
		fmt.Println("========================")
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
