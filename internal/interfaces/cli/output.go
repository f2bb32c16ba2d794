package cli

import (
	"fmt"
	"io"

	"github.com/grabgo/vending-cli/internal/domain/entity"
)

// Render de los reportes en texto plano; los formatos de columna son los de
// siempre para no romper scripts de los operadores.

func printItems(w io.Writer, items []*entity.Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No results.")
		return
	}
	for _, it := range items {
		fmt.Fprintf(w, "[%2d] %-18s %-8s $%s  %d cal\n",
			it.ID, it.Name, it.Category, it.UnitCost.String(), it.Calories)
	}
}

func printMachineStock(w io.Writer, lines []*entity.StockLine) {
	if len(lines) == 0 {
		fmt.Fprintln(w, "No stock for that machine (or invalid ID).")
		return
	}
	for _, l := range lines {
		fmt.Fprintf(w, "%3d  %-20s  qty=%d\n", l.ItemID, l.ItemName, l.Qty)
	}
}

func printLowStock(w io.Writer, lines []*entity.LowStockLine) {
	if len(lines) == 0 {
		fmt.Fprintln(w, "No low-stock items.")
		return
	}
	for _, l := range lines {
		fmt.Fprintf(w, "%-28s %-18s qty=%d\n", l.Location, l.ItemName, l.Qty)
	}
}
