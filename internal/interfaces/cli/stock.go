package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// NewStockCommand crea el subcomando stock (stock de una máquina).
func NewStockCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stock <machine-id>",
		Short: "Ver el stock de una máquina",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			machineID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("machine-id inválido: %q", args[0])
			}

			app, err := buildApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			lines, err := app.Reporting.MachineStock(machineID)
			if err != nil {
				return err
			}
			printMachineStock(cmd.OutOrStdout(), lines)
			return nil
		},
	}
}
