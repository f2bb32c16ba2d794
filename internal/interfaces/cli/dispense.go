package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grabgo/vending-cli/internal/application/vending"
)

// NewDispenseCommand crea el subcomando dispense (dispensado no interactivo).
func NewDispenseCommand(rootOpts *RootOptions) *cobra.Command {
	var customerID, machineID, itemID int

	cmd := &cobra.Command{
		Use:   "dispense",
		Short: "Dispensar una unidad de un artículo a un cliente",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			err = app.Dispense.Dispense(cmd.Context(), vending.DispenseInput{
				CustomerID: customerID,
				MachineID:  machineID,
				ItemID:     itemID,
			})
			if err != nil {
				return fmt.Errorf("failed to dispense: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Dispensed successfully.")
			return nil
		},
	}

	cmd.Flags().IntVar(&customerID, "customer", 0, "ID del cliente")
	cmd.Flags().IntVar(&machineID, "machine", 0, "ID de la máquina")
	cmd.Flags().IntVar(&itemID, "item", 0, "ID del artículo")
	_ = cmd.MarkFlagRequired("customer")
	_ = cmd.MarkFlagRequired("machine")
	_ = cmd.MarkFlagRequired("item")

	return cmd
}
