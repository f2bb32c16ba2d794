package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grabgo/vending-cli/internal/application/vending"
)

// NewRestockCommand crea el subcomando restock (reposición no interactiva).
// Las líneas van como argumentos item_id,qty; a diferencia del shell, una
// línea mal formada aborta el comando completo antes de tocar la base.
func NewRestockCommand(rootOpts *RootOptions) *cobra.Command {
	var staffID, machineID int

	cmd := &cobra.Command{
		Use:   "restock <item_id,qty> [<item_id,qty>...]",
		Short: "Reponer stock de una máquina",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines := make([]vending.RestockLineInput, 0, len(args))
			for _, arg := range args {
				line, err := ParseRestockLine(arg)
				if err != nil {
					return fmt.Errorf("línea %q: %w", arg, err)
				}
				lines = append(lines, line)
			}

			app, err := buildApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			err = app.Restock.Restock(cmd.Context(), vending.RestockInput{
				StaffID:   staffID,
				MachineID: machineID,
				Lines:     lines,
			})
			if err != nil {
				return fmt.Errorf("failed to restock: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Restock recorded.")
			return nil
		},
	}

	cmd.Flags().IntVar(&staffID, "staff", 0, "ID del operario")
	cmd.Flags().IntVar(&machineID, "machine", 0, "ID de la máquina")
	_ = cmd.MarkFlagRequired("staff")
	_ = cmd.MarkFlagRequired("machine")

	return cmd
}
