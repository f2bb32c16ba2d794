package cli

import "github.com/spf13/cobra"

// NewLowStockCommand crea el subcomando low-stock (reporte de bajo stock).
func NewLowStockCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "low-stock",
		Short: "Reporte de artículos con stock por debajo del umbral",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			lines, err := app.Reporting.LowStock()
			if err != nil {
				return err
			}
			printLowStock(cmd.OutOrStdout(), lines)
			return nil
		},
	}
}
