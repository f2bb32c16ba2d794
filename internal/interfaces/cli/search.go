package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewSearchCommand crea el subcomando search (búsqueda no interactiva).
func NewSearchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "search [term]",
		Short: "Buscar artículos activos por nombre o categoría",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer app.Close()

			items, err := app.Reporting.SearchItems(strings.Join(args, " "))
			if err != nil {
				return err
			}
			printItems(cmd.OutOrStdout(), items)
			return nil
		},
	}
}
