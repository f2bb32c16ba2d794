package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Env      string // override de APP_ENV
	LogLevel string // override de LOG_LEVEL
}

// NewRootCommand crea el comando raíz. Sin subcomando arranca el shell
// interactivo (el menú numerado de siempre); los subcomandos exponen cada
// operación de forma no interactiva para scripts.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "grabgo",
		Short:         "Grab & Go - inventario y dispensado de máquinas expendedoras",
		Long:          "Herramienta de consola para operar la red Grab & Go:\nbuscar artículos, ver stock por máquina, reporte de bajo stock,\ndispensar y reponer. Sin argumentos abre el menú interactivo.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := buildApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer app.Close()
			sh := NewShell(os.Stdin, cmd.OutOrStdout(), app)
			return sh.Run(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Env, "env", "", "entorno de ejecución (development|staging|production)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "nivel de log (trace|debug|info|warn|error)")

	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewStockCommand(opts))
	cmd.AddCommand(NewLowStockCommand(opts))
	cmd.AddCommand(NewDispenseCommand(opts))
	cmd.AddCommand(NewRestockCommand(opts))

	return cmd
}
