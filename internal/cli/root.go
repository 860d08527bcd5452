// Package cli implements the bealert commands using Cobra.
//
// Running bealert without a subcommand starts the interactive shell; the
// validate and convert subcommands cover scripted use.
package cli

import (
	"fmt"
	"os"

	"github.com/tools4video/bealert/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "bealert",
	Short: "bealert — convert municipal XLSX contact exports to BE-Alert CSV",
	Long: `bealert converts a municipality's XLSX contact export into the
33-column ';'-separated CSV file the BE-Alert platform imports.

Run without arguments for the interactive shell, or use the validate and
convert subcommands directly:

  bealert validate contacts.xlsx
  bealert convert contacts.xlsx -o contacts.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := tea.NewProgram(ui.InitialModel(), tea.WithAltScreen())
		_, err := p.Run()
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute(version string) {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
