package cli

import (
	"path/filepath"
	"strings"

	"github.com/tools4video/bealert/internal/converter"
	"github.com/tools4video/bealert/internal/logging"

	"github.com/spf13/cobra"
)

var flagOutput string

var convertCmd = &cobra.Command{
	Use:   "convert <input.xlsx>",
	Short: "Convert a workbook to the BE-Alert CSV format",
	Long: `Convert reads the first worksheet of the given workbook and writes the
33-column ';'-separated BE-Alert contact file.

The output path defaults to the input filename with a .csv extension.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.Init(flagVerbose)
		defer log.Sync()

		input := args[0]
		output := flagOutput
		if output == "" {
			output = DefaultOutputPath(input)
		}

		log.Debugw("starting conversion", "input", input, "output", output)
		result, err := converter.Convert(input, output, nil)
		if err != nil {
			return err
		}

		log.Infow("CSV saved",
			"output", result.OutputFile,
			"rows", result.RowsProcessed,
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output CSV path (default: input stem + .csv)")
}

// DefaultOutputPath derives the suggested CSV path from the input filename:
// the same directory and stem with a .csv extension.
func DefaultOutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".csv"
}
