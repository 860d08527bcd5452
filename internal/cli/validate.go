package cli

import (
	"github.com/tools4video/bealert/internal/converter"
	"github.com/tools4video/bealert/internal/logging"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <input.xlsx>",
	Short: "Check that a workbook has the required contact columns",
	Long: `Validate opens the workbook, reads the header row of the first worksheet
and checks that all required columns are present. No output is written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.Init(flagVerbose)
		defer log.Sync()

		input := args[0]
		if err := converter.ValidateSchema(input); err != nil {
			return err
		}

		log.Infow("columns OK", "input", input)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
