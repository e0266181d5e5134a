package cli

import (
	"fmt"

	"github.com/skillfolio-labs/skillfolio/internal/export"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <pdf|notion>",
	Short: "Export skills (conceptual)",
	Long: `Export is a placeholder: it describes what a real PDF or Notion
export would do without producing output files or network calls.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, ok := export.ParseFormat(args[0])
		if !ok {
			return fmt.Errorf("unknown export format %q (use pdf or notion)", args[0])
		}
		for _, line := range export.Run(format) {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}
