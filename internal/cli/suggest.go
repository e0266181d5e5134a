package cli

import (
	"fmt"

	"github.com/skillfolio-labs/skillfolio/internal/suggest"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(suggestCmd)
}

var suggestCmd = &cobra.Command{
	Use:   "suggest <github|vscode|stackoverflow> <subject>",
	Short: "Auto-suggest skills from an external source (conceptual)",
	Long: `Suggestion sources are placeholders: they describe what a real
integration would fetch. The subject is a GitHub username, a VS Code usage
data path, or a Stack Overflow user ID.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, ok := suggest.ParseSource(args[0])
		if !ok {
			return fmt.Errorf("unknown suggestion source %q (use github, vscode, or stackoverflow)", args[0])
		}
		lines, err := suggest.Run(src, args[1])
		if err != nil {
			return err
		}
		for _, line := range lines {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}
