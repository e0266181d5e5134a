package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(loadCmd)
}

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the current skill data to disk",
	Long: `Rewrite the data file from the loaded state. Mutating commands save
automatically; this exists as an explicit trigger.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, err := openManager(cmd)
		if err != nil {
			return err
		}
		rep, err := mgr.Save()
		renderOutcome(cmd.OutOrStdout(), rep)
		return err
	},
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load skill data from disk and report what was found",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := dataPath()
		if err != nil {
			return err
		}
		mgr, err := openManager(cmd)
		if err != nil {
			return err
		}
		cats := mgr.Categories()
		total := 0
		for _, cat := range cats {
			total += cat.Len()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d categories and %d skills from %s\n", len(cats), total, path)
		return nil
	},
}
