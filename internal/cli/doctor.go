package cli

import (
	"fmt"
	"os"

	"github.com/skillfolio-labs/skillfolio/internal/store"
	"github.com/skillfolio-labs/skillfolio/internal/userdata"
	"github.com/spf13/cobra"
)

var checkData bool

func init() {
	doctorCmd.Flags().BoolVar(&checkData, "check-data", false, "Validate the data file against the JSON schema only")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the skillfolio data directory",
	Long:  `Run diagnostic checks on the home directory, data file, and format version.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkData {
			return runDataCheck(cmd)
		}
		runHomeCheck(cmd)
		if err := runDataCheck(cmd); err != nil {
			return err
		}
		runMetaCheck(cmd)
		return nil
	},
}

func runHomeCheck(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	root, err := userdata.GetHomeRoot()
	if err != nil {
		fmt.Fprintf(out, "✗ home directory: %v\n", err)
		return
	}
	if _, err := os.Stat(root); err != nil {
		fmt.Fprintf(out, "! home directory %s does not exist yet (created on first save)\n", root)
		return
	}
	fmt.Fprintf(out, "✓ home directory %s\n", root)
}

func runDataCheck(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	path, err := dataPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(out, "! no data file at %s (fresh start)\n", path)
		return nil
	}

	result, err := store.ValidateFile(path)
	if err != nil {
		return fmt.Errorf("validating data file: %w", err)
	}
	if result.Valid {
		fmt.Fprintf(out, "✓ data file %s matches the schema\n", path)
		return nil
	}
	fmt.Fprintf(out, "✗ data file %s has %d schema issue(s):\n", path, len(result.Issues))
	for _, issue := range result.Issues {
		fmt.Fprintf(out, "  %s: %s (%s)\n", issue.Path, issue.Message, issue.Keyword)
	}
	return nil
}

func runMetaCheck(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	meta, err := userdata.LoadMeta()
	if err != nil {
		fmt.Fprintf(out, "✗ meta file: %v\n", err)
		return
	}
	if meta == nil {
		fmt.Fprintf(out, "! no meta file (written on next save)\n")
		return
	}
	cmp, err := userdata.CompareFormatVersions(userdata.FormatVersion, meta.FormatVersion)
	if err != nil {
		fmt.Fprintf(out, "✗ meta file: %v\n", err)
		return
	}
	switch {
	case cmp < 0:
		newer, err := userdata.FormatIsNewer(userdata.FormatVersion, meta.FormatVersion)
		if err == nil && newer {
			fmt.Fprintf(out, "✗ data format %s is newer than this build's %s\n", meta.FormatVersion, userdata.FormatVersion)
		} else {
			fmt.Fprintf(out, "✓ data format %s (newer minor, still readable by %s)\n", meta.FormatVersion, userdata.FormatVersion)
		}
	case cmp > 0:
		fmt.Fprintf(out, "! data format %s is older than this build's %s (rewritten on next save)\n", meta.FormatVersion, userdata.FormatVersion)
	default:
		fmt.Fprintf(out, "✓ data format %s (this build writes %s)\n", meta.FormatVersion, userdata.FormatVersion)
	}
}
