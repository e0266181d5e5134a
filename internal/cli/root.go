// Package cli implements the skillfolio command tree. It is the only
// package that writes to the terminal; all domain operations live in
// internal/skill and return Report values rendered here.
package cli

import (
	"fmt"
	"os"

	"github.com/skillfolio-labs/skillfolio/internal/branding"
	"github.com/skillfolio-labs/skillfolio/internal/config"
	"github.com/skillfolio-labs/skillfolio/internal/skill"
	"github.com/skillfolio-labs/skillfolio/internal/store"
	"github.com/skillfolio-labs/skillfolio/internal/userdata"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` organizes named skills into categories, assigns each a
level from 0 to 100, renders a visual metaphor for that level (a mana bar
for soft skills, an XP tree for hard skills), and persists everything to a
single JSON file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Show all feedback signals, not just warnings and errors")
	// Assigned here rather than in the struct literal: the hook refers to
	// rootCmd, which would otherwise be an initialization cycle.
	rootCmd.PersistentPreRun = preRun
}

// preRun resolves effective settings for every command and prints the
// data-format banner for commands that touch the data file.
func preRun(cmd *cobra.Command, args []string) {
	current = resolveSettings()

	// Skip the data-format banner for commands that never touch the
	// data file.
	name := cmd.Name()
	if p := cmd.Parent(); p != nil && p != rootCmd {
		name = p.Name()
	}
	if name == "version" || name == "config" || name == "export" || name == "suggest" {
		return
	}

	meta, err := userdata.LoadMeta()
	if err != nil || meta == nil {
		return
	}
	newer, err := userdata.FormatIsNewer(userdata.FormatVersion, meta.FormatVersion)
	if err == nil && newer {
		fmt.Fprintf(cmd.ErrOrStderr(), "Data file was written by a newer format (%s > %s). Upgrade %s before editing.\n",
			meta.FormatVersion, userdata.FormatVersion, branding.CLIName())
	}
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, renderError(err))
		return err
	}
	return nil
}

// dataPath resolves the data file location: config override first, then
// the userdata default.
func dataPath() (string, error) {
	config.Load()
	if p := config.Get(config.KeyDataFile); p != "" {
		return p, nil
	}
	return userdata.GetDataPath()
}

// metaStore wraps a file store so that every successful data write also
// refreshes the format-version sidecar.
type metaStore struct {
	*store.FileStore
}

func (m metaStore) Write(data []byte) error {
	if err := m.FileStore.Write(data); err != nil {
		return err
	}
	// Best effort: data is already safe on disk.
	_ = userdata.SaveMeta(buildVersion)
	return nil
}

// openManager constructs a manager over the resolved data file and loads
// existing state. Load feedback is rendered before the manager is returned;
// a load failure still yields a usable (unchanged) manager.
func openManager(cmd *cobra.Command) (*skill.Manager, error) {
	path, err := dataPath()
	if err != nil {
		return nil, fmt.Errorf("resolving data file: %w", err)
	}
	mgr := skill.NewManager(metaStore{store.NewFileStore(path)})
	rep, err := mgr.Load()
	renderReport(cmd.OutOrStdout(), rep, current.Verbose)
	if err != nil {
		// Manager is still usable with whatever state it had.
		fmt.Fprintln(cmd.ErrOrStderr(), renderError(err))
	}
	return mgr, nil
}
