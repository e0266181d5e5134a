package cli

import (
	"encoding/json"
	"fmt"

	"github.com/skillfolio-labs/skillfolio/internal/skill"
	"github.com/spf13/cobra"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents one skill for JSON output.
type listEntry struct {
	Category    string `json:"category"`
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Level       int    `json:"level"`
	Description string `json:"description,omitempty"`
	Metaphor    string `json:"metaphor"`
}

var listCmd = &cobra.Command{
	Use:   "list [category]",
	Short: "List all categories and skills",
	Long:  `List every skill with its visual metaphor, across all categories or within one.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	mgr, err := openManager(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	var cats []*skill.Category
	if len(args) == 1 {
		cat, err := categoryOrNotFound(mgr, args[0])
		if err != nil {
			return err
		}
		cats = []*skill.Category{cat}
	} else {
		cats = mgr.Categories()
	}
	if len(cats) == 0 {
		fmt.Fprintln(out, "No skill categories defined yet.")
		return nil
	}

	// The preferences file can make JSON the default output format; the
	// flag always wins when given.
	asJSON := listJSON
	if !cmd.Flags().Changed("json") && current.OutputFormat == "json" {
		asJSON = true
	}

	if asJSON {
		var entries []listEntry
		for _, cat := range cats {
			for _, s := range cat.Skills() {
				entries = append(entries, listEntry{
					Category:    cat.Name,
					Name:        s.Name,
					Kind:        string(s.Kind),
					Level:       s.Level,
					Description: s.Description,
					Metaphor:    s.VisualMetaphor(),
				})
			}
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling skill list: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	for i, cat := range cats {
		if i > 0 {
			renderDivider(out)
		}
		renderCategory(out, cat)
	}
	return nil
}

// categoryOrNotFound fetches a category and reports a friendly error.
func categoryOrNotFound(mgr *skill.Manager, name string) (*skill.Category, error) {
	cat := mgr.GetCategory(name)
	if cat == nil {
		return nil, &skill.NotFoundError{Kind: "category", Name: name}
	}
	return cat, nil
}
