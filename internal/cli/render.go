package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/skillfolio-labs/skillfolio/internal/skill"
)

var (
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	headerStyle   = lipgloss.NewStyle().Bold(true)
	metaphorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// paint applies a style unless color output is disabled.
func paint(st lipgloss.Style, s string) string {
	if !current.Color {
		return s
	}
	return st.Render(s)
}

// renderReport writes an operation's signals. Success and info chatter is
// suppressed unless verbose; warnings and errors always show.
func renderReport(w io.Writer, rep *skill.Report, verbose bool) {
	if rep == nil {
		return
	}
	for _, sig := range rep.Signals {
		switch sig.Severity {
		case skill.Warning:
			fmt.Fprintln(w, paint(warnStyle, "Warning: ")+sig.Message)
		case skill.Error:
			fmt.Fprintln(w, paint(errorStyle, "Error: ")+sig.Message)
		case skill.Success:
			if verbose {
				fmt.Fprintln(w, paint(successStyle, "OK: ")+sig.Message)
			}
		default:
			if verbose {
				fmt.Fprintln(w, paint(infoStyle, "Info: ")+sig.Message)
			}
		}
	}
}

// renderOutcome writes a report with its success lines included. Mutating
// commands use it so the user always sees what happened.
func renderOutcome(w io.Writer, rep *skill.Report) {
	renderReport(w, rep, true)
}

func renderError(err error) string {
	return paint(errorStyle, "Error: ") + err.Error()
}

// renderSkill writes one skill block: name, level, description, metaphor.
func renderSkill(w io.Writer, s *skill.Skill, indent string) {
	fmt.Fprintf(w, "%s%s (Level: %d)\n", indent, paint(headerStyle, s.Name), s.Level)
	if s.Description != "" {
		fmt.Fprintf(w, "%s  %s\n", indent, paint(dimStyle, s.Description))
	}
	fmt.Fprintf(w, "%s  %s\n", indent, paint(metaphorStyle, s.VisualMetaphor()))
}

// renderCategory writes a category header and each skill in order.
func renderCategory(w io.Writer, cat *skill.Category) {
	fmt.Fprintln(w, paint(headerStyle, "Category: "+cat.Name))
	if cat.Len() == 0 {
		fmt.Fprintln(w, paint(dimStyle, "  No skills in this category yet."))
		return
	}
	for _, s := range cat.Skills() {
		renderSkill(w, s, "  ")
	}
}

// renderDivider writes the separator between categories.
func renderDivider(w io.Writer) {
	fmt.Fprintln(w, paint(dimStyle, strings.Repeat("─", 40)))
}
