// Package suggest holds the conceptual skill auto-suggestion sources.
// None of them call external services; each returns human-readable status
// text describing what a full implementation would do.
package suggest

import "fmt"

// Source identifies a supported suggestion source.
type Source string

const (
	GitHub        Source = "github"
	VSCode        Source = "vscode"
	StackOverflow Source = "stackoverflow"
)

// AllSources returns all supported sources.
func AllSources() []Source {
	return []Source{GitHub, VSCode, StackOverflow}
}

// ParseSource converts a string to a Source, returning false if invalid.
func ParseSource(s string) (Source, bool) {
	switch s {
	case "github":
		return GitHub, true
	case "vscode":
		return VSCode, true
	case "stackoverflow":
		return StackOverflow, true
	default:
		return "", false
	}
}

// Run returns the status text for the given source and subject (a GitHub
// username, a usage data path, or a Stack Overflow user ID). An empty
// subject is rejected.
func Run(src Source, subject string) ([]string, error) {
	if subject == "" {
		return nil, fmt.Errorf("suggestion source %q requires a subject", src)
	}

	switch src {
	case GitHub:
		return []string{
			fmt.Sprintf("Auto-suggesting skills from GitHub for %q (conceptual)...", subject),
			"Connecting to GitHub API to fetch repositories, languages, and commit history...",
			"This would identify frequently used languages, frameworks, or topics",
			"and suggest them as new skills or updates to existing ones.",
			"GitHub auto-suggestion complete (conceptually).",
		}, nil
	case VSCode:
		return []string{
			"Auto-suggesting skills from VS Code usage data (conceptual)...",
			fmt.Sprintf("Attempting to parse VS Code usage data from %q...", subject),
			"This would identify frequently used extensions, languages, or commands",
			"and suggest relevant skills.",
			"Note: accessing VS Code internal data directly might be complex and platform-dependent.",
			"VS Code auto-suggestion complete (conceptually).",
		}, nil
	case StackOverflow:
		return []string{
			fmt.Sprintf("Auto-suggesting skills from Stack Overflow for user ID %q (conceptual)...", subject),
			"Connecting to Stack Overflow API to fetch the user's questions, answers, and tags...",
			"This would identify frequently used tags, accepted answers, or badges",
			"and suggest them as new skills.",
			"Stack Overflow auto-suggestion complete (conceptually).",
		}, nil
	default:
		return nil, fmt.Errorf("unknown suggestion source %q", src)
	}
}
