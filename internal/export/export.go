// Package export holds the conceptual skill exporters. Real PDF and Notion
// output is not implemented; each exporter returns human-readable status
// text describing what a full implementation would do.
package export

// Format identifies a supported export target.
type Format string

const (
	PDF    Format = "pdf"
	Notion Format = "notion"
)

// Exporter describes one conceptual export target.
type Exporter struct {
	Format      Format
	DisplayName string
	Lines       []string
}

// formatRegistry maps each export format to its conceptual description.
var formatRegistry = map[Format]Exporter{
	PDF: {
		Format:      PDF,
		DisplayName: "PDF (Conceptual)",
		Lines: []string{
			"Generating a PDF report for your skills and saving to 'skills_report.pdf' (conceptual)...",
			"This would involve iterating through all skills and categories,",
			"formatting them, and using a PDF generation library.",
			"PDF export complete (conceptually).",
		},
	},
	Notion: {
		Format:      Notion,
		DisplayName: "Notion (Conceptual)",
		Lines: []string{
			"Connecting to Notion API to create/update a page or database (conceptual)...",
			"This would involve authenticating with Notion, structuring your skill data,",
			"and sending requests to create blocks or database entries.",
			"Notion export complete (conceptually).",
		},
	},
}

// AllFormats returns all supported formats.
func AllFormats() []Format {
	return []Format{PDF, Notion}
}

// ParseFormat converts a string to a Format, returning false if invalid.
func ParseFormat(s string) (Format, bool) {
	switch s {
	case "pdf":
		return PDF, true
	case "notion":
		return Notion, true
	default:
		return "", false
	}
}

// Run returns the status text for the given format.
func Run(f Format) []string {
	return formatRegistry[f].Lines
}
