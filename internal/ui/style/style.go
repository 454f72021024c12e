// Package style provides shared styling primitives for the CLI's diagnostics.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Severity tags printed in front of every diagnostic.
const (
	TagInfo  = "INFO"
	TagWarn  = "WARN"
	TagError = "ERROR"
)
