// Package render formats scan results, plans, and reports as plain
// newline-joined text. A styled renderer additionally colors headers for
// terminal output; the plain form is what tests and the MCP host consume.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tidydesk/pkg/types"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// Renderer turns operation results into human-readable text.
type Renderer struct {
	styled bool
}

// New creates a Renderer. With styled set, headers are colored for
// terminals; otherwise all output is plain text.
func New(styled bool) *Renderer {
	return &Renderer{styled: styled}
}

// Status formats the desktop inventory listing.
func (r *Renderer) Status(status *types.DesktopStatus) string {
	lines := []string{r.header("Desktop Status:")}
	lines = append(lines, fmt.Sprintf("\nTotal Items: %d", status.Total()))

	if len(status.Folders) > 0 {
		lines = append(lines, "\nFolders:")
		for _, folder := range status.Folders {
			lines = append(lines, fmt.Sprintf("  - %s", folder))
		}
	}

	if len(status.Files) > 0 {
		lines = append(lines, "\nFiles:")
		for _, file := range status.Files {
			lines = append(lines, fmt.Sprintf("  - %s", file))
		}
	}

	return strings.Join(lines, "\n")
}

// Preview formats a category plan without touching the filesystem.
func (r *Renderer) Preview(plan types.CategoryPlan) string {
	lines := []string{r.header("Preview of organization plan:")}
	for _, category := range plan.Categories() {
		lines = append(lines, fmt.Sprintf("\n%s:", category))
		for _, file := range plan[category] {
			lines = append(lines, fmt.Sprintf("  - %s", file))
		}
	}
	return strings.Join(lines, "\n")
}

// Summary formats the outcome of an organize run. Dry runs render as a
// preview; an empty desktop renders as a single informational line.
func (r *Renderer) Summary(report *types.Report) string {
	if report.NoFiles {
		return "No files to organize on the desktop."
	}
	if report.DryRun {
		return r.Preview(report.Plan)
	}

	lines := []string{r.success("Organization Complete!")}

	categories := make([]string, 0, len(report.Moved))
	for category := range report.Moved {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	for _, category := range categories {
		files := append([]string(nil), report.Moved[category]...)
		sort.Strings(files)
		lines = append(lines, fmt.Sprintf("\n%s (%d files):", category, len(files)))
		for _, file := range files {
			lines = append(lines, fmt.Sprintf("  - %s", file))
		}
	}

	if len(report.Skipped) > 0 {
		skipped := append([]types.SkippedFile(nil), report.Skipped...)
		sort.Slice(skipped, func(i, j int) bool { return skipped[i].Name < skipped[j].Name })

		lines = append(lines, "\nSkipped files:")
		for _, skip := range skipped {
			lines = append(lines, fmt.Sprintf("  - %s (%s)", skip.Name, skip.Reason))
		}
	}

	return strings.Join(lines, "\n")
}

// Error formats an operation failure for display.
func (r *Renderer) Error(err error) string {
	msg := fmt.Sprintf("Error: %v", err)
	if r.styled {
		return errorStyle.Render(msg)
	}
	return msg
}

func (r *Renderer) header(s string) string {
	if r.styled {
		return headerStyle.Render(s)
	}
	return s
}

func (r *Renderer) success(s string) string {
	if r.styled {
		return successStyle.Render(s)
	}
	return s
}
