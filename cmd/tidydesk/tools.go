package main

import "github.com/modelcontextprotocol/go-sdk/mcp"

type (
	// StatusInput contains parameters for the show_status tool.
	StatusInput struct {
		IncludeHidden bool `json:"includeHidden,omitempty" jsonschema:"Include hidden entries in the listing (default: false)"`
	}

	// StatusOutput describes what currently sits on the desktop.
	StatusOutput struct {
		Folders []string `json:"folders"`
		Files   []string `json:"files"`
		Total   int      `json:"total"`
	}

	// AnalyzeInput contains parameters for the analyze_files tool.
	AnalyzeInput struct {
		Files []string `json:"files,omitempty" jsonschema:"File names to categorize (default: every file on the desktop)"`
	}

	// AnalyzeOutput maps suggested categories to the files placed in them.
	AnalyzeOutput struct {
		Categories map[string][]string `json:"categories"`
		FileCount  int                 `json:"fileCount"`
	}

	// OrganizeInput contains parameters for the organize tool.
	OrganizeInput struct {
		DryRun bool `json:"dryRun,omitempty" jsonschema:"Preview the plan without moving any files (default: false)"`
	}

	// SkippedItem records a file that was not moved and why.
	SkippedItem struct {
		Name   string `json:"name"`
		Reason string `json:"reason"`
	}

	// OrganizeOutput contains the result of an organize run.
	OrganizeOutput struct {
		DryRun  bool                `json:"dryRun"`
		Planned map[string][]string `json:"planned,omitempty"`
		Moved   map[string][]string `json:"moved,omitempty"`
		Skipped []SkippedItem       `json:"skipped,omitempty"`
		Summary string              `json:"summary"`
	}
)

func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "show_status",
		Description: "Shows the current state of your Desktop: folders and files at the top level.",
	}, handleStatus)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_files",
		Description: "Analyzes files and suggests organization categories without moving anything. Pass files to categorize a specific set, or omit it to analyze everything on your Desktop.",
	}, handleAnalyze)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "organize",
		Description: "Organizes your Desktop files into category folders. Set dryRun to preview the plan first.",
	}, handleOrganize)
}
