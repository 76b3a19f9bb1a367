package main

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func handleStatus(ctx context.Context, req *mcp.CallToolRequest, input StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
	status, err := svcScanner.Status(input.IncludeHidden)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, StatusOutput{}, err
	}

	return nil, StatusOutput{
		Folders: status.Folders,
		Files:   status.Files,
		Total:   status.Total(),
	}, nil
}

func handleAnalyze(ctx context.Context, req *mcp.CallToolRequest, input AnalyzeInput) (*mcp.CallToolResult, AnalyzeOutput, error) {
	files := input.Files
	if len(files) == 0 {
		var err error
		files, err = svcScanner.Files()
		if err != nil {
			return &mcp.CallToolResult{IsError: true}, AnalyzeOutput{}, err
		}
	}

	plan := svcCategorizer.Analyze(ctx, files)

	return nil, AnalyzeOutput{
		Categories: plan,
		FileCount:  plan.FileCount(),
	}, nil
}

func handleOrganize(ctx context.Context, req *mcp.CallToolRequest, input OrganizeInput) (*mcp.CallToolResult, OrganizeOutput, error) {
	report, err := svcEngine.Organize(ctx, input.DryRun)
	if err != nil {
		return &mcp.CallToolResult{IsError: true}, OrganizeOutput{}, err
	}

	out := OrganizeOutput{DryRun: report.DryRun}
	switch {
	case report.NoFiles:
		out.Summary = "No files to organize on the desktop."
	case report.DryRun:
		out.Planned = report.Plan
		out.Summary = fmt.Sprintf("Plan covers %d files across %d categories.",
			report.Plan.FileCount(), len(report.Plan.Categories()))
	default:
		out.Moved = report.Moved
		for _, s := range report.Skipped {
			out.Skipped = append(out.Skipped, SkippedItem{Name: s.Name, Reason: s.Reason})
		}
		out.Summary = fmt.Sprintf("Moved %d files; skipped %d.",
			report.MovedCount(), len(report.Skipped))
	}
	return nil, out, nil
}
