package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color scheme for console output
type Theme struct {
	Keyword  lipgloss.Style
	Location lipgloss.Style
	LineNum  lipgloss.Style
	Summary  lipgloss.Style
	Removed  lipgloss.Style
	Dim      lipgloss.Style
}

// DefaultTheme is the default color scheme
var DefaultTheme = Theme{
	Keyword:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
	Location: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	LineNum:  lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
	Summary:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),
	Removed:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// PlainTheme renders everything unstyled
var PlainTheme = Theme{
	Keyword:  lipgloss.NewStyle(),
	Location: lipgloss.NewStyle(),
	LineNum:  lipgloss.NewStyle(),
	Summary:  lipgloss.NewStyle(),
	Removed:  lipgloss.NewStyle(),
	Dim:      lipgloss.NewStyle(),
}

// Current theme (switched to PlainTheme by --no-color)
var theme = DefaultTheme

// PrintSummary prints line counts and per-keyword removals
func PrintSummary(w io.Writer, path string, result Result) {
	fmt.Fprintf(w, "%s %s lines, %s kept, %s removed\n",
		theme.Location.Render(path),
		theme.Summary.Render(fmt.Sprintf("%d", result.Total)),
		theme.Summary.Render(fmt.Sprintf("%d", len(result.Kept))),
		theme.Removed.Render(fmt.Sprintf("%d", len(result.Removed))))

	for _, kc := range result.KeywordCounts() {
		fmt.Fprintf(w, "  %s %s\n",
			theme.LineNum.Render(fmt.Sprintf("%4d", kc.Count)),
			theme.Keyword.Render(kc.Keyword))
	}
}

// PrintRemovedLines prints every removed line as path:line with its keyword
func PrintRemovedLines(w io.Writer, path string, result Result) {
	for _, rm := range result.Removed {
		fmt.Fprintf(w, "  %s%s%s %s %s\n",
			theme.Location.Render(path),
			theme.Dim.Render(":"),
			theme.LineNum.Render(fmt.Sprintf("%d", rm.Line)),
			theme.Dim.Render("["+rm.Keyword+"]"),
			theme.Removed.Render(rm.Text))
	}
}

// NewJSONReport converts a filter result into its JSON form
func NewJSONReport(cfg Config, result Result, dryRun bool) JSONReport {
	report := JSONReport{
		File:         cfg.Path,
		Strategy:     cfg.Strategy,
		DryRun:       dryRun,
		TotalLines:   result.Total,
		KeptLines:    len(result.Kept),
		RemovedLines: len(result.Removed),
		Keywords:     make([]JSONKeyword, 0),
		Removed:      make([]JSONRemoval, 0, len(result.Removed)),
	}
	for _, kc := range result.KeywordCounts() {
		report.Keywords = append(report.Keywords, JSONKeyword{Keyword: kc.Keyword, Count: kc.Count})
	}
	for _, rm := range result.Removed {
		report.Removed = append(report.Removed, JSONRemoval{Line: rm.Line, Keyword: rm.Keyword, Text: rm.Text})
	}
	return report
}

// WriteJSONReport writes the report to outputPath, creating its directory
func WriteJSONReport(report JSONReport, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}

	if err := os.WriteFile(outputPath, jsonData, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", outputPath, err)
	}
	return nil
}
