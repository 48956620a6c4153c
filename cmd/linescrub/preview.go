package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Lines of unchanged context shown around each removal
const previewContext = 2

type previewLine struct {
	Number  int
	Text    string
	Removed bool
}

// diffLines computes a line diff between the original text and the filtered
// text. Both sides get a terminating "\n" so every split line becomes exactly
// one diff token, including a trailing empty line.
func diffLines(original, filtered string) []previewLine {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0

	a, b, lineArray := dmp.DiffLinesToChars(original+"\n", filtered+"\n")
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var out []previewLine
	number := 0
	for _, d := range diffs {
		// Filtering only ever deletes
		if d.Type == diffmatchpatch.DiffInsert {
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			number++
			out = append(out, previewLine{
				Number:  number,
				Text:    strings.TrimSuffix(line, "\n"),
				Removed: d.Type == diffmatchpatch.DiffDelete,
			})
		}
	}
	return out
}

// diffBody renders removed lines with "-" and context lines with " ",
// separating non-adjacent runs with "@@ line N @@" markers.
func diffBody(lines []previewLine, context int) string {
	show := make([]bool, len(lines))
	for i, l := range lines {
		if !l.Removed {
			continue
		}
		for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
			show[j] = true
		}
	}

	var sb strings.Builder
	prev := -2
	for i, l := range lines {
		if !show[i] {
			continue
		}
		if i != prev+1 {
			sb.WriteString(fmt.Sprintf("@@ line %d @@\n", l.Number))
		}
		if l.Removed {
			sb.WriteString("-" + l.Text + "\n")
		} else {
			sb.WriteString(" " + l.Text + "\n")
		}
		prev = i
	}
	return sb.String()
}

// BuildPreview returns a Markdown document describing what a run would remove
func BuildPreview(path, strategyName, original string, result Result) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Preview: %s\n\n", path))
	sb.WriteString(fmt.Sprintf("**Strategy:** `%s`  **Lines:** %d  **Kept:** %d  **Removed:** %d\n\n",
		strategyName, result.Total, len(result.Kept), len(result.Removed)))

	if !result.Changed() {
		sb.WriteString("No lines match; the file would be left unchanged.\n")
		return sb.String()
	}

	for _, kc := range result.KeywordCounts() {
		sb.WriteString(fmt.Sprintf("- `%s`: %d\n", kc.Keyword, kc.Count))
	}
	sb.WriteString("\n")

	body := diffBody(diffLines(original, result.Text()), previewContext)

	// Lengthen the fence if the source itself contains one
	fence := "```"
	for strings.Contains(body, fence) {
		fence += "`"
	}
	sb.WriteString(fence + "diff\n")
	sb.WriteString(body)
	sb.WriteString(fence + "\n")

	return sb.String()
}

// RenderMarkdown renders Markdown for the terminal with glamour, falling back
// to the raw Markdown when rendering fails.
func RenderMarkdown(markdown string, noColor bool) string {
	styleOpt := glamour.WithAutoStyle()
	if noColor {
		styleOpt = glamour.WithStandardStyle(styles.NoTTYStyle)
	}

	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(120))
	if err != nil {
		return markdown
	}
	out, err := r.Render(markdown)
	if err != nil {
		return markdown
	}
	return out
}
