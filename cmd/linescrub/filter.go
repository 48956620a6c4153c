package main

import (
	"sort"
	"strings"
)

// Removal records a dropped line
type Removal struct {
	Line    int    // 1-based line number in the original text
	Text    string // line content as it was
	Keyword string // first keyword that matched
}

// Result holds the outcome of filtering one text
type Result struct {
	Kept    []string
	Removed []Removal
	Total   int
}

// KeywordCount is the number of lines a keyword removed
type KeywordCount struct {
	Keyword string
	Count   int
}

// FilterLines splits text on "\n" and drops every line the strategy matches
// against keywords. Retained lines keep their content and relative order. The
// split is literal: text ending in "\n" yields a trailing empty line.
func FilterLines(text string, keywords []string, strategy Strategy) Result {
	if strategy == nil {
		strategy = strategies[defaultStrategyName]
	}

	lines := strings.Split(text, "\n")
	result := Result{
		Kept:  make([]string, 0, len(lines)),
		Total: len(lines),
	}

	for i, line := range lines {
		if kw, ok := strategy.Match(line, keywords); ok {
			result.Removed = append(result.Removed, Removal{
				Line:    i + 1,
				Text:    line,
				Keyword: kw,
			})
			continue
		}
		result.Kept = append(result.Kept, line)
	}

	return result
}

// Text joins the retained lines back into file content
func (r Result) Text() string {
	return strings.Join(r.Kept, "\n")
}

// Changed reports whether any line was removed
func (r Result) Changed() bool {
	return len(r.Removed) > 0
}

// KeywordCounts returns per-keyword removal counts, highest first, ties by keyword
func (r Result) KeywordCounts() []KeywordCount {
	counts := make(map[string]int)
	for _, rm := range r.Removed {
		counts[rm.Keyword]++
	}

	out := make([]KeywordCount, 0, len(counts))
	for kw, n := range counts {
		out = append(out, KeywordCount{Keyword: kw, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Keyword < out[j].Keyword
	})
	return out
}
