package main

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterLinesTransactionHistoryScenario(t *testing.T) {
	text := "const transactionHistory = [];\nconst x = 1;\nfunction loadTransactionHistory() {}\n"
	keywords := []string{"transactionHistory", "loadTransactionHistory"}

	result := FilterLines(text, keywords, &SubstringStrategy{})

	// The trailing newline leaves an empty last line
	if diff := cmp.Diff([]string{"const x = 1;", ""}, result.Kept); diff != "" {
		t.Errorf("kept lines mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, result.Total)
	require.Len(t, result.Removed, 2)
	assert.Equal(t, Removal{Line: 1, Text: "const transactionHistory = [];", Keyword: "transactionHistory"}, result.Removed[0])
	assert.Equal(t, Removal{Line: 3, Text: "function loadTransactionHistory() {}", Keyword: "loadTransactionHistory"}, result.Removed[1])
	assert.Equal(t, "const x = 1;\n", result.Text())
}

func TestFilterLinesKeepsContentVerbatim(t *testing.T) {
	text := "  indented\t\r\nremove me\n\ttabbed  "
	result := FilterLines(text, []string{"remove"}, nil)

	if diff := cmp.Diff([]string{"  indented\t\r", "\ttabbed  "}, result.Kept); diff != "" {
		t.Errorf("kept lines mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterLinesIsCaseSensitive(t *testing.T) {
	result := FilterLines("TransactionHistory\ntransactionhistory\ntransactionHistory", []string{"transactionHistory"}, nil)

	assert.Equal(t, []string{"TransactionHistory", "transactionhistory"}, result.Kept)
}

func TestFilterLinesReportsFirstKeywordInListOrder(t *testing.T) {
	result := FilterLines("lastTransactionDetails", []string{"lastTransactionDetails", "lastTransaction"}, nil)

	require.Len(t, result.Removed, 1)
	assert.Equal(t, "lastTransactionDetails", result.Removed[0].Keyword)
}

func TestFilterLinesAllRemoved(t *testing.T) {
	result := FilterLines("a\na\na", []string{"a"}, nil)

	assert.Empty(t, result.Kept)
	assert.Len(t, result.Removed, 3)
	assert.Equal(t, "", result.Text())
}

func TestFilterLinesEmptyText(t *testing.T) {
	result := FilterLines("", []string{"x"}, nil)

	assert.Equal(t, []string{""}, result.Kept)
	assert.Equal(t, 1, result.Total)
	assert.False(t, result.Changed())
}

func TestKeywordCountsSortedByCount(t *testing.T) {
	text := "beta\nalpha\nbeta\ngamma\nalpha\nbeta"
	result := FilterLines(text, []string{"alpha", "beta", "gamma"}, nil)

	want := []KeywordCount{
		{Keyword: "beta", Count: 3},
		{Keyword: "alpha", Count: 2},
		{Keyword: "gamma", Count: 1},
	}
	if diff := cmp.Diff(want, result.KeywordCounts()); diff != "" {
		t.Errorf("keyword counts mismatch (-want +got):\n%s", diff)
	}
}

// fragments used to build random source texts
var corpusFragments = []string{
	"const transactionHistory = [];",
	"const x = 1;",
	"setLastTransaction(null);",
	"  <TransactionReportModal open={showTransactionReport} />",
	"function loadTransactionHistory() {}",
	"return (",
	"",
	"    </div>",
	"import React from 'react';",
	"// lastTransactionDetails are gone",
	"const historySearchTermx = '';",
	"zażółć gęślą jaźń",
}

func randomText(r *rand.Rand) string {
	n := r.IntN(20)
	lines := make([]string, n)
	for i := range lines {
		lines[i] = corpusFragments[r.IntN(len(corpusFragments))]
	}
	text := strings.Join(lines, "\n")
	if r.IntN(2) == 0 {
		text += "\n"
	}
	return text
}

func isSubsequence(sub, full []string) bool {
	i := 0
	for _, line := range full {
		if i < len(sub) && sub[i] == line {
			i++
		}
	}
	return i == len(sub)
}

func TestFilterLinesProperties(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 7))

	for _, strategyName := range StrategyNames() {
		strategy, err := LookupStrategy(strategyName)
		require.NoError(t, err)

		for i := 0; i < 200; i++ {
			text := randomText(r)
			lines := strings.Split(text, "\n")
			result := FilterLines(text, defaultKeywords, strategy)

			// Order-preserving subsequence
			require.True(t, isSubsequence(result.Kept, lines), "%s: kept lines are not a subsequence of %q", strategyName, text)
			require.Equal(t, len(lines), len(result.Kept)+len(result.Removed))

			// No kept line matches, every non-matching line is kept
			for _, line := range result.Kept {
				_, matched := strategy.Match(line, defaultKeywords)
				require.False(t, matched, "%s: kept line %q matches a keyword", strategyName, line)
			}
			for _, rm := range result.Removed {
				require.Equal(t, lines[rm.Line-1], rm.Text)
				_, matched := strategy.Match(rm.Text, defaultKeywords)
				require.True(t, matched)
			}

			// Idempotent
			again := FilterLines(result.Text(), defaultKeywords, strategy)
			require.Equal(t, result.Text(), again.Text())
			require.Empty(t, again.Removed)

			// Empty keyword set round-trips
			none := FilterLines(text, nil, strategy)
			require.Equal(t, text, none.Text())
		}
	}
}
