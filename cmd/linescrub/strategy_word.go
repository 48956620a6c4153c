package main

import (
	"strings"
	"unicode/utf8"
)

// Separators that delimit identifiers in C-like source
const separators = " \t:.;{}()[]#!<>=,\n\r\"'`+-*/&|?%^~@"

func isSeparator(r rune) bool {
	return strings.ContainsRune(separators, r)
}

// WordStrategy matches a keyword only where it stands as a whole token:
// both neighbours are separators or the line boundary. "lastTransaction" no
// longer matches "lastTransactionDetails".
type WordStrategy struct{}

func (s *WordStrategy) Name() string {
	return "word"
}

func (s *WordStrategy) Match(line string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if containsWord(line, kw) {
			return kw, true
		}
	}
	return "", false
}

// containsWord reports whether kw occurs in line bounded by separators
func containsWord(line, kw string) bool {
	if kw == "" {
		return false
	}
	for offset := 0; offset <= len(line)-len(kw); {
		idx := strings.Index(line[offset:], kw)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(kw)

		before, after := true, true
		if start > 0 {
			r, _ := utf8.DecodeLastRuneInString(line[:start])
			before = isSeparator(r)
		}
		if end < len(line) {
			r, _ := utf8.DecodeRuneInString(line[end:])
			after = isSeparator(r)
		}
		if before && after {
			return true
		}

		// Advance one rune past this occurrence's start
		_, size := utf8.DecodeRuneInString(line[start:])
		offset = start + size
	}
	return false
}
