package main

import "strings"

// SubstringStrategy matches a keyword anywhere in the line, including inside
// longer identifiers ("lastTransaction" matches "lastTransactionDetails").
type SubstringStrategy struct{}

func (s *SubstringStrategy) Name() string {
	return "substring"
}

func (s *SubstringStrategy) Match(line string, keywords []string) (string, bool) {
	for _, kw := range keywords {
		if strings.Contains(line, kw) {
			return kw, true
		}
	}
	return "", false
}
