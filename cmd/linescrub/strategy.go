package main

import (
	"fmt"
	"sort"
	"strings"
)

// Strategy decides whether a line contains one of the keywords
type Strategy interface {
	Name() string
	Match(line string, keywords []string) (string, bool) // first matching keyword, in keyword order
}

const defaultStrategyName = "substring"

var strategies = map[string]Strategy{
	"substring": &SubstringStrategy{},
	"word":      &WordStrategy{},
}

// LookupStrategy returns the strategy registered under name
func LookupStrategy(name string) (Strategy, error) {
	s, ok := strategies[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: unknown strategy %q (available: %s)",
			ErrConfig, name, strings.Join(StrategyNames(), ", "))
	}
	return s, nil
}

// StrategyNames lists registered strategies in sorted order
func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
