package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultTargetPath = "frontend/src/components/AdminDashboard/AddToState/AddToState.js"
	defaultEncoding   = "utf-8"

	confirmationMessage = "Removed all lines containing transaction history keywords"
)

// Keywords removed by a run with no configuration
var defaultKeywords = []string{
	"TransactionReportModal",
	"transactionHistory",
	"showHistoryModal",
	"historyModalRef",
	"historySearchTerm",
	"filteredHistory",
	"expandedTransactions",
	"lastTransaction",
	"showTransactionReport",
	"selectedTransactionForReport",
	"isTransactionInProgress",
	"lastTransactionDetails",
	"loadTransactionHistory",
	"saveTransactionToDatabase",
	"deactivateTransactionInDatabase",
	"handleDeleteAllHistory",
	"performDeleteAllHistory",
	"handleUndoTransaction",
	"performUndoTransaction",
	"handleUndoSingleItem",
	"performUndoSingleItem",
	"showUndoOptions",
}

// Config describes a single scrub run
type Config struct {
	Path     string   `yaml:"file"`
	Encoding string   `yaml:"encoding"`
	Strategy string   `yaml:"strategy"`
	Keywords []string `yaml:"keywords"`
}

// DefaultConfig returns the built-in target, keywords and encoding
func DefaultConfig() Config {
	return Config{
		Path:     defaultTargetPath,
		Encoding: defaultEncoding,
		Strategy: defaultStrategyName,
		Keywords: slices.Clone(defaultKeywords),
	}
}

// Merge returns c with every non-empty field of o applied on top
func (c Config) Merge(o Config) Config {
	if o.Path != "" {
		c.Path = o.Path
	}
	if o.Encoding != "" {
		c.Encoding = o.Encoding
	}
	if o.Strategy != "" {
		c.Strategy = o.Strategy
	}
	if len(o.Keywords) > 0 {
		c.Keywords = slices.Clone(o.Keywords)
	}
	return c
}

// Validate checks that the config names a file, a known encoding and strategy,
// and carries no empty keywords (an empty keyword would match every line).
func (c Config) Validate() error {
	if strings.TrimSpace(c.Path) == "" {
		return fmt.Errorf("%w: target file path is empty", ErrConfig)
	}
	if _, err := LookupEncoding(c.Encoding); err != nil {
		return err
	}
	if _, err := LookupStrategy(c.Strategy); err != nil {
		return err
	}
	for i, kw := range c.Keywords {
		if kw == "" {
			return fmt.Errorf("%w: keyword %d is empty", ErrConfig, i+1)
		}
	}
	return nil
}

// LoadConfigFile reads a YAML config. Unknown fields are rejected.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: reading %s: %w", ErrConfig, path, err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Empty file: nothing to override
		if errors.Is(err, io.EOF) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("%w: parsing %s: %w", ErrConfig, path, err)
	}
	return cfg, nil
}
