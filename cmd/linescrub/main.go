package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	configPath string
	file       string
	encoding   string
	strategy   string
	keywords   []string
	reportPath string
	dryRun     bool
	verbose    bool
	noColor    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	var logger *zap.Logger

	cmd := &cobra.Command{
		Use:   "linescrub",
		Short: "Remove every line containing a keyword from a source file",
		Long: `linescrub reads a text file, drops every line that contains one of the
configured keywords and replaces the file with the remaining lines.

Run without flags to scrub the built-in target with the built-in keyword list.
Use --dry-run to preview the removal without touching the file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			theme = DefaultTheme
			if opts.noColor {
				theme = PlainTheme
			}
			var err error
			logger, err = newLogger(opts.verbose, opts.noColor)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			theme = DefaultTheme
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger.Debug("resolved config",
				zap.String("file", cfg.Path),
				zap.String("encoding", cfg.Encoding),
				zap.String("strategy", cfg.Strategy),
				zap.Int("keywords", len(cfg.Keywords)))
			return run(cfg, opts, cmd.OutOrStdout(), logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file (file, encoding, strategy, keywords)")
	flags.StringVarP(&opts.file, "file", "f", defaultTargetPath, "File to scrub")
	flags.StringVarP(&opts.encoding, "encoding", "e", defaultEncoding, "Text encoding of the file")
	flags.StringVarP(&opts.strategy, "strategy", "s", defaultStrategyName, "Keyword matching: substring or word")
	flags.StringArrayVarP(&opts.keywords, "keyword", "k", nil, "Keyword to remove (repeatable, replaces the built-in list)")
	flags.StringVar(&opts.reportPath, "report", "", "Write a JSON removal report to this file")
	flags.BoolVarP(&opts.dryRun, "dry-run", "n", false, "Preview removals without writing the file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging and per-line output")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable styled output")

	return cmd
}

// resolveConfig layers built-in defaults, the config file and explicitly set flags
func resolveConfig(cmd *cobra.Command, opts options) (Config, error) {
	cfg := DefaultConfig()

	if opts.configPath != "" {
		fileCfg, err := LoadConfigFile(opts.configPath)
		if err != nil {
			return Config{}, err
		}
		cfg = cfg.Merge(fileCfg)
	}

	flags := cmd.Flags()
	var override Config
	if flags.Changed("file") {
		override.Path = opts.file
	}
	if flags.Changed("encoding") {
		override.Encoding = opts.encoding
	}
	if flags.Changed("strategy") {
		override.Strategy = opts.strategy
	}
	if flags.Changed("keyword") {
		override.Keywords = opts.keywords
	}
	cfg = cfg.Merge(override)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// run performs read, filter and write (or preview) for one config
func run(cfg Config, opts options, out io.Writer, logger *zap.Logger) error {
	enc, err := LookupEncoding(cfg.Encoding)
	if err != nil {
		return err
	}
	strategy, err := LookupStrategy(cfg.Strategy)
	if err != nil {
		return err
	}

	text, err := ReadText(cfg.Path, enc)
	if err != nil {
		return err
	}
	logger.Debug("read target", zap.String("file", cfg.Path), zap.Int("chars", len(text)))

	result := FilterLines(text, cfg.Keywords, strategy)
	logger.Debug("filtered lines",
		zap.Int("total", result.Total),
		zap.Int("kept", len(result.Kept)),
		zap.Int("removed", len(result.Removed)))
	for _, rm := range result.Removed {
		logger.Debug("removing line", zap.Int("line", rm.Line), zap.String("keyword", rm.Keyword))
	}

	if opts.dryRun {
		if err := writeReport(cfg, result, opts, logger); err != nil {
			return err
		}
		logger.Debug("rendering preview", zap.String("file", cfg.Path), zap.String("strategy", strategy.Name()))
		fmt.Fprint(out, RenderMarkdown(BuildPreview(cfg.Path, strategy.Name(), text, result), opts.noColor))
		PrintSummary(out, cfg.Path, result)
		return nil
	}

	if !result.Changed() {
		logger.Warn("no lines matched any keyword", zap.String("file", cfg.Path))
	}

	logger.Debug("replacing target via temp file", zap.String("dir", filepath.Dir(cfg.Path)))
	if err := WriteLines(cfg.Path, result.Kept, enc); err != nil {
		return err
	}
	logger.Info("replaced target", zap.String("file", cfg.Path), zap.Int("removed", len(result.Removed)))

	// Only report removals that actually happened
	if err := writeReport(cfg, result, opts, logger); err != nil {
		return err
	}

	if opts.verbose {
		PrintSummary(out, cfg.Path, result)
		PrintRemovedLines(out, cfg.Path, result)
	}
	fmt.Fprintln(out, confirmationMessage)
	return nil
}

func writeReport(cfg Config, result Result, opts options, logger *zap.Logger) error {
	if opts.reportPath == "" {
		return nil
	}
	if err := WriteJSONReport(NewJSONReport(cfg, result, opts.dryRun), opts.reportPath); err != nil {
		return err
	}
	logger.Debug("wrote report", zap.String("path", opts.reportPath))
	return nil
}
