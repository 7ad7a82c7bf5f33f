package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"numfacts/cmd/numfacts/ui"
	"numfacts/internal/facts"
)

var (
	// Global flags
	verbose bool
	plain   bool

	// Logger
	logger *zap.Logger
)

// rootCmd prints both batteries when invoked without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "numfacts",
	Short: "numfacts - set algebra and numeric type facts on your terminal",
	Long: `numfacts computes a fixed battery of facts about set algebra and
numeric type behavior and prints them as readable sections.

Everything is computed from literals, so two runs produce the same facts
in the same order. Run without arguments for the full demonstration, or
pick one battery:

  numfacts sets      set creation, algebra, methods, relationships
  numfacts numbers   integers, floats, complex, decimals, rationals`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runSets(cmd.OutOrStdout()); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout()); err != nil {
			return err
		}
		return runNumbers(cmd.OutOrStdout())
	},
}

// setsCmd prints only the set battery.
var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "Print the set operations battery",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSets(cmd.OutOrStdout())
	},
}

// numbersCmd prints only the numeric battery.
var numbersCmd = &cobra.Command{
	Use:   "numbers",
	Short: "Print the number types battery",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNumbers(cmd.OutOrStdout())
	},
}

func styles() ui.Styles {
	if plain {
		return ui.PlainStyles()
	}
	return ui.NewStyles()
}

func runSets(w io.Writer) error {
	logger.Debug("building set facts")
	sections, err := facts.SetFacts()
	if err != nil {
		logger.Error("set facts failed", zap.Error(err))
		return fmt.Errorf("set facts: %w", err)
	}
	logger.Debug("rendering set facts", zap.Int("sections", len(sections)))
	return ui.RenderBattery(w, styles(), "SET OPERATIONS", sections)
}

func runNumbers(w io.Writer) error {
	logger.Debug("building number facts")
	sections, err := facts.NumberFacts()
	if err != nil {
		logger.Error("number facts failed", zap.Error(err))
		return fmt.Errorf("number facts: %w", err)
	}
	logger.Debug("rendering number facts", zap.Int("sections", len(sections)))
	return ui.RenderBattery(w, styles(), "NUMBER TYPES", sections)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "disable colored output")
	rootCmd.AddCommand(setsCmd)
	rootCmd.AddCommand(numbersCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
