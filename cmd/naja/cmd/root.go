package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kievzenit/naja/internal/compiler_errors"
	"github.com/kievzenit/naja/internal/config"
)

var (
	cfgFile string
	verbose bool
	format  string

	cfg = config.Default()
)

// ErrHasDiagnostics is returned by a tool run whose source produced lexical,
// syntactic or emit errors. The diagnostics themselves are already printed.
var ErrHasDiagnostics = errors.New("source has diagnostics")

var rootCmd = &cobra.Command{
	Use:   "naja",
	Short: "Naja language front end",
	Long: `naja runs the front end of the Naja scripting language.

Tools:
  lex      - print the token stream
  parse    - print the syntax tree
  compile  - print the literal bytecode disassembly

Every tool reads a file when one is given and starts a prompt otherwise.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil && !errors.Is(err, ErrHasDiagnostics) {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $NAJA_CONFIG, ./naja.toml, ~/.config/naja/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "diagnostics format: text, json or yaml")
}

func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := loadConfig()
	if err != nil {
		return err
	}

	if format != "" {
		f, err := compiler_errors.ParseFormat(format)
		if err != nil {
			return err
		}
		loaded.Output.DiagnosticsFormat = string(f)
	}
	cfg = loaded

	level := cfg.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	slog.Debug("config loaded", "file", cfgFile, "format", cfg.Output.DiagnosticsFormat, "level", level)

	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadFromEnv()
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
