package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const quitCommand = ":quit"

// runRepl feeds every prompt line to fn until EOF, Ctrl-C or :quit. Each
// line is a separate source; diagnostics never end the session.
func runRepl(cmd *cobra.Command, fn runFn) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if history := cfg.Repl.HistoryFile; history != "" {
		loadHistory(ln, history)
		defer saveHistory(ln, history)
	}

	out := cmd.OutOrStdout()
	for {
		line, err := ln.Prompt(cfg.Repl.Prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read prompt: %w", err)
		}

		switch strings.TrimSpace(line) {
		case "":
			continue
		case quitCommand:
			return nil
		}

		ln.AppendHistory(line)
		if err := runSource(cmd, fn, []byte(line)); err != nil && !isSourceError(err) {
			return err
		}
	}
}

func loadHistory(ln *liner.State, path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	if _, err := ln.ReadHistory(f); err != nil {
		slog.Warn("failed to read history", "file", path, "error", err)
	}
}

func saveHistory(ln *liner.State, path string) {
	f, err := os.Create(path)
	if err != nil {
		slog.Warn("failed to save history", "file", path, "error", err)
		return
	}
	defer f.Close()

	if _, err := ln.WriteHistory(f); err != nil {
		slog.Warn("failed to save history", "file", path, "error", err)
	}
}
