package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/kievzenit/naja/internal/ast"
	"github.com/kievzenit/naja/internal/compiler_errors"
	"github.com/kievzenit/naja/internal/lexer"
	"github.com/kievzenit/naja/internal/parser"
)

// runFn processes one piece of source and writes its result to w. Errors in
// the source go to eh, never to the return path.
type runFn func(w io.Writer, src []byte, eh compiler_errors.ErrorHandler)

func parseSource(src []byte, eh compiler_errors.ErrorHandler) *ast.TranslationUnit {
	tokens := lexer.NewLexer(src, eh).Tokenize()
	slog.Debug("lexed source", "tokens", len(tokens))

	return parser.NewParser(lexer.NewTokenScanner(tokens), eh).Parse()
}

// runSource runs fn over src and prints any diagnostics it produced.
func runSource(cmd *cobra.Command, fn runFn, src []byte) error {
	eh := compiler_errors.NewErrorHandler(nil)
	fn(cmd.OutOrStdout(), src, eh)

	if !eh.HasErrors() {
		return nil
	}

	if err := renderDiagnostics(cmd.ErrOrStderr(), eh.Errors()); err != nil {
		return err
	}
	return ErrHasDiagnostics
}

func runFile(cmd *cobra.Command, fn runFn, path string) error {
	src, err := readSource(path)
	if err != nil {
		return err
	}

	slog.Debug("running", "tool", cmd.Name(), "file", path, "bytes", len(src))
	return runSource(cmd, fn, src)
}

// runTool is the shared RunE body of the lex, parse and compile commands.
func runTool(cmd *cobra.Command, args []string, fn runFn, watch bool) error {
	if len(args) == 0 {
		return runRepl(cmd, fn)
	}

	path := args[0]
	if !watch {
		return runFile(cmd, fn, path)
	}

	ctx, stop := signal.NotifyContext(withContext(cmd), os.Interrupt)
	defer stop()

	rerun := func() error { return runFile(cmd, fn, path) }
	if err := rerun(); err != nil && !isSourceError(err) {
		return err
	}

	return watchFile(ctx, path, cfg.Watch.Debounce.Duration, rerun)
}

func isSourceError(err error) bool {
	return errors.Is(err, ErrHasDiagnostics)
}

func withContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
