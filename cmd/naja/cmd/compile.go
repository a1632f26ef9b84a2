package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/kievzenit/naja/internal/compiler_errors"
	"github.com/kievzenit/naja/internal/emitter"
)

var compileWatch bool

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Print the bytecode of a source file or of each prompt line",
	Long: `compile encodes literals, expression statements and returns into a chunk
and prints its disassembly. Other statements are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args, runCompile, compileWatch)
	},
}

func init() {
	compileCmd.Flags().BoolVarP(&compileWatch, "watch", "w", false, "re-run when the file changes")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(w io.Writer, src []byte, eh compiler_errors.ErrorHandler) {
	unit := parseSource(src, eh)
	if eh.HasErrors() {
		return
	}

	c := emitter.NewEmitter(eh).Emit(unit)
	slog.Debug("emitted chunk", "codes", len(c.Codes), "objects", len(c.Objects))
	if eh.HasErrors() {
		return
	}

	fmt.Fprint(w, c.String())
}
