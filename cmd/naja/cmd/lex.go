package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kievzenit/naja/internal/compiler_errors"
	"github.com/kievzenit/naja/internal/lexer"
)

var lexWatch bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Print the tokens of a source file or of each prompt line",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args, runLex, lexWatch)
	},
}

func init() {
	lexCmd.Flags().BoolVarP(&lexWatch, "watch", "w", false, "re-run when the file changes")
	rootCmd.AddCommand(lexCmd)
}

func runLex(w io.Writer, src []byte, eh compiler_errors.ErrorHandler) {
	for _, token := range lexer.NewLexer(src, eh).Tokenize() {
		fmt.Fprintln(w, token.String())
	}
}
