package cmd

import (
	"fmt"
	"io"

	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"

	"github.com/kievzenit/naja/internal/compiler_errors"
)

var (
	parseWatch bool
	parseDump  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Print the syntax tree of a source file or of each prompt line",
	Long: `parse prints the canonical source form of the parsed tree. With --dump
the tree is printed node by node instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, args, runParse, parseWatch)
	},
}

func init() {
	parseCmd.Flags().BoolVarP(&parseWatch, "watch", "w", false, "re-run when the file changes")
	parseCmd.Flags().BoolVarP(&parseDump, "dump", "d", false, "dump the tree structure")
	rootCmd.AddCommand(parseCmd)
}

func runParse(w io.Writer, src []byte, eh compiler_errors.ErrorHandler) {
	unit := parseSource(src, eh)

	if parseDump || cfg.Output.Dump {
		fmt.Fprintln(w, litter.Sdump(unit))
		return
	}

	if len(unit.Stmts) != 0 {
		fmt.Fprintln(w, unit.String())
	}
}
