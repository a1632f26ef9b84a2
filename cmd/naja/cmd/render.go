package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/kievzenit/naja/internal/compiler_errors"
)

var (
	ColorError = lipgloss.Color("#EF4444")
	ColorMuted = lipgloss.Color("#6B7280")

	lineStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	errorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
)

// renderDiagnostics prints errs in the configured format. Styled output is
// only used for text diagnostics with color enabled.
func renderDiagnostics(w io.Writer, errs []compiler_errors.CompilerError) error {
	format := cfg.Format()
	if format != compiler_errors.FormatText || !cfg.Output.Color {
		return compiler_errors.WriteDiagnostics(w, format, errs)
	}

	for _, d := range compiler_errors.Diagnostics(errs) {
		_, err := fmt.Fprintf(w, "%s %s %s\n",
			lineStyle.Render(fmt.Sprintf("[line %d]", d.Line)),
			errorStyle.Render(d.Kind+" error:"),
			d.Message,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
