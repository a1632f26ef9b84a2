package compiler_errors

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Diagnostic is the serializable form of a CompilerError.
type Diagnostic struct {
	Kind    string `json:"kind" yaml:"kind"`       // lexical, syntactic or emit
	Message string `json:"message" yaml:"message"` // human-readable description
	Line    int    `json:"line" yaml:"line"`       // 1-based source line
}

func NewDiagnostic(err CompilerError) Diagnostic {
	return Diagnostic{
		Kind:    err.GetKind().String(),
		Message: err.GetMessage(),
		Line:    err.GetLine(),
	}
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] %s error: %s", d.Line, d.Kind, d.Message)
}

func Diagnostics(errs []CompilerError) []Diagnostic {
	out := make([]Diagnostic, 0, len(errs))
	for _, err := range errs {
		out = append(out, NewDiagnostic(err))
	}

	return out
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("unknown diagnostics format %q", s)
}

// WriteDiagnostics encodes errs to w in the requested format. Text output is
// one diagnostic per line; JSON and YAML emit a list of Diagnostic values.
func WriteDiagnostics(w io.Writer, format Format, errs []CompilerError) error {
	diags := Diagnostics(errs)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(diags)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(diags); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		for _, d := range diags {
			if _, err := fmt.Fprintln(w, d.String()); err != nil {
				return err
			}
		}
		return nil
	}

	return fmt.Errorf("unknown diagnostics format %q", format)
}
