package compiler_errors_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/kievzenit/naja/internal/compiler_errors"
)

type fakeError struct {
	message string
	line    int
	kind    compiler_errors.ErrorKind
}

func (e fakeError) GetMessage() string                 { return e.message }
func (e fakeError) GetLine() int                       { return e.line }
func (e fakeError) GetKind() compiler_errors.ErrorKind { return e.kind }

var sampleErrors = []compiler_errors.CompilerError{
	fakeError{"unterminated string", 3, compiler_errors.LexicalError},
	fakeError{"expected ';'", 7, compiler_errors.SyntacticError},
}

func TestErrorHandler(t *testing.T) {
	var out bytes.Buffer
	eh := compiler_errors.NewErrorHandler(&out)
	if eh.HasErrors() {
		t.Fatal("new handler reports errors")
	}

	for _, err := range sampleErrors {
		eh.AddError(err)
	}
	if n := eh.Report(); n != 2 {
		t.Errorf("Report() = %d, want 2", n)
	}

	want := "ERROR: [line 3] unterminated string\nERROR: [line 7] expected ';'\n"
	if out.String() != want {
		t.Errorf("report = %q, want %q", out.String(), want)
	}

	eh.Reset()
	if eh.HasErrors() || len(eh.Errors()) != 0 {
		t.Errorf("handler not empty after Reset: %v", eh.Errors())
	}
}

func TestReportWithoutWriter(t *testing.T) {
	eh := compiler_errors.NewErrorHandler(nil)
	eh.AddError(sampleErrors[0])
	if n := eh.Report(); n != 1 {
		t.Errorf("Report() = %d, want 1", n)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := map[compiler_errors.ErrorKind]string{
		compiler_errors.LexicalError:   "lexical",
		compiler_errors.SyntacticError: "syntactic",
		compiler_errors.EmitError:      "emit",
		compiler_errors.ErrorKind(42):  "ErrorKind(42)",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    compiler_errors.Format
		wantErr bool
	}{
		{"", compiler_errors.FormatText, false},
		{"text", compiler_errors.FormatText, false},
		{" JSON ", compiler_errors.FormatJSON, false},
		{"yml", compiler_errors.FormatYAML, false},
		{"yaml", compiler_errors.FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		got, err := compiler_errors.ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteDiagnosticsText(t *testing.T) {
	var out bytes.Buffer
	if err := compiler_errors.WriteDiagnostics(&out, compiler_errors.FormatText, sampleErrors); err != nil {
		t.Fatalf("WriteDiagnostics() error = %v", err)
	}

	want := "[line 3] lexical error: unterminated string\n[line 7] syntactic error: expected ';'\n"
	if out.String() != want {
		t.Errorf("text = %q, want %q", out.String(), want)
	}
}

func TestWriteDiagnosticsStructured(t *testing.T) {
	want := compiler_errors.Diagnostics(sampleErrors)

	decoders := map[compiler_errors.Format]func([]byte, any) error{
		compiler_errors.FormatJSON: json.Unmarshal,
		compiler_errors.FormatYAML: yaml.Unmarshal,
	}

	for format, decode := range decoders {
		var out bytes.Buffer
		if err := compiler_errors.WriteDiagnostics(&out, format, sampleErrors); err != nil {
			t.Fatalf("WriteDiagnostics(%s) error = %v", format, err)
		}

		var got []compiler_errors.Diagnostic
		if err := decode(out.Bytes(), &got); err != nil {
			t.Fatalf("%s output does not decode: %v\n%s", format, err, out.String())
		}
		if len(got) != len(want) {
			t.Fatalf("%s: got %d diagnostics, want %d", format, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s diagnostic %d = %+v, want %+v", format, i, got[i], want[i])
			}
		}
	}
}

func TestWriteDiagnosticsUnknownFormat(t *testing.T) {
	var out bytes.Buffer
	if err := compiler_errors.WriteDiagnostics(&out, "xml", sampleErrors); err == nil {
		t.Error("expected error for unknown format")
	}
}
