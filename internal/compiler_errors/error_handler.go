package compiler_errors

import (
	"fmt"
	"io"
)

type ErrorKind int

const (
	LexicalError ErrorKind = iota
	SyntacticError
	EmitError
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical"
	case SyntacticError:
		return "syntactic"
	case EmitError:
		return "emit"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

type CompilerError interface {
	GetMessage() string
	GetLine() int
	GetKind() ErrorKind
}

// ErrorHandler collects diagnostics for one or more passes. Nothing in the
// front end aborts on an error; callers decide what to do with the list.
type ErrorHandler interface {
	AddError(err CompilerError)
	HasErrors() bool
	Errors() []CompilerError
	Report() int
	Reset()
}

type CompilerErrorHandler struct {
	errors []CompilerError
	writer io.Writer
}

func NewErrorHandler(outputWriter io.Writer) ErrorHandler {
	return &CompilerErrorHandler{
		errors: make([]CompilerError, 0),
		writer: outputWriter,
	}
}

func (eh *CompilerErrorHandler) AddError(err CompilerError) {
	eh.errors = append(eh.errors, err)
}

func (eh *CompilerErrorHandler) HasErrors() bool {
	return len(eh.errors) != 0
}

func (eh *CompilerErrorHandler) Errors() []CompilerError {
	return eh.errors
}

// Report writes every collected error to the handler's writer and returns
// how many were written.
func (eh *CompilerErrorHandler) Report() int {
	if len(eh.errors) == 0 || eh.writer == nil {
		return len(eh.errors)
	}

	for _, err := range eh.errors {
		fmt.Fprintf(eh.writer, "ERROR: [line %d] %s\n", err.GetLine(), err.GetMessage())
	}

	return len(eh.errors)
}

func (eh *CompilerErrorHandler) Reset() {
	eh.errors = eh.errors[:0]
}
