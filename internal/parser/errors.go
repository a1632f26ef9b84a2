package parser

import (
	"fmt"

	"github.com/kievzenit/naja/internal/compiler_errors"
	"github.com/kievzenit/naja/internal/lexer"
)

type UnexpectedExpectedError struct {
	Unexpected lexer.TokenKind
	Expected   lexer.TokenKind
	Message    string

	Line int
}

func (e *UnexpectedExpectedError) GetMessage() string {
	return fmt.Sprintf("%s: unexpected token '%s', expected '%s'", e.Message, e.Unexpected, e.Expected)
}

func (e *UnexpectedExpectedError) GetLine() int {
	return e.Line
}

func (e *UnexpectedExpectedError) GetKind() compiler_errors.ErrorKind {
	return compiler_errors.SyntacticError
}

type UnexpectedError struct {
	Unexpected lexer.TokenKind
	Context    string

	Line int
}

func (e *UnexpectedError) GetMessage() string {
	return fmt.Sprintf("unexpected token '%s' in %s", e.Unexpected, e.Context)
}

func (e *UnexpectedError) GetLine() int {
	return e.Line
}

func (e *UnexpectedError) GetKind() compiler_errors.ErrorKind {
	return compiler_errors.SyntacticError
}

type NoPrefixParseFnError struct {
	Kind lexer.TokenKind

	Line int
}

func (e *NoPrefixParseFnError) GetMessage() string {
	return fmt.Sprintf("no prefix parse function for %s", e.Kind)
}

func (e *NoPrefixParseFnError) GetLine() int {
	return e.Line
}

func (e *NoPrefixParseFnError) GetKind() compiler_errors.ErrorKind {
	return compiler_errors.SyntacticError
}

// MissingQualifierError is reported for an inherit entry written without
// public, protected or private in front of it.
type MissingQualifierError struct {
	Base string

	Line int
}

func (e *MissingQualifierError) GetMessage() string {
	return fmt.Sprintf("inherit entry '%s' has no access qualifier", e.Base)
}

func (e *MissingQualifierError) GetLine() int {
	return e.Line
}

func (e *MissingQualifierError) GetKind() compiler_errors.ErrorKind {
	return compiler_errors.SyntacticError
}

type InvalidLiteralError struct {
	Literal string
	Err     error

	Line int
}

func (e *InvalidLiteralError) GetMessage() string {
	return fmt.Sprintf("invalid number literal '%s': %v", e.Literal, e.Err)
}

func (e *InvalidLiteralError) GetLine() int {
	return e.Line
}

func (e *InvalidLiteralError) GetKind() compiler_errors.ErrorKind {
	return compiler_errors.SyntacticError
}
