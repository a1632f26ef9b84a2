// Package ast holds the syntax tree produced by the parser. The set of node
// types is closed: Expr and Stmt can only be implemented inside this package,
// and consumers switch over the concrete types.
package ast

import (
	"fmt"
	"strings"

	"github.com/kievzenit/naja/internal/lexer"
)

type AstNode interface {
	fmt.Stringer
	FirstToken() *lexer.Token
	astNode()
}

type Expr interface {
	AstNode
	exprNode()
}

type Stmt interface {
	AstNode
	stmtNode()
}

// TranslationUnit is the root of a parsed source.
type TranslationUnit struct {
	Stmts []Stmt
}

func (*TranslationUnit) astNode()  {}
func (*TranslationUnit) stmtNode() {}

func (t *TranslationUnit) FirstToken() *lexer.Token {
	if len(t.Stmts) == 0 {
		return nil
	}
	return t.Stmts[0].FirstToken()
}

func (t *TranslationUnit) String() string {
	lines := make([]string, 0, len(t.Stmts))
	for _, stmt := range t.Stmts {
		lines = append(lines, stmt.String())
	}
	return strings.Join(lines, "\n")
}
