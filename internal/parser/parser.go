package parser

import (
	"slices"

	"github.com/kievzenit/naja/internal/ast"
	"github.com/kievzenit/naja/internal/compiler_errors"
	"github.com/kievzenit/naja/internal/lexer"
)

// Parser builds a syntax tree from a token stream. It never stops at the
// first problem: every error goes to the error handler and a best-effort
// tree is returned. A Parser is meant for a single Parse call.
type Parser struct {
	scanner lexer.TokenScanner
	eh      compiler_errors.ErrorHandler

	curr *lexer.Token
}

func NewParser(scanner lexer.TokenScanner, eh compiler_errors.ErrorHandler) *Parser {
	return &Parser{
		scanner: scanner,
		eh:      eh,
		curr:    scanner.Read(),
	}
}

func (p *Parser) Parse() *ast.TranslationUnit {
	stmts := make([]ast.Stmt, 0)
	for !p.isAtEnd() {
		before := p.curr
		stmts = append(stmts, p.parseStmt())
		p.ensureProgress(before)
	}

	return &ast.TranslationUnit{
		Stmts: stmts,
	}
}

func (p *Parser) parseExpr(prec precedence) ast.Expr {
	prefix, ok := prefixParseFns[p.curr.Kind]
	if !ok {
		return p.noPrefixParseFn()
	}

	left := prefix(p)
	for prec < precedenceOf(p.curr.Kind) {
		if postfix, ok := postfixParseFns[p.curr.Kind]; ok {
			left = postfix(p, left)
			continue
		}

		infix, ok := infixParseFns[p.curr.Kind]
		if !ok {
			return left
		}
		left = infix(p, left)
	}

	return left
}

func (p *Parser) noPrefixParseFn() ast.Expr {
	token := p.curr
	p.eh.AddError(&NoPrefixParseFnError{
		Kind: token.Kind,
		Line: token.Line,
	})

	if token.Kind != lexer.EOF {
		p.read()
	}

	return &ast.NullExpr{
		StartToken: token,
	}
}

func (p *Parser) read() *lexer.Token {
	p.curr = p.scanner.Read()
	return p.curr
}

// consume returns the current token and moves past it when it has the given
// kind. On a mismatch the error is reported, nothing is consumed and the
// trailing EOF token is returned in place of the missing one.
func (p *Parser) consume(kind lexer.TokenKind, msg string) *lexer.Token {
	if p.curr.Kind != kind {
		p.eh.AddError(&UnexpectedExpectedError{
			Unexpected: p.curr.Kind,
			Expected:   kind,
			Message:    msg,

			Line: p.curr.Line,
		})
		return p.scanner.Last()
	}

	token := p.curr
	p.read()
	return token
}

func (p *Parser) match(kind lexer.TokenKind) bool {
	if p.curr.Kind != kind {
		return false
	}

	p.read()
	return true
}

func (p *Parser) isCurrAny(kinds ...lexer.TokenKind) bool {
	return slices.Contains(kinds, p.curr.Kind)
}

func (p *Parser) isAtEnd() bool {
	return p.curr.Kind == lexer.EOF
}

// ensureProgress skips the current token when a statement parser returned
// without consuming anything, so that loops over statements terminate.
func (p *Parser) ensureProgress(before *lexer.Token) {
	if p.curr == before && !p.isAtEnd() {
		p.read()
	}
}

func (p *Parser) unexpected(context string) {
	p.eh.AddError(&UnexpectedError{
		Unexpected: p.curr.Kind,
		Context:    context,

		Line: p.curr.Line,
	})
}
