package parser

import (
	"strconv"

	"github.com/kievzenit/naja/internal/ast"
	"github.com/kievzenit/naja/internal/lexer"
)

func (p *Parser) parseIntExpr() ast.Expr {
	startToken := p.consume(lexer.INT, "expected integer literal")

	value, err := strconv.ParseInt(startToken.Value, 10, 64)
	if err != nil {
		p.eh.AddError(&InvalidLiteralError{
			Literal: startToken.Value,
			Err:     err,

			Line: startToken.Line,
		})
	}

	return &ast.IntExpr{
		StartToken: startToken,

		Value: value,
	}
}

func (p *Parser) parseFloatExpr() ast.Expr {
	startToken := p.consume(lexer.FLOAT, "expected float literal")

	value, err := strconv.ParseFloat(startToken.Value, 64)
	if err != nil {
		p.eh.AddError(&InvalidLiteralError{
			Literal: startToken.Value,
			Err:     err,

			Line: startToken.Line,
		})
	}

	return &ast.FloatExpr{
		StartToken: startToken,

		Value: value,
	}
}

func (p *Parser) parseStringExpr() ast.Expr {
	startToken := p.consume(lexer.STRING, "expected string literal")

	return &ast.StringExpr{
		StartToken: startToken,

		Value: startToken.Value,
	}
}

func (p *Parser) parseNullExpr() ast.Expr {
	return &ast.NullExpr{
		StartToken: p.consume(lexer.NULL, "expected 'null'"),
	}
}

func (p *Parser) parseBoolExpr() ast.Expr {
	startToken := p.curr
	p.read()

	return &ast.BoolExpr{
		StartToken: startToken,

		Value: startToken.Kind == lexer.TRUE,
	}
}

func (p *Parser) parseIdentExpr() ast.Expr {
	return p.parseIdentifier("expected identifier")
}

func (p *Parser) parseIdentifier(msg string) *ast.IdentExpr {
	startToken := p.consume(lexer.IDENT, msg)

	return &ast.IdentExpr{
		StartToken: startToken,

		Value: startToken.Value,
	}
}

func (p *Parser) parseThisExpr() ast.Expr {
	return &ast.ThisExpr{
		StartToken: p.consume(lexer.THIS, "expected 'this'"),
	}
}

func (p *Parser) parseBaseExpr() ast.Expr {
	return &ast.BaseExpr{
		StartToken: p.consume(lexer.BASE, "expected 'base'"),
	}
}

func (p *Parser) parseGroupExpr() ast.Expr {
	startToken := p.consume(lexer.LPAREN, "expected '('")
	expr := p.parseExpr(precLowest)
	p.consume(lexer.RPAREN, "expected ')' after grouped expression")

	return &ast.GroupExpr{
		StartToken: startToken,

		Expr: expr,
	}
}

func (p *Parser) parseFunctionExpr() ast.Expr {
	startToken := p.consume(lexer.FUNCTION, "expected 'function'")
	params := p.parseParams()
	body := p.parseScopeStmt()

	return &ast.FunctionExpr{
		StartToken: startToken,

		Params: params,
		Body:   body,
	}
}

func (p *Parser) parseArrayExpr() ast.Expr {
	startToken := p.consume(lexer.LBRACKET, "expected '['")
	elements := p.parseExprList(lexer.RBRACKET, "expected ']' after array elements")

	return &ast.ArrayExpr{
		StartToken: startToken,

		Elements: elements,
	}
}

// parseTableExpr reads {key: value, ...}. Keys bind tighter than the ternary
// operator so that the ':' after a key is never taken as a ternary colon.
func (p *Parser) parseTableExpr() ast.Expr {
	startToken := p.consume(lexer.LBRACE, "expected '{'")

	entries := make([]ast.TableEntry, 0)
	if p.match(lexer.RBRACE) {
		return &ast.TableExpr{
			StartToken: startToken,

			Entries: entries,
		}
	}

	for {
		key := p.parseExpr(precTernary)
		p.consume(lexer.COLON, "expected ':' after table key")
		value := p.parseExpr(precLowest)

		entries = append(entries, ast.TableEntry{
			Key:   key,
			Value: value,
		})

		if !p.match(lexer.COMMA) {
			break
		}
	}

	p.consume(lexer.RBRACE, "expected '}' after table entries")

	return &ast.TableExpr{
		StartToken: startToken,

		Entries: entries,
	}
}

func (p *Parser) parsePrefixExpr() ast.Expr {
	op := p.curr
	p.read()

	right := p.parseExpr(precPrefix)

	return &ast.PrefixExpr{
		StartToken: op,

		Op:    op,
		Right: right,
	}
}

func (p *Parser) parseInfixExpr(left ast.Expr) ast.Expr {
	op := p.curr
	p.read()

	right := p.parseExpr(precedenceOf(op.Kind))

	return &ast.InfixExpr{
		StartToken: left.FirstToken(),

		Left:  left,
		Op:    op,
		Right: right,
	}
}

// parseAssignExpr parses the right side at the lowest level, which makes
// a = b = c group as a = (b = c).
func (p *Parser) parseAssignExpr(left ast.Expr) ast.Expr {
	op := p.curr
	p.read()

	right := p.parseExpr(precLowest)

	return &ast.InfixExpr{
		StartToken: left.FirstToken(),

		Left:  left,
		Op:    op,
		Right: right,
	}
}

func (p *Parser) parsePostfixExpr(left ast.Expr) ast.Expr {
	op := p.curr
	p.read()

	return &ast.PostfixExpr{
		StartToken: left.FirstToken(),

		Left: left,
		Op:   op,
	}
}

// parseTernaryExpr is right associative: the false branch may itself be a
// ternary, but an assignment after it applies to the whole conditional.
func (p *Parser) parseTernaryExpr(cond ast.Expr) ast.Expr {
	qmark := p.curr
	p.read()

	then := p.parseExpr(precLowest)
	colon := p.consume(lexer.COLON, "expected ':' in conditional expression")
	els := p.parseExpr(precTernary - 1)

	return &ast.TernaryExpr{
		StartToken: cond.FirstToken(),

		Cond:  cond,
		QMark: qmark,
		Then:  then,
		Colon: colon,
		Else:  els,
	}
}

func (p *Parser) parseCallExpr(callee ast.Expr) ast.Expr {
	p.consume(lexer.LPAREN, "expected '('")
	args := p.parseExprList(lexer.RPAREN, "expected ')' after arguments")

	return &ast.CallExpr{
		StartToken: callee.FirstToken(),

		Callee: callee,
		Args:   args,
	}
}

func (p *Parser) parseIndexExpr(left ast.Expr) ast.Expr {
	p.consume(lexer.LBRACKET, "expected '['")
	index := p.parseExpr(precLowest)
	p.consume(lexer.RBRACKET, "expected ']' after index")

	return &ast.IndexExpr{
		StartToken: left.FirstToken(),

		Left:  left,
		Index: index,
	}
}

func (p *Parser) parseMemberExpr(left ast.Expr) ast.Expr {
	p.consume(lexer.DOT, "expected '.'")
	name := p.consume(lexer.IDENT, "expected member name after '.'")

	return &ast.IndexExpr{
		StartToken: left.FirstToken(),

		Left: left,
		Index: &ast.StringExpr{
			StartToken: name,

			Value: name.Value,
		},
		Member: true,
	}
}

// parseExprList reads comma separated expressions up to and including the
// closing token.
func (p *Parser) parseExprList(end lexer.TokenKind, msg string) []ast.Expr {
	exprs := make([]ast.Expr, 0)
	if p.match(end) {
		return exprs
	}

	for {
		exprs = append(exprs, p.parseExpr(precLowest))
		if !p.match(lexer.COMMA) {
			break
		}
	}

	p.consume(end, msg)
	return exprs
}

func (p *Parser) parseParams() []*ast.IdentExpr {
	p.consume(lexer.LPAREN, "expected '(' before parameters")

	params := make([]*ast.IdentExpr, 0)
	if p.match(lexer.RPAREN) {
		return params
	}

	for {
		params = append(params, p.parseIdentifier("expected parameter name"))
		if !p.match(lexer.COMMA) {
			break
		}
	}

	p.consume(lexer.RPAREN, "expected ')' after parameters")
	return params
}
