package parser

import (
	"github.com/kievzenit/naja/internal/ast"
	"github.com/kievzenit/naja/internal/lexer"
)

func (p *Parser) parseStmt() ast.Stmt {
	switch p.curr.Kind {
	case lexer.VAR:
		return p.parseVarDeclStmt()
	case lexer.RETURN:
		return p.parseReturnStmt()
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.LBRACE:
		return p.parseScopeStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	case lexer.FOR:
		return p.parseForStmt()
	case lexer.BREAK:
		return p.parseBreakStmt()
	case lexer.CONTINUE:
		return p.parseContinueStmt()
	case lexer.CLASS:
		return p.parseClassDeclStmt()
	case lexer.FUNCTION:
		// Without a name this is a function literal in expression position.
		if p.scanner.Peek().Kind == lexer.IDENT {
			return p.parseFuncDeclStmt()
		}
	}

	return p.parseExprStmt()
}

func (p *Parser) parseExprStmt() *ast.ExprStmt {
	expr := p.parseExpr(precLowest)
	p.consume(lexer.SEMICOLON, "expected ';' after expression")

	return &ast.ExprStmt{
		Expr: expr,
	}
}

func (p *Parser) parseVarDeclStmt() *ast.VarDeclStmt {
	startToken := p.consume(lexer.VAR, "expected 'var'")

	vars := make([]ast.VarDecl, 0)
	for {
		name := p.parseIdentifier("expected variable name")

		var value ast.Expr
		if p.curr.Kind == lexer.ASSIGN {
			p.read()
			value = p.parseExpr(precLowest)
		} else {
			value = &ast.NullExpr{
				StartToken: name.StartToken,
			}
		}

		vars = append(vars, ast.VarDecl{
			Name:  name,
			Value: value,
		})

		if !p.match(lexer.COMMA) {
			break
		}
	}

	p.consume(lexer.SEMICOLON, "expected ';' after variable declaration")

	return &ast.VarDeclStmt{
		StartToken: startToken,

		Vars: vars,
	}
}

func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	startToken := p.consume(lexer.RETURN, "expected 'return'")

	if p.match(lexer.SEMICOLON) {
		return &ast.ReturnStmt{
			StartToken: startToken,
		}
	}

	expr := p.parseExpr(precLowest)
	p.consume(lexer.SEMICOLON, "expected ';' after return value")

	return &ast.ReturnStmt{
		StartToken: startToken,

		Expr: expr,
	}
}

func (p *Parser) parseIfStmt() *ast.IfStmt {
	startToken := p.consume(lexer.IF, "expected 'if'")

	p.consume(lexer.LPAREN, "expected '(' after 'if'")
	cond := p.parseExpr(precLowest)
	p.consume(lexer.RPAREN, "expected ')' after if condition")

	then := p.parseStmt()

	if !p.match(lexer.ELSE) {
		return &ast.IfStmt{
			StartToken: startToken,

			Cond: cond,
			Then: then,
		}
	}

	return &ast.IfStmt{
		StartToken: startToken,

		Cond: cond,
		Then: then,
		Else: p.parseStmt(),
	}
}

func (p *Parser) parseScopeStmt() *ast.ScopeStmt {
	startToken := p.consume(lexer.LBRACE, "expected '{'")

	stmts := make([]ast.Stmt, 0)
	for !p.isCurrAny(lexer.EOF, lexer.RBRACE) {
		before := p.curr
		stmts = append(stmts, p.parseStmt())
		p.ensureProgress(before)
	}

	p.consume(lexer.RBRACE, "expected '}' after block")

	return &ast.ScopeStmt{
		StartToken: startToken,

		Stmts: stmts,
	}
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	startToken := p.consume(lexer.WHILE, "expected 'while'")

	p.consume(lexer.LPAREN, "expected '(' after 'while'")
	cond := p.parseExpr(precLowest)
	p.consume(lexer.RPAREN, "expected ')' after while condition")

	body := p.parseStmt()

	return &ast.WhileStmt{
		StartToken: startToken,

		Cond: cond,
		Body: body,
	}
}

// parseForStmt rewrites
//
//	for (init; cond; update1, update2) body
//
// into
//
//	{ init; while (cond) { body update1; update2; } }
//
// A missing condition loops forever. A body that is not a block is wrapped
// in one.
func (p *Parser) parseForStmt() *ast.ScopeStmt {
	startToken := p.consume(lexer.FOR, "expected 'for'")
	p.consume(lexer.LPAREN, "expected '(' after 'for'")

	inits := make([]ast.Stmt, 0)
	switch p.curr.Kind {
	case lexer.SEMICOLON:
		p.read()
	case lexer.VAR:
		inits = append(inits, p.parseVarDeclStmt())
	default:
		for {
			inits = append(inits, &ast.ExprStmt{
				Expr: p.parseExpr(precLowest),
			})
			if !p.match(lexer.COMMA) {
				break
			}
		}
		p.consume(lexer.SEMICOLON, "expected ';' after for initializer")
	}

	var cond ast.Expr
	if p.curr.Kind == lexer.SEMICOLON {
		cond = &ast.BoolExpr{
			StartToken: p.curr,

			Value: true,
		}
	} else {
		cond = p.parseExpr(precLowest)
	}
	p.consume(lexer.SEMICOLON, "expected ';' after for condition")

	updates := make([]ast.Stmt, 0)
	if p.curr.Kind != lexer.RPAREN {
		for {
			updates = append(updates, &ast.ExprStmt{
				Expr: p.parseExpr(precLowest),
			})
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	p.consume(lexer.RPAREN, "expected ')' after for clauses")

	body := p.parseStmt()
	if _, ok := body.(*ast.ScopeStmt); !ok {
		body = &ast.ScopeStmt{
			StartToken: body.FirstToken(),

			Stmts: []ast.Stmt{body},
		}
	}

	loop := &ast.WhileStmt{
		StartToken: startToken,

		Cond: cond,
		Body: &ast.ScopeStmt{
			StartToken: body.FirstToken(),

			Stmts: append([]ast.Stmt{body}, updates...),
		},
	}

	return &ast.ScopeStmt{
		StartToken: startToken,

		Stmts: append(inits, loop),
	}
}

func (p *Parser) parseBreakStmt() *ast.BreakStmt {
	startToken := p.consume(lexer.BREAK, "expected 'break'")
	p.consume(lexer.SEMICOLON, "expected ';' after 'break'")

	return &ast.BreakStmt{
		StartToken: startToken,
	}
}

func (p *Parser) parseContinueStmt() *ast.ContinueStmt {
	startToken := p.consume(lexer.CONTINUE, "expected 'continue'")
	p.consume(lexer.SEMICOLON, "expected ';' after 'continue'")

	return &ast.ContinueStmt{
		StartToken: startToken,
	}
}

func (p *Parser) parseFuncDeclStmt() *ast.FuncDeclStmt {
	startToken := p.consume(lexer.FUNCTION, "expected 'function'")
	name := p.parseIdentifier("expected function name")
	params := p.parseParams()
	body := p.parseScopeStmt()

	return &ast.FuncDeclStmt{
		StartToken: startToken,

		Name:   name,
		Params: params,
		Body:   body,
	}
}

func visibilityOf(kind lexer.TokenKind) (ast.Visibility, bool) {
	switch kind {
	case lexer.PUBLIC:
		return ast.Public, true
	case lexer.PROTECTED:
		return ast.Protected, true
	case lexer.PRIVATE:
		return ast.Private, true
	}

	return ast.Private, false
}

// parseClassDeclStmt reads a class declaration. Each qualifier covers only
// the member written right after it; members without one are private.
func (p *Parser) parseClassDeclStmt() *ast.ClassDeclStmt {
	startToken := p.consume(lexer.CLASS, "expected 'class'")

	class := &ast.ClassDeclStmt{
		StartToken: startToken,

		Name: p.parseIdentifier("expected class name"),
	}

	if p.match(lexer.COLON) {
		p.parseInherits(class)
	}

	p.consume(lexer.LBRACE, "expected '{' before class body")

	for !p.isCurrAny(lexer.EOF, lexer.RBRACE) {
		visibility, qualified := visibilityOf(p.curr.Kind)
		if qualified {
			p.read()
		}

		switch p.curr.Kind {
		case lexer.VAR:
			class.AddVar(visibility, p.parseVarDeclStmt())
		case lexer.FUNCTION:
			class.AddFunc(visibility, p.parseFuncDeclStmt())
		default:
			p.unexpected("class body")
			if !p.isAtEnd() {
				p.read()
			}
		}
	}

	p.consume(lexer.RBRACE, "expected '}' after class body")

	return class
}

func (p *Parser) parseInherits(class *ast.ClassDeclStmt) {
	for {
		visibility, qualified := visibilityOf(p.curr.Kind)
		if qualified {
			p.read()
		}

		base := p.parseIdentifier("expected base class name")
		if !qualified {
			p.eh.AddError(&MissingQualifierError{
				Base: base.Value,

				Line: base.StartToken.Line,
			})
		}
		class.AddInherit(visibility, base)

		if !p.match(lexer.COMMA) {
			return
		}
	}
}
