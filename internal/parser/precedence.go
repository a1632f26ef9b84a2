package parser

import (
	"github.com/kievzenit/naja/internal/ast"
	"github.com/kievzenit/naja/internal/lexer"
)

type precedence int

const (
	precLowest precedence = iota
	precAssign
	precTernary
	precOr
	precAnd
	precBitOr
	precBitXor
	precBitAnd
	precEqual
	precCompare
	precShift
	precAdditive
	precMultiplicative
	precPrefix
	precPostfix
	precCall
)

var precedences = map[lexer.TokenKind]precedence{
	lexer.ASSIGN:      precAssign,
	lexer.ADD_ASSIGN:  precAssign,
	lexer.SUB_ASSIGN:  precAssign,
	lexer.MUL_ASSIGN:  precAssign,
	lexer.DIV_ASSIGN:  precAssign,
	lexer.MOD_ASSIGN:  precAssign,
	lexer.BAND_ASSIGN: precAssign,
	lexer.BOR_ASSIGN:  precAssign,
	lexer.XOR_ASSIGN:  precAssign,
	lexer.NOT_ASSIGN:  precAssign,
	lexer.SHL_ASSIGN:  precAssign,
	lexer.SHR_ASSIGN:  precAssign,

	lexer.QMARK: precTernary,

	lexer.LOR:  precOr,
	lexer.LAND: precAnd,
	lexer.BOR:  precBitOr,
	lexer.BXOR: precBitXor,
	lexer.BAND: precBitAnd,

	lexer.EQ:  precEqual,
	lexer.NEQ: precEqual,

	lexer.LT:  precCompare,
	lexer.LEQ: precCompare,
	lexer.GT:  precCompare,
	lexer.GEQ: precCompare,

	lexer.SHL: precShift,
	lexer.SHR: precShift,

	lexer.PLUS:  precAdditive,
	lexer.MINUS: precAdditive,

	lexer.ASTERISK: precMultiplicative,
	lexer.SLASH:    precMultiplicative,
	lexer.PERCENT:  precMultiplicative,

	lexer.INC: precPostfix,
	lexer.DEC: precPostfix,

	lexer.LPAREN:   precCall,
	lexer.LBRACKET: precCall,
	lexer.DOT:      precCall,
}

func precedenceOf(kind lexer.TokenKind) precedence {
	if prec, ok := precedences[kind]; ok {
		return prec
	}
	return precLowest
}

type (
	prefixParseFn  func(*Parser) ast.Expr
	infixParseFn   func(*Parser, ast.Expr) ast.Expr
	postfixParseFn func(*Parser, ast.Expr) ast.Expr
)

// The tables refer to parser methods that call back into parseExpr, so they
// are filled in init to keep the package initialization order acyclic.
var (
	prefixParseFns  map[lexer.TokenKind]prefixParseFn
	infixParseFns   map[lexer.TokenKind]infixParseFn
	postfixParseFns map[lexer.TokenKind]postfixParseFn
)

func init() {
	prefixParseFns = map[lexer.TokenKind]prefixParseFn{
		lexer.INT:      (*Parser).parseIntExpr,
		lexer.FLOAT:    (*Parser).parseFloatExpr,
		lexer.STRING:   (*Parser).parseStringExpr,
		lexer.NULL:     (*Parser).parseNullExpr,
		lexer.TRUE:     (*Parser).parseBoolExpr,
		lexer.FALSE:    (*Parser).parseBoolExpr,
		lexer.IDENT:    (*Parser).parseIdentExpr,
		lexer.THIS:     (*Parser).parseThisExpr,
		lexer.BASE:     (*Parser).parseBaseExpr,
		lexer.LPAREN:   (*Parser).parseGroupExpr,
		lexer.FUNCTION: (*Parser).parseFunctionExpr,
		lexer.LBRACKET: (*Parser).parseArrayExpr,
		lexer.LBRACE:   (*Parser).parseTableExpr,

		lexer.MINUS: (*Parser).parsePrefixExpr,
		lexer.XMARK: (*Parser).parsePrefixExpr,
		lexer.TILDE: (*Parser).parsePrefixExpr,
		lexer.BAND:  (*Parser).parsePrefixExpr,
		lexer.INC:   (*Parser).parsePrefixExpr,
		lexer.DEC:   (*Parser).parsePrefixExpr,
	}

	infixParseFns = map[lexer.TokenKind]infixParseFn{
		lexer.QMARK: (*Parser).parseTernaryExpr,

		lexer.LPAREN:   (*Parser).parseCallExpr,
		lexer.LBRACKET: (*Parser).parseIndexExpr,
		lexer.DOT:      (*Parser).parseMemberExpr,
	}

	for kind, prec := range precedences {
		switch prec {
		case precAssign:
			infixParseFns[kind] = (*Parser).parseAssignExpr
		case precOr, precAnd, precBitOr, precBitXor, precBitAnd, precEqual,
			precCompare, precShift, precAdditive, precMultiplicative:
			infixParseFns[kind] = (*Parser).parseInfixExpr
		}
	}

	postfixParseFns = map[lexer.TokenKind]postfixParseFn{
		lexer.INC: (*Parser).parsePostfixExpr,
		lexer.DEC: (*Parser).parsePostfixExpr,
	}
}
