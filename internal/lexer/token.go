package lexer

import (
	"fmt"
)

type TokenKind int

const (
	EOF TokenKind = iota
	UNDEFINED

	INT
	FLOAT
	STRING

	IDENT

	DOT       // .
	COMMA     // ,
	COLON     // :
	SEMICOLON // ;
	QMARK     // ?

	LPAREN   // (
	LBRACKET // [
	LBRACE   // {

	RPAREN   // )
	RBRACKET // ]
	RBRACE   // }

	PLUS     // +
	MINUS    // -
	ASTERISK // *
	SLASH    // /
	PERCENT  // %
	XMARK    // !
	BAND     // &
	BOR      // |
	BXOR     // ^
	TILDE    // ~
	ASSIGN   // =
	LT       // <
	GT       // >

	EQ  // ==
	NEQ // !=
	LEQ // <=
	GEQ // >=

	ADD_ASSIGN  // +=
	SUB_ASSIGN  // -=
	MUL_ASSIGN  // *=
	DIV_ASSIGN  // /=
	MOD_ASSIGN  // %=
	BAND_ASSIGN // &=
	BOR_ASSIGN  // |=
	XOR_ASSIGN  // ^=
	NOT_ASSIGN  // ~=
	SHL_ASSIGN  // <<=
	SHR_ASSIGN  // >>=

	INC // ++
	DEC // --

	LAND // &&
	LOR  // ||
	SHL  // <<
	SHR  // >>

	VAR
	IF
	ELSE
	TRUE
	FALSE
	NULL
	WHILE
	FOR
	BREAK
	CONTINUE
	FUNCTION
	CLASS
	PUBLIC
	PROTECTED
	PRIVATE
	THIS
	BASE
	RETURN
)

var keywords = map[string]TokenKind{
	"var":       VAR,
	"if":        IF,
	"else":      ELSE,
	"true":      TRUE,
	"false":     FALSE,
	"null":      NULL,
	"while":     WHILE,
	"for":       FOR,
	"break":     BREAK,
	"continue":  CONTINUE,
	"function":  FUNCTION,
	"class":     CLASS,
	"public":    PUBLIC,
	"protected": PROTECTED,
	"private":   PRIVATE,
	"this":      THIS,
	"base":      BASE,
	"return":    RETURN,
}

// LookupKeyword reports the keyword kind for ident, or IDENT when ident is
// not reserved.
func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}

	return IDENT
}

func (tk TokenKind) String() string {
	switch tk {
	case EOF:
		return "EOF"
	case UNDEFINED:
		return "UNDEFINED"
	case INT:
		return "INT"
	case FLOAT:
		return "FLOAT"
	case STRING:
		return "STRING"
	case IDENT:
		return "IDENT"
	case DOT:
		return "DOT"
	case COMMA:
		return "COMMA"
	case COLON:
		return "COLON"
	case SEMICOLON:
		return "SEMICOLON"
	case QMARK:
		return "QMARK"
	case LPAREN:
		return "LPAREN"
	case LBRACKET:
		return "LBRACKET"
	case LBRACE:
		return "LBRACE"
	case RPAREN:
		return "RPAREN"
	case RBRACKET:
		return "RBRACKET"
	case RBRACE:
		return "RBRACE"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case ASTERISK:
		return "ASTERISK"
	case SLASH:
		return "SLASH"
	case PERCENT:
		return "PERCENT"
	case XMARK:
		return "XMARK"
	case BAND:
		return "BAND"
	case BOR:
		return "BOR"
	case BXOR:
		return "BXOR"
	case TILDE:
		return "TILDE"
	case ASSIGN:
		return "ASSIGN"
	case LT:
		return "LT"
	case GT:
		return "GT"
	case EQ:
		return "EQ"
	case NEQ:
		return "NEQ"
	case LEQ:
		return "LEQ"
	case GEQ:
		return "GEQ"
	case ADD_ASSIGN:
		return "ADD_ASSIGN"
	case SUB_ASSIGN:
		return "SUB_ASSIGN"
	case MUL_ASSIGN:
		return "MUL_ASSIGN"
	case DIV_ASSIGN:
		return "DIV_ASSIGN"
	case MOD_ASSIGN:
		return "MOD_ASSIGN"
	case BAND_ASSIGN:
		return "BAND_ASSIGN"
	case BOR_ASSIGN:
		return "BOR_ASSIGN"
	case XOR_ASSIGN:
		return "XOR_ASSIGN"
	case NOT_ASSIGN:
		return "NOT_ASSIGN"
	case SHL_ASSIGN:
		return "SHL_ASSIGN"
	case SHR_ASSIGN:
		return "SHR_ASSIGN"
	case INC:
		return "INC"
	case DEC:
		return "DEC"
	case LAND:
		return "LAND"
	case LOR:
		return "LOR"
	case SHL:
		return "SHL"
	case SHR:
		return "SHR"
	case VAR:
		return "VAR"
	case IF:
		return "IF"
	case ELSE:
		return "ELSE"
	case TRUE:
		return "TRUE"
	case FALSE:
		return "FALSE"
	case NULL:
		return "NULL"
	case WHILE:
		return "WHILE"
	case FOR:
		return "FOR"
	case BREAK:
		return "BREAK"
	case CONTINUE:
		return "CONTINUE"
	case FUNCTION:
		return "FUNCTION"
	case CLASS:
		return "CLASS"
	case PUBLIC:
		return "PUBLIC"
	case PROTECTED:
		return "PROTECTED"
	case PRIVATE:
		return "PRIVATE"
	case THIS:
		return "THIS"
	case BASE:
		return "BASE"
	case RETURN:
		return "RETURN"
	default:
		panic(fmt.Sprintf("TokenKind.String(): received illegal token kind: %d", tk))
	}
}

// Token is immutable once produced by the lexer.
type Token struct {
	Kind  TokenKind
	Value string
	Line  int
}

func (t *Token) hasActualValue() bool {
	switch t.Kind {
	case INT, FLOAT, STRING, IDENT, UNDEFINED:
		return true
	}

	return false
}

func (t *Token) String() string {
	if !t.hasActualValue() {
		return fmt.Sprintf("%d: %s()", t.Line, t.Kind)
	}

	return fmt.Sprintf("%d: %s(%s)", t.Line, t.Kind, t.Value)
}
