package lexer

import (
	"github.com/kievzenit/naja/internal/compiler_errors"
)

type LexerError struct {
	Message string
	Line    int
}

func newUnterminatedStringError(line int) *LexerError {
	return &LexerError{
		Message: "unterminated string",
		Line:    line,
	}
}

func (e *LexerError) GetMessage() string {
	return e.Message
}

func (e *LexerError) GetLine() int {
	return e.Line
}

func (e *LexerError) GetKind() compiler_errors.ErrorKind {
	return compiler_errors.LexicalError
}

// Lexer turns Naja source into tokens. The zero position state is restored
// on every Tokenize call, so one Lexer can scan many inputs in sequence but
// must not be shared between goroutines.
type Lexer struct {
	buf []byte

	start int
	pos   int
	line  int

	eh compiler_errors.ErrorHandler
}

func NewLexer(buf []byte, eh compiler_errors.ErrorHandler) *Lexer {
	return &Lexer{
		buf:  buf,
		line: 1,

		eh: eh,
	}
}

// Reset replaces the source scanned by the next Tokenize call.
func (l *Lexer) Reset(buf []byte) {
	l.buf = buf
	l.start = 0
	l.pos = 0
	l.line = 1
}

// Tokenize scans the whole buffer. The result always ends with an EOF token,
// whatever the input looks like.
func (l *Lexer) Tokenize() []Token {
	l.Reset(l.buf)

	tokens := make([]Token, 0)
	for l.hasChars() {
		l.start = l.pos
		c := l.read()
		l.advance()

		switch {
		case c == '\n':
			l.line++

		case isSkippable(c):

		case isDigit(c):
			tokens = append(tokens, l.processNumber())

		case isIdentifierStart(c):
			tokens = append(tokens, l.processIdentifier())

		case c == '"':
			tokens = append(tokens, l.processStringLiteral())

		case c == '/' && l.match('/'):
			l.skipOneLineComment()

		case c == '/' && l.match('*'):
			l.skipMultiLineComment()

		default:
			tokens = append(tokens, l.processPunctuation(c))
		}
	}

	tokens = append(tokens, Token{
		Kind:  EOF,
		Value: "",
		Line:  l.line,
	})

	return tokens
}

func isIdentifierStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSkippable(c byte) bool {
	switch c {
	case ' ', '\t', '\r':
		return true
	}

	return false
}

func (l *Lexer) processIdentifier() Token {
	for l.hasChars() && (isIdentifierStart(l.read()) || isDigit(l.read())) {
		l.advance()
	}

	identifier := string(l.buf[l.start:l.pos])

	return Token{
		Kind:  LookupKeyword(identifier),
		Value: identifier,
		Line:  l.line,
	}
}

// processNumber scans digits with an optional fractional part. A dot that is
// not followed by a digit is left in place and becomes its own DOT token.
func (l *Lexer) processNumber() Token {
	for l.hasChars() && isDigit(l.read()) {
		l.advance()
	}

	if l.hasChars() && l.read() == '.' && isDigit(l.next()) {
		l.advance()
		for l.hasChars() && isDigit(l.read()) {
			l.advance()
		}

		return l.makeToken(FLOAT)
	}

	return l.makeToken(INT)
}

func (l *Lexer) processStringLiteral() Token {
	startLine := l.line

	for l.hasChars() && l.read() != '"' {
		if l.read() == '\n' {
			l.line++
		}
		l.advance()
	}

	if !l.hasChars() {
		l.eh.AddError(newUnterminatedStringError(startLine))

		return Token{
			Kind:  STRING,
			Value: string(l.buf[l.start+1 : l.pos]),
			Line:  startLine,
		}
	}

	value := string(l.buf[l.start+1 : l.pos])
	l.advance()

	return Token{
		Kind:  STRING,
		Value: value,
		Line:  startLine,
	}
}

func (l *Lexer) skipOneLineComment() {
	for l.hasChars() && l.read() != '\n' {
		l.advance()
	}
}

// TODO: report unterminated block comments once the diagnostics list has a
// warning level; today they silently run to the end of input.
func (l *Lexer) skipMultiLineComment() {
	for l.hasChars() {
		if l.read() == '*' && l.next() == '/' {
			l.advance()
			l.advance()
			return
		}

		if l.read() == '\n' {
			l.line++
		}
		l.advance()
	}
}

func (l *Lexer) processPlus() Token {
	if l.match('+') {
		return l.makeToken(INC)
	}

	if l.match('=') {
		return l.makeToken(ADD_ASSIGN)
	}

	return l.makeToken(PLUS)
}

func (l *Lexer) processMinus() Token {
	if l.match('-') {
		return l.makeToken(DEC)
	}

	if l.match('=') {
		return l.makeToken(SUB_ASSIGN)
	}

	return l.makeToken(MINUS)
}

func (l *Lexer) processAmpersand() Token {
	if l.match('&') {
		return l.makeToken(LAND)
	}

	if l.match('=') {
		return l.makeToken(BAND_ASSIGN)
	}

	return l.makeToken(BAND)
}

func (l *Lexer) processPipe() Token {
	if l.match('|') {
		return l.makeToken(LOR)
	}

	if l.match('=') {
		return l.makeToken(BOR_ASSIGN)
	}

	return l.makeToken(BOR)
}

func (l *Lexer) processLessThan() Token {
	if l.match('<') {
		if l.match('=') {
			return l.makeToken(SHL_ASSIGN)
		}

		return l.makeToken(SHL)
	}

	if l.match('=') {
		return l.makeToken(LEQ)
	}

	return l.makeToken(LT)
}

func (l *Lexer) processGreaterThan() Token {
	if l.match('>') {
		if l.match('=') {
			return l.makeToken(SHR_ASSIGN)
		}

		return l.makeToken(SHR)
	}

	if l.match('=') {
		return l.makeToken(GEQ)
	}

	return l.makeToken(GT)
}

// processWithAssign handles the operators whose only longer form is "<op>=".
func (l *Lexer) processWithAssign(single, withAssign TokenKind) Token {
	if l.match('=') {
		return l.makeToken(withAssign)
	}

	return l.makeToken(single)
}

func (l *Lexer) processPunctuation(c byte) Token {
	switch c {
	case '+':
		return l.processPlus()
	case '-':
		return l.processMinus()
	case '*':
		return l.processWithAssign(ASTERISK, MUL_ASSIGN)
	case '/':
		return l.processWithAssign(SLASH, DIV_ASSIGN)
	case '%':
		return l.processWithAssign(PERCENT, MOD_ASSIGN)
	case '!':
		return l.processWithAssign(XMARK, NEQ)
	case '^':
		return l.processWithAssign(BXOR, XOR_ASSIGN)
	case '~':
		return l.processWithAssign(TILDE, NOT_ASSIGN)
	case '=':
		return l.processWithAssign(ASSIGN, EQ)
	case '&':
		return l.processAmpersand()
	case '|':
		return l.processPipe()
	case '<':
		return l.processLessThan()
	case '>':
		return l.processGreaterThan()
	case '(':
		return l.makeToken(LPAREN)
	case ')':
		return l.makeToken(RPAREN)
	case '[':
		return l.makeToken(LBRACKET)
	case ']':
		return l.makeToken(RBRACKET)
	case '{':
		return l.makeToken(LBRACE)
	case '}':
		return l.makeToken(RBRACE)
	case '.':
		return l.makeToken(DOT)
	case ',':
		return l.makeToken(COMMA)
	case ':':
		return l.makeToken(COLON)
	case ';':
		return l.makeToken(SEMICOLON)
	case '?':
		return l.makeToken(QMARK)
	}

	return l.makeToken(UNDEFINED)
}

func (l *Lexer) makeToken(kind TokenKind) Token {
	return Token{
		Kind:  kind,
		Value: string(l.buf[l.start:l.pos]),
		Line:  l.line,
	}
}

func (l *Lexer) match(c byte) bool {
	if !l.hasChars() || l.read() != c {
		return false
	}

	l.advance()
	return true
}

func (l *Lexer) hasChars() bool {
	return l.pos < len(l.buf)
}

func (l *Lexer) next() byte {
	if l.pos+1 >= len(l.buf) {
		return 0
	}
	return l.buf[l.pos+1]
}

func (l *Lexer) advance()   { l.pos++ }
func (l *Lexer) read() byte { return l.buf[l.pos] }
