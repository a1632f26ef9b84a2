package lexer

type TokenScanner interface {
	Read() *Token
	Peek() *Token
	Last() *Token
}

// SimpleTokenScanner walks a token slice that ends with EOF. Reading past the
// end keeps returning the trailing EOF token.
type SimpleTokenScanner struct {
	tokens []Token

	pos int
}

func NewTokenScanner(tokens []Token) TokenScanner {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != EOF {
		line := 1
		if len(tokens) != 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens, Token{Kind: EOF, Line: line})
	}

	return &SimpleTokenScanner{
		tokens: tokens,
	}
}

func (s *SimpleTokenScanner) Read() *Token {
	if s.pos >= len(s.tokens) {
		return s.Last()
	}

	token := &s.tokens[s.pos]
	s.pos++

	return token
}

func (s *SimpleTokenScanner) Peek() *Token {
	if s.pos >= len(s.tokens) {
		return s.Last()
	}

	return &s.tokens[s.pos]
}

func (s *SimpleTokenScanner) Last() *Token {
	return &s.tokens[len(s.tokens)-1]
}
