package ast

import "github.com/kievzenit/naja/internal/lexer"

type IntExpr struct {
	StartToken *lexer.Token

	Value int64
}

type FloatExpr struct {
	StartToken *lexer.Token

	Value float64
}

type StringExpr struct {
	StartToken *lexer.Token

	Value string
}

type NullExpr struct {
	StartToken *lexer.Token
}

type BoolExpr struct {
	StartToken *lexer.Token

	Value bool
}

type IdentExpr struct {
	StartToken *lexer.Token

	Value string
}

type ThisExpr struct {
	StartToken *lexer.Token
}

type BaseExpr struct {
	StartToken *lexer.Token
}

type GroupExpr struct {
	StartToken *lexer.Token

	Expr Expr
}

type FunctionExpr struct {
	StartToken *lexer.Token

	Params []*IdentExpr
	Body   *ScopeStmt
}

type ArrayExpr struct {
	StartToken *lexer.Token

	Elements []Expr
}

type TableEntry struct {
	Key   Expr
	Value Expr
}

type TableExpr struct {
	StartToken *lexer.Token

	Entries []TableEntry
}

type PrefixExpr struct {
	StartToken *lexer.Token

	Op    *lexer.Token
	Right Expr
}

// InfixExpr covers binary operators as well as plain and compound assignment.
type InfixExpr struct {
	StartToken *lexer.Token

	Left  Expr
	Op    *lexer.Token
	Right Expr
}

type PostfixExpr struct {
	StartToken *lexer.Token

	Left Expr
	Op   *lexer.Token
}

type TernaryExpr struct {
	StartToken *lexer.Token

	Cond  Expr
	QMark *lexer.Token
	Then  Expr
	Colon *lexer.Token
	Else  Expr
}

// IndexExpr is both a[i] and a.b; the latter has a StringExpr index and
// Member set.
type IndexExpr struct {
	StartToken *lexer.Token

	Left   Expr
	Index  Expr
	Member bool
}

type CallExpr struct {
	StartToken *lexer.Token

	Callee Expr
	Args   []Expr
}

func (*IntExpr) astNode()      {}
func (*FloatExpr) astNode()    {}
func (*StringExpr) astNode()   {}
func (*NullExpr) astNode()     {}
func (*BoolExpr) astNode()     {}
func (*IdentExpr) astNode()    {}
func (*ThisExpr) astNode()     {}
func (*BaseExpr) astNode()     {}
func (*GroupExpr) astNode()    {}
func (*FunctionExpr) astNode() {}
func (*ArrayExpr) astNode()    {}
func (*TableExpr) astNode()    {}
func (*PrefixExpr) astNode()   {}
func (*InfixExpr) astNode()    {}
func (*PostfixExpr) astNode()  {}
func (*TernaryExpr) astNode()  {}
func (*IndexExpr) astNode()    {}
func (*CallExpr) astNode()     {}

func (e *IntExpr) FirstToken() *lexer.Token      { return e.StartToken }
func (e *FloatExpr) FirstToken() *lexer.Token    { return e.StartToken }
func (e *StringExpr) FirstToken() *lexer.Token   { return e.StartToken }
func (e *NullExpr) FirstToken() *lexer.Token     { return e.StartToken }
func (e *BoolExpr) FirstToken() *lexer.Token     { return e.StartToken }
func (e *IdentExpr) FirstToken() *lexer.Token    { return e.StartToken }
func (e *ThisExpr) FirstToken() *lexer.Token     { return e.StartToken }
func (e *BaseExpr) FirstToken() *lexer.Token     { return e.StartToken }
func (e *GroupExpr) FirstToken() *lexer.Token    { return e.StartToken }
func (e *FunctionExpr) FirstToken() *lexer.Token { return e.StartToken }
func (e *ArrayExpr) FirstToken() *lexer.Token    { return e.StartToken }
func (e *TableExpr) FirstToken() *lexer.Token    { return e.StartToken }
func (e *PrefixExpr) FirstToken() *lexer.Token   { return e.StartToken }
func (e *InfixExpr) FirstToken() *lexer.Token    { return e.StartToken }
func (e *PostfixExpr) FirstToken() *lexer.Token  { return e.StartToken }
func (e *TernaryExpr) FirstToken() *lexer.Token  { return e.StartToken }
func (e *IndexExpr) FirstToken() *lexer.Token    { return e.StartToken }
func (e *CallExpr) FirstToken() *lexer.Token     { return e.StartToken }

func (*IntExpr) exprNode()      {}
func (*FloatExpr) exprNode()    {}
func (*StringExpr) exprNode()   {}
func (*NullExpr) exprNode()     {}
func (*BoolExpr) exprNode()     {}
func (*IdentExpr) exprNode()    {}
func (*ThisExpr) exprNode()     {}
func (*BaseExpr) exprNode()     {}
func (*GroupExpr) exprNode()    {}
func (*FunctionExpr) exprNode() {}
func (*ArrayExpr) exprNode()    {}
func (*TableExpr) exprNode()    {}
func (*PrefixExpr) exprNode()   {}
func (*InfixExpr) exprNode()    {}
func (*PostfixExpr) exprNode()  {}
func (*TernaryExpr) exprNode()  {}
func (*IndexExpr) exprNode()    {}
func (*CallExpr) exprNode()     {}
