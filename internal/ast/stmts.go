package ast

import "github.com/kievzenit/naja/internal/lexer"

type ExprStmt struct {
	Expr Expr
}

type VarDecl struct {
	Name  *IdentExpr
	Value Expr
}

// VarDeclStmt keeps its variables in source order. A variable written
// without an initializer holds a NullExpr.
type VarDeclStmt struct {
	StartToken *lexer.Token

	Vars []VarDecl
}

type ReturnStmt struct {
	StartToken *lexer.Token

	Expr Expr
}

type IfStmt struct {
	StartToken *lexer.Token

	Cond Expr
	Then Stmt
	Else Stmt
}

type ScopeStmt struct {
	StartToken *lexer.Token

	Stmts []Stmt
}

type WhileStmt struct {
	StartToken *lexer.Token

	Cond Expr
	Body Stmt
}

type BreakStmt struct {
	StartToken *lexer.Token
}

type ContinueStmt struct {
	StartToken *lexer.Token
}

type FuncDeclStmt struct {
	StartToken *lexer.Token

	Name   *IdentExpr
	Params []*IdentExpr
	Body   *ScopeStmt
}

type Visibility int

const (
	Private Visibility = iota
	Protected
	Public
)

func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Protected:
		return "protected"
	default:
		return "private"
	}
}

type ClassDeclStmt struct {
	StartToken *lexer.Token

	Name *IdentExpr

	PublicInherits    []*IdentExpr
	ProtectedInherits []*IdentExpr
	PrivateInherits   []*IdentExpr

	PublicVars    []*VarDeclStmt
	ProtectedVars []*VarDeclStmt
	PrivateVars   []*VarDeclStmt

	PublicFuncs    []*FuncDeclStmt
	ProtectedFuncs []*FuncDeclStmt
	PrivateFuncs   []*FuncDeclStmt
}

func (c *ClassDeclStmt) AddInherit(v Visibility, base *IdentExpr) {
	switch v {
	case Public:
		c.PublicInherits = append(c.PublicInherits, base)
	case Protected:
		c.ProtectedInherits = append(c.ProtectedInherits, base)
	default:
		c.PrivateInherits = append(c.PrivateInherits, base)
	}
}

func (c *ClassDeclStmt) AddVar(v Visibility, stmt *VarDeclStmt) {
	switch v {
	case Public:
		c.PublicVars = append(c.PublicVars, stmt)
	case Protected:
		c.ProtectedVars = append(c.ProtectedVars, stmt)
	default:
		c.PrivateVars = append(c.PrivateVars, stmt)
	}
}

func (c *ClassDeclStmt) AddFunc(v Visibility, stmt *FuncDeclStmt) {
	switch v {
	case Public:
		c.PublicFuncs = append(c.PublicFuncs, stmt)
	case Protected:
		c.ProtectedFuncs = append(c.ProtectedFuncs, stmt)
	default:
		c.PrivateFuncs = append(c.PrivateFuncs, stmt)
	}
}

func (c *ClassDeclStmt) Inherits(v Visibility) []*IdentExpr {
	switch v {
	case Public:
		return c.PublicInherits
	case Protected:
		return c.ProtectedInherits
	default:
		return c.PrivateInherits
	}
}

func (c *ClassDeclStmt) Vars(v Visibility) []*VarDeclStmt {
	switch v {
	case Public:
		return c.PublicVars
	case Protected:
		return c.ProtectedVars
	default:
		return c.PrivateVars
	}
}

func (c *ClassDeclStmt) Funcs(v Visibility) []*FuncDeclStmt {
	switch v {
	case Public:
		return c.PublicFuncs
	case Protected:
		return c.ProtectedFuncs
	default:
		return c.PrivateFuncs
	}
}

func (*ExprStmt) astNode()      {}
func (*VarDeclStmt) astNode()   {}
func (*ReturnStmt) astNode()    {}
func (*IfStmt) astNode()        {}
func (*ScopeStmt) astNode()     {}
func (*WhileStmt) astNode()     {}
func (*BreakStmt) astNode()     {}
func (*ContinueStmt) astNode()  {}
func (*FuncDeclStmt) astNode()  {}
func (*ClassDeclStmt) astNode() {}

func (s *ExprStmt) FirstToken() *lexer.Token      { return s.Expr.FirstToken() }
func (s *VarDeclStmt) FirstToken() *lexer.Token   { return s.StartToken }
func (s *ReturnStmt) FirstToken() *lexer.Token    { return s.StartToken }
func (s *IfStmt) FirstToken() *lexer.Token        { return s.StartToken }
func (s *ScopeStmt) FirstToken() *lexer.Token     { return s.StartToken }
func (s *WhileStmt) FirstToken() *lexer.Token     { return s.StartToken }
func (s *BreakStmt) FirstToken() *lexer.Token     { return s.StartToken }
func (s *ContinueStmt) FirstToken() *lexer.Token  { return s.StartToken }
func (s *FuncDeclStmt) FirstToken() *lexer.Token  { return s.StartToken }
func (s *ClassDeclStmt) FirstToken() *lexer.Token { return s.StartToken }

func (*ExprStmt) stmtNode()      {}
func (*VarDeclStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode()    {}
func (*IfStmt) stmtNode()        {}
func (*ScopeStmt) stmtNode()     {}
func (*WhileStmt) stmtNode()     {}
func (*BreakStmt) stmtNode()     {}
func (*ContinueStmt) stmtNode()  {}
func (*FuncDeclStmt) stmtNode()  {}
func (*ClassDeclStmt) stmtNode() {}
