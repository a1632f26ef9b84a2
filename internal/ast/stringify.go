package ast

import (
	"sort"
	"strconv"
	"strings"

	"github.com/kievzenit/naja/internal/lexer"
)

func opText(op *lexer.Token) string {
	if op == nil {
		return ""
	}
	return op.Value
}

// mergesWith reports whether writing op directly before operand would make
// the lexer read a different operator, as in "-" followed by "-x".
func mergesWith(op, operand string) bool {
	if op == "" || operand == "" {
		return false
	}

	last, first := op[len(op)-1], operand[0]
	switch last {
	case '+', '-', '&':
		return last == first
	}
	return false
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, 0, len(exprs))
	for _, expr := range exprs {
		parts = append(parts, expr.String())
	}
	return strings.Join(parts, ", ")
}

func joinIdents(idents []*IdentExpr) string {
	parts := make([]string, 0, len(idents))
	for _, ident := range idents {
		parts = append(parts, ident.String())
	}
	return strings.Join(parts, ", ")
}

func (e *IntExpr) String() string { return strconv.FormatInt(e.Value, 10) }

func (e *FloatExpr) String() string {
	s := strconv.FormatFloat(e.Value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (e *StringExpr) String() string { return `"` + e.Value + `"` }
func (e *NullExpr) String() string   { return "null" }

func (e *BoolExpr) String() string {
	if e.Value {
		return "true"
	}
	return "false"
}

func (e *IdentExpr) String() string { return e.Value }
func (e *ThisExpr) String() string  { return "this" }
func (e *BaseExpr) String() string  { return "base" }
func (e *GroupExpr) String() string { return "(" + e.Expr.String() + ")" }

func (e *FunctionExpr) String() string {
	return "function(" + joinIdents(e.Params) + ") " + e.Body.String()
}

func (e *ArrayExpr) String() string { return "[" + joinExprs(e.Elements) + "]" }

// String renders entries sorted by their text so that two tables holding the
// same entries print the same regardless of insertion order.
func (e *TableExpr) String() string {
	entries := make([]string, 0, len(e.Entries))
	for _, entry := range e.Entries {
		entries = append(entries, entry.Key.String()+": "+entry.Value.String())
	}
	sort.Strings(entries)
	return "{" + strings.Join(entries, ", ") + "}"
}

func (e *PrefixExpr) String() string {
	op, right := opText(e.Op), e.Right.String()
	if mergesWith(op, right) {
		return op + " " + right
	}
	return op + right
}

func (e *InfixExpr) String() string {
	return e.Left.String() + " " + opText(e.Op) + " " + e.Right.String()
}

func (e *PostfixExpr) String() string { return e.Left.String() + opText(e.Op) }

func (e *TernaryExpr) String() string {
	qmark, colon := "?", ":"
	if e.QMark != nil {
		qmark = e.QMark.Value
	}
	if e.Colon != nil {
		colon = e.Colon.Value
	}
	return e.Cond.String() + " " + qmark + " " + e.Then.String() + " " + colon + " " + e.Else.String()
}

func (e *IndexExpr) String() string {
	if member, ok := e.Index.(*StringExpr); ok && e.Member {
		return e.Left.String() + "." + member.Value
	}
	return e.Left.String() + "[" + e.Index.String() + "]"
}

func (e *CallExpr) String() string {
	return e.Callee.String() + "(" + joinExprs(e.Args) + ")"
}

func (s *ExprStmt) String() string { return s.Expr.String() + ";" }

func (s *VarDeclStmt) String() string {
	vars := make([]string, 0, len(s.Vars))
	for _, v := range s.Vars {
		vars = append(vars, v.Name.String()+" = "+v.Value.String())
	}
	return "var " + strings.Join(vars, ", ") + ";"
}

func (s *ReturnStmt) String() string {
	if s.Expr == nil {
		return "return;"
	}
	return "return " + s.Expr.String() + ";"
}

func (s *IfStmt) String() string {
	out := "if (" + s.Cond.String() + ") " + s.Then.String()
	if s.Else != nil {
		out += " else " + s.Else.String()
	}
	return out
}

func (s *ScopeStmt) String() string {
	if len(s.Stmts) == 0 {
		return "{}"
	}

	stmts := make([]string, 0, len(s.Stmts))
	for _, stmt := range s.Stmts {
		stmts = append(stmts, stmt.String())
	}
	return "{ " + strings.Join(stmts, " ") + " }"
}

func (s *WhileStmt) String() string {
	return "while (" + s.Cond.String() + ") " + s.Body.String()
}

func (s *BreakStmt) String() string    { return "break;" }
func (s *ContinueStmt) String() string { return "continue;" }

func (s *FuncDeclStmt) String() string {
	return "function " + s.Name.String() + "(" + joinIdents(s.Params) + ") " + s.Body.String()
}

var visibilities = []Visibility{Public, Protected, Private}

// String writes every base and member with an explicit qualifier, so the
// output files each member into the same bucket when parsed again.
func (s *ClassDeclStmt) String() string {
	var b strings.Builder
	b.WriteString("class ")
	b.WriteString(s.Name.String())

	inherits := make([]string, 0)
	for _, v := range visibilities {
		for _, base := range s.Inherits(v) {
			inherits = append(inherits, v.String()+" "+base.String())
		}
	}
	if len(inherits) != 0 {
		b.WriteString(" : ")
		b.WriteString(strings.Join(inherits, ", "))
	}

	members := make([]string, 0)
	for _, v := range visibilities {
		for _, fn := range s.Funcs(v) {
			members = append(members, v.String()+" "+fn.String())
		}
	}
	for _, v := range visibilities {
		for _, vars := range s.Vars(v) {
			members = append(members, v.String()+" "+vars.String())
		}
	}

	if len(members) == 0 {
		b.WriteString(" {}")
		return b.String()
	}

	b.WriteString(" { ")
	b.WriteString(strings.Join(members, " "))
	b.WriteString(" }")
	return b.String()
}
