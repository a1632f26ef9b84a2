package ast_test

import (
	"testing"

	"github.com/kievzenit/naja/internal/ast"
	"github.com/kievzenit/naja/internal/lexer"
)

func op(kind lexer.TokenKind, value string) *lexer.Token {
	return &lexer.Token{Kind: kind, Value: value, Line: 1}
}

func ident(name string) *ast.IdentExpr {
	return &ast.IdentExpr{StartToken: op(lexer.IDENT, name), Value: name}
}

func TestExprString(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{"int", &ast.IntExpr{Value: 42}, "42"},
		{"float keeps dot", &ast.FloatExpr{Value: 3}, "3.0"},
		{"float", &ast.FloatExpr{Value: 0.25}, "0.25"},
		{"string", &ast.StringExpr{Value: "hi"}, `"hi"`},
		{"null", &ast.NullExpr{}, "null"},
		{"bool", &ast.BoolExpr{Value: false}, "false"},
		{"this", &ast.ThisExpr{}, "this"},
		{"base", &ast.BaseExpr{}, "base"},
		{"group", &ast.GroupExpr{Expr: ident("a")}, "(a)"},
		{
			"infix",
			&ast.InfixExpr{Left: ident("a"), Op: op(lexer.PLUS, "+"), Right: &ast.IntExpr{Value: 1}},
			"a + 1",
		},
		{"prefix", &ast.PrefixExpr{Op: op(lexer.INC, "++"), Right: ident("x")}, "++x"},
		{
			"prefix keeps operators apart",
			&ast.PrefixExpr{Op: op(lexer.MINUS, "-"), Right: &ast.PrefixExpr{Op: op(lexer.MINUS, "-"), Right: ident("x")}},
			"- -x",
		},
		{
			"prefix before postfix",
			&ast.PrefixExpr{Op: op(lexer.MINUS, "-"), Right: &ast.PostfixExpr{Left: ident("x"), Op: op(lexer.DEC, "--")}},
			"-x--",
		},
		{"postfix", &ast.PostfixExpr{Left: ident("x"), Op: op(lexer.INC, "++")}, "x++"},
		{
			"ternary",
			&ast.TernaryExpr{Cond: ident("a"), Then: ident("b"), Else: ident("c")},
			"a ? b : c",
		},
		{
			"index",
			&ast.IndexExpr{Left: ident("a"), Index: &ast.IntExpr{Value: 0}},
			"a[0]",
		},
		{
			"member",
			&ast.IndexExpr{Left: ident("a"), Index: &ast.StringExpr{Value: "b"}, Member: true},
			"a.b",
		},
		{
			"call",
			&ast.CallExpr{Callee: ident("f"), Args: []ast.Expr{ident("a"), &ast.IntExpr{Value: 2}}},
			"f(a, 2)",
		},
		{"array", &ast.ArrayExpr{Elements: []ast.Expr{&ast.IntExpr{Value: 1}, &ast.NullExpr{}}}, "[1, null]"},
		{"empty table", &ast.TableExpr{}, "{}"},
		{
			"function",
			&ast.FunctionExpr{Params: []*ast.IdentExpr{ident("a"), ident("b")}, Body: &ast.ScopeStmt{}},
			"function(a, b) {}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTableStringIgnoresEntryOrder(t *testing.T) {
	a := &ast.TableExpr{Entries: []ast.TableEntry{
		{Key: &ast.StringExpr{Value: "x"}, Value: &ast.IntExpr{Value: 1}},
		{Key: &ast.StringExpr{Value: "a"}, Value: &ast.IntExpr{Value: 2}},
	}}
	b := &ast.TableExpr{Entries: []ast.TableEntry{a.Entries[1], a.Entries[0]}}

	if a.String() != b.String() {
		t.Fatalf("table strings differ: %q vs %q", a, b)
	}
	if want := `{"a": 2, "x": 1}`; a.String() != want {
		t.Errorf("String() = %q, want %q", a, want)
	}
	if ast.Shape(a) != ast.Shape(b) {
		t.Errorf("table shapes differ: %q vs %q", ast.Shape(a), ast.Shape(b))
	}
}

func TestStmtString(t *testing.T) {
	tests := []struct {
		name string
		stmt ast.Stmt
		want string
	}{
		{"expr", &ast.ExprStmt{Expr: ident("a")}, "a;"},
		{
			"var",
			&ast.VarDeclStmt{Vars: []ast.VarDecl{
				{Name: ident("a"), Value: &ast.IntExpr{Value: 1}},
				{Name: ident("b"), Value: &ast.NullExpr{}},
			}},
			"var a = 1, b = null;",
		},
		{"return", &ast.ReturnStmt{}, "return;"},
		{"return value", &ast.ReturnStmt{Expr: ident("x")}, "return x;"},
		{
			"if",
			&ast.IfStmt{Cond: ident("c"), Then: &ast.BreakStmt{}},
			"if (c) break;",
		},
		{
			"if else",
			&ast.IfStmt{Cond: ident("c"), Then: &ast.ScopeStmt{}, Else: &ast.ContinueStmt{}},
			"if (c) {} else continue;",
		},
		{
			"while",
			&ast.WhileStmt{Cond: &ast.BoolExpr{Value: true}, Body: &ast.ScopeStmt{Stmts: []ast.Stmt{&ast.BreakStmt{}}}},
			"while (true) { break; }",
		},
		{
			"function",
			&ast.FuncDeclStmt{Name: ident("f"), Params: []*ast.IdentExpr{ident("x")}, Body: &ast.ScopeStmt{
				Stmts: []ast.Stmt{&ast.ReturnStmt{Expr: ident("x")}},
			}},
			"function f(x) { return x; }",
		},
		{
			"translation unit",
			&ast.TranslationUnit{Stmts: []ast.Stmt{&ast.BreakStmt{}, &ast.ContinueStmt{}}},
			"break;\ncontinue;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stmt.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassStringQualifiesEveryMember(t *testing.T) {
	class := &ast.ClassDeclStmt{Name: ident("A")}
	class.AddInherit(ast.Public, ident("B"))
	class.AddInherit(ast.Private, ident("C"))
	class.AddFunc(ast.Public, &ast.FuncDeclStmt{Name: ident("f"), Body: &ast.ScopeStmt{}})
	class.AddVar(ast.Private, &ast.VarDeclStmt{Vars: []ast.VarDecl{{Name: ident("x"), Value: &ast.NullExpr{}}}})
	class.AddVar(ast.Protected, &ast.VarDeclStmt{Vars: []ast.VarDecl{{Name: ident("y"), Value: &ast.IntExpr{Value: 1}}}})

	want := "class A : public B, private C { public function f() {} protected var y = 1; private var x = null; }"
	if got := class.String(); got != want {
		t.Errorf("String() =\n%q\nwant\n%q", got, want)
	}

	if got := (&ast.ClassDeclStmt{Name: ident("E")}).String(); got != "class E {}" {
		t.Errorf("empty class String() = %q", got)
	}
}

func TestClassBuckets(t *testing.T) {
	class := &ast.ClassDeclStmt{Name: ident("A")}
	class.AddVar(ast.Public, &ast.VarDeclStmt{})
	class.AddFunc(ast.Protected, &ast.FuncDeclStmt{})
	class.AddInherit(ast.Private, ident("B"))

	if len(class.PublicVars) != 1 || len(class.Vars(ast.Public)) != 1 {
		t.Errorf("public var not filed: %+v", class)
	}
	if len(class.ProtectedFuncs) != 1 || len(class.Funcs(ast.Protected)) != 1 {
		t.Errorf("protected function not filed: %+v", class)
	}
	if len(class.PrivateInherits) != 1 || len(class.Inherits(ast.Private)) != 1 {
		t.Errorf("private inherit not filed: %+v", class)
	}
	if len(class.Vars(ast.Private)) != 0 || len(class.Funcs(ast.Public)) != 0 {
		t.Errorf("unexpected members in other buckets: %+v", class)
	}
}

func TestShape(t *testing.T) {
	expr := &ast.InfixExpr{
		Left:  &ast.IntExpr{Value: 1},
		Op:    op(lexer.PLUS, "+"),
		Right: &ast.InfixExpr{Left: &ast.IntExpr{Value: 2}, Op: op(lexer.ASTERISK, "*"), Right: ident("x")},
	}

	want := "INFIX_EXPR(INT_EXPR INFIX_EXPR(INT_EXPR IDENT_EXPR))"
	if got := ast.Shape(expr); got != want {
		t.Errorf("Shape() = %q, want %q", got, want)
	}

	stmt := &ast.ReturnStmt{}
	if got := ast.Shape(stmt); got != "RETURN_STMT" {
		t.Errorf("Shape(return;) = %q", got)
	}
}

func TestInspectVisitsEveryNode(t *testing.T) {
	unit := &ast.TranslationUnit{Stmts: []ast.Stmt{
		&ast.ExprStmt{Expr: &ast.CallExpr{Callee: ident("f"), Args: []ast.Expr{ident("a"), ident("b")}}},
		&ast.IfStmt{Cond: ident("c"), Then: &ast.ScopeStmt{}},
	}}

	var visited []ast.NodeKind
	ast.Inspect(unit, func(node ast.AstNode) bool {
		visited = append(visited, ast.KindOf(node))
		return true
	})

	want := []ast.NodeKind{
		ast.TRANSLATION_UNIT,
		ast.EXPR_STMT, ast.CALL_EXPR, ast.IDENT_EXPR, ast.IDENT_EXPR, ast.IDENT_EXPR,
		ast.IF_STMT, ast.IDENT_EXPR, ast.SCOPE_STMT,
	}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}

	count := 0
	ast.Inspect(unit, func(node ast.AstNode) bool {
		count++
		_, isStmt := node.(*ast.ExprStmt)
		return !isStmt
	})
	if count != 5 {
		t.Errorf("pruned walk visited %d nodes, want 5", count)
	}
}

func TestFirstToken(t *testing.T) {
	start := op(lexer.IDENT, "a")
	stmt := &ast.ExprStmt{Expr: &ast.IdentExpr{StartToken: start, Value: "a"}}
	if stmt.FirstToken() != start {
		t.Errorf("ExprStmt.FirstToken() = %v, want %v", stmt.FirstToken(), start)
	}

	if (&ast.TranslationUnit{}).FirstToken() != nil {
		t.Errorf("empty TranslationUnit has a first token")
	}
}
