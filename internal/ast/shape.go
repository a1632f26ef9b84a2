package ast

import (
	"fmt"
	"sort"
	"strings"
)

type NodeKind int

const (
	INT_EXPR NodeKind = iota
	FLOAT_EXPR
	STRING_EXPR
	NULL_EXPR
	BOOL_EXPR
	IDENT_EXPR
	THIS_EXPR
	BASE_EXPR
	GROUP_EXPR
	FUNCTION_EXPR
	ARRAY_EXPR
	TABLE_EXPR
	PREFIX_EXPR
	INFIX_EXPR
	POSTFIX_EXPR
	TERNARY_EXPR
	INDEX_EXPR
	CALL_EXPR

	EXPR_STMT
	VAR_DECL_STMT
	RETURN_STMT
	IF_STMT
	SCOPE_STMT
	WHILE_STMT
	BREAK_STMT
	CONTINUE_STMT
	FUNC_DECL_STMT
	CLASS_DECL_STMT
	TRANSLATION_UNIT
)

var nodeKindNames = [...]string{
	INT_EXPR:         "INT_EXPR",
	FLOAT_EXPR:       "FLOAT_EXPR",
	STRING_EXPR:      "STRING_EXPR",
	NULL_EXPR:        "NULL_EXPR",
	BOOL_EXPR:        "BOOL_EXPR",
	IDENT_EXPR:       "IDENT_EXPR",
	THIS_EXPR:        "THIS_EXPR",
	BASE_EXPR:        "BASE_EXPR",
	GROUP_EXPR:       "GROUP_EXPR",
	FUNCTION_EXPR:    "FUNCTION_EXPR",
	ARRAY_EXPR:       "ARRAY_EXPR",
	TABLE_EXPR:       "TABLE_EXPR",
	PREFIX_EXPR:      "PREFIX_EXPR",
	INFIX_EXPR:       "INFIX_EXPR",
	POSTFIX_EXPR:     "POSTFIX_EXPR",
	TERNARY_EXPR:     "TERNARY_EXPR",
	INDEX_EXPR:       "INDEX_EXPR",
	CALL_EXPR:        "CALL_EXPR",
	EXPR_STMT:        "EXPR_STMT",
	VAR_DECL_STMT:    "VAR_DECL_STMT",
	RETURN_STMT:      "RETURN_STMT",
	IF_STMT:          "IF_STMT",
	SCOPE_STMT:       "SCOPE_STMT",
	WHILE_STMT:       "WHILE_STMT",
	BREAK_STMT:       "BREAK_STMT",
	CONTINUE_STMT:    "CONTINUE_STMT",
	FUNC_DECL_STMT:   "FUNC_DECL_STMT",
	CLASS_DECL_STMT:  "CLASS_DECL_STMT",
	TRANSLATION_UNIT: "TRANSLATION_UNIT",
}

func (k NodeKind) String() string {
	if k < 0 || int(k) >= len(nodeKindNames) {
		panic(fmt.Sprintf("NodeKind.String(): received illegal node kind: %d", k))
	}
	return nodeKindNames[k]
}

func KindOf(node AstNode) NodeKind {
	switch node.(type) {
	case *IntExpr:
		return INT_EXPR
	case *FloatExpr:
		return FLOAT_EXPR
	case *StringExpr:
		return STRING_EXPR
	case *NullExpr:
		return NULL_EXPR
	case *BoolExpr:
		return BOOL_EXPR
	case *IdentExpr:
		return IDENT_EXPR
	case *ThisExpr:
		return THIS_EXPR
	case *BaseExpr:
		return BASE_EXPR
	case *GroupExpr:
		return GROUP_EXPR
	case *FunctionExpr:
		return FUNCTION_EXPR
	case *ArrayExpr:
		return ARRAY_EXPR
	case *TableExpr:
		return TABLE_EXPR
	case *PrefixExpr:
		return PREFIX_EXPR
	case *InfixExpr:
		return INFIX_EXPR
	case *PostfixExpr:
		return POSTFIX_EXPR
	case *TernaryExpr:
		return TERNARY_EXPR
	case *IndexExpr:
		return INDEX_EXPR
	case *CallExpr:
		return CALL_EXPR
	case *ExprStmt:
		return EXPR_STMT
	case *VarDeclStmt:
		return VAR_DECL_STMT
	case *ReturnStmt:
		return RETURN_STMT
	case *IfStmt:
		return IF_STMT
	case *ScopeStmt:
		return SCOPE_STMT
	case *WhileStmt:
		return WHILE_STMT
	case *BreakStmt:
		return BREAK_STMT
	case *ContinueStmt:
		return CONTINUE_STMT
	case *FuncDeclStmt:
		return FUNC_DECL_STMT
	case *ClassDeclStmt:
		return CLASS_DECL_STMT
	case *TranslationUnit:
		return TRANSLATION_UNIT
	default:
		panic(fmt.Sprintf("KindOf(): received unknown node %T", node))
	}
}

func identNodes(idents []*IdentExpr) []AstNode {
	nodes := make([]AstNode, 0, len(idents))
	for _, ident := range idents {
		nodes = append(nodes, ident)
	}
	return nodes
}

func exprNodes(exprs []Expr) []AstNode {
	nodes := make([]AstNode, 0, len(exprs))
	for _, expr := range exprs {
		nodes = append(nodes, expr)
	}
	return nodes
}

func stmtNodes(stmts []Stmt) []AstNode {
	nodes := make([]AstNode, 0, len(stmts))
	for _, stmt := range stmts {
		nodes = append(nodes, stmt)
	}
	return nodes
}

// Children returns the direct children of node in source order. Class
// members come grouped by visibility, public first.
func Children(node AstNode) []AstNode {
	switch n := node.(type) {
	case *IntExpr, *FloatExpr, *StringExpr, *NullExpr, *BoolExpr,
		*IdentExpr, *ThisExpr, *BaseExpr, *BreakStmt, *ContinueStmt:
		return nil

	case *GroupExpr:
		return []AstNode{n.Expr}
	case *FunctionExpr:
		return append(identNodes(n.Params), n.Body)
	case *ArrayExpr:
		return exprNodes(n.Elements)
	case *TableExpr:
		nodes := make([]AstNode, 0, 2*len(n.Entries))
		for _, entry := range n.Entries {
			nodes = append(nodes, entry.Key, entry.Value)
		}
		return nodes
	case *PrefixExpr:
		return []AstNode{n.Right}
	case *InfixExpr:
		return []AstNode{n.Left, n.Right}
	case *PostfixExpr:
		return []AstNode{n.Left}
	case *TernaryExpr:
		return []AstNode{n.Cond, n.Then, n.Else}
	case *IndexExpr:
		return []AstNode{n.Left, n.Index}
	case *CallExpr:
		return append([]AstNode{n.Callee}, exprNodes(n.Args)...)

	case *ExprStmt:
		return []AstNode{n.Expr}
	case *VarDeclStmt:
		nodes := make([]AstNode, 0, 2*len(n.Vars))
		for _, v := range n.Vars {
			nodes = append(nodes, v.Name, v.Value)
		}
		return nodes
	case *ReturnStmt:
		if n.Expr == nil {
			return nil
		}
		return []AstNode{n.Expr}
	case *IfStmt:
		if n.Else == nil {
			return []AstNode{n.Cond, n.Then}
		}
		return []AstNode{n.Cond, n.Then, n.Else}
	case *ScopeStmt:
		return stmtNodes(n.Stmts)
	case *WhileStmt:
		return []AstNode{n.Cond, n.Body}
	case *FuncDeclStmt:
		nodes := append([]AstNode{n.Name}, identNodes(n.Params)...)
		return append(nodes, n.Body)
	case *ClassDeclStmt:
		nodes := []AstNode{n.Name}
		for _, v := range visibilities {
			nodes = append(nodes, identNodes(n.Inherits(v))...)
		}
		for _, v := range visibilities {
			for _, vars := range n.Vars(v) {
				nodes = append(nodes, vars)
			}
		}
		for _, v := range visibilities {
			for _, fn := range n.Funcs(v) {
				nodes = append(nodes, fn)
			}
		}
		return nodes
	case *TranslationUnit:
		return stmtNodes(n.Stmts)

	default:
		panic(fmt.Sprintf("Children(): received unknown node %T", node))
	}
}

// Inspect walks the tree depth first. When fn returns false the children of
// that node are skipped.
func Inspect(node AstNode, fn func(AstNode) bool) {
	if !fn(node) {
		return
	}

	for _, child := range Children(node) {
		Inspect(child, fn)
	}
}

// Shape renders the kinds of a tree without its values. Two trees with the
// same shape differ at most in literal values, names and operators. Table
// entries are sorted, and class members are labelled with their visibility.
func Shape(node AstNode) string {
	var b strings.Builder
	writeShape(&b, node)
	return b.String()
}

func writeShape(b *strings.Builder, node AstNode) {
	b.WriteString(KindOf(node).String())

	var parts []string
	switch n := node.(type) {
	case *TableExpr:
		for _, entry := range n.Entries {
			parts = append(parts, Shape(entry.Key)+":"+Shape(entry.Value))
		}
		sort.Strings(parts)

	case *ClassDeclStmt:
		for _, v := range visibilities {
			for _, base := range n.Inherits(v) {
				parts = append(parts, v.String()+" inherit "+Shape(base))
			}
			for _, vars := range n.Vars(v) {
				parts = append(parts, v.String()+" "+Shape(vars))
			}
			for _, fn := range n.Funcs(v) {
				parts = append(parts, v.String()+" "+Shape(fn))
			}
		}

	default:
		for _, child := range Children(node) {
			parts = append(parts, Shape(child))
		}
	}

	if len(parts) == 0 {
		return
	}

	b.WriteString("(")
	b.WriteString(strings.Join(parts, " "))
	b.WriteString(")")
}
