package emitter

import (
	"fmt"

	"github.com/kievzenit/naja/internal/ast"
	"github.com/kievzenit/naja/internal/chunk"
	"github.com/kievzenit/naja/internal/compiler_errors"
)

type ConstantPoolError struct {
	Err error

	Line int
}

func (e *ConstantPoolError) GetMessage() string {
	return fmt.Sprintf("too many constants in one chunk: %v", e.Err)
}

func (e *ConstantPoolError) GetLine() int {
	return e.Line
}

func (e *ConstantPoolError) GetKind() compiler_errors.ErrorKind {
	return compiler_errors.EmitError
}

func (e *ConstantPoolError) Error() string {
	return e.GetMessage()
}

func (e *ConstantPoolError) Unwrap() error {
	return e.Err
}

// Emitter lowers a syntax tree into a chunk. Only literals, return and
// expression statements are encoded for now; every other node is skipped.
type Emitter struct {
	chunk *chunk.Chunk
	eh    compiler_errors.ErrorHandler
}

func NewEmitter(eh compiler_errors.ErrorHandler) *Emitter {
	return &Emitter{
		chunk: chunk.New(),
		eh:    eh,
	}
}

// Emit appends the code for unit to the emitter's chunk and returns it.
func (e *Emitter) Emit(unit *ast.TranslationUnit) *chunk.Chunk {
	for _, stmt := range unit.Stmts {
		e.emitForStmt(stmt)
	}

	return e.chunk
}

func (e *Emitter) emitForStmt(stmt ast.Stmt) {
	switch stmt := stmt.(type) {
	case *ast.ReturnStmt:
		e.emitForReturnStmt(stmt)
	case *ast.ExprStmt:
		e.emitForExpr(stmt.Expr)
	case *ast.ScopeStmt:
		for _, inner := range stmt.Stmts {
			e.emitForStmt(inner)
		}
	}
}

func (e *Emitter) emitForReturnStmt(stmt *ast.ReturnStmt) {
	if stmt.Expr != nil {
		e.emitForExpr(stmt.Expr)
	}

	e.chunk.AddOpCode(uint8(chunk.RETURN_OP))
}

func (e *Emitter) emitForExpr(expr ast.Expr) {
	switch expr := expr.(type) {
	case *ast.IntExpr:
		e.emitConstant(expr, chunk.INT_NUM_OP, chunk.IntNumObject{Value: expr.Value})
	case *ast.FloatExpr:
		e.emitConstant(expr, chunk.FLOAT_NUM_OP, chunk.FloatNumObject{Value: expr.Value})
	case *ast.StringExpr:
		e.emitConstant(expr, chunk.STR_OP, chunk.StrObject{Value: expr.Value})
	case *ast.BoolExpr:
		if expr.Value {
			e.emitConstant(expr, chunk.TRUE_OP, chunk.TrueObject{})
		} else {
			e.emitConstant(expr, chunk.FALSE_OP, chunk.FalseObject{})
		}
	case *ast.NullExpr:
		e.emitConstant(expr, chunk.NULL_OP, chunk.NullObject{})
	case *ast.GroupExpr:
		e.emitForExpr(expr.Expr)
	}
}

func (e *Emitter) emitConstant(expr ast.Expr, op chunk.OpCode, obj chunk.Object) {
	idx, err := e.chunk.AddObject(obj)
	if err != nil {
		line := 0
		if token := expr.FirstToken(); token != nil {
			line = token.Line
		}

		e.eh.AddError(&ConstantPoolError{
			Err: err,

			Line: line,
		})
		return
	}

	e.chunk.AddOpCode(uint8(op))
	e.chunk.AddOpCode(uint8(idx))
}
