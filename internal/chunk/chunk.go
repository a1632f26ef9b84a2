package chunk

import (
	"errors"
	"fmt"
	"strings"
)

type OpCode uint8

const (
	FLOAT_NUM_OP OpCode = iota
	INT_NUM_OP
	RETURN_OP
	TRUE_OP
	FALSE_OP
	NULL_OP
	STR_OP
)

func (op OpCode) String() string {
	switch op {
	case FLOAT_NUM_OP:
		return "FLOAT_NUM_OP"
	case INT_NUM_OP:
		return "INT_NUM_OP"
	case RETURN_OP:
		return "RETURN_OP"
	case TRUE_OP:
		return "TRUE_OP"
	case FALSE_OP:
		return "FALSE_OP"
	case NULL_OP:
		return "NULL_OP"
	case STR_OP:
		return "STR_OP"
	default:
		return fmt.Sprintf("OpCode(%d)", uint8(op))
	}
}

// HasOperand reports whether op is followed by a one byte index into the
// constant pool.
func (op OpCode) HasOperand() bool {
	switch op {
	case FLOAT_NUM_OP, INT_NUM_OP, TRUE_OP, FALSE_OP, NULL_OP, STR_OP:
		return true
	}
	return false
}

// MaxObjects is the size of the constant pool addressable by a one byte
// operand.
const MaxObjects = 256

var ErrPoolFull = errors.New("constant pool is full")

// Chunk is a flat byte sequence of opcodes and operands together with the
// constants the operands refer to.
type Chunk struct {
	Codes   []uint8
	Objects []Object
}

func New() *Chunk {
	return &Chunk{
		Codes:   make([]uint8, 0),
		Objects: make([]Object, 0),
	}
}

func (c *Chunk) AddOpCode(code uint8) {
	c.Codes = append(c.Codes, code)
}

// AddObject appends obj to the constant pool and returns its index.
func (c *Chunk) AddObject(obj Object) (int, error) {
	if len(c.Objects) >= MaxObjects {
		return 0, fmt.Errorf("adding %s %s: %w", obj.Kind(), obj, ErrPoolFull)
	}

	c.Objects = append(c.Objects, obj)
	return len(c.Objects) - 1, nil
}

// String disassembles the chunk, one instruction per line:
//
//	00000000     INT_NUM_OP     0     42
//	00000002     RETURN_OP
func (c *Chunk) String() string {
	var b strings.Builder

	for i := 0; i < len(c.Codes); i++ {
		op := OpCode(c.Codes[i])
		fmt.Fprintf(&b, "%08d     ", i)

		switch {
		case op == RETURN_OP:
			b.WriteString(op.String())
		case op.HasOperand():
			b.WriteString(op.String())
			if i+1 >= len(c.Codes) {
				b.WriteString("     <missing operand>")
				break
			}

			i++
			idx := int(c.Codes[i])
			fmt.Fprintf(&b, "     %d     %s", idx, c.objectText(idx))
		default:
			b.WriteString("Unknown Op")
		}

		b.WriteByte('\n')
	}

	return b.String()
}

func (c *Chunk) objectText(idx int) string {
	if idx >= len(c.Objects) {
		return "<bad constant>"
	}
	return c.Objects[idx].String()
}
