package chunk

import (
	"fmt"
	"strconv"
	"strings"
)

type ObjectKind int

const (
	INT_NUM_OBJECT ObjectKind = iota
	FLOAT_NUM_OBJECT
	STR_OBJECT
	TRUE_OBJECT
	FALSE_OBJECT
	NULL_OBJECT
)

func (k ObjectKind) String() string {
	switch k {
	case INT_NUM_OBJECT:
		return "INT_NUM_OBJECT"
	case FLOAT_NUM_OBJECT:
		return "FLOAT_NUM_OBJECT"
	case STR_OBJECT:
		return "STR_OBJECT"
	case TRUE_OBJECT:
		return "TRUE_OBJECT"
	case FALSE_OBJECT:
		return "FALSE_OBJECT"
	case NULL_OBJECT:
		return "NULL_OBJECT"
	default:
		panic(fmt.Sprintf("ObjectKind.String(): received illegal object kind: %d", k))
	}
}

// Object is a constant stored in a chunk's pool. Objects are immutable.
type Object interface {
	fmt.Stringer
	Kind() ObjectKind
}

type IntNumObject struct {
	Value int64
}

type FloatNumObject struct {
	Value float64
}

type StrObject struct {
	Value string
}

type TrueObject struct{}
type FalseObject struct{}
type NullObject struct{}

func (IntNumObject) Kind() ObjectKind   { return INT_NUM_OBJECT }
func (FloatNumObject) Kind() ObjectKind { return FLOAT_NUM_OBJECT }
func (StrObject) Kind() ObjectKind      { return STR_OBJECT }
func (TrueObject) Kind() ObjectKind     { return TRUE_OBJECT }
func (FalseObject) Kind() ObjectKind    { return FALSE_OBJECT }
func (NullObject) Kind() ObjectKind     { return NULL_OBJECT }

func (o IntNumObject) String() string { return strconv.FormatInt(o.Value, 10) }

func (o FloatNumObject) String() string {
	s := strconv.FormatFloat(o.Value, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func (o StrObject) String() string { return o.Value }
func (TrueObject) String() string  { return "true" }
func (FalseObject) String() string { return "false" }
func (NullObject) String() string  { return "null" }
