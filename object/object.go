package object

import (
	"dis/lexer"
	"fmt"
	"strconv"
)

type ObjectType string

const (
	INTEGER_OBJ      = "INTEGER"
	BOOLEAN_OBJ      = "BOOLEAN"
	FLOAT_OBJ        = "FLOAT"
	STRING_OBJ       = "STRING"
	NONE_OBJ         = "NONE"
	RETURN_VALUE_OBJ = "RETURN_VALUE"
	OPERATION_OBJ    = "OPERATION"
	BUILTIN_OBJ      = "BUILTIN"
	OBJ_TYPE_OBJ     = "OBJ"
	INSTANCE_OBJ     = "INSTANCE"
	ENUM_TYPE_OBJ    = "ENUM"
	SAMPLE_OBJ       = "SAMPLE"
	FORM_TYPE_OBJ    = "FORM"
	TASTE_OBJ        = "TASTE"

	// errors
	ERROR_OBJ = "ERROR"
)

type Object interface {
	Type() ObjectType
	Inspect() string
}

var (
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
	NONE  = &None{}
)

type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return strconv.FormatInt(i.Value, 10) }

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return fmt.Sprintf("%t", b.Value) }

type Float struct {
	Value float64
}

func (f *Float) Type() ObjectType { return FLOAT_OBJ }

// Inspect drops the fraction of whole values, 2.0 displays as 2.
func (f *Float) Inspect() string { return strconv.FormatFloat(f.Value, 'f', -1, 64) }

type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return s.Value }

type None struct{}

func (n *None) Type() ObjectType { return NONE_OBJ }
func (n *None) Inspect() string  { return "none" }

// ReturnValue carries a return statement's value up to the operation call
// that consumes it. Statement sequencing passes it through untouched.
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() ObjectType { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string  { return rv.Value.Inspect() }

// Error is a runtime error travelling through evaluation. Args is set for
// failures raised before a call, with the arguments already evaluated.
type Error struct {
	Token   lexer.Token
	Message string
	Args    []Object
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return "ERROR: " + e.Message }

func NewError(tok lexer.Token, format string, a ...interface{}) *Error {
	return &Error{Token: tok, Message: fmt.Sprintf(format, a...)}
}

func IsError(obj Object) bool {
	if obj != nil {
		return obj.Type() == ERROR_OBJ
	}
	return false
}

func NativeBool(val bool) *Boolean {
	if val {
		return TRUE
	}
	return FALSE
}

// IsTruthy: none and false are falsy, everything else is truthy.
func IsTruthy(obj Object) bool {
	switch obj := obj.(type) {
	case nil, *None:
		return false
	case *Boolean:
		return obj.Value
	default:
		return true
	}
}

// Equal compares by value for primitives and by identity for everything
// else. Values of different kinds are never equal.
func Equal(a, b Object) bool {
	_, aNone := a.(*None)
	_, bNone := b.(*None)
	if aNone || bNone {
		return aNone && bNone
	}
	switch a := a.(type) {
	case *Integer:
		if b, ok := b.(*Integer); ok {
			return a.Value == b.Value
		}
	case *Float:
		if b, ok := b.(*Float); ok {
			return a.Value == b.Value
		}
	case *String:
		if b, ok := b.(*String); ok {
			return a.Value == b.Value
		}
	case *Boolean:
		if b, ok := b.(*Boolean); ok {
			return a.Value == b.Value
		}
	default:
		return a == b
	}
	return false
}

// FromLiteral converts a scanned literal into a runtime value.
func FromLiteral(val any) Object {
	switch v := val.(type) {
	case nil:
		return NONE
	case bool:
		return NativeBool(v)
	case int:
		return &Integer{Value: int64(v)}
	case int64:
		return &Integer{Value: v}
	case float64:
		return &Float{Value: v}
	case string:
		return &String{Value: v}
	case Object:
		return v
	default:
		return &String{Value: fmt.Sprintf("%v", v)}
	}
}

// this for module type which can be constants, functions (for now)
type Module = map[string]Object
