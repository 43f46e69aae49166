package stdlib

import (
	"dis/object"
)

func numberArg(arg object.Object) (float64, bool) {
	switch arg := arg.(type) {
	case *object.Integer:
		return float64(arg.Value), true
	case *object.Float:
		return arg.Value, true
	}
	return 0, false
}

// maps a function type fn func(float64) float64
// to a builtin function
func funcF64F64(name string, fn func(float64) float64) *object.BuiltinFn {
	return &object.BuiltinFn{
		Name:   name,
		Params: 1,
		Fn: func(args ...object.Object) object.Object {
			value, ok := numberArg(args[0])
			if !ok {
				return newError("%s expects a number, got %s", name, args[0].Type())
			}
			return &object.Float{Value: fn(value)}
		},
	}
}

// maps a function type fn func(string) string
// to a builtin function
func funcSS(name string, fn func(string) string) *object.BuiltinFn {
	return &object.BuiltinFn{
		Name:   name,
		Params: 1,
		Fn: func(args ...object.Object) object.Object {
			str, ok := args[0].(*object.String)
			if !ok {
				return newError("%s expects a string, got %s", name, args[0].Type())
			}
			return &object.String{Value: fn(str.Value)}
		},
	}
}

// maps a function type fn func(object.Object) string
// to a builtin function
func funcOS(name string, fn func(object.Object) string) *object.BuiltinFn {
	return &object.BuiltinFn{
		Name:   name,
		Params: 1,
		Fn: func(args ...object.Object) object.Object {
			return &object.String{Value: fn(args[0])}
		},
	}
}
