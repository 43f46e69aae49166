package stdlib

import (
	"dis/object"
	"strings"
	"unicode/utf8"
)

var stringModule = object.Module{
	"upper": funcSS("upper", strings.ToUpper),
	"lower": funcSS("lower", strings.ToLower),
	"trim":  funcSS("trim", strings.TrimSpace),
	"len":   &object.BuiltinFn{Name: "len", Params: 1, Fn: stringLen},
}

// len counts characters, not bytes.
func stringLen(args ...object.Object) object.Object {
	str, ok := args[0].(*object.String)
	if !ok {
		return newError("len expects a string, got %s", args[0].Type())
	}
	return &object.Integer{Value: int64(utf8.RuneCountInString(str.Value))}
}
