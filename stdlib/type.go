package stdlib

import (
	"dis/object"
	"strings"
)

// types module definition
var typeModule = object.Module{
	"type": funcOS("type", typeName),
	"str":  funcOS("str", func(obj object.Object) string { return obj.Inspect() }),
}

func typeName(obj object.Object) string {
	return strings.ToLower(string(obj.Type()))
}
