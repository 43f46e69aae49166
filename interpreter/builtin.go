package interpreter

import (
	"dis/object"
	"dis/stdlib"
)

// this offers built in functions so programs don't need any configuration
// to use them
var builtInFunction = object.Module{}

func init() {
	for name, native := range stdlib.CoreModule {
		builtInFunction[name] = native
	}
}
