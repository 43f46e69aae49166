package stdlib

import (
	"dis/lexer"
	"dis/object"
	"fmt"
	"sort"
	"strings"
)

// natives raise errors without a location, the interpreter fills in the
// call site
func newError(format string, a ...interface{}) *object.Error {
	return object.NewError(lexer.Token{}, format, a...)
}

// CoreModule is defined in every global scope.
var CoreModule = object.Module{
	"clock": &object.BuiltinFn{Name: "clock", Params: 0, Fn: clock},
}

// every module added to the std lib needs to be defined here with a name
var BuiltinModules = map[string]object.Module{
	"math":   mathModule,
	"string": stringModule,
	"type":   typeModule,
}

// Load merges the named modules into one, for registration in the global
// scope.
func Load(names ...string) (object.Module, error) {
	merged := object.Module{}
	for _, name := range names {
		module, ok := BuiltinModules[name]
		if !ok {
			return nil, fmt.Errorf("stdlib: unknown module %q (known: %s)", name, strings.Join(ModuleNames(), ", "))
		}
		for key, val := range module {
			merged[key] = val
		}
	}
	return merged, nil
}

func ModuleNames() []string {
	names := make([]string, 0, len(BuiltinModules))
	for name := range BuiltinModules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
