package object

// Environment is one lexical scope. Closures, bound methods and active calls
// all keep a pointer into the chain, so a scope lives as long as anything
// still refers to it.
type Environment struct {
	outer *Environment
	store map[string]Object
}

func NewEnvironment(outer *Environment) *Environment {
	s := make(map[string]Object)
	return &Environment{
		outer: outer,
		store: s,
	}
}

// Outer is the enclosing scope, nil for the global one.
func (e *Environment) Outer() *Environment {
	return e.outer
}

// Resolve searches this scope and then every enclosing one.
func (e *Environment) Resolve(name string) (Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		obj, ok = e.outer.Resolve(name)
	}
	return obj, ok
}

// Get only looks at this scope.
func (e *Environment) Get(name string) (Object, bool) {
	obj, ok := e.store[name]
	return obj, ok
}

// Define binds name in this scope, replacing any previous binding here.
func (e *Environment) Define(name string, val Object) Object {
	e.store[name] = val
	return val
}

// Assign rebinds an existing name in this scope only.
func (e *Environment) Assign(name string, val Object) bool {
	if _, ok := e.store[name]; !ok {
		return false
	}
	e.store[name] = val
	return true
}

func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance && env != nil; i++ {
		env = env.outer
	}
	return env
}

// GetAt reads name from the scope exactly distance hops out.
func (e *Environment) GetAt(distance int, name string) (Object, bool) {
	env := e.ancestor(distance)
	if env == nil {
		return nil, false
	}
	return env.Get(name)
}

// AssignAt rebinds name in the scope exactly distance hops out.
func (e *Environment) AssignAt(distance int, name string, val Object) bool {
	env := e.ancestor(distance)
	if env == nil {
		return false
	}
	return env.Assign(name, val)
}
