package object

import (
	"dis/ast"
	"fmt"
)

const (
	// PilotName is the method run when an object type is called.
	PilotName = "pilot"
	// SelfName is bound to the instance inside methods.
	SelfName = "self"
)

// Executor runs a statement list against a prepared scope. The interpreter
// implements it; callables use it to run their bodies.
type Executor interface {
	ExecuteBlock(stmts []ast.Statement, env *Environment) Object
}

// Callable is anything a calling expression can invoke. The caller checks
// the argument count against Arity before Call.
type Callable interface {
	Object
	Arity() int
	Call(exec Executor, args []Object) Object
}

// Operation is a user operation bundled with the scope it was declared in.
type Operation struct {
	Declaration *ast.OperationDecl
	Closure     *Environment
	IsPilot     bool
}

func (o *Operation) Type() ObjectType { return OPERATION_OBJ }
func (o *Operation) Inspect() string  { return fmt.Sprintf("<op %s>", o.Declaration.Name.Text) }

func (o *Operation) Arity() int { return len(o.Declaration.Params) }

func (o *Operation) Call(exec Executor, args []Object) Object {
	env := NewEnvironment(o.Closure)
	for paramIdx, param := range o.Declaration.Params {
		env.Define(param.Text, args[paramIdx])
	}

	evaluated := exec.ExecuteBlock(o.Declaration.Body, env)
	if IsError(evaluated) {
		return evaluated
	}

	// a pilot always hands back its instance
	if o.IsPilot {
		if self, ok := o.Closure.Get(SelfName); ok {
			return self
		}
	}

	if returnValue, ok := evaluated.(*ReturnValue); ok {
		return returnValue.Value
	}
	return NONE
}

// Bind wraps the operation in a scope where self is the given instance.
func (o *Operation) Bind(instance Object) *Operation {
	env := NewEnvironment(o.Closure)
	env.Define(SelfName, instance)
	return &Operation{
		Declaration: o.Declaration,
		Closure:     env,
		IsPilot:     o.IsPilot,
	}
}

type BuiltinFunction func(args ...Object) Object

// BuiltinFn is a native callable with a fixed number of parameters.
type BuiltinFn struct {
	Name   string
	Params int
	Fn     BuiltinFunction
}

func (b *BuiltinFn) Type() ObjectType { return BUILTIN_OBJ }
func (b *BuiltinFn) Inspect() string  { return fmt.Sprintf("<native %s>", b.Name) }

func (b *BuiltinFn) Arity() int { return b.Params }

func (b *BuiltinFn) Call(_ Executor, args []Object) Object {
	return b.Fn(args...)
}
