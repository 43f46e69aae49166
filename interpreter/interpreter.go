package interpreter

import (
	"dis/ast"
	"dis/internals"
	"dis/object"
	"dis/semantics"
	"fmt"
	"io"
	"log/slog"
	"os"
)

type Interpreter struct {
	globals *object.Environment
	env     *object.Environment
	locals  semantics.Locals
	out     io.Writer
	logger  *slog.Logger
}

type Option func(*Interpreter)

// WithOutput sets where log statements write, stdout by default.
func WithOutput(out io.Writer) Option {
	return func(i *Interpreter) { i.out = out }
}

func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) { i.logger = logger }
}

// WithNatives registers extra native values in the global scope.
func WithNatives(module object.Module) Option {
	return func(i *Interpreter) {
		for name, native := range module {
			i.globals.Define(name, native)
		}
	}
}

// NewInterpreter sets up a session around env, which becomes the global
// scope for every later Interpret call. The core natives are defined in it.
func NewInterpreter(env *object.Environment, opts ...Option) *Interpreter {
	if env == nil {
		env = object.NewEnvironment(nil)
	}
	i := &Interpreter{
		globals: env,
		env:     env,
		locals:  make(semantics.Locals),
		out:     os.Stdout,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for name, native := range builtInFunction {
		env.Define(name, native)
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *Interpreter) Globals() *object.Environment {
	return i.globals
}

// Annotate merges a resolution table produced for statements that are
// about to be interpreted.
func (i *Interpreter) Annotate(locals semantics.Locals) {
	for expr, depth := range locals {
		i.locals[expr] = depth
	}
}

// Interpret runs top level statements in order against the global scope.
// The first runtime error stops the run and is returned; bindings made by
// earlier statements stay in place.
func (i *Interpreter) Interpret(stmts []ast.Statement) error {
	for _, stmt := range stmts {
		result := i.Eval(stmt)
		if errObj, ok := result.(*object.Error); ok {
			i.env = i.globals
			i.logger.Warn("run aborted", "line", errObj.Token.Row, "error", errObj.Message)
			return toRuntimeError(errObj)
		}
	}
	return nil
}

func toRuntimeError(errObj *object.Error) error {
	if errObj.Args == nil {
		return &internals.RuntimeError{Token: errObj.Token, Message: errObj.Message}
	}
	args := make([]string, 0, len(errObj.Args))
	for _, arg := range errObj.Args {
		args = append(args, arg.Inspect())
	}
	return &internals.ArgsError{Token: errObj.Token, Message: errObj.Message, Args: args}
}

// ExecuteBlock runs stmts in env and puts the previous scope back on every
// way out. A return signal or an error ends the block and is handed back.
func (i *Interpreter) ExecuteBlock(stmts []ast.Statement, env *object.Environment) object.Object {
	previousEnv := i.env
	i.env = env
	defer func() {
		i.env = previousEnv
	}()

	for _, statement := range stmts {
		result := i.Eval(statement)
		if result != nil {
			rt := result.Type()
			if rt == object.RETURN_VALUE_OBJ || rt == object.ERROR_OBJ {
				return result
			}
		}
	}
	return nil
}

// Eval evaluates an expression to a value, or executes a statement. A
// statement yields nil when it completes normally.
func (i *Interpreter) Eval(node ast.Node) object.Object {
	switch nd := node.(type) {
	case ast.Expression:
		return i.evalExpression(nd)

	case *ast.ExpressionStmt:
		if val := i.Eval(nd.Expression); isError(val) {
			return val
		}

	case *ast.PrintStmt:
		val := i.Eval(nd.Expression)
		if isError(val) {
			return val
		}
		fmt.Fprintln(i.out, val.Inspect())

	case *ast.VariableDecl:
		var val object.Object = object.NONE
		if nd.Initial != nil {
			val = i.Eval(nd.Initial)
			if isError(val) {
				return val
			}
		}
		i.env.Define(nd.Name.Text, val)

	case *ast.Block:
		return i.ExecuteBlock(nd.Statements, object.NewEnvironment(i.env))

	case *ast.OperationDecl:
		fn := &object.Operation{Declaration: nd, Closure: i.env}
		i.env.Define(nd.Name.Text, fn)

	case *ast.Conditional:
		return i.evalConditional(nd)

	case *ast.WhileLoop:
		return i.evalWhileLoop(nd)

	case *ast.ReturnStmt:
		var val object.Object = object.NONE
		if nd.Value != nil {
			val = i.Eval(nd.Value)
			if isError(val) {
				return val
			}
		}
		return &object.ReturnValue{Value: val}

	case *ast.ObjectDecl:
		i.declareObject(nd)

	case *ast.EnumDecl:
		i.declareEnum(nd)

	case *ast.FormDecl:
		return i.declareForm(nd)

	default:
		return newError(node.GetToken(), "cannot execute %T", node)
	}
	return nil
}

// A truthy primary condition runs its branch and skips the rest. Otherwise
// every "or" condition is evaluated, even after one has matched, and the
// first truthy one picks the branch.
func (i *Interpreter) evalConditional(nd *ast.Conditional) object.Object {
	condition := i.Eval(nd.Condition)
	if isError(condition) {
		return condition
	}
	if object.IsTruthy(condition) {
		return i.Eval(nd.Then)
	}

	var chosen ast.Statement
	for _, or := range nd.Ors {
		orCondition := i.Eval(or.Condition)
		if isError(orCondition) {
			return orCondition
		}
		if chosen == nil && object.IsTruthy(orCondition) {
			chosen = or.Branch
		}
	}

	switch {
	case chosen != nil:
		return i.Eval(chosen)
	case nd.Else != nil:
		return i.Eval(nd.Else)
	}
	return nil
}

func (i *Interpreter) evalWhileLoop(nd *ast.WhileLoop) object.Object {
	for {
		condition := i.Eval(nd.Condition)
		if isError(condition) {
			return condition
		}
		if !object.IsTruthy(condition) {
			return nil
		}
		result := i.Eval(nd.Body)
		if result != nil {
			rt := result.Type()
			if rt == object.RETURN_VALUE_OBJ || rt == object.ERROR_OBJ {
				return result
			}
		}
	}
}
