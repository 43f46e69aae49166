package interpreter

import (
	"dis/ast"
	"dis/lexer"
	"dis/object"
	"fmt"
)

func newError(tok lexer.Token, format string, a ...interface{}) *object.Error {
	return object.NewError(tok, format, a...)
}

func isError(obj object.Object) bool {
	return object.IsError(obj)
}

func (i *Interpreter) evalExpression(node ast.Expression) object.Object {
	switch nd := node.(type) {
	case *ast.Literal:
		return object.FromLiteral(nd.Value)

	case *ast.Grouping:
		return i.Eval(nd.Expression)

	case *ast.Variable:
		return i.lookUpVariable(nd.Name, nd.Name.Text, nd)

	case *ast.SelfRef:
		return i.lookUpVariable(nd.Keyword, object.SelfName, nd)

	case *ast.GlobalScopeRef:
		if val, ok := i.globals.Get(nd.Name.Text); ok {
			return val
		}
		return newError(nd.Name, "Undefined global '%s'.", nd.Name.Text)

	case *ast.ParentScopeRef:
		parent := i.env.Outer()
		if parent == nil {
			return newError(nd.Name, "No enclosing scope to read '%s' from.", nd.Name.Text)
		}
		if val, ok := parent.Resolve(nd.Name.Text); ok {
			return val
		}
		return newError(nd.Name, "Undefined variable '%s'.", nd.Name.Text)

	case *ast.Assign:
		val := i.Eval(nd.Value)
		if isError(val) {
			return val
		}
		return i.assignVariable(nd.Name, nd, val)

	case *ast.Count:
		return i.evalCountExpression(nd)

	case *ast.Unary:
		right := i.Eval(nd.Right)
		if isError(right) {
			return right
		}
		return i.evalUnaryExpression(nd.Operator, right)

	case *ast.Binary:
		left := i.Eval(nd.Left)
		if isError(left) {
			return left
		}
		right := i.Eval(nd.Right)
		if isError(right) {
			return right
		}
		return i.evalBinaryExpression(nd.Operator, left, right)

	case *ast.Logical:
		left := i.Eval(nd.Left)
		if isError(left) {
			return left
		}
		if nd.Operator.Kind == lexer.TokenLogicalOr {
			if object.IsTruthy(left) {
				return left
			}
		} else if !object.IsTruthy(left) {
			return left
		}
		return i.Eval(nd.Right)

	case *ast.Calling:
		return i.evalCallingExpression(nd)

	case *ast.GetProperty:
		target := i.Eval(nd.Object)
		if isError(target) {
			return target
		}
		holder, ok := target.(object.PropertyHolder)
		if !ok {
			return newError(nd.Name, "Only instances, samples and tastes have properties, got %s.", target.Type())
		}
		return holder.Get(nd.Name)

	case *ast.SetProperty:
		val := i.Eval(nd.Value)
		if isError(val) {
			return val
		}
		target := i.Eval(nd.Object)
		if isError(target) {
			return target
		}
		holder, ok := target.(object.PropertyHolder)
		if !ok {
			return newError(nd.Name, "Only instances, samples and tastes have fields, got %s.", target.Type())
		}
		holder.Set(nd.Name, val)
		return val
	}

	return newError(node.GetToken(), "cannot evaluate %T", node)
}

// lookUpVariable walks the resolved number of scopes, or reads the global
// scope when the resolver left the reference alone.
func (i *Interpreter) lookUpVariable(tok lexer.Token, name string, expr ast.Expression) object.Object {
	if distance, ok := i.locals[expr]; ok {
		if val, ok := i.env.GetAt(distance, name); ok {
			return val
		}
		return newError(tok, "Undefined variable '%s'.", name)
	}
	if val, ok := i.globals.Get(name); ok {
		return val
	}
	return newError(tok, "Undefined variable '%s'.", name)
}

// assignVariable writes at the resolved distance, and assumes a global when
// there is none.
func (i *Interpreter) assignVariable(name lexer.Token, expr ast.Expression, val object.Object) object.Object {
	if distance, ok := i.locals[expr]; ok {
		if !i.env.AssignAt(distance, name.Text, val) {
			return newError(name, "Undefined variable '%s'.", name.Text)
		}
		return val
	}
	if !i.globals.Assign(name.Text, val) {
		return newError(name, "Undefined variable '%s'.", name.Text)
	}
	return val
}

func (i *Interpreter) evalCountExpression(nd *ast.Count) object.Object {
	current := i.Eval(nd.Target)
	if isError(current) {
		return current
	}

	step := int64(1)
	if nd.Operator.Kind == lexer.TokenAssignMinusOne {
		step = -1
	}

	var updated object.Object
	switch current := current.(type) {
	case *object.Integer:
		updated = &object.Integer{Value: current.Value + step}
	case *object.Float:
		updated = &object.Float{Value: current.Value + float64(step)}
	default:
		return newError(nd.Operator, "Operand of %s must be a number, got %s.", nd.Operator.Text, current.Type())
	}
	return i.assignVariable(nd.Name, nd, updated)
}

func (i *Interpreter) evalCallingExpression(nd *ast.Calling) object.Object {
	callee := i.Eval(nd.Callee)
	if isError(callee) {
		return callee
	}

	args := make([]object.Object, 0, len(nd.Args))
	for _, arg := range nd.Args {
		evaluated := i.Eval(arg)
		if isError(evaluated) {
			return evaluated
		}
		args = append(args, evaluated)
	}

	fn, ok := callee.(object.Callable)
	if !ok {
		return &object.Error{
			Token:   nd.Paren,
			Message: fmt.Sprintf("Can only call operations and types, got %s.", callee.Type()),
			Args:    args,
		}
	}
	if len(args) != fn.Arity() {
		return &object.Error{
			Token:   nd.Paren,
			Message: fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)),
			Args:    args,
		}
	}

	result := fn.Call(i, args)
	if errObj, ok := result.(*object.Error); ok && errObj.Token.Text == "" && errObj.Token.Row == 0 {
		// natives do not know where they were called from
		errObj.Token = nd.Paren
	}
	return result
}
