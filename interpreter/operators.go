package interpreter

import (
	"dis/lexer"
	"dis/object"
)

func (i *Interpreter) evalUnaryExpression(op lexer.Token, right object.Object) object.Object {
	switch op.Kind {
	case lexer.TokenExclamation:
		return object.NativeBool(!object.IsTruthy(right))
	case lexer.TokenMinus:
		// support for both ints and floats
		return i.evalMinusPrefixOperatorExpression(op, right)
	}

	return newError(op, "unknown operator: %s%s", op.Text, right.Type())
}

func (i *Interpreter) evalMinusPrefixOperatorExpression(op lexer.Token, right object.Object) object.Object {
	switch right := right.(type) {
	case *object.Integer:
		return &object.Integer{
			Value: -right.Value,
		}
	case *object.Float:
		return &object.Float{
			Value: -right.Value,
		}
	default:
		return newError(op, "Operand must be a number, got %s.", right.Type())
	}
}

func isNumber(obj object.Object) bool {
	switch obj.(type) {
	case *object.Integer, *object.Float:
		return true
	}
	return false
}

func toFloat(obj object.Object) float64 {
	switch obj := obj.(type) {
	case *object.Integer:
		return float64(obj.Value)
	case *object.Float:
		return obj.Value
	}
	return 0
}

func (i *Interpreter) evalBinaryExpression(op lexer.Token, left, right object.Object) object.Object {
	switch op.Kind {
	case lexer.TokenEquals:
		return object.NativeBool(object.Equal(left, right))
	case lexer.TokenNotEquals:
		return object.NativeBool(!object.Equal(left, right))
	case lexer.TokenPlus:
		return i.evalPlusExpression(op, left, right)
	}

	if !isNumber(left) || !isNumber(right) {
		return newError(op, "Operands must be numbers, got %s %s %s.", left.Type(), op.Text, right.Type())
	}

	l, lok := left.(*object.Integer)
	r, rok := right.(*object.Integer)
	if lok && rok {
		return i.evalIntegerInfixExpression(op, l.Value, r.Value)
	}
	return i.evalFloatInfixExpression(op, toFloat(left), toFloat(right))
}

// Plus keeps integers integral, joins display forms when either side is a
// string, and otherwise adds as floats.
func (i *Interpreter) evalPlusExpression(op lexer.Token, left, right object.Object) object.Object {
	l, lok := left.(*object.Integer)
	r, rok := right.(*object.Integer)
	switch {
	case lok && rok:
		return &object.Integer{Value: l.Value + r.Value}
	case left.Type() == object.STRING_OBJ || right.Type() == object.STRING_OBJ:
		return &object.String{Value: left.Inspect() + right.Inspect()}
	case isNumber(left) && isNumber(right):
		return &object.Float{Value: toFloat(left) + toFloat(right)}
	}
	return newError(op, "Operands must be numbers or strings, got %s + %s.", left.Type(), right.Type())
}

func (i *Interpreter) evalIntegerInfixExpression(op lexer.Token, left, right int64) object.Object {
	switch op.Kind {
	// arithmetic operations
	case lexer.TokenMultiply:
		return &object.Integer{Value: left * right}
	case lexer.TokenSlash:
		if right == 0 {
			return newError(op, "Division by zero.")
		}
		// truncates toward zero
		return &object.Integer{Value: left / right}
	case lexer.TokenMinus:
		return &object.Integer{Value: left - right}

	// comparison operators
	case lexer.TokenGreater:
		return object.NativeBool(left > right)
	case lexer.TokenGreaterOrEqual:
		return object.NativeBool(left >= right)
	case lexer.TokenLess:
		return object.NativeBool(left < right)
	case lexer.TokenLessOrEqual:
		return object.NativeBool(left <= right)
	}

	return newError(op, "unknown operator: INTEGER %s INTEGER", op.Text)
}

func (i *Interpreter) evalFloatInfixExpression(op lexer.Token, left, right float64) object.Object {
	switch op.Kind {
	case lexer.TokenMultiply:
		return &object.Float{Value: left * right}
	case lexer.TokenSlash:
		return &object.Float{Value: left / right}
	case lexer.TokenMinus:
		return &object.Float{Value: left - right}

	case lexer.TokenGreater:
		return object.NativeBool(left > right)
	case lexer.TokenGreaterOrEqual:
		return object.NativeBool(left >= right)
	case lexer.TokenLess:
		return object.NativeBool(left < right)
	case lexer.TokenLessOrEqual:
		return object.NativeBool(left <= right)
	}

	return newError(op, "unknown operator: FLOAT %s FLOAT", op.Text)
}
