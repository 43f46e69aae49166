package fixtures

import (
	"dis/ast"
	"dis/lexer"
	"fmt"
	"strconv"
)

func (d *decoder) expression(raw any, path string) (ast.Expression, error) {
	n, err := d.open(raw, path)
	if err != nil {
		return nil, err
	}

	switch n.typ {
	case "Literal":
		return d.literal(n)

	case "Variable":
		name, err := d.name(n, "name")
		if err != nil {
			return nil, err
		}
		return &ast.Variable{Name: name}, nil

	case "Assign":
		name, err := d.name(n, "name")
		if err != nil {
			return nil, err
		}
		value, err := d.requiredExpression(n, "value")
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Name: name, Value: value}, nil

	case "Unary":
		op, err := d.operator(n, lexer.UnaryOperators)
		if err != nil {
			return nil, err
		}
		right, err := d.requiredExpression(n, "right")
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: op, Right: right}, nil

	case "Binary", "Logical":
		table := lexer.BinOperators
		if n.typ == "Logical" {
			table = lexer.LogicalOperators
		}
		op, err := d.operator(n, table)
		if err != nil {
			return nil, err
		}
		left, err := d.requiredExpression(n, "left")
		if err != nil {
			return nil, err
		}
		right, err := d.requiredExpression(n, "right")
		if err != nil {
			return nil, err
		}
		if n.typ == "Logical" {
			return &ast.Logical{Left: left, Operator: op, Right: right}, nil
		}
		return &ast.Binary{Left: left, Operator: op, Right: right}, nil

	case "Count":
		op, err := d.operator(n, lexer.CountOperators)
		if err != nil {
			return nil, err
		}
		name, err := d.name(n, "name")
		if err != nil {
			return nil, err
		}
		return &ast.Count{Operator: op, Target: &ast.Variable{Name: name}, Name: name}, nil

	case "Call":
		callee, err := d.requiredExpression(n, "callee")
		if err != nil {
			return nil, err
		}
		args, err := d.arguments(n)
		if err != nil {
			return nil, err
		}
		return &ast.Calling{Callee: callee, Paren: d.token(lexer.TokenBraceClose, ")"), Args: args}, nil

	case "Grouping":
		tok := d.token(lexer.TokenBraceOpen, "(")
		inner, err := d.requiredExpression(n, "expression")
		if err != nil {
			return nil, err
		}
		return &ast.Grouping{Token: tok, Expression: inner}, nil

	case "Self":
		return &ast.SelfRef{Keyword: d.token(lexer.TokenSelf, "self")}, nil

	case "Get":
		target, err := d.requiredExpression(n, "object")
		if err != nil {
			return nil, err
		}
		name, err := d.name(n, "name")
		if err != nil {
			return nil, err
		}
		return &ast.GetProperty{Object: target, Name: name}, nil

	case "Set":
		target, err := d.requiredExpression(n, "object")
		if err != nil {
			return nil, err
		}
		name, err := d.name(n, "name")
		if err != nil {
			return nil, err
		}
		value, err := d.requiredExpression(n, "value")
		if err != nil {
			return nil, err
		}
		return &ast.SetProperty{Object: target, Name: name, Value: value}, nil

	case "Parent":
		name, err := d.name(n, "name")
		if err != nil {
			return nil, err
		}
		return &ast.ParentScopeRef{Name: name}, nil

	case "Global":
		name, err := d.name(n, "name")
		if err != nil {
			return nil, err
		}
		return &ast.GlobalScopeRef{Name: name}, nil
	}

	return nil, n.errorf("not an expression")
}

// literal maps YAML scalars onto Dis values; a missing value is none.
func (d *decoder) literal(n *node) (ast.Expression, error) {
	switch v := n.fields["value"].(type) {
	case nil:
		return &ast.Literal{Token: d.token(lexer.TokenNone, "none")}, nil
	case bool:
		kind := lexer.TokenFalse
		if v {
			kind = lexer.TokenTrue
		}
		return &ast.Literal{Token: d.token(kind, strconv.FormatBool(v)), Value: v}, nil
	case int:
		tok := d.token(lexer.TokenInt, strconv.Itoa(v))
		tok.Literal = int64(v)
		return &ast.Literal{Token: tok, Value: int64(v)}, nil
	case float64:
		tok := d.token(lexer.TokenFloat, strconv.FormatFloat(v, 'f', -1, 64))
		tok.Literal = v
		return &ast.Literal{Token: tok, Value: v}, nil
	case string:
		tok := d.token(lexer.TokenString, v)
		tok.Literal = v
		return &ast.Literal{Token: tok, Value: v}, nil
	default:
		return nil, n.errorf("unsupported literal %T", v)
	}
}

func (d *decoder) arguments(n *node) ([]ast.Expression, error) {
	raw, ok := n.fields["args"]
	if !ok || raw == nil {
		return []ast.Expression{}, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, n.errorf("args must be a list of expressions")
	}
	args := make([]ast.Expression, 0, len(list))
	for idx, item := range list {
		arg, err := d.expression(item, fmt.Sprintf("%s[%d]", n.at("args"), idx))
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}
