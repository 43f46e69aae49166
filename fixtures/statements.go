package fixtures

import (
	"dis/ast"
	"dis/lexer"
	"fmt"
)

func (d *decoder) statement(raw any, path string) (ast.Statement, error) {
	n, err := d.open(raw, path)
	if err != nil {
		return nil, err
	}

	switch n.typ {
	case "Expression":
		tok := d.token(lexer.TokenIdentifier, "")
		expr, err := d.requiredExpression(n, "expression")
		if err != nil {
			return nil, err
		}
		tok.Text = expr.TokenLiteral()
		return &ast.ExpressionStmt{Token: tok, Expression: expr}, nil

	case "Print":
		tok := d.token(lexer.TokenLog, "log")
		expr, err := d.requiredExpression(n, "expression")
		if err != nil {
			return nil, err
		}
		return &ast.PrintStmt{Token: tok, Expression: expr}, nil

	case "Def":
		return d.variableDecl(n)

	case "Block":
		tok := d.token(lexer.TokenBodyStart, "|")
		stmts, err := d.statementList(n, "statements")
		if err != nil {
			return nil, err
		}
		return &ast.Block{Token: tok, Statements: stmts}, nil

	case "Op":
		return d.operationDecl(n)

	case "When":
		return d.conditional(n)

	case "While":
		tok := d.token(lexer.TokenWhile, "while")
		cond, err := d.requiredExpression(n, "condition")
		if err != nil {
			return nil, err
		}
		body, err := d.requiredStatement(n, "body")
		if err != nil {
			return nil, err
		}
		return &ast.WhileLoop{Token: tok, Condition: cond, Body: body}, nil

	case "Return":
		tok := d.token(lexer.TokenReturn, "return")
		value, err := d.optionalExpression(n, "value")
		if err != nil {
			return nil, err
		}
		return &ast.ReturnStmt{Keyword: tok, Value: value}, nil

	case "Obj":
		tok := d.token(lexer.TokenObj, "obj")
		name, err := d.name(n, "name")
		if err != nil {
			return nil, err
		}
		methods, err := d.methods(n)
		if err != nil {
			return nil, err
		}
		return &ast.ObjectDecl{Token: tok, Name: name, Methods: methods}, nil

	case "Enum":
		tok := d.token(lexer.TokenEnum, "enum")
		name, err := d.name(n, "name")
		if err != nil {
			return nil, err
		}
		elements, err := d.names(n, "elements")
		if err != nil {
			return nil, err
		}
		return &ast.EnumDecl{Token: tok, Name: name, Elements: elements}, nil

	case "Form":
		tok := d.token(lexer.TokenForm, "form")
		name, err := d.name(n, "name")
		if err != nil {
			return nil, err
		}
		members, err := d.members(n)
		if err != nil {
			return nil, err
		}
		return &ast.FormDecl{Token: tok, Name: name, Members: members}, nil
	}

	return nil, n.errorf("not a statement")
}

func (d *decoder) requiredStatement(n *node, key string) (ast.Statement, error) {
	raw, ok := n.fields[key]
	if !ok || raw == nil {
		return nil, n.errorf("missing %s", key)
	}
	return d.statement(raw, n.at(key))
}

func (d *decoder) variableDecl(n *node) (*ast.VariableDecl, error) {
	tok := d.token(lexer.TokenDef, "def")
	name, err := d.name(n, "name")
	if err != nil {
		return nil, err
	}
	initial, err := d.optionalExpression(n, "initial")
	if err != nil {
		return nil, err
	}
	return &ast.VariableDecl{Token: tok, Name: name, Initial: initial}, nil
}

func (d *decoder) operationDecl(n *node) (*ast.OperationDecl, error) {
	tok := d.token(lexer.TokenOp, "op")
	name, err := d.name(n, "name")
	if err != nil {
		return nil, err
	}
	params, err := d.names(n, "params")
	if err != nil {
		return nil, err
	}
	body, err := d.statementList(n, "body")
	if err != nil {
		return nil, err
	}
	return &ast.OperationDecl{Token: tok, Name: name, Params: params, Body: body}, nil
}

func (d *decoder) conditional(n *node) (*ast.Conditional, error) {
	tok := d.token(lexer.TokenWhen, "when")
	cond, err := d.requiredExpression(n, "condition")
	if err != nil {
		return nil, err
	}
	then, err := d.requiredStatement(n, "then")
	if err != nil {
		return nil, err
	}

	var ors []*ast.OrBranch
	if raw, ok := n.fields["ors"]; ok && raw != nil {
		list, ok := raw.([]any)
		if !ok {
			return nil, n.errorf("ors must be a list")
		}
		for idx, item := range list {
			path := fmt.Sprintf("%s[%d]", n.at("ors"), idx)
			orNode, err := d.open(withType(item, "Or"), path)
			if err != nil {
				return nil, err
			}
			orTok := d.token(lexer.TokenOr, "or")
			orCond, err := d.requiredExpression(orNode, "condition")
			if err != nil {
				return nil, err
			}
			branch, err := d.requiredStatement(orNode, "branch")
			if err != nil {
				return nil, err
			}
			ors = append(ors, &ast.OrBranch{Token: orTok, Condition: orCond, Branch: branch})
		}
	}

	var otherwise ast.Statement
	if raw, ok := n.fields["else"]; ok && raw != nil {
		otherwise, err = d.statement(raw, n.at("else"))
		if err != nil {
			return nil, err
		}
	}
	return &ast.Conditional{Token: tok, Condition: cond, Then: then, Ors: ors, Else: otherwise}, nil
}

func (d *decoder) methods(n *node) ([]*ast.OperationDecl, error) {
	raw, ok := n.fields["methods"]
	if !ok || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, n.errorf("methods must be a list")
	}
	methods := make([]*ast.OperationDecl, 0, len(list))
	for idx, item := range list {
		method, err := d.open(withType(item, "Op"), fmt.Sprintf("%s[%d]", n.at("methods"), idx))
		if err != nil {
			return nil, err
		}
		if method.typ != "Op" {
			return nil, method.errorf("object bodies hold operations only")
		}
		decl, err := d.operationDecl(method)
		if err != nil {
			return nil, err
		}
		methods = append(methods, decl)
	}
	return methods, nil
}

func (d *decoder) members(n *node) ([]*ast.VariableDecl, error) {
	raw, ok := n.fields["members"]
	if !ok || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, n.errorf("members must be a list")
	}
	members := make([]*ast.VariableDecl, 0, len(list))
	for idx, item := range list {
		member, err := d.open(withType(item, "Def"), fmt.Sprintf("%s[%d]", n.at("members"), idx))
		if err != nil {
			return nil, err
		}
		if member.typ != "Def" {
			return nil, member.errorf("form bodies hold definitions only")
		}
		decl, err := d.variableDecl(member)
		if err != nil {
			return nil, err
		}
		members = append(members, decl)
	}
	return members, nil
}

// withType lets nested nodes whose kind is fixed by their position leave
// out the type key.
func withType(raw any, typ string) any {
	fields, ok := raw.(map[string]any)
	if !ok {
		return raw
	}
	if _, ok := fields["type"]; ok {
		return raw
	}
	copied := make(map[string]any, len(fields)+1)
	for key, val := range fields {
		copied[key] = val
	}
	copied["type"] = typ
	return copied
}
