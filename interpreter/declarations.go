package interpreter

import (
	"dis/ast"
	"dis/object"
)

// Each declaration binds its name to none first so method bodies and member
// defaults can refer to it, then rebinds the name to the finished type.

func (i *Interpreter) declareObject(nd *ast.ObjectDecl) {
	i.env.Define(nd.Name.Text, object.NONE)

	methods := make(map[string]*object.Operation, len(nd.Methods))
	for _, method := range nd.Methods {
		methods[method.Name.Text] = &object.Operation{
			Declaration: method,
			Closure:     i.env,
			IsPilot:     method.Name.Text == object.PilotName,
		}
	}

	objType := &object.ObjType{Name: nd.Name.Text, Methods: methods}
	i.env.Define(nd.Name.Text, objType)
	i.logger.Debug("object declared", "name", objType.Name, "methods", len(methods), "line", nd.Name.Row)
}

func (i *Interpreter) declareEnum(nd *ast.EnumDecl) {
	i.env.Define(nd.Name.Text, object.NONE)

	elements := make([]string, 0, len(nd.Elements))
	for _, el := range nd.Elements {
		elements = append(elements, el.Text)
	}

	enumType := object.NewEnumType(nd.Name.Text, elements)
	i.env.Define(nd.Name.Text, enumType)
	i.logger.Debug("enum declared", "name", enumType.Name, "elements", len(elements), "line", nd.Name.Row)
}

// Member defaults are evaluated once, here. Each member is also bound in the
// current scope so later defaults can read it.
func (i *Interpreter) declareForm(nd *ast.FormDecl) object.Object {
	i.env.Define(nd.Name.Text, object.NONE)

	members := make(map[string]object.Object, len(nd.Members))
	for _, member := range nd.Members {
		var val object.Object = object.NONE
		if member.Initial != nil {
			val = i.Eval(member.Initial)
			if isError(val) {
				return val
			}
		}
		i.env.Define(member.Name.Text, val)
		members[member.Name.Text] = val
	}

	formType := &object.FormType{Name: nd.Name.Text, Members: members}
	i.env.Define(nd.Name.Text, formType)
	i.logger.Debug("form declared", "name", formType.Name, "members", len(members), "line", nd.Name.Row)
	return nil
}
