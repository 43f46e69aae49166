package object

import (
	"dis/lexer"
	"fmt"
)

// PropertyHolder is implemented by the three instance kinds. Get never
// creates a field, Set always writes the holder's own fields.
type PropertyHolder interface {
	Object
	Get(name lexer.Token) Object
	Set(name lexer.Token, val Object)
}

// ObjType is a user declared object type.
type ObjType struct {
	Name    string
	Methods map[string]*Operation
}

func (t *ObjType) Type() ObjectType { return OBJ_TYPE_OBJ }
func (t *ObjType) Inspect() string  { return t.Name }

func (t *ObjType) FindMethod(name string) *Operation {
	if method, ok := t.Methods[name]; ok {
		return method
	}
	return nil
}

func (t *ObjType) Arity() int {
	pilot := t.FindMethod(PilotName)
	if pilot == nil {
		return 0
	}
	return pilot.Arity()
}

func (t *ObjType) Call(exec Executor, args []Object) Object {
	instance := &Instance{Of: t, Fields: make(map[string]Object)}
	if pilot := t.FindMethod(PilotName); pilot != nil {
		result := pilot.Bind(instance).Call(exec, args)
		if IsError(result) {
			return result
		}
	}
	return instance
}

type Instance struct {
	Of     *ObjType
	Fields map[string]Object
}

func (i *Instance) Type() ObjectType { return INSTANCE_OBJ }
func (i *Instance) Inspect() string  { return fmt.Sprintf("<%s instance>", i.Of.Name) }

// Get looks at the fields first, then at the type's methods.
func (i *Instance) Get(name lexer.Token) Object {
	if value, ok := i.Fields[name.Text]; ok {
		return value
	}
	if method := i.Of.FindMethod(name.Text); method != nil {
		return method.Bind(i)
	}
	return NewError(name, "Undefined object property '%s'.", name.Text)
}

func (i *Instance) Set(name lexer.Token, val Object) {
	i.Fields[name.Text] = val
}

// EnumType maps element names to ordinals 0..N-1 in declaration order.
type EnumType struct {
	Name     string
	Elements []string
	ordinals map[string]int64
}

func NewEnumType(name string, elements []string) *EnumType {
	ordinals := make(map[string]int64, len(elements))
	for idx, el := range elements {
		ordinals[el] = int64(idx)
	}
	return &EnumType{
		Name:     name,
		Elements: elements,
		ordinals: ordinals,
	}
}

func (t *EnumType) Type() ObjectType { return ENUM_TYPE_OBJ }
func (t *EnumType) Inspect() string  { return t.Name }

func (t *EnumType) Ordinal(element string) (int64, bool) {
	ord, ok := t.ordinals[element]
	return ord, ok
}

func (t *EnumType) ElementName(ordinal int64) (string, bool) {
	if ordinal < 0 || ordinal >= int64(len(t.Elements)) {
		return "", false
	}
	return t.Elements[ordinal], true
}

func (t *EnumType) Arity() int { return 0 }

func (t *EnumType) Call(_ Executor, _ []Object) Object {
	return &Sample{Of: t, Fields: make(map[string]Object)}
}

// Sample is a value of an enum type.
type Sample struct {
	Of     *EnumType
	Fields map[string]Object
}

func (s *Sample) Type() ObjectType { return SAMPLE_OBJ }
func (s *Sample) Inspect() string  { return fmt.Sprintf("<%s sample>", s.Of.Name) }

// Get resolves fields, then ordinal to name when the key was written as an
// integer, then name to ordinal.
func (s *Sample) Get(name lexer.Token) Object {
	if value, ok := s.Fields[name.Text]; ok {
		return value
	}
	if ordinal, ok := integerKey(name); ok {
		if element, ok := s.Of.ElementName(ordinal); ok {
			return &String{Value: element}
		}
	}
	if ordinal, ok := s.Of.Ordinal(name.Text); ok {
		return &Integer{Value: ordinal}
	}
	return NewError(name, "Undefined enum element '%s'.", name.Text)
}

func (s *Sample) Set(name lexer.Token, val Object) {
	s.Fields[name.Text] = val
}

func integerKey(name lexer.Token) (int64, bool) {
	switch v := name.Literal.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	}
	return 0, false
}

// FormType keeps member defaults, each evaluated once at declaration.
type FormType struct {
	Name    string
	Members map[string]Object
}

func (t *FormType) Type() ObjectType { return FORM_TYPE_OBJ }
func (t *FormType) Inspect() string  { return t.Name }

func (t *FormType) FindMember(name string) (Object, bool) {
	val, ok := t.Members[name]
	return val, ok
}

func (t *FormType) Arity() int { return 0 }

func (t *FormType) Call(_ Executor, _ []Object) Object {
	return &Taste{Of: t, Fields: make(map[string]Object)}
}

// Taste is a value of a form type.
type Taste struct {
	Of     *FormType
	Fields map[string]Object
}

func (t *Taste) Type() ObjectType { return TASTE_OBJ }
func (t *Taste) Inspect() string  { return fmt.Sprintf("<%s taste>", t.Of.Name) }

func (t *Taste) Get(name lexer.Token) Object {
	if value, ok := t.Fields[name.Text]; ok {
		return value
	}
	if member, ok := t.Of.FindMember(name.Text); ok {
		return member
	}
	return NewError(name, "Undefined form member '%s'.", name.Text)
}

func (t *Taste) Set(name lexer.Token, val Object) {
	t.Fields[name.Text] = val
}
