package interpreter

import (
	"dis/internals"
	"dis/lexer"
	"dis/object"
	"errors"
	"testing"

	"github.com/go-test/deep"
)

func TestBlockShadowing(t *testing.T) {
	doc := `
statements:
  - {type: Def, name: a, initial: {type: Literal, value: 1}}
  - type: Block
    statements:
      - {type: Def, name: a, initial: {type: Literal, value: 2}}
      - {type: Print, expression: {type: Variable, name: a}}
  - {type: Print, expression: {type: Variable, name: a}}
`
	out, err := runProgram(t, doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := deep.Equal(out, []string{"2", "1"}); diff != nil {
		t.Error(diff)
	}
}

func TestExpressionEvaluation(t *testing.T) {
	tests := []struct {
		name     string
		expr     string
		expected string
	}{
		{"int plus int", `{type: Binary, operator: "+", left: {type: Literal, value: 1}, right: {type: Literal, value: 1}}`, "2"},
		{"int plus float", `{type: Binary, operator: "+", left: {type: Literal, value: 1}, right: {type: Literal, value: 1.0}}`, "2"},
		{"string plus int", `{type: Binary, operator: "+", left: {type: Literal, value: "a"}, right: {type: Literal, value: 1}}`, "a1"},
		{"int plus string", `{type: Binary, operator: "+", left: {type: Literal, value: 1}, right: {type: Literal, value: "b"}}`, "1b"},
		{"int division truncates", `{type: Binary, operator: "/", left: {type: Literal, value: 7}, right: {type: Literal, value: 2}}`, "3"},
		{"float division", `{type: Binary, operator: "/", left: {type: Literal, value: 7.0}, right: {type: Literal, value: 2.0}}`, "3.5"},
		{"mixed multiply", `{type: Binary, operator: "*", left: {type: Literal, value: 2}, right: {type: Literal, value: 1.5}}`, "3"},
		{"int minus", `{type: Binary, operator: "-", left: {type: Literal, value: 2}, right: {type: Literal, value: 5}}`, "-3"},
		{"mixed comparison", `{type: Binary, operator: "<", left: {type: Literal, value: 1}, right: {type: Literal, value: 1.5}}`, "true"},
		{"greater or equal", `{type: Binary, operator: ">=", left: {type: Literal, value: 2}, right: {type: Literal, value: 2}}`, "true"},
		{"none equals none", `{type: Binary, operator: "==", left: {type: Literal}, right: {type: Literal}}`, "true"},
		{"none equals zero", `{type: Binary, operator: "==", left: {type: Literal}, right: {type: Literal, value: 0}}`, "false"},
		{"different kinds differ", `{type: Binary, operator: "!=", left: {type: Literal, value: 1}, right: {type: Literal, value: "1"}}`, "true"},
		{"negation", `{type: Unary, operator: "-", right: {type: Literal, value: 4.5}}`, "-4.5"},
		{"not none", `{type: Unary, operator: "!", right: {type: Literal}}`, "true"},
		{"not zero", `{type: Unary, operator: "!", right: {type: Literal, value: 0}}`, "false"},
		{"grouping", `{type: Grouping, expression: {type: Literal, value: "g"}}`, "g"},
		{"or keeps truthy left", `{type: Logical, operator: "or", left: {type: Literal, value: "x"}, right: {type: Variable, name: missing}}`, "x"},
		{"or falls through", `{type: Logical, operator: "||", left: {type: Literal, value: false}, right: {type: Literal, value: "y"}}`, "y"},
		{"and short circuits", `{type: Logical, operator: "&&", left: {type: Literal}, right: {type: Variable, name: missing}}`, "none"},
		{"and yields right", `{type: Logical, operator: "and", left: {type: Literal, value: true}, right: {type: Literal, value: 3}}`, "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runProgram(t, printOf(tt.expr))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := deep.Equal(out, []string{tt.expected}); diff != nil {
				t.Error(diff)
			}
		})
	}
}

func TestRuntimeErrors(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		message string
	}{
		{"int division by zero", `{type: Binary, operator: "/", left: {type: Literal, value: 1}, right: {type: Literal, value: 0}}`, "Division by zero."},
		{"negate string", `{type: Unary, operator: "-", right: {type: Literal, value: "s"}}`, "Operand must be a number, got STRING."},
		{"compare strings", `{type: Binary, operator: "<", left: {type: Literal, value: "a"}, right: {type: Literal, value: "b"}}`, "Operands must be numbers, got STRING < STRING."},
		{"add booleans", `{type: Binary, operator: "+", left: {type: Literal, value: true}, right: {type: Literal, value: 1}}`, "Operands must be numbers or strings, got BOOLEAN + INTEGER."},
		{"undefined variable", `{type: Variable, name: ghost}`, "Undefined variable 'ghost'."},
		{"undefined global", `{type: Global, name: ghost}`, "Undefined global 'ghost'."},
		{"property of a number", `{type: Get, object: {type: Literal, value: 1}, name: x}`, "Only instances, samples and tastes have properties, got INTEGER."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runProgram(t, printOf(tt.expr))
			if len(out) != 0 {
				t.Errorf("expected no output, got %v", out)
			}
			var runtimeErr *internals.RuntimeError
			if !errors.As(err, &runtimeErr) {
				t.Fatalf("expected a runtime error, got %v", err)
			}
			if runtimeErr.Message != tt.message {
				t.Errorf("expected=%q, got=%q", tt.message, runtimeErr.Message)
			}
		})
	}
}

func TestCountPersists(t *testing.T) {
	doc := `
statements:
  - {type: Def, name: x, initial: {type: Literal, value: 5}}
  - {type: Print, expression: {type: Count, operator: "++", name: x}}
  - {type: Print, expression: {type: Variable, name: x}}
  - {type: Def, name: f, initial: {type: Literal, value: 0.5}}
  - {type: Expression, expression: {type: Count, operator: "--", name: f}}
  - {type: Print, expression: {type: Variable, name: f}}
`
	out, err := runProgram(t, doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := deep.Equal(out, []string{"6", "6", "-0.5"}); diff != nil {
		t.Error(diff)
	}
}

func TestAssignment(t *testing.T) {
	doc := `
statements:
  - {type: Def, name: a}
  - {type: Print, expression: {type: Variable, name: a}}
  - {type: Print, expression: {type: Assign, name: a, value: {type: Literal, value: "set"}}}
  - type: Block
    statements:
      - {type: Expression, expression: {type: Assign, name: a, value: {type: Literal, value: "inner"}}}
  - {type: Print, expression: {type: Variable, name: a}}
`
	out, err := runProgram(t, doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := deep.Equal(out, []string{"none", "set", "inner"}); diff != nil {
		t.Error(diff)
	}
}

func TestAssignUndefinedGlobal(t *testing.T) {
	_, err := runProgram(t, printOf(`{type: Assign, name: nowhere, value: {type: Literal, value: 1}}`))
	var runtimeErr *internals.RuntimeError
	if !errors.As(err, &runtimeErr) {
		t.Fatalf("expected a runtime error, got %v", err)
	}
	if runtimeErr.Message != "Undefined variable 'nowhere'." {
		t.Errorf("unexpected message %q", runtimeErr.Message)
	}
}

func TestScopeQualifiers(t *testing.T) {
	doc := `
statements:
  - {type: Def, name: a, initial: {type: Literal, value: 1}}
  - type: Block
    statements:
      - {type: Def, name: a, initial: {type: Literal, value: 2}}
      - type: Block
        statements:
          - {type: Def, name: a, initial: {type: Literal, value: 3}}
          - {type: Print, expression: {type: Variable, name: a}}
          - {type: Print, expression: {type: Parent, name: a}}
          - {type: Print, expression: {type: Global, name: a}}
`
	out, err := runProgram(t, doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := deep.Equal(out, []string{"3", "2", "1"}); diff != nil {
		t.Error(diff)
	}
}

func TestConditional(t *testing.T) {
	tests := []struct {
		name     string
		primary  bool
		first    bool
		second   bool
		expected []string
	}{
		{"primary wins", true, true, true, []string{"then", "0"}},
		{"first or matches, every or is evaluated", false, true, true, []string{"first", "2"}},
		{"second or matches", false, false, true, []string{"second", "2"}},
		{"else", false, false, false, []string{"else", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `
statements:
  - {type: Def, name: calls, initial: {type: Literal, value: 0}}
  - type: Op
    name: check
    params: [answer]
    body:
      - {type: Expression, expression: {type: Count, operator: "++", name: calls}}
      - {type: Return, value: {type: Variable, name: answer}}
  - type: When
    condition: {type: Literal, value: ` + boolText(tt.primary) + `}
    then: {type: Print, expression: {type: Literal, value: then}}
    ors:
      - condition: {type: Call, callee: {type: Variable, name: check}, args: [{type: Literal, value: ` + boolText(tt.first) + `}]}
        branch: {type: Print, expression: {type: Literal, value: first}}
      - condition: {type: Call, callee: {type: Variable, name: check}, args: [{type: Literal, value: ` + boolText(tt.second) + `}]}
        branch: {type: Print, expression: {type: Literal, value: second}}
    else: {type: Print, expression: {type: Literal, value: else}}
  - {type: Print, expression: {type: Variable, name: calls}}
`
			out, err := runProgram(t, doc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := deep.Equal(out, tt.expected); diff != nil {
				t.Error(diff)
			}
		})
	}
}

func boolText(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func TestWhileLoop(t *testing.T) {
	doc := `
statements:
  - {type: Def, name: i, initial: {type: Literal, value: 0}}
  - type: While
    condition: {type: Binary, operator: "<", left: {type: Variable, name: i}, right: {type: Literal, value: 3}}
    body:
      type: Block
      statements:
        - {type: Print, expression: {type: Variable, name: i}}
        - {type: Expression, expression: {type: Count, operator: "++", name: i}}
`
	out, err := runProgram(t, doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := deep.Equal(out, []string{"0", "1", "2"}); diff != nil {
		t.Error(diff)
	}
}

func TestReturnLeavesLoop(t *testing.T) {
	doc := `
statements:
  - type: Op
    name: firstOver
    params: [limit]
    body:
      - {type: Def, name: n, initial: {type: Literal, value: 0}}
      - type: While
        condition: {type: Literal, value: true}
        body:
          type: Block
          statements:
            - {type: Expression, expression: {type: Count, operator: "++", name: n}}
            - type: When
              condition: {type: Binary, operator: ">", left: {type: Variable, name: n}, right: {type: Variable, name: limit}}
              then: {type: Return, value: {type: Variable, name: n}}
  - {type: Print, expression: {type: Call, callee: {type: Variable, name: firstOver}, args: [{type: Literal, value: 4}]}}
`
	out, err := runProgram(t, doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := deep.Equal(out, []string{"5"}); diff != nil {
		t.Error(diff)
	}
}

func TestClosureOutlivesCall(t *testing.T) {
	doc := `
statements:
  - type: Op
    name: makeCounter
    body:
      - {type: Def, name: i, initial: {type: Literal, value: 0}}
      - type: Op
        name: count
        body:
          - {type: Expression, expression: {type: Count, operator: "++", name: i}}
          - {type: Return, value: {type: Variable, name: i}}
      - {type: Return, value: {type: Variable, name: count}}
  - {type: Def, name: counter, initial: {type: Call, callee: {type: Variable, name: makeCounter}}}
  - {type: Print, expression: {type: Call, callee: {type: Variable, name: counter}}}
  - {type: Print, expression: {type: Call, callee: {type: Variable, name: counter}}}
  - {type: Print, expression: {type: Variable, name: counter}}
`
	out, err := runProgram(t, doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := deep.Equal(out, []string{"1", "2", "<op count>"}); diff != nil {
		t.Error(diff)
	}
}

func TestOperationWithoutReturnYieldsNone(t *testing.T) {
	doc := `
statements:
  - {type: Op, name: noop, body: []}
  - {type: Print, expression: {type: Call, callee: {type: Variable, name: noop}}}
`
	out, err := runProgram(t, doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := deep.Equal(out, []string{"none"}); diff != nil {
		t.Error(diff)
	}
}

func TestArityMismatch(t *testing.T) {
	doc := `
statements:
  - type: Op
    name: one
    params: [a]
    body:
      - {type: Return, value: {type: Variable, name: a}}
  - {type: Print, expression: {type: Call, callee: {type: Variable, name: one}, args: [{type: Literal, value: 1}, {type: Literal, value: "two"}]}}
`
	out, err := runProgram(t, doc)
	if len(out) != 0 {
		t.Errorf("expected no output, got %v", out)
	}
	var argsErr *internals.ArgsError
	if !errors.As(err, &argsErr) {
		t.Fatalf("expected an arguments error, got %v", err)
	}
	if argsErr.Message != "Expected 1 arguments but got 2." {
		t.Errorf("unexpected message %q", argsErr.Message)
	}
	if diff := deep.Equal(argsErr.Args, []string{"1", "two"}); diff != nil {
		t.Error(diff)
	}
}

func TestCallingNonCallable(t *testing.T) {
	_, err := runProgram(t, printOf(`{type: Call, callee: {type: Literal, value: "text"}, args: [{type: Literal, value: 3}]}`))
	var argsErr *internals.ArgsError
	if !errors.As(err, &argsErr) {
		t.Fatalf("expected an arguments error, got %v", err)
	}
	if argsErr.Message != "Can only call operations and types, got STRING." {
		t.Errorf("unexpected message %q", argsErr.Message)
	}
	if diff := deep.Equal(argsErr.Args, []string{"3"}); diff != nil {
		t.Error(diff)
	}
}

func TestGlobalsSurviveRuntimeError(t *testing.T) {
	s := newSession(t)
	err := s.run(`
statements:
  - {type: Def, name: kept, initial: {type: Literal, value: 1}}
  - type: Block
    statements:
      - {type: Print, expression: {type: Variable, name: missing}}
  - {type: Def, name: skipped, initial: {type: Literal, value: 2}}
`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if s.interp.env != s.interp.Globals() {
		t.Error("current scope was not reset to the globals")
	}

	if err := s.run(printOf(`{type: Variable, name: kept}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := deep.Equal(s.output(), []string{"1"}); diff != nil {
		t.Error(diff)
	}
	if _, ok := s.interp.Globals().Get("skipped"); ok {
		t.Error("statement after the error was executed")
	}
}

func TestClockNative(t *testing.T) {
	interp := NewInterpreter(nil)
	clock, ok := interp.Globals().Get("clock")
	if !ok {
		t.Fatal("clock is not defined")
	}
	callable, ok := clock.(object.Callable)
	if !ok {
		t.Fatalf("clock is not callable: %T", clock)
	}
	if callable.Arity() != 0 {
		t.Errorf("expected arity 0, got %d", callable.Arity())
	}
	first := callable.Call(interp, nil)
	second := callable.Call(interp, nil)
	a, aok := first.(*object.Float)
	b, bok := second.(*object.Float)
	if !aok || !bok {
		t.Fatalf("expected floats, got %T and %T", first, second)
	}
	if b.Value < a.Value {
		t.Errorf("clock went backwards: %v then %v", a.Value, b.Value)
	}
}

func TestWithNatives(t *testing.T) {
	natives := object.Module{
		"twice": &object.BuiltinFn{Name: "twice", Params: 1, Fn: func(args ...object.Object) object.Object {
			n, ok := args[0].(*object.Integer)
			if !ok {
				return object.NewError(lexer.Token{}, "twice expects an integer")
			}
			return &object.Integer{Value: n.Value * 2}
		}},
	}
	s := newSession(t, WithNatives(natives))
	if err := s.run(printOf(`{type: Call, callee: {type: Variable, name: twice}, args: [{type: Literal, value: 21}]}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := deep.Equal(s.output(), []string{"42"}); diff != nil {
		t.Error(diff)
	}

	err := s.run(`
statements:
  - {type: Print, line: 3, expression: {type: Call, callee: {type: Variable, name: twice}, args: [{type: Literal, value: "x"}]}}
`)
	var runtimeErr *internals.RuntimeError
	if !errors.As(err, &runtimeErr) {
		t.Fatalf("expected a runtime error, got %v", err)
	}
	if runtimeErr.Token.Row != 3 {
		t.Errorf("expected the call site line 3, got %d", runtimeErr.Token.Row)
	}
}
