package interpreter

import (
	"bytes"
	"dis/fixtures"
	"dis/internals"
	"dis/semantics"
	"strings"
	"testing"
)

type session struct {
	t      *testing.T
	interp *Interpreter
	out    *bytes.Buffer
}

func newSession(t *testing.T, opts ...Option) *session {
	t.Helper()
	out := &bytes.Buffer{}
	opts = append([]Option{WithOutput(out)}, opts...)
	return &session{t: t, interp: NewInterpreter(nil, opts...), out: out}
}

// run decodes, resolves and interprets one program document. Resolution
// errors fail the test.
func (s *session) run(doc string) error {
	s.t.Helper()
	program, err := fixtures.Decode(strings.NewReader(doc))
	if err != nil {
		s.t.Fatalf("decoding program: %v", err)
	}
	collector := internals.NewErrorCollector()
	locals := semantics.NewResolver(collector).Resolve(program.Statements)
	if collector.HasErrors() {
		s.t.Fatalf("resolving program: %v", collector.Err())
	}
	s.interp.Annotate(locals)
	return s.interp.Interpret(program.Statements)
}

// output returns what log statements wrote so far and clears it.
func (s *session) output() []string {
	text := strings.TrimRight(s.out.String(), "\n")
	s.out.Reset()
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func runProgram(t *testing.T, doc string) ([]string, error) {
	t.Helper()
	s := newSession(t)
	err := s.run(doc)
	return s.output(), err
}

// printOf wraps a flow style expression into a program that logs it.
func printOf(expr string) string {
	return "statements:\n  - {type: Print, expression: " + expr + "}\n"
}
