// Package fixtures loads program documents: YAML (or JSON) encodings of a
// Dis syntax tree, one mapping per node with a "type" key.
//
//	statements:
//	  - type: Def
//	    name: a
//	    initial: {type: Literal, value: 1}
//	  - type: Print
//	    expression: {type: Variable, name: a}
package fixtures

import (
	"dis/ast"
	"dis/lexer"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

var ErrInvalidNode = errors.New("invalid node")

type document struct {
	Statements []any `yaml:"statements"`
}

// Load reads and decodes the program document at path.
func Load(path string) (*ast.Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixtures: open %s: %w", path, err)
	}
	defer f.Close()

	program, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return program, nil
}

// Decode reads one program document from r.
func Decode(r io.Reader) (*ast.Program, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &ast.Program{}, nil
		}
		return nil, fmt.Errorf("fixtures: %w", err)
	}

	d := &decoder{line: 1}
	program := &ast.Program{Statements: make([]ast.Statement, 0, len(doc.Statements))}
	for idx, raw := range doc.Statements {
		stmt, err := d.statement(raw, fmt.Sprintf("statements[%d]", idx))
		if err != nil {
			return nil, fmt.Errorf("fixtures: %w", err)
		}
		program.Statements = append(program.Statements, stmt)
	}
	return program, nil
}

// decoder carries the last seen line so nodes without one inherit the line
// of their parent.
type decoder struct {
	line int
}

type node struct {
	fields map[string]any
	typ    string
	path   string
}

func (d *decoder) open(raw any, path string) (*node, error) {
	fields, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected a mapping, got %T: %w", path, raw, ErrInvalidNode)
	}
	typ, _ := fields["type"].(string)
	if typ == "" {
		return nil, fmt.Errorf("%s: missing node type: %w", path, ErrInvalidNode)
	}
	if line, ok := fields["line"].(int); ok {
		d.line = line
	}
	return &node{fields: fields, typ: typ, path: path}, nil
}

func (n *node) errorf(format string, a ...any) error {
	return fmt.Errorf("%s (%s): %s: %w", n.path, n.typ, fmt.Sprintf(format, a...), ErrInvalidNode)
}

func (n *node) at(key string) string {
	return n.path + "." + key
}

func (d *decoder) token(kind lexer.TokenKind, text string) lexer.Token {
	return lexer.NewToken(kind, text, d.line)
}

// name reads an identifier field. Integer names keep their value in the
// token literal, which enum samples use for reverse lookups.
func (d *decoder) name(n *node, key string) (lexer.Token, error) {
	switch v := n.fields[key].(type) {
	case string:
		if v == "" {
			return lexer.Token{}, n.errorf("empty %s", key)
		}
		return d.token(lexer.TokenIdentifier, v), nil
	case int:
		tok := d.token(lexer.TokenInt, strconv.Itoa(v))
		tok.Literal = int64(v)
		return tok, nil
	case nil:
		return lexer.Token{}, n.errorf("missing %s", key)
	default:
		return lexer.Token{}, n.errorf("%s must be a name, got %T", key, v)
	}
}

func (d *decoder) names(n *node, key string) ([]lexer.Token, error) {
	raw, ok := n.fields[key]
	if !ok || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, n.errorf("%s must be a list of names", key)
	}
	tokens := make([]lexer.Token, 0, len(list))
	for idx, item := range list {
		text, ok := item.(string)
		if !ok || text == "" {
			return nil, n.errorf("%s[%d] must be a name", key, idx)
		}
		tokens = append(tokens, d.token(lexer.TokenIdentifier, text))
	}
	return tokens, nil
}

func (d *decoder) operator(n *node, table map[lexer.Operator]lexer.TokenKind) (lexer.Token, error) {
	text, _ := n.fields["operator"].(string)
	kind, ok := table[text]
	if !ok {
		return lexer.Token{}, n.errorf("unknown operator %q", text)
	}
	return d.token(kind, text), nil
}

func (d *decoder) optionalExpression(n *node, key string) (ast.Expression, error) {
	raw, ok := n.fields[key]
	if !ok || raw == nil {
		return nil, nil
	}
	return d.expression(raw, n.at(key))
}

func (d *decoder) requiredExpression(n *node, key string) (ast.Expression, error) {
	if raw, ok := n.fields[key]; !ok || raw == nil {
		return nil, n.errorf("missing %s", key)
	}
	return d.expression(n.fields[key], n.at(key))
}

func (d *decoder) statementList(n *node, key string) ([]ast.Statement, error) {
	raw, ok := n.fields[key]
	if !ok || raw == nil {
		return []ast.Statement{}, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, n.errorf("%s must be a list of statements", key)
	}
	stmts := make([]ast.Statement, 0, len(list))
	for idx, item := range list {
		stmt, err := d.statement(item, fmt.Sprintf("%s[%d]", n.at(key), idx))
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}
