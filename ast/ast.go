package ast

import (
	"bytes"
	"dis/lexer"
	"fmt"
	"strings"
)

type Node interface {
	TokenLiteral() string
	String() string
	GetToken() lexer.Token
}

type Statement interface {
	Node
	statementNode()
}

type Expression interface {
	Node
	expressionNode()
}

type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	} else {
		return ""
	}
}

func (p *Program) GetToken() lexer.Token {
	if len(p.Statements) > 0 {
		return p.Statements[0].GetToken()
	}
	return lexer.Token{}
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

// parenthesize renders name and parts as a lisp-like group, e.g. (+ 1 2).
func parenthesize(name string, parts ...Node) string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(name)
	for _, part := range parts {
		out.WriteString(" ")
		if part == nil {
			out.WriteString("none")
			continue
		}
		out.WriteString(part.String())
	}
	out.WriteString(")")
	return out.String()
}

// Expressions

type Literal struct {
	Token lexer.Token
	Value any // nil, bool, int64, float64 or string
}

func (l *Literal) expressionNode()       {}
func (l *Literal) TokenLiteral() string  { return l.Token.Text }
func (l *Literal) GetToken() lexer.Token { return l.Token }
func (l *Literal) String() string {
	switch v := l.Value.(type) {
	case nil:
		return "none"
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

type Variable struct {
	Name lexer.Token
}

func (v *Variable) expressionNode()       {}
func (v *Variable) TokenLiteral() string  { return v.Name.Text }
func (v *Variable) GetToken() lexer.Token { return v.Name }
func (v *Variable) String() string        { return v.Name.Text }

type Assign struct {
	Name  lexer.Token
	Value Expression
}

func (a *Assign) expressionNode()       {}
func (a *Assign) TokenLiteral() string  { return a.Name.Text }
func (a *Assign) GetToken() lexer.Token { return a.Name }
func (a *Assign) String() string {
	return parenthesize("= "+a.Name.Text, a.Value)
}

type Unary struct {
	Operator lexer.Token
	Right    Expression
}

func (u *Unary) expressionNode()       {}
func (u *Unary) TokenLiteral() string  { return u.Operator.Text }
func (u *Unary) GetToken() lexer.Token { return u.Operator }
func (u *Unary) String() string        { return parenthesize(u.Operator.Text, u.Right) }

type Binary struct {
	Left     Expression
	Operator lexer.Token
	Right    Expression
}

func (b *Binary) expressionNode()       {}
func (b *Binary) TokenLiteral() string  { return b.Operator.Text }
func (b *Binary) GetToken() lexer.Token { return b.Operator }
func (b *Binary) String() string {
	return parenthesize(b.Operator.Text, b.Left, b.Right)
}

// Logical is a short-circuiting and/or.
type Logical struct {
	Left     Expression
	Operator lexer.Token
	Right    Expression
}

func (l *Logical) expressionNode()       {}
func (l *Logical) TokenLiteral() string  { return l.Operator.Text }
func (l *Logical) GetToken() lexer.Token { return l.Operator }
func (l *Logical) String() string {
	return parenthesize(l.Operator.Text, l.Left, l.Right)
}

// Count is the combined read-increment-assign of ++ and --. It evaluates to
// the updated value.
type Count struct {
	Operator lexer.Token
	Target   Expression
	Name     lexer.Token
}

func (c *Count) expressionNode()       {}
func (c *Count) TokenLiteral() string  { return c.Operator.Text }
func (c *Count) GetToken() lexer.Token { return c.Operator }
func (c *Count) String() string        { return parenthesize(c.Operator.Text, c.Target) }

type Calling struct {
	Callee Expression
	Paren  lexer.Token
	Args   []Expression
}

func (c *Calling) expressionNode()       {}
func (c *Calling) TokenLiteral() string  { return c.Paren.Text }
func (c *Calling) GetToken() lexer.Token { return c.Paren }
func (c *Calling) String() string {
	parts := make([]Node, 0, len(c.Args)+1)
	parts = append(parts, c.Callee)
	for _, arg := range c.Args {
		parts = append(parts, arg)
	}
	return parenthesize("call", parts...)
}

type Grouping struct {
	Token      lexer.Token
	Expression Expression
}

func (g *Grouping) expressionNode()       {}
func (g *Grouping) TokenLiteral() string  { return g.Token.Text }
func (g *Grouping) GetToken() lexer.Token { return g.Token }
func (g *Grouping) String() string        { return parenthesize("group", g.Expression) }

type SelfRef struct {
	Keyword lexer.Token
}

func (s *SelfRef) expressionNode()       {}
func (s *SelfRef) TokenLiteral() string  { return s.Keyword.Text }
func (s *SelfRef) GetToken() lexer.Token { return s.Keyword }
func (s *SelfRef) String() string        { return s.Keyword.Text }

type GetProperty struct {
	Object Expression
	Name   lexer.Token
}

func (g *GetProperty) expressionNode()       {}
func (g *GetProperty) TokenLiteral() string  { return g.Name.Text }
func (g *GetProperty) GetToken() lexer.Token { return g.Name }
func (g *GetProperty) String() string {
	return parenthesize("."+g.Name.Text, g.Object)
}

type SetProperty struct {
	Object Expression
	Name   lexer.Token
	Value  Expression
}

func (s *SetProperty) expressionNode()       {}
func (s *SetProperty) TokenLiteral() string  { return s.Name.Text }
func (s *SetProperty) GetToken() lexer.Token { return s.Name }
func (s *SetProperty) String() string {
	return parenthesize("."+s.Name.Text+" =", s.Object, s.Value)
}

// ParentScopeRef reads a name starting one scope above the current one.
type ParentScopeRef struct {
	Name lexer.Token
}

func (p *ParentScopeRef) expressionNode()       {}
func (p *ParentScopeRef) TokenLiteral() string  { return p.Name.Text }
func (p *ParentScopeRef) GetToken() lexer.Token { return p.Name }
func (p *ParentScopeRef) String() string        { return "^" + p.Name.Text }

// GlobalScopeRef reads a name straight from the global scope.
type GlobalScopeRef struct {
	Name lexer.Token
}

func (g *GlobalScopeRef) expressionNode()       {}
func (g *GlobalScopeRef) TokenLiteral() string  { return g.Name.Text }
func (g *GlobalScopeRef) GetToken() lexer.Token { return g.Name }
func (g *GlobalScopeRef) String() string        { return "$" + g.Name.Text }

// Statements

type ExpressionStmt struct {
	Token      lexer.Token
	Expression Expression
}

func (es *ExpressionStmt) statementNode()        {}
func (es *ExpressionStmt) TokenLiteral() string  { return es.Token.Text }
func (es *ExpressionStmt) GetToken() lexer.Token { return es.Token }
func (es *ExpressionStmt) String() string        { return parenthesize(";", es.Expression) }

type PrintStmt struct {
	Token      lexer.Token
	Expression Expression
}

func (ps *PrintStmt) statementNode()        {}
func (ps *PrintStmt) TokenLiteral() string  { return ps.Token.Text }
func (ps *PrintStmt) GetToken() lexer.Token { return ps.Token }
func (ps *PrintStmt) String() string        { return parenthesize("log", ps.Expression) }

type VariableDecl struct {
	Token   lexer.Token
	Name    lexer.Token
	Initial Expression // may be nil
}

func (vd *VariableDecl) statementNode()        {}
func (vd *VariableDecl) TokenLiteral() string  { return vd.Token.Text }
func (vd *VariableDecl) GetToken() lexer.Token { return vd.Name }
func (vd *VariableDecl) String() string {
	if vd.Initial == nil {
		return parenthesize("def " + vd.Name.Text)
	}
	return parenthesize("def "+vd.Name.Text, vd.Initial)
}

type Block struct {
	Token      lexer.Token
	Statements []Statement
}

func (b *Block) statementNode()        {}
func (b *Block) TokenLiteral() string  { return b.Token.Text }
func (b *Block) GetToken() lexer.Token { return b.Token }
func (b *Block) String() string        { return parenthesize("body", statementNodes(b.Statements)...) }

type OperationDecl struct {
	Token  lexer.Token
	Name   lexer.Token
	Params []lexer.Token
	Body   []Statement
}

func (od *OperationDecl) statementNode()        {}
func (od *OperationDecl) TokenLiteral() string  { return od.Token.Text }
func (od *OperationDecl) GetToken() lexer.Token { return od.Name }
func (od *OperationDecl) String() string {
	params := make([]string, 0, len(od.Params))
	for _, p := range od.Params {
		params = append(params, p.Text)
	}
	head := fmt.Sprintf("op %s(%s)", od.Name.Text, strings.Join(params, ", "))
	return parenthesize(head, statementNodes(od.Body)...)
}

// OrBranch is one "or" arm of a Conditional.
type OrBranch struct {
	Token     lexer.Token
	Condition Expression
	Branch    Statement
}

func (ob *OrBranch) statementNode()        {}
func (ob *OrBranch) TokenLiteral() string  { return ob.Token.Text }
func (ob *OrBranch) GetToken() lexer.Token { return ob.Token }
func (ob *OrBranch) String() string        { return parenthesize("or", ob.Condition, ob.Branch) }

type Conditional struct {
	Token     lexer.Token
	Condition Expression
	Then      Statement
	Ors       []*OrBranch
	Else      Statement // may be nil
}

func (c *Conditional) statementNode()        {}
func (c *Conditional) TokenLiteral() string  { return c.Token.Text }
func (c *Conditional) GetToken() lexer.Token { return c.Token }
func (c *Conditional) String() string {
	parts := []Node{c.Condition, c.Then}
	for _, or := range c.Ors {
		parts = append(parts, or)
	}
	if c.Else != nil {
		parts = append(parts, c.Else)
	}
	return parenthesize("when", parts...)
}

type WhileLoop struct {
	Token     lexer.Token
	Condition Expression
	Body      Statement
}

func (wl *WhileLoop) statementNode()        {}
func (wl *WhileLoop) TokenLiteral() string  { return wl.Token.Text }
func (wl *WhileLoop) GetToken() lexer.Token { return wl.Token }
func (wl *WhileLoop) String() string        { return parenthesize("while", wl.Condition, wl.Body) }

type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expression // may be nil
}

func (rs *ReturnStmt) statementNode()        {}
func (rs *ReturnStmt) TokenLiteral() string  { return rs.Keyword.Text }
func (rs *ReturnStmt) GetToken() lexer.Token { return rs.Keyword }
func (rs *ReturnStmt) String() string {
	if rs.Value == nil {
		return parenthesize("return")
	}
	return parenthesize("return", rs.Value)
}

type ObjectDecl struct {
	Token   lexer.Token
	Name    lexer.Token
	Methods []*OperationDecl
}

func (od *ObjectDecl) statementNode()        {}
func (od *ObjectDecl) TokenLiteral() string  { return od.Token.Text }
func (od *ObjectDecl) GetToken() lexer.Token { return od.Name }
func (od *ObjectDecl) String() string {
	parts := make([]Node, 0, len(od.Methods))
	for _, m := range od.Methods {
		parts = append(parts, m)
	}
	return parenthesize("obj "+od.Name.Text, parts...)
}

type EnumDecl struct {
	Token    lexer.Token
	Name     lexer.Token
	Elements []lexer.Token
}

func (ed *EnumDecl) statementNode()        {}
func (ed *EnumDecl) TokenLiteral() string  { return ed.Token.Text }
func (ed *EnumDecl) GetToken() lexer.Token { return ed.Name }
func (ed *EnumDecl) String() string {
	names := make([]string, 0, len(ed.Elements))
	for _, el := range ed.Elements {
		names = append(names, el.Text)
	}
	return fmt.Sprintf("(enum %s %s)", ed.Name.Text, strings.Join(names, " "))
}

type FormDecl struct {
	Token   lexer.Token
	Name    lexer.Token
	Members []*VariableDecl
}

func (fd *FormDecl) statementNode()        {}
func (fd *FormDecl) TokenLiteral() string  { return fd.Token.Text }
func (fd *FormDecl) GetToken() lexer.Token { return fd.Name }
func (fd *FormDecl) String() string {
	parts := make([]Node, 0, len(fd.Members))
	for _, m := range fd.Members {
		parts = append(parts, m)
	}
	return parenthesize("form "+fd.Name.Text, parts...)
}

func statementNodes(stmts []Statement) []Node {
	nodes := make([]Node, 0, len(stmts))
	for _, s := range stmts {
		nodes = append(nodes, s)
	}
	return nodes
}
