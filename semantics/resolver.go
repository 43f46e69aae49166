package semantics

import (
	"dis/ast"
	"dis/internals"
	"dis/lexer"
	"dis/object"
	"fmt"
)

// Locals maps a variable reference node to the number of scopes between
// the reference and the scope that declares it. References that are not in
// the table are looked up in the global scope at run time.
type Locals = map[ast.Expression]int

type operationKind int

const (
	operationNone operationKind = iota
	operationPlain
	operationMethod
)

// Resolver is the static pass run before interpretation. It records hop
// counts and collects scope errors without stopping at the first one.
type Resolver struct {
	symbols          *symbolResolver
	collector        *internals.ErrorCollector
	locals           Locals
	currentOperation operationKind
	insideObject     bool
}

func NewResolver(errCollector *internals.ErrorCollector) *Resolver {
	return &Resolver{
		symbols:   NewSymbolResolver(),
		collector: errCollector,
		locals:    make(Locals),
	}
}

// Resolve walks stmts and returns the resolution table. Check the collector
// before running anything.
func (r *Resolver) Resolve(stmts []ast.Statement) Locals {
	for _, stmt := range stmts {
		r.resolveStatement(stmt)
	}
	return r.locals
}

func (r *Resolver) report(tok lexer.Token, code internals.ErrorCode, format string, a ...any) {
	r.collector.Add(r.collector.Error(tok, code, fmt.Sprintf(format, a...)))
}

func (r *Resolver) declare(name lexer.Token, kind SymbolKind) {
	sym := &SymbolInfo{Name: name.Text, DeclNode: name, Kind: kind}
	if !r.symbols.Declare(sym) {
		r.report(name, internals.R001, "'%s' is already declared in this scope.", name.Text)
	}
}

func (r *Resolver) define(name lexer.Token) {
	r.symbols.Define(name.Text)
}

func (r *Resolver) resolveStatement(node ast.Statement) {
	switch node := node.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpression(node.Expression)
	case *ast.PrintStmt:
		r.resolveExpression(node.Expression)
	case *ast.VariableDecl:
		r.visitVariableDecl(node)
	case *ast.Block:
		scope := r.symbols.EnterScope()
		for _, stmt := range node.Statements {
			r.resolveStatement(stmt)
		}
		r.symbols.ExitScope(scope)
	case *ast.OperationDecl:
		r.declare(node.Name, SymbolOp)
		r.define(node.Name)
		r.resolveOperation(node, operationPlain)
	case *ast.Conditional:
		r.resolveExpression(node.Condition)
		r.resolveStatement(node.Then)
		for _, or := range node.Ors {
			r.resolveStatement(or)
		}
		if node.Else != nil {
			r.resolveStatement(node.Else)
		}
	case *ast.OrBranch:
		r.resolveExpression(node.Condition)
		r.resolveStatement(node.Branch)
	case *ast.WhileLoop:
		r.resolveExpression(node.Condition)
		r.resolveStatement(node.Body)
	case *ast.ReturnStmt:
		if r.currentOperation == operationNone {
			r.report(node.Keyword, internals.R004, "Cannot return from top-level execution.")
		}
		if node.Value != nil {
			r.resolveExpression(node.Value)
		}
	case *ast.ObjectDecl:
		r.visitObjectDecl(node)
	case *ast.EnumDecl:
		r.declare(node.Name, SymbolEnum)
		r.define(node.Name)
	case *ast.FormDecl:
		r.visitFormDecl(node)
	}
}

func (r *Resolver) visitVariableDecl(node *ast.VariableDecl) {
	r.declare(node.Name, SymbolDef)
	if node.Initial != nil {
		r.resolveExpression(node.Initial)
	}
	r.define(node.Name)
}

func (r *Resolver) visitObjectDecl(node *ast.ObjectDecl) {
	r.declare(node.Name, SymbolObj)
	r.define(node.Name)

	enclosingObject := r.insideObject
	r.insideObject = true

	// bound methods run in a scope holding self, one above their parameters
	scope := r.symbols.EnterScope()
	r.symbols.Declare(&SymbolInfo{Name: object.SelfName, DeclNode: node.Name, Kind: SymbolSelf})
	r.symbols.Define(object.SelfName)
	for _, method := range node.Methods {
		r.resolveOperation(method, operationMethod)
	}
	r.symbols.ExitScope(scope)

	r.insideObject = enclosingObject
}

// Member defaults are resolved in the enclosing scope and each member is
// then visible to the ones after it.
func (r *Resolver) visitFormDecl(node *ast.FormDecl) {
	r.declare(node.Name, SymbolForm)
	r.define(node.Name)
	for _, member := range node.Members {
		if member.Initial != nil {
			r.resolveExpression(member.Initial)
		}
		r.declare(member.Name, SymbolDef)
		r.define(member.Name)
	}
}

func (r *Resolver) resolveOperation(node *ast.OperationDecl, kind operationKind) {
	enclosingOperation := r.currentOperation
	r.currentOperation = kind

	scope := r.symbols.EnterScope()
	for _, param := range node.Params {
		r.declare(param, SymbolParam)
		r.define(param)
	}
	for _, stmt := range node.Body {
		r.resolveStatement(stmt)
	}
	r.symbols.ExitScope(scope)

	r.currentOperation = enclosingOperation
}

func (r *Resolver) resolveExpression(node ast.Expression) {
	switch expr := node.(type) {
	case *ast.Literal:
	case *ast.Variable:
		if sym, ok := r.symbols.InCurrent(expr.Name.Text); ok && !sym.Defined {
			r.report(expr.Name, internals.R002, "Cannot read '%s' in its own initializer.", expr.Name.Text)
		}
		r.resolveLocal(expr, expr.Name.Text)
	case *ast.Assign:
		r.resolveExpression(expr.Value)
		r.resolveLocal(expr, expr.Name.Text)
	case *ast.Unary:
		r.resolveExpression(expr.Right)
	case *ast.Binary:
		r.resolveExpression(expr.Left)
		r.resolveExpression(expr.Right)
	case *ast.Logical:
		r.resolveExpression(expr.Left)
		r.resolveExpression(expr.Right)
	case *ast.Grouping:
		r.resolveExpression(expr.Expression)
	case *ast.Count:
		r.resolveExpression(expr.Target)
		r.resolveLocal(expr, expr.Name.Text)
	case *ast.Calling:
		r.resolveExpression(expr.Callee)
		for _, arg := range expr.Args {
			r.resolveExpression(arg)
		}
	case *ast.SelfRef:
		if !r.insideObject {
			r.report(expr.Keyword, internals.R005, "Cannot use 'self' outside of an object.")
			return
		}
		r.resolveLocal(expr, object.SelfName)
	case *ast.GetProperty:
		r.resolveExpression(expr.Object)
	case *ast.SetProperty:
		r.resolveExpression(expr.Value)
		r.resolveExpression(expr.Object)
	case *ast.ParentScopeRef:
		if r.symbols.IsGlobal() {
			r.report(expr.Name, internals.R003, "No enclosing scope to read '%s' from.", expr.Name.Text)
		}
	case *ast.GlobalScopeRef:
		// always read from the global scope at run time
	}
}

func (r *Resolver) resolveLocal(expr ast.Expression, name string) {
	if _, hops, ok := r.symbols.Resolve(name); ok {
		r.locals[expr] = hops
	}
}
