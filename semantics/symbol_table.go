package semantics

import (
	"dis/lexer"
)

type SymbolKind = string

const (
	SymbolDef   SymbolKind = "def"
	SymbolOp    SymbolKind = "op"
	SymbolParam SymbolKind = "param"
	SymbolObj   SymbolKind = "obj"
	SymbolEnum  SymbolKind = "enum"
	SymbolForm  SymbolKind = "form"
	SymbolSelf  SymbolKind = "self"
)

type SymbolInfo struct {
	Name     string
	DeclNode lexer.Token // token of the declaration
	Kind     SymbolKind
	Defined  bool // false between declare and define
}

type symbolTable struct {
	Parent *symbolTable            // for nested scopes
	Store  map[string]*SymbolInfo // current scope's entries
	Depth  int
}

func NewSymbolTable() *symbolTable {
	return &symbolTable{
		Store: make(map[string]*SymbolInfo),
	}
}

// symbolResolver mirrors the runtime scope nesting. The global scope is not
// tracked: current is nil at top level.
type symbolResolver struct {
	current *symbolTable
}

func NewSymbolResolver() *symbolResolver {
	return &symbolResolver{}
}

func (s *symbolResolver) IsGlobal() bool {
	return s.current == nil
}

// Declare adds name to the current scope as not yet usable. It reports false
// when the scope already holds that name.
func (s *symbolResolver) Declare(sym *SymbolInfo) bool {
	if s.current == nil {
		return true
	}
	_, exists := s.current.Store[sym.Name]
	s.current.Store[sym.Name] = sym
	return !exists
}

func (s *symbolResolver) Define(name string) {
	if s.current == nil {
		return
	}
	if sym, ok := s.current.Store[name]; ok {
		sym.Defined = true
		return
	}
	s.current.Store[name] = &SymbolInfo{Name: name, Kind: SymbolDef, Defined: true}
}

// InCurrent looks only at the innermost scope.
func (s *symbolResolver) InCurrent(name string) (*SymbolInfo, bool) {
	if s.current == nil {
		return nil, false
	}
	sym, ok := s.current.Store[name]
	return sym, ok
}

// Resolve walks innermost to outermost and returns the number of scopes
// crossed to reach the declaring one.
func (s *symbolResolver) Resolve(name string) (*SymbolInfo, int, bool) {
	hops := 0
	scope := s.current
	for scope != nil {
		if sym, ok := scope.Store[name]; ok {
			return sym, hops, true
		}
		scope = scope.Parent
		hops++
	}
	return nil, 0, false
}

func (s *symbolResolver) EnterScope() *symbolTable {
	newScope := NewSymbolTable()
	newScope.Parent = s.current
	if s.current != nil {
		newScope.Depth = s.current.Depth + 1
	}
	s.current = newScope
	return newScope
}

func (s *symbolResolver) ExitScope(curr *symbolTable) *symbolTable {
	s.current = curr.Parent
	return s.current
}
