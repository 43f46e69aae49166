package internals

// ErrorCode names one kind of resolve-time diagnostic.
type ErrorCode struct {
	Code        string
	Name        string
	Description string
}

var (
	R001 = ErrorCode{"R001", "duplicate-declaration", "name already declared in this scope"}
	R002 = ErrorCode{"R002", "self-initializer", "variable read in its own initializer"}
	R003 = ErrorCode{"R003", "parent-without-scope", "parent scope reference with no enclosing scope"}
	R004 = ErrorCode{"R004", "return-outside-operation", "return statement outside any operation"}
	R005 = ErrorCode{"R005", "self-outside-object", "self used outside an object method"}
)
