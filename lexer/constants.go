package lexer

type Operator = string

var (
	Keywords = map[string]TokenKind{
		"def":    TokenDef,
		"op":     TokenOp,
		"obj":    TokenObj,
		"enum":   TokenEnum,
		"form":   TokenForm,
		"when":   TokenWhen,
		"or":     TokenOr,
		"else":   TokenElse,
		"while":  TokenWhile,
		"log":    TokenLog,
		"return": TokenReturn,
		"self":   TokenSelf,
		"true":   TokenTrue,
		"false":  TokenFalse,
		"none":   TokenNone,
	}

	BinOperators = map[Operator]TokenKind{
		"==": TokenEquals,
		"!=": TokenNotEquals,
		">":  TokenGreater,
		">=": TokenGreaterOrEqual,
		"<":  TokenLess,
		"<=": TokenLessOrEqual,
		"*":  TokenMultiply,
		"/":  TokenSlash,
		"+":  TokenPlus,
		"-":  TokenMinus,
	}

	UnaryOperators = map[Operator]TokenKind{
		"!": TokenExclamation,
		"-": TokenMinus,
	}

	LogicalOperators = map[Operator]TokenKind{
		"&&":  TokenAnd,
		"and": TokenAnd,
		"||":  TokenLogicalOr,
		"or":  TokenLogicalOr,
	}

	CountOperators = map[Operator]TokenKind{
		"++": TokenAssignPlusOne,
		"--": TokenAssignMinusOne,
	}
)

// IsKeyword reports whether name is reserved and cannot be bound.
func IsKeyword(name string) bool {
	_, ok := Keywords[name]
	return ok
}
