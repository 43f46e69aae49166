package lexer

type TokenKind = string

const (

	// Keywords
	TokenDef    TokenKind = "def"
	TokenOp     TokenKind = "op"
	TokenObj    TokenKind = "obj"
	TokenEnum   TokenKind = "enum"
	TokenForm   TokenKind = "form"
	TokenWhen   TokenKind = "when"
	TokenOr     TokenKind = "or"
	TokenElse   TokenKind = "else"
	TokenWhile  TokenKind = "while"
	TokenLog    TokenKind = "log"
	TokenReturn TokenKind = "return"
	TokenSelf   TokenKind = "self"
	TokenTrue   TokenKind = "true"
	TokenFalse  TokenKind = "false"
	TokenNone   TokenKind = "none"

	// Scope qualifiers
	TokenParent TokenKind = "^"
	TokenGlobal TokenKind = "$"

	// Units
	TokenBraceOpen  TokenKind = "("
	TokenBraceClose TokenKind = ")"
	TokenComma      TokenKind = ","
	TokenDot        TokenKind = "."
	TokenBodyStart  TokenKind = "|"
	TokenBodyEnd    TokenKind = "~"

	// Arithmetic Operators
	TokenMinus          TokenKind = "-"
	TokenPlus           TokenKind = "+"
	TokenMultiply       TokenKind = "*"
	TokenSlash          TokenKind = "/"
	TokenEquals         TokenKind = "=="
	TokenNotEquals      TokenKind = "!="
	TokenGreater        TokenKind = ">"
	TokenLess           TokenKind = "<"
	TokenGreaterOrEqual TokenKind = ">="
	TokenLessOrEqual    TokenKind = "<="
	TokenAssignPlusOne  TokenKind = "++"
	TokenAssignMinusOne TokenKind = "--"

	// Bind Operators
	TokenAssign TokenKind = "="

	// Logical Operators
	TokenAnd         TokenKind = "&&"
	TokenLogicalOr   TokenKind = "||"
	TokenExclamation TokenKind = "!"

	// Var Naming
	TokenIdentifier TokenKind = "identifier"

	// Literals
	TokenString TokenKind = "string"
	TokenInt    TokenKind = "int"
	TokenFloat  TokenKind = "float"

	// EOF
	TokenEOF TokenKind = "end of file"
)

type LiteralToken struct {
	Text string
	Kind TokenKind
}

// Token is produced by the scanner and is immutable afterwards. Literal holds
// the scanned value for string and number tokens, and for property names that
// were written as integers.
type Token struct {
	LiteralToken
	Literal any
	Row     int
	Col     int
}

func NewToken(kind TokenKind, text string, row int) Token {
	return Token{
		LiteralToken: LiteralToken{Text: text, Kind: kind},
		Row:          row,
	}
}

func (t Token) Line() int { return t.Row }
