package internals

import (
	"dis/lexer"
	"errors"
	"fmt"
	"strings"
)

// This file handles an error collector obj

type ErrorCollector struct {
	Errors []error
}

func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{
		Errors: make([]error, 0),
	}
}

func (ec *ErrorCollector) Add(err error) {
	ec.Errors = append(ec.Errors, err)
}

// Error builds a diagnostic located at tok. It does not record it, callers
// pass the result to Add.
func (ec *ErrorCollector) Error(tok lexer.Token, code ErrorCode, msg string) *Diagnostic {
	return &Diagnostic{
		Code:    code,
		Token:   tok,
		Message: msg,
	}
}

func (ec *ErrorCollector) HasErrors() bool {
	return len(ec.Errors) > 0
}

// Err joins everything collected so far, or returns nil.
func (ec *ErrorCollector) Err() error {
	if !ec.HasErrors() {
		return nil
	}
	return errors.Join(ec.Errors...)
}

// Diagnostic is a resolve-time error attached to a source token.
type Diagnostic struct {
	Code    ErrorCode
	Token   lexer.Token
	Message string
}

func (d *Diagnostic) Error() string {
	where := "end"
	if d.Token.Text != "" {
		where = fmt.Sprintf("'%s'", d.Token.Text)
	}
	return fmt.Sprintf("[line %d] Error %s at %s: %s", d.Token.Row, d.Code.Code, where, d.Message)
}

// RuntimeError is returned by the interpreter when a top level run is
// aborted.
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Row)
}

// ArgsError is a runtime error raised before a call is made, it keeps the
// already evaluated arguments.
type ArgsError struct {
	Token   lexer.Token
	Message string
	Args    []string
}

func (e *ArgsError) Error() string {
	return fmt.Sprintf("%s (args: %s)\n[line %d]", e.Message, strings.Join(e.Args, ", "), e.Token.Row)
}
