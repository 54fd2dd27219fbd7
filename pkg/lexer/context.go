package lexer

import (
	"escript/pkg/ast"
)

// Context is the mutable grammar state threaded by reference through a
// single scan. A context-sensitive lexer cannot be a pure function of the
// character stream; this record is the one seam between lexing and the
// grammar driver.
//
// The lexer borrows the statement and expression sinks for the duration of
// the scan and must not retain them past that scope.
type Context struct {
	// IsFunctionIdentifier is true exactly between consuming the
	// `function` keyword and consuming the following name; any other
	// token seen while it is set is a grammar-state error.
	IsFunctionIdentifier bool
	// IsDirective is true while still inside the contiguous prologue of
	// string-literal expression statements at the start of a program or
	// function body. Maintained by the grammar driver.
	IsDirective bool
	// IsPattern is true while scanning a binding position (left side of
	// a declarator, a parameter). Maintained by the grammar driver.
	IsPattern bool

	// Statements is the statement list currently being built.
	Statements *[]ast.Statement
	// Expressions is the expression list of the innermost open expression
	// context (array element, call argument, sequence position), or nil
	// when no expression context is open.
	Expressions *[]ast.Expression
}

// NewContext creates a context bound to the given statement sink.
func NewContext(statements *[]ast.Statement) *Context {
	return &Context{Statements: statements}
}
