package ast

import (
	"bytes"
)

// NodeKind tags every node with its ESTree type name.
type NodeKind string

const (
	KindProgram             NodeKind = "Program"
	KindIdentifier          NodeKind = "Identifier"
	KindLiteral             NodeKind = "Literal"
	KindExpressionStatement NodeKind = "ExpressionStatement"
	KindDirective           NodeKind = "Directive"
	KindBlockStatement      NodeKind = "BlockStatement"
	KindFunctionBody        NodeKind = "FunctionBody"
	KindEmptyStatement      NodeKind = "EmptyStatement"
	KindDebuggerStatement   NodeKind = "DebuggerStatement"
	KindWithStatement       NodeKind = "WithStatement"
	KindReturnStatement     NodeKind = "ReturnStatement"
	KindLabeledStatement    NodeKind = "LabeledStatement"
	KindBreakStatement      NodeKind = "BreakStatement"
	KindContinueStatement   NodeKind = "ContinueStatement"
	KindIfStatement         NodeKind = "IfStatement"
	KindSwitchStatement     NodeKind = "SwitchStatement"
	KindSwitchCase          NodeKind = "SwitchCase"
	KindThrowStatement      NodeKind = "ThrowStatement"
	KindTryStatement        NodeKind = "TryStatement"
	KindCatchClause         NodeKind = "CatchClause"
	KindWhileStatement      NodeKind = "WhileStatement"
	KindDoWhileStatement    NodeKind = "DoWhileStatement"
	KindForStatement        NodeKind = "ForStatement"
	KindForInStatement      NodeKind = "ForInStatement"
	KindFunctionDeclaration NodeKind = "FunctionDeclaration"
	KindVariableDeclaration NodeKind = "VariableDeclaration"
	KindVariableDeclarator  NodeKind = "VariableDeclarator"
	KindThisExpression      NodeKind = "ThisExpression"
	KindArrayExpression     NodeKind = "ArrayExpression"
	KindObjectExpression    NodeKind = "ObjectExpression"
	KindProperty            NodeKind = "Property"
	KindFunctionExpression  NodeKind = "FunctionExpression"
	KindUnaryExpression     NodeKind = "UnaryExpression"
	KindUpdateExpression    NodeKind = "UpdateExpression"
	KindBinaryExpression    NodeKind = "BinaryExpression"
	KindAssignmentExpr      NodeKind = "AssignmentExpression"
	KindLogicalExpression   NodeKind = "LogicalExpression"
	KindMemberExpression    NodeKind = "MemberExpression"
	KindConditionalExpr     NodeKind = "ConditionalExpression"
	KindCallExpression      NodeKind = "CallExpression"
	KindNewExpression       NodeKind = "NewExpression"
	KindSequenceExpression  NodeKind = "SequenceExpression"
)

// Position is a point in the source text. Line is 1-based; Column is the
// 0-based codepoint count since the last line break.
type Position struct {
	Line   int
	Column int
}

// NewPosition builds a Position.
func NewPosition(line, column int) Position {
	return Position{Line: line, Column: column}
}

// SourceLocation is the span a node covers. Source is an optional
// human-readable label for the originating file; it stays empty unless the
// caller wires in a real name. End is only meaningful once the node's span
// is fully known: a location created at node-open time carries a
// placeholder end until Close is called.
type SourceLocation struct {
	Source string
	Start  Position
	End    Position
}

// NewSourceLocation opens a location at the given start point with a
// placeholder end.
func NewSourceLocation(line, column int) SourceLocation {
	return SourceLocation{
		Start: NewPosition(line, column),
		End:   NewPosition(0, 0),
	}
}

// Close records the end of the span.
func (l *SourceLocation) Close(line, column int) {
	l.End = NewPosition(line, column)
}

// --- Interfaces ---

// Node is the base interface for all AST nodes.
type Node interface {
	Kind() NodeKind
	Loc() *SourceLocation
	String() string // Returns a string representation of the node (for debugging)
}

// Statement is satisfied by every node usable in statement position.
// The marker method keeps the set closed to this package.
type Statement interface {
	Node
	statementNode()
}

// Expression is satisfied by every node usable in expression position.
type Expression interface {
	Node
	expressionNode()
}

// Pattern is satisfied by every node usable as a binding target.
type Pattern interface {
	Node
	patternNode()
}

// Declaration is the subset of statements that declare bindings.
type Declaration interface {
	Statement
	declarationNode()
}

// --- Program Node ---

// Program is the root node of the AST. It exclusively owns the ordered
// top-level statement list; the list is the only part of an attached tree
// that is still appended to while the program is being scanned.
type Program struct {
	Location SourceLocation
	Body     []Statement
}

// NewProgram opens a program node at the given position with an empty body.
func NewProgram(line, column int) *Program {
	return &Program{
		Location: NewSourceLocation(line, column),
		Body:     []Statement{},
	}
}

func (p *Program) Kind() NodeKind       { return KindProgram }
func (p *Program) Loc() *SourceLocation { return &p.Location }
func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Body {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}
