package ast

import (
	"bytes"
)

// Identifier is a name in expression or binding position. It is a value
// type: a node reused as both Pattern and Expression is copied, never
// shared by reference.
type Identifier struct {
	Location SourceLocation
	Name     string
}

// NewIdentifier builds an identifier spanning [start, end).
func NewIdentifier(name string, start, end Position) Identifier {
	loc := SourceLocation{Start: start, End: end}
	return Identifier{Location: loc, Name: name}
}

func (i Identifier) Kind() NodeKind { return KindIdentifier }

// Loc returns a view of the identifier's span. The span is fixed by
// NewIdentifier; writing through the returned pointer only touches the
// receiver copy.
func (i Identifier) Loc() *SourceLocation { return &i.Location }
func (i Identifier) String() string       { return i.Name }
func (i Identifier) expressionNode()      {}
func (i Identifier) patternNode()         {}
func (i Identifier) propertyKeyNode()     {}

// ThisExpression is the `this` keyword.
type ThisExpression struct {
	Location SourceLocation
}

func (t *ThisExpression) Kind() NodeKind       { return KindThisExpression }
func (t *ThisExpression) Loc() *SourceLocation { return &t.Location }
func (t *ThisExpression) String() string       { return "this" }
func (t *ThisExpression) expressionNode()      {}

// ArrayExpression is `[elements]`; nil elements are holes.
type ArrayExpression struct {
	Location SourceLocation
	Elements []Expression // nil entries represent holes
}

func (a *ArrayExpression) Kind() NodeKind       { return KindArrayExpression }
func (a *ArrayExpression) Loc() *SourceLocation { return &a.Location }
func (a *ArrayExpression) String() string {
	var out bytes.Buffer
	out.WriteString("[")
	for i, e := range a.Elements {
		if i > 0 {
			out.WriteString(", ")
		}
		if e != nil {
			out.WriteString(e.String())
		}
	}
	out.WriteString("]")
	return out.String()
}
func (a *ArrayExpression) expressionNode() {}

// PropertyKey is the key of an object property: a Literal or an Identifier.
type PropertyKey interface {
	Node
	propertyKeyNode()
}

// Property is one key/value entry of an ObjectExpression.
type Property struct {
	Location SourceLocation
	Key      PropertyKey
	Value    Expression
	PropKind PropertyKind
}

func (p *Property) Kind() NodeKind       { return KindProperty }
func (p *Property) Loc() *SourceLocation { return &p.Location }
func (p *Property) String() string {
	switch p.PropKind {
	case PropertyGet, PropertySet:
		return string(p.PropKind) + " " + p.Key.String() + " " + p.Value.String()
	default:
		return p.Key.String() + ": " + p.Value.String()
	}
}

// ObjectExpression is `{properties}`.
type ObjectExpression struct {
	Location   SourceLocation
	Properties []Property
}

func (o *ObjectExpression) Kind() NodeKind       { return KindObjectExpression }
func (o *ObjectExpression) Loc() *SourceLocation { return &o.Location }
func (o *ObjectExpression) String() string {
	var out bytes.Buffer
	out.WriteString("{")
	for i := range o.Properties {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(o.Properties[i].String())
	}
	out.WriteString("}")
	return out.String()
}
func (o *ObjectExpression) expressionNode() {}

// FunctionExpression is an anonymous `function(params) body` expression.
type FunctionExpression struct {
	Location SourceLocation
	Params   []Pattern
	Body     FunctionBody
}

// NewFunctionExpression creates the empty expression the minimal grammar
// pushes onto the innermost expression sink when `function` is consumed.
func NewFunctionExpression() *FunctionExpression {
	return &FunctionExpression{
		Params: []Pattern{},
		Body:   NewFunctionBody(),
	}
}

func (f *FunctionExpression) Kind() NodeKind       { return KindFunctionExpression }
func (f *FunctionExpression) Loc() *SourceLocation { return &f.Location }
func (f *FunctionExpression) String() string {
	var out bytes.Buffer
	out.WriteString("function(")
	for i, p := range f.Params {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.String())
	}
	out.WriteString(") ")
	out.WriteString(f.Body.String())
	return out.String()
}
func (f *FunctionExpression) expressionNode() {}

// UnaryExpression is a prefix operator applied to an argument. Prefix is
// carried per ESTree even though only prefix forms are grammatically
// valid for these operators.
type UnaryExpression struct {
	Location SourceLocation
	Operator UnaryOperator
	Prefix   bool
	Argument Expression
}

func (u *UnaryExpression) Kind() NodeKind       { return KindUnaryExpression }
func (u *UnaryExpression) Loc() *SourceLocation { return &u.Location }
func (u *UnaryExpression) String() string {
	switch u.Operator {
	case UnaryTypeof, UnaryVoid, UnaryDelete:
		return string(u.Operator) + " " + u.Argument.String()
	default:
		return string(u.Operator) + u.Argument.String()
	}
}
func (u *UnaryExpression) expressionNode() {}

// UpdateExpression is `++`/`--` applied before or after its argument.
type UpdateExpression struct {
	Location SourceLocation
	Operator UpdateOperator
	Prefix   bool
	Argument Expression
}

func (u *UpdateExpression) Kind() NodeKind       { return KindUpdateExpression }
func (u *UpdateExpression) Loc() *SourceLocation { return &u.Location }
func (u *UpdateExpression) String() string {
	if u.Prefix {
		return string(u.Operator) + u.Argument.String()
	}
	return u.Argument.String() + string(u.Operator)
}
func (u *UpdateExpression) expressionNode() {}

// BinaryExpression is `left op right` for non-logical operators.
type BinaryExpression struct {
	Location SourceLocation
	Operator BinaryOperator
	Left     Expression
	Right    Expression
}

func (b *BinaryExpression) Kind() NodeKind       { return KindBinaryExpression }
func (b *BinaryExpression) Loc() *SourceLocation { return &b.Location }
func (b *BinaryExpression) String() string {
	return "(" + b.Left.String() + " " + string(b.Operator) + " " + b.Right.String() + ")"
}
func (b *BinaryExpression) expressionNode() {}

// AssignmentTarget is the left side of an assignment: a Pattern or an
// Expression. Exactly one field is set.
type AssignmentTarget struct {
	Pattern    Pattern
	Expression Expression
}

func (t AssignmentTarget) String() string {
	if t.Pattern != nil {
		return t.Pattern.String()
	}
	if t.Expression != nil {
		return t.Expression.String()
	}
	return ""
}

// AssignmentExpression is `left op right`.
type AssignmentExpression struct {
	Location SourceLocation
	Operator AssignmentOperator
	Left     AssignmentTarget
	Right    Expression
}

func (a *AssignmentExpression) Kind() NodeKind       { return KindAssignmentExpr }
func (a *AssignmentExpression) Loc() *SourceLocation { return &a.Location }
func (a *AssignmentExpression) String() string {
	return a.Left.String() + " " + string(a.Operator) + " " + a.Right.String()
}
func (a *AssignmentExpression) expressionNode() {}

// LogicalExpression is `left || right` or `left && right`.
type LogicalExpression struct {
	Location SourceLocation
	Operator LogicalOperator
	Left     Expression
	Right    Expression
}

func (l *LogicalExpression) Kind() NodeKind       { return KindLogicalExpression }
func (l *LogicalExpression) Loc() *SourceLocation { return &l.Location }
func (l *LogicalExpression) String() string {
	return "(" + l.Left.String() + " " + string(l.Operator) + " " + l.Right.String() + ")"
}
func (l *LogicalExpression) expressionNode() {}

// MemberExpression is `object.property` or `object[property]`; Computed
// distinguishes the two forms. It is also a valid assignment target.
type MemberExpression struct {
	Location SourceLocation
	Object   Expression
	Property Expression
	Computed bool
}

func (m *MemberExpression) Kind() NodeKind       { return KindMemberExpression }
func (m *MemberExpression) Loc() *SourceLocation { return &m.Location }
func (m *MemberExpression) String() string {
	if m.Computed {
		return m.Object.String() + "[" + m.Property.String() + "]"
	}
	return m.Object.String() + "." + m.Property.String()
}
func (m *MemberExpression) expressionNode() {}
func (m *MemberExpression) patternNode()    {}

// ConditionalExpression is the ternary `test ? consequent : alternate`.
type ConditionalExpression struct {
	Location   SourceLocation
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (c *ConditionalExpression) Kind() NodeKind       { return KindConditionalExpr }
func (c *ConditionalExpression) Loc() *SourceLocation { return &c.Location }
func (c *ConditionalExpression) String() string {
	return c.Test.String() + " ? " + c.Consequent.String() + " : " + c.Alternate.String()
}
func (c *ConditionalExpression) expressionNode() {}

// CallExpression is `callee(arguments)`.
type CallExpression struct {
	Location  SourceLocation
	Callee    Expression
	Arguments []Expression
}

func (c *CallExpression) Kind() NodeKind       { return KindCallExpression }
func (c *CallExpression) Loc() *SourceLocation { return &c.Location }
func (c *CallExpression) String() string {
	return c.Callee.String() + stringifyArguments(c.Arguments)
}
func (c *CallExpression) expressionNode() {}

// NewExpression is `new callee(arguments)`.
type NewExpression struct {
	Location  SourceLocation
	Callee    Expression
	Arguments []Expression
}

func (n *NewExpression) Kind() NodeKind       { return KindNewExpression }
func (n *NewExpression) Loc() *SourceLocation { return &n.Location }
func (n *NewExpression) String() string {
	return "new " + n.Callee.String() + stringifyArguments(n.Arguments)
}
func (n *NewExpression) expressionNode() {}

// SequenceExpression is the comma operator.
type SequenceExpression struct {
	Location    SourceLocation
	Expressions []Expression
}

func (s *SequenceExpression) Kind() NodeKind       { return KindSequenceExpression }
func (s *SequenceExpression) Loc() *SourceLocation { return &s.Location }
func (s *SequenceExpression) String() string {
	var out bytes.Buffer
	for i, e := range s.Expressions {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(e.String())
	}
	return out.String()
}
func (s *SequenceExpression) expressionNode() {}

func stringifyArguments(args []Expression) string {
	var out bytes.Buffer
	out.WriteString("(")
	for i, a := range args {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(a.String())
	}
	out.WriteString(")")
	return out.String()
}
