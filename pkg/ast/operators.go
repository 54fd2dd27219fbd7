package ast

// UnaryOperator is the operator of a UnaryExpression.
type UnaryOperator string

const (
	UnaryPlus    UnaryOperator = "+"
	UnaryMinus   UnaryOperator = "-"
	UnaryLogical UnaryOperator = "!"
	UnaryBitwise UnaryOperator = "~"
	UnaryTypeof  UnaryOperator = "typeof"
	UnaryVoid    UnaryOperator = "void"
	UnaryDelete  UnaryOperator = "delete"
)

// UpdateOperator is the operator of an UpdateExpression.
type UpdateOperator string

const (
	UpdateIncrement UpdateOperator = "++"
	UpdateDecrement UpdateOperator = "--"
)

// BinaryOperator is the operator of a BinaryExpression.
type BinaryOperator string

const (
	BinaryEqual              BinaryOperator = "=="
	BinaryNotEqual           BinaryOperator = "!="
	BinaryStrictEqual        BinaryOperator = "==="
	BinaryStrictNotEqual     BinaryOperator = "!=="
	BinaryLessThan           BinaryOperator = "<"
	BinaryLessThanOrEqual    BinaryOperator = "<="
	BinaryGreaterThan        BinaryOperator = ">"
	BinaryGreaterThanOrEqual BinaryOperator = ">="
	BinaryLeftShift          BinaryOperator = "<<"
	BinaryRightShift         BinaryOperator = ">>"
	BinaryUnsignedRightShift BinaryOperator = ">>>"
	BinaryPlus               BinaryOperator = "+"
	BinaryMinus              BinaryOperator = "-"
	BinaryMultiply           BinaryOperator = "*"
	BinaryDivide             BinaryOperator = "/"
	BinaryModulo             BinaryOperator = "%"
	BinaryBitwiseOr          BinaryOperator = "|"
	BinaryBitwiseXor         BinaryOperator = "^"
	BinaryBitwiseAnd         BinaryOperator = "&"
	BinaryIn                 BinaryOperator = "in"
	BinaryInstanceof         BinaryOperator = "instanceof"
)

// AssignmentOperator is the operator of an AssignmentExpression.
type AssignmentOperator string

const (
	AssignNormal            AssignmentOperator = "="
	AssignAddition          AssignmentOperator = "+="
	AssignSubtraction       AssignmentOperator = "-="
	AssignMultiplication    AssignmentOperator = "*="
	AssignDivision          AssignmentOperator = "/="
	AssignNullishCoalescing AssignmentOperator = "??="
)

// LogicalOperator is the operator of a LogicalExpression. It is a
// dedicated enum, not a reuse of AssignmentOperator.
type LogicalOperator string

const (
	LogicalOr  LogicalOperator = "||"
	LogicalAnd LogicalOperator = "&&"
)

// PropertyKind distinguishes plain properties from accessors.
type PropertyKind string

const (
	PropertyInit PropertyKind = "init"
	PropertyGet  PropertyKind = "get"
	PropertySet  PropertyKind = "set"
)

// DeclarationKind is the keyword of a VariableDeclaration.
type DeclarationKind string

const (
	DeclVar   DeclarationKind = "var"
	DeclLet   DeclarationKind = "let"
	DeclConst DeclarationKind = "const"
)
